package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const screenCols = 80

// Styled output goes to remote sockets, not this process's stdout, so the
// color profile cannot be auto-detected.
func init() {
	lipgloss.SetColorProfile(termenv.ANSI)
}

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	chatStyle   = lipgloss.NewStyle().Faint(true)
)

// Init returns the sequence that prepares a freshly attached terminal:
// enter the alternate screen, clear it, and pin the window size.
func Init(rows int) []byte {
	return []byte(enterAltScreen + clearScrollback + setSize(rows, screenCols) + moveCursor(0, 0))
}

// Render returns the full redraw for the screen's current state. Before any
// chat has arrived it paints the header and prompt; afterwards it repaints
// the chat pane in place, preserving the cursor on the input line.
func Render(s *Screen) []byte {
	if s.Empty() {
		var b strings.Builder
		b.WriteString(moveCursor(0, 0))
		b.WriteString(headerStyle.Render(s.Header()))
		b.WriteString(moveCursor(s.Rows()+3, 0))
		b.WriteString(promptStyle.Render(s.Prompt()))
		return []byte(b.String())
	}

	var b strings.Builder
	b.WriteString(saveCursor)
	b.WriteString(moveCursor(2, 0))
	b.WriteString(strings.Repeat(clearLine, s.Rows()) + "\r\n")
	b.WriteString(moveCursor(2, 0))
	for _, line := range s.ChatLines() {
		b.WriteString(chatStyle.Render(line))
		b.WriteString("\r\n")
	}
	b.WriteString(restoreCursor)
	return []byte(b.String())
}

// PromptOnly returns the redraw for just the input line: clear from the
// prompt row down, then repaint the prompt.
func PromptOnly(s *Screen) []byte {
	row := s.Rows() + 3
	return []byte(moveCursor(row, 0) + clearToEnd + moveCursor(row, 0) + promptStyle.Render(s.Prompt()))
}

// Restore returns the sequence that hands the terminal back to the client:
// clear everything and leave the alternate screen.
func Restore() []byte {
	return []byte(clearScrollback + clearScreen + exitAltScreen + moveCursor(0, 0))
}
