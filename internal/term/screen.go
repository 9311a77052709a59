// Package term holds the structured terminal state for one connected client
// and renders it into ANSI byte sequences. Rendering is a pure function of
// the screen state; the package never touches a socket.
package term

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ServerNick labels messages originating from the server itself.
const ServerNick = "SERVER"

var serverLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)

// Screen is the display state of one client: header, a bounded ring of
// wrapped chat lines, and the input prompt. It is written by the session
// goroutine and by the dispatcher (prompt updates on /join), so all access
// goes through the screen's own lock.
type Screen struct {
	mu     sync.Mutex
	header string
	prompt string
	chat   []string
	rows   int
	wrap   int
}

// NewScreen constructs a screen with a chat pane of rows lines, wrapping
// payloads at wrap characters.
func NewScreen(rows, wrap int) *Screen {
	return &Screen{rows: rows, wrap: wrap}
}

// SetHeader replaces the header text.
func (s *Screen) SetHeader(header string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.header = header
}

// Header returns the header text.
func (s *Screen) Header() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.header
}

// SetPrompt derives the prompt from a channel name: upper-cased, followed
// by ": ".
func (s *Screen) SetPrompt(channel string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompt = strings.ToUpper(channel) + ": "
}

// Prompt returns the current prompt text.
func (s *Screen) Prompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prompt
}

// Rows returns the height of the chat pane.
func (s *Screen) Rows() int {
	return s.rows
}

// Empty reports whether no chat lines have been added yet.
func (s *Screen) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.chat) == 0
}

// AddMessage appends a chat message to the pane. The payload is wrapped at
// the configured width (character count, not grapheme aware); the first line
// carries a "[nick]: " label and continuation lines are padded to the label
// width. Oldest lines are evicted once the ring is full.
func (s *Screen) AddMessage(nick, payload string) {
	label := fmt.Sprintf("[%s]: ", nick)
	if nick == ServerNick {
		label = serverLabelStyle.Render(label)
	}
	padding := strings.Repeat(" ", lipgloss.Width(label))

	lines := make([]string, 0, 1)
	runes := []rune(payload)
	for first := true; first || len(runes) > 0; first = false {
		n := min(len(runes), s.wrap)
		chunk := string(runes[:n])
		runes = runes[n:]
		if first {
			lines = append(lines, label+chunk)
		} else {
			lines = append(lines, padding+chunk)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.chat)+len(lines) > s.rows {
		drop := min(len(s.chat), len(s.chat)+len(lines)-s.rows)
		s.chat = s.chat[drop:]
	}
	s.chat = append(s.chat, lines...)
}

// ChatLines returns a copy of the wrapped chat lines, oldest first.
func (s *Screen) ChatLines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]string, len(s.chat))
	copy(lines, s.chat)
	return lines
}
