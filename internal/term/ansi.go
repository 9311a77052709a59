package term

import "fmt"

// Raw VT100/xterm control sequences used by the renderer.
const (
	enterAltScreen  = "\x1b[?1049h"
	exitAltScreen   = "\x1b[?1049l"
	clearScreen     = "\x1b[2J"
	clearScrollback = "\x1b[3J"
	clearLine       = "\x1b[2K"
	clearToEnd      = "\x1b[0J"
	saveCursor      = "\x1b[s"
	restoreCursor   = "\x1b[u"
)

func moveCursor(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row, col)
}

func setSize(rows, cols int) string {
	return fmt.Sprintf("\x1b[8;%d;%dt", rows, cols)
}
