//go:build unix

package terminal

import (
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// TerminalSize returns the size of the terminal on fd.
// Falls back to 80x24 when fd is not a terminal or the query fails.
func TerminalSize(fd uintptr) (int, int) {
	if !term.IsTerminal(int(fd)) {
		return DefaultWidth, DefaultHeight
	}
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return sanitizeSize(int(ws.Col), int(ws.Row))
}
