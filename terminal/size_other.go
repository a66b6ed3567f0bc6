//go:build !unix

package terminal

import (
	"golang.org/x/term"
)

// TerminalSize returns the size of the terminal on fd.
// Falls back to 80x24 when fd is not a terminal or the query fails.
func TerminalSize(fd uintptr) (int, int) {
	if !term.IsTerminal(int(fd)) {
		return DefaultWidth, DefaultHeight
	}
	w, h, err := term.GetSize(int(fd))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return sanitizeSize(w, h)
}
