// @focus: #terminal { ansi }
package terminal

import (
	"strconv"
	"unicode/utf8"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// CSI sequences
	csi      = []byte("\x1b[")
	csiSGR0  = []byte("\x1b[0m")
	csiHome  = []byte("\x1b[H")
	csiClear = []byte("\x1b[H\x1b[J")
	csiEL    = []byte("\x1b[K") // erase to end of line
	csiRIS   = []byte("\x1bc")  // Reset to Initial State (emergency)

	// Row terminator: reset, erase the rest of the line, newline
	rowEnd     = []byte("\x1b[0m\x1b[K")
	rowNewline = []byte("\r\n")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Screen modes
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
)

const (
	// maxStyleLen is the longest AppendStyle output:
	// ESC[0;8;38;2;255;255;255;48;2;255;255;255m
	maxStyleLen = len("\x1b[0;8;38;2;255;255;255;48;2;255;255;255m")

	// maxCellLen is the worst-case output for one cell: style change plus glyph
	maxCellLen = maxStyleLen + utf8.UTFMax

	// rowEndLen covers the row terminator and its newline
	rowEndLen = len("\x1b[0m\x1b[K\r\n")

	// maxCursorLen covers ESC[row;colH for any int row/col plus ESC[K
	maxCursorLen = len("\x1b[;H\x1b[K") + 2*20
)

func appendInt(dst []byte, n int) []byte {
	return strconv.AppendInt(dst, int64(max(n, 0)), 10)
}

// appendCursorPos appends a cursor positioning sequence (0-indexed input)
func appendCursorPos(dst []byte, x, y int) []byte {
	dst = append(dst, csi...)
	dst = appendInt(dst, y+1)
	dst = append(dst, ';')
	dst = appendInt(dst, x+1)
	return append(dst, 'H')
}

// appendGlyph appends r as UTF-8; zero and invalid runes render as a space
func appendGlyph(dst []byte, r rune) []byte {
	if r == 0 || !utf8.ValidRune(r) {
		return append(dst, ' ')
	}
	if r < utf8.RuneSelf {
		return append(dst, byte(r))
	}
	return utf8.AppendRune(dst, r)
}
