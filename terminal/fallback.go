package terminal

import (
	"bufio"
	"strconv"
)

// Colors of the too-small diagnostic
var (
	sizeOKColor    = Green
	sizeShortColor = Red
	sizeSepColor   = White
	sizeBgColor    = Black
)

// dimensionColor is green when have covers need, red otherwise
func dimensionColor(have, need int) Color {
	if have < need {
		return sizeShortColor
	}
	return sizeOKColor
}

// renderTooSmall replaces the frame with the terminal's size, centered on
// the middle row, each dimension colored by whether it is large enough
func (f *Frame) renderTooSmall(tw, th int) error {
	w := f.out

	ws := strconv.Itoa(tw)
	hs := strconv.Itoa(th)
	pad := max(tw/2-1-(len(ws)+len(hs))/2, 0)
	mid := th / 2

	reserve(w, maxCursorLen)
	w.Write(appendCursorPos(w.AvailableBuffer(), 0, 0))

	for y := 0; y < th; y++ {
		if y == mid {
			for i := 0; i < pad; i++ {
				reserve(w, 1)
				w.WriteByte(' ')
			}
			f.writeLabel(w, dimensionColor(tw, f.width), ws)
			f.writeLabel(w, sizeSepColor, "x")
			f.writeLabel(w, dimensionColor(th, f.height), hs)
		}
		reserve(w, rowEndLen)
		w.Write(rowEnd)
		if y < th-1 {
			w.Write(rowNewline)
		}
	}

	reserve(w, len(csiSGR0))
	w.Write(csiSGR0)
	return f.flush()
}

// writeLabel writes text in fg on the diagnostic background
func (f *Frame) writeLabel(w *bufio.Writer, fg Color, text string) {
	reserve(w, maxStyleLen+len(text))
	buf := w.AvailableBuffer()
	buf = AppendStyle(buf, fg, sizeBgColor, EffectNone, f.colorMode)
	buf = append(buf, text...)
	w.Write(buf)
}
