// @lixen: #focus{sys[term,io,output]}
// @lixen: #interact{trigger[output,ansi]}
package terminal

import (
	"bufio"
)

// styleTracker remembers the last style written to the terminal.
// valid=false is the sentinel that matches no real cell.
type styleTracker struct {
	last  style
	valid bool
}

func (t *styleTracker) changed(s style) bool {
	return !t.valid || s != t.last
}

func (t *styleTracker) set(s style) {
	t.last = s
	t.valid = true
}

func (t *styleTracker) invalidate() {
	t.valid = false
}

// reserve flushes w unless n more bytes fit in its buffer, so a single
// escape sequence is never split across physical writes
func reserve(w *bufio.Writer, n int) {
	if w.Available() < n {
		w.Flush()
	}
}

// Render draws the frame to the terminal.
//
// The terminal size is sampled first; if the frame does not fit, a
// diagnostic view replaces the frame contents. Otherwise every row is written
// with one style sequence per style change, staged through the frame's
// buffer and flushed as it fills.
func (f *Frame) Render() error {
	if !f.live() {
		return nil
	}

	tw, th := sanitizeSize(f.backend.Size())
	f.termWidth, f.termHeight = tw, th

	if f.width > tw || f.height > th {
		f.fits = false
		return f.renderTooSmall(tw, th)
	}

	w := f.out

	// Leaving the too-small view: clear its rows before the first full frame
	if !f.fits {
		for y := 0; y < th/2+2; y++ {
			reserve(w, maxCursorLen)
			buf := w.AvailableBuffer()
			buf = appendCursorPos(buf, 0, y)
			buf = append(buf, csiEL...)
			w.Write(buf)
		}
		f.fits = true
	}

	w.Write(csiHome)

	var tracker styleTracker
	for y := 0; y < f.height; y++ {
		row := f.cells[y*f.width : (y+1)*f.width]
		for _, c := range row {
			reserve(w, maxCellLen)
			buf := w.AvailableBuffer()
			if s := c.style(); tracker.changed(s) {
				buf = AppendStyle(buf, s.fg, s.bg, s.effect, f.colorMode)
				tracker.set(s)
			}
			buf = appendGlyph(buf, c.Glyph)
			w.Write(buf)
		}

		// Terminator resets attributes so the next row restates its style
		reserve(w, rowEndLen)
		w.Write(rowEnd)
		if y < f.height-1 {
			w.Write(rowNewline)
		}
		tracker.invalidate()
	}

	reserve(w, len(csiSGR0))
	w.Write(csiSGR0)
	return f.flush()
}

// flush sends staged output. A failed write drops the rest of the frame and
// clears the writer's sticky error so the next Render starts clean.
func (f *Frame) flush() error {
	if err := f.out.Flush(); err != nil {
		f.out.Reset(backendWriter{f.backend})
		return err
	}
	return nil
}
