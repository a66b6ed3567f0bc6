// @lixen: #focus{sys[term,draw]}
package terminal

// All primitives share one contract: a nil or destroyed frame, an origin
// outside the grid, an extent past the grid edge, or a non-positive extent
// does nothing; only text truncates at the right edge. None colors keep
// the channel already in the cell; glyph and effect always overwrite.

// put writes one in-bounds cell
func (f *Frame) put(x, y int, glyph rune, fg, bg Color, effect Effect) {
	p := f.at(x, y)
	*p = p.merge(Cell{Fg: fg, Bg: bg, Glyph: glyph, Effect: effect})
}

// SetCell writes a single cell
func (f *Frame) SetCell(x, y int, glyph rune, fg, bg Color, effect Effect) {
	if !f.live() || !f.inBounds(x, y) {
		return
	}
	f.put(x, y, glyph, fg, bg, effect)
}

// FillArea fills a w x h rectangle at (x, y). The rectangle must lie
// entirely inside the frame.
func (f *Frame) FillArea(x, y, w, h int, glyph rune, fg, bg Color, effect Effect) {
	if !f.live() || !f.rectInBounds(x, y, w, h) {
		return
	}
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			f.put(col, row, glyph, fg, bg, effect)
		}
	}
}

// DrawBorders draws the outline of a w x h rectangle at (x, y) using set.
// The rectangle must lie entirely inside the frame.
func (f *Frame) DrawBorders(x, y, w, h int, set BorderSet, fg, bg Color, effect Effect) {
	if !f.live() || !f.rectInBounds(x, y, w, h) {
		return
	}
	right, bottom := x+w-1, y+h-1

	for col := x; col <= right; col++ {
		f.put(col, y, set.Horizontal, fg, bg, effect)
		f.put(col, bottom, set.Horizontal, fg, bg, effect)
	}
	for row := y; row <= bottom; row++ {
		f.put(x, row, set.Vertical, fg, bg, effect)
		f.put(right, row, set.Vertical, fg, bg, effect)
	}

	f.put(x, y, set.TopLeft, fg, bg, effect)
	f.put(right, y, set.TopRight, fg, bg, effect)
	f.put(x, bottom, set.BottomLeft, fg, bg, effect)
	f.put(right, bottom, set.BottomRight, fg, bg, effect)
}

// DrawHLine draws a horizontal separator of length cells starting at (x, y),
// capped with set.RuleStart and set.RuleEnd. The line must lie entirely
// inside the frame.
func (f *Frame) DrawHLine(x, y, length int, set BorderSet, fg, bg Color, effect Effect) {
	if !f.live() || !f.rectInBounds(x, y, length, 1) {
		return
	}
	end := x + length - 1
	for col := x; col <= end; col++ {
		f.put(col, y, set.Horizontal, fg, bg, effect)
	}
	f.put(x, y, set.RuleStart, fg, bg, effect)
	if end > x {
		f.put(end, y, set.RuleEnd, fg, bg, effect)
	}
}

// DrawVLine draws a vertical separator of length cells starting at (x, y),
// capped with set.RuleStart and set.RuleEnd. The line must lie entirely
// inside the frame.
func (f *Frame) DrawVLine(x, y, length int, set BorderSet, fg, bg Color, effect Effect) {
	if !f.live() || !f.rectInBounds(x, y, 1, length) {
		return
	}
	end := y + length - 1
	for row := y; row <= end; row++ {
		f.put(x, row, set.Vertical, fg, bg, effect)
	}
	f.put(x, y, set.RuleStart, fg, bg, effect)
	if end > y {
		f.put(x, end, set.RuleEnd, fg, bg, effect)
	}
}

// DrawText writes s starting at (x, y), one rune per cell, truncated at the
// right edge. Returns the number of cells written.
func (f *Frame) DrawText(x, y int, s string, fg, bg Color, effect Effect) int {
	if !f.live() || !f.inBounds(x, y) {
		return 0
	}
	col := x
	for _, r := range s {
		if col >= f.width {
			break
		}
		f.put(col, y, r, fg, bg, effect)
		col++
	}
	return col - x
}

// DrawRunes is DrawText for a rune slice
func (f *Frame) DrawRunes(x, y int, runes []rune, fg, bg Color, effect Effect) int {
	if !f.live() || !f.inBounds(x, y) {
		return 0
	}
	n := min(len(runes), f.width-x)
	for i := 0; i < n; i++ {
		f.put(x+i, y, runes[i], fg, bg, effect)
	}
	return n
}

func (f *Frame) rectInBounds(x, y, w, h int) bool {
	if w <= 0 || h <= 0 || x < 0 || y < 0 {
		return false
	}
	return x+w <= f.width && y+h <= f.height
}
