package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// ToTcell converts c to a tcell RGB color; None maps to tcell.ColorDefault
func (c Color) ToTcell() tcell.Color {
	if c.none {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// ColorFromTcell converts a tcell color, resolving palette entries to RGB.
// Default and invalid colors map to None.
func ColorFromTcell(tc tcell.Color) Color {
	if !tc.Valid() {
		return None
	}
	r, g, b := tc.RGB()
	if r < 0 || g < 0 || b < 0 {
		return None
	}
	return RGB(uint8(r), uint8(g), uint8(b))
}

// effectAttrs pairs each effect with its tcell attribute; Conceal has none
var effectAttrs = []struct {
	effect Effect
	attr   tcell.AttrMask
}{
	{EffectBold, tcell.AttrBold},
	{EffectItalic, tcell.AttrItalic},
	{EffectUnderline, tcell.AttrUnderline},
	{EffectBlink, tcell.AttrBlink},
	{EffectReverse, tcell.AttrReverse},
}

// TcellAttr converts e to a tcell attribute mask
func (e Effect) TcellAttr() tcell.AttrMask {
	for _, ea := range effectAttrs {
		if ea.effect == e {
			return ea.attr
		}
	}
	return tcell.AttrNone
}

// EffectFromTcell picks the single effect a cell can carry from a tcell
// mask. When several bits are set, the first in SGR order wins.
func EffectFromTcell(mask tcell.AttrMask) Effect {
	for _, ea := range effectAttrs {
		if mask&ea.attr != 0 {
			return ea.effect
		}
	}
	return EffectNone
}

// CellFromTcell builds a cell from a tcell style and rune
func CellFromTcell(r rune, st tcell.Style) Cell {
	fg, bg, attrs := st.Decompose()
	return Cell{
		Fg:     ColorFromTcell(fg),
		Bg:     ColorFromTcell(bg),
		Glyph:  r,
		Effect: EffectFromTcell(attrs),
	}
}

// TcellStyle returns the tcell style equivalent of c's colors and effect
func (c Cell) TcellStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(c.Fg.ToTcell()).
		Background(c.Bg.ToTcell()).
		Attributes(c.Effect.TcellAttr())
}
