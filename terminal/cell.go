package terminal

// Effect is a text effect; its value is the SGR parameter
type Effect uint8

const (
	EffectNone      Effect = 0
	EffectBold      Effect = 1
	EffectItalic    Effect = 3
	EffectUnderline Effect = 4
	EffectBlink     Effect = 5
	EffectReverse   Effect = 7
	EffectConceal   Effect = 8
)

// Valid reports whether e is one of the defined effects
func (e Effect) Valid() bool {
	switch e {
	case EffectNone, EffectBold, EffectItalic, EffectUnderline, EffectBlink, EffectReverse, EffectConceal:
		return true
	}
	return false
}

// Cell represents a single terminal cell
type Cell struct {
	Fg     Color
	Bg     Color
	Glyph  rune
	Effect Effect
}

// style is the part of a cell the renderer coalesces on
type style struct {
	fg, bg Color
	effect Effect
}

func (c Cell) style() style {
	return style{fg: c.Fg, bg: c.Bg, effect: c.Effect}
}

// orNone maps effects outside the defined set to EffectNone
func (e Effect) orNone() Effect {
	if !e.Valid() {
		return EffectNone
	}
	return e
}

// merge applies src over c: None colors keep the current channel,
// undefined effects are stored as EffectNone
func (c Cell) merge(src Cell) Cell {
	return Cell{
		Fg:     src.Fg.orElse(c.Fg),
		Bg:     src.Bg.orElse(c.Bg),
		Glyph:  src.Glyph,
		Effect: src.Effect.orNone(),
	}
}
