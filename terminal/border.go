package terminal

// BorderSet holds the glyphs used by DrawBorders, DrawHLine and DrawVLine
type BorderSet struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune

	// RuleStart and RuleEnd cap separator lines
	RuleStart rune
	RuleEnd   rune
}

// Box drawing presets
var (
	BorderSingle  = BorderSet{'─', '│', '┌', '┐', '└', '┘', '├', '┤'}
	BorderDouble  = BorderSet{'═', '║', '╔', '╗', '╚', '╝', '╠', '╣'}
	BorderRounded = BorderSet{'─', '│', '╭', '╮', '╰', '╯', '├', '┤'}
	BorderHeavy   = BorderSet{'━', '┃', '┏', '┓', '┗', '┛', '┣', '┫'}
	BorderASCII   = BorderSet{'-', '|', '+', '+', '+', '+', '+', '+'}
)

// VerticalRule returns s with rule caps suited to a vertical separator:
// the top tee and bottom tee of the same line style
func (s BorderSet) VerticalRule() BorderSet {
	switch s {
	case BorderSingle, BorderRounded:
		s.RuleStart, s.RuleEnd = '┬', '┴'
	case BorderDouble:
		s.RuleStart, s.RuleEnd = '╦', '╩'
	case BorderHeavy:
		s.RuleStart, s.RuleEnd = '┳', '┻'
	}
	return s
}
