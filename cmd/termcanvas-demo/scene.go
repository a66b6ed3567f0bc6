package main

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/termcanvas/terminal"
)

// scene animates a framed panel over a moving hue gradient
type scene struct {
	fg, bg terminal.Color
	tick   int
}

func fromColorful(c colorful.Color) terminal.Color {
	r, g, b := c.Clamped().RGB255()
	return terminal.RGB(r, g, b)
}

// gradient returns the background color of column x at the current tick
func (s *scene) gradient(x, width int) terminal.Color {
	hue := math.Mod(float64(x)/float64(width)*360+float64(s.tick)*4, 360)
	return fromColorful(colorful.Hsv(hue, 0.55, 0.35))
}

// draw paints one frame of the animation and advances the tick
func (s *scene) draw(f *terminal.Frame) {
	w, h := f.Width(), f.Height()

	f.Fill(terminal.Cell{Fg: s.fg, Bg: s.bg, Glyph: ' '})
	for x := 0; x < w; x++ {
		f.FillArea(x, 0, 1, h, ' ', terminal.None, s.gradient(x, w), terminal.EffectNone)
	}

	f.DrawBorders(0, 0, w, h, terminal.BorderRounded, s.fg, terminal.None, terminal.EffectNone)
	f.DrawText(2, 0, " termcanvas ", s.fg, terminal.None, terminal.EffectBold)

	if h > 4 {
		f.DrawHLine(0, h-3, w, terminal.BorderSingle, s.fg, terminal.None, terminal.EffectNone)
		tw, th := f.TerminalSize()
		status := fmt.Sprintf(" %s  frame %d  term %dx%d ", f.ColorMode(), s.tick, tw, th)
		f.DrawText(1, h-2, status, s.fg, terminal.None, terminal.EffectNone)
	}

	// Bouncing marker inside the border
	if w > 2 && h > 4 {
		span := w - 2
		pos := s.tick % (2 * span)
		if pos >= span {
			pos = 2*span - 1 - pos
		}
		f.SetCell(1+pos, (h-3)/2, '●', terminal.Yellow, terminal.None, terminal.EffectNone)
	}

	s.tick++
}
