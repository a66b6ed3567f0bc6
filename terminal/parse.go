package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor resolves "none", "#rrggbb" / "#rgb", or a W3C color name
// ("red", "darkslategray", ...) to a Color
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch {
	case name == "":
		return Color{}, fmt.Errorf("empty color")
	case name == "none":
		return None, nil
	case strings.HasPrefix(name, "#"):
		c, err := colorful.Hex(name)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return RGB(r, g, b), nil
	}

	tc := tcell.GetColor(name)
	if tc == tcell.ColorDefault {
		return Color{}, fmt.Errorf("unknown color %q", s)
	}
	c := ColorFromTcell(tc)
	if c.IsNone() {
		return Color{}, fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}
