package terminal

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorModeBase      ColorMode = iota // 8 standard + 8 bright colors
	ColorMode256                        // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	switch m {
	case ColorModeBase:
		return "base"
	case ColorMode256:
		return "256"
	case ColorModeTrueColor:
		return "truecolor"
	default:
		return fmt.Sprintf("ColorMode(%d)", uint8(m))
	}
}

// ParseColorMode resolves a user-facing mode name.
// Accepts "base", "16", "8", "256", "truecolor", "true", "24bit".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "base", "16", "8":
		return ColorModeBase, nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	}
	return 0, fmt.Errorf("unknown color mode %q", s)
}

// Color is a 24-bit RGB value, or None.
// None means "leave the existing value" in partial updates; frames never render it.
type Color struct {
	R, G, B uint8
	none    bool
}

// None is the "do not override" sentinel
var None = Color{none: true}

// RGB builds a concrete color
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex builds a concrete color from 0xRRGGBB
func Hex(v uint32) Color {
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// IsNone reports whether c is the None sentinel
func (c Color) IsNone() bool {
	return c.none
}

// Hex formats the color as #rrggbb, or "none"
func (c Color) Hex() string {
	if c.none {
		return "none"
	}
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

func (c Color) String() string {
	return c.Hex()
}

// orElse returns c unless it is None
func (c Color) orElse(prev Color) Color {
	if c.none {
		return prev
	}
	return c
}

// CSS named colors
var (
	Black   = Hex(0x000000)
	White   = Hex(0xFFFFFF)
	Red     = Hex(0xFF0000)
	Lime    = Hex(0x00FF00)
	Green   = Hex(0x008000)
	Blue    = Hex(0x0000FF)
	Yellow  = Hex(0xFFFF00)
	Cyan    = Hex(0x00FFFF)
	Magenta = Hex(0xFF00FF)
	Gray    = Hex(0x808080)
	Silver  = Hex(0xC0C0C0)
	Maroon  = Hex(0x800000)
	Navy    = Hex(0x000080)
	Olive   = Hex(0x808000)
	Teal    = Hex(0x008080)
	Purple  = Hex(0x800080)
	Orange  = Hex(0xFFA500)
)
