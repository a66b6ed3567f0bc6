package terminal

import (
	"log"
	"os"
	"strings"
	"sync"
)

// truecolorMarkers are variables set only by terminals known to support 24-bit color
var truecolorMarkers = []string{
	"KITTY_WINDOW_ID",
	"KONSOLE_VERSION",
	"ITERM_SESSION_ID",
	"ALACRITTY_WINDOW_ID",
	"WEZTERM_PANE",
}

// palette256Families are $TERM fragments of terminals that commonly support 256 colors
var palette256Families = []string{
	"256color",
	"xterm",
	"rxvt",
	"linux",
	"screen",
	"tmux",
	"vt100",
	"vt220",
	"ansi",
	"konsole",
	"eterm",
	"gnome",
	"alacritty",
	"foot",
	"kitty",
}

// Detector resolves the terminal color mode from environment and probe
type Detector struct {
	// Getenv reads environment variables; nil means os.Getenv
	Getenv func(string) string

	// Probe reports the terminal color count; nil skips probing
	Probe ColorProbe
}

// ColorMode determines terminal color capability.
//
// Order: explicit truecolor signals, $TERM truecolor hints, a "256color"
// $TERM, the probe's color count, $TERM 256-color families, then base colors.
func (d Detector) ColorMode() ColorMode {
	getenv := d.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	// 1. COLORTERM and terminal-specific markers
	colorterm := strings.ToLower(getenv("COLORTERM"))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		return ColorModeTrueColor
	}
	for _, name := range truecolorMarkers {
		if getenv(name) != "" {
			return ColorModeTrueColor
		}
	}

	// 2. TERM truecolor variants
	termName := strings.ToLower(getenv("TERM"))
	if strings.Contains(termName, "truecolor") ||
		strings.Contains(termName, "24bit") ||
		strings.Contains(termName, "direct") {
		return ColorModeTrueColor
	}

	// 3. TERM names a 256-color variant outright
	if strings.Contains(termName, "256color") {
		return ColorMode256
	}

	// 4. Probe answer decides for everything else
	if d.Probe != nil {
		if n, ok := d.Probe.Colors(); ok {
			switch {
			case n >= 1<<24:
				return ColorModeTrueColor
			case n >= 256:
				return ColorMode256
			default:
				return ColorModeBase
			}
		}
	}

	// 5. Known 256-color families
	if matchesPalette256(termName) {
		return ColorMode256
	}

	return ColorModeBase
}

func matchesPalette256(termName string) bool {
	if termName == "" {
		return false
	}
	// "st" is too short for substring matching
	if termName == "st" || strings.HasPrefix(termName, "st-") {
		return true
	}
	for _, family := range palette256Families {
		if strings.Contains(termName, family) {
			return true
		}
	}
	return false
}

var (
	detectOnce   sync.Once
	detectedMode ColorMode
)

// DetectColorMode returns the color mode of the process's terminal.
// Computed once from the real environment and the cached default probe;
// later environment changes are not observed.
func DetectColorMode() ColorMode {
	detectOnce.Do(func() {
		detectedMode = Detector{Probe: DefaultProbe()}.ColorMode()
		log.Printf("terminal: detected color mode %s (TERM=%q COLORTERM=%q)",
			detectedMode, os.Getenv("TERM"), os.Getenv("COLORTERM"))
	})
	return detectedMode
}
