package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func envOf(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func fixedProbe(n int, ok bool) ColorProbe {
	return ProbeFunc(func() (int, bool) { return n, ok })
}

func TestDetectorColorMode(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		probe ColorProbe
		want  ColorMode
	}{
		{"colorterm truecolor", map[string]string{"COLORTERM": "truecolor", "TERM": "dumb"}, nil, ColorModeTrueColor},
		{"colorterm 24bit mixed case", map[string]string{"COLORTERM": "24BIT"}, nil, ColorModeTrueColor},
		{"kitty marker", map[string]string{"KITTY_WINDOW_ID": "1", "TERM": "xterm"}, nil, ColorModeTrueColor},
		{"wezterm marker beats probe", map[string]string{"WEZTERM_PANE": "0"}, fixedProbe(8, true), ColorModeTrueColor},
		{"term direct", map[string]string{"TERM": "xterm-direct"}, fixedProbe(8, true), ColorModeTrueColor},
		{"probe 256", map[string]string{"TERM": "dumb"}, fixedProbe(256, true), ColorMode256},
		{"probe 16M", map[string]string{"TERM": "dumb"}, fixedProbe(1<<24, true), ColorModeTrueColor},
		{"256color term beats probe", map[string]string{"TERM": "xterm-256color"}, fixedProbe(8, true), ColorMode256},
		{"probe decides for family match", map[string]string{"TERM": "xterm"}, fixedProbe(8, true), ColorModeBase},
		{"probe upgrades family match", map[string]string{"TERM": "screen"}, fixedProbe(1<<24, true), ColorModeTrueColor},
		{"probe failure falls to term family", map[string]string{"TERM": "xterm-256color"}, fixedProbe(0, false), ColorMode256},
		{"screen family", map[string]string{"TERM": "screen"}, nil, ColorMode256},
		{"st whole name", map[string]string{"TERM": "st"}, nil, ColorMode256},
		{"st prefix", map[string]string{"TERM": "st-meta"}, nil, ColorMode256},
		{"st substring only", map[string]string{"TERM": "stterm"}, nil, ColorModeBase},
		{"dumb", map[string]string{"TERM": "dumb"}, nil, ColorModeBase},
		{"empty environment", map[string]string{}, nil, ColorModeBase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Detector{Getenv: envOf(tt.env), Probe: tt.probe}
			assert.Equal(t, tt.want, d.ColorMode())
		})
	}
}

func TestCachedProbeRunsOnce(t *testing.T) {
	calls := 0
	p := NewCachedProbe(ProbeFunc(func() (int, bool) {
		calls++
		return 256, true
	}))

	for i := 0; i < 3; i++ {
		n, ok := p.Colors()
		assert.True(t, ok)
		assert.Equal(t, 256, n)
	}
	assert.Equal(t, 1, calls)
}

func TestCachedProbeCachesFailure(t *testing.T) {
	calls := 0
	p := NewCachedProbe(ProbeFunc(func() (int, bool) {
		calls++
		if calls == 1 {
			return 0, false
		}
		return 256, true
	}))

	_, ok := p.Colors()
	assert.False(t, ok)
	_, ok = p.Colors()
	assert.False(t, ok, "failure must not be retried")
	assert.Equal(t, 1, calls)
}

func TestCachedProbeRejectsNonPositive(t *testing.T) {
	p := NewCachedProbe(fixedProbe(-1, true))
	_, ok := p.Colors()
	assert.False(t, ok)

	_, ok = NewCachedProbe(nil).Colors()
	assert.False(t, ok)
}

func TestFirstProbeOrder(t *testing.T) {
	p := firstProbe{fixedProbe(0, false), fixedProbe(88, true), fixedProbe(256, true)}
	n, ok := p.Colors()
	assert.True(t, ok)
	assert.Equal(t, 88, n)

	_, ok = firstProbe{}.Colors()
	assert.False(t, ok)
}

func TestTerminfoProbe(t *testing.T) {
	n, ok := TerminfoProbe{Term: "xterm-256color"}.Colors()
	assert.True(t, ok)
	assert.Equal(t, 256, n)

	_, ok = TerminfoProbe{Term: "no-such-terminal-type"}.Colors()
	assert.False(t, ok)
}

func TestDetectColorModeStable(t *testing.T) {
	first := DetectColorMode()
	assert.Equal(t, first, DetectColorMode())
}
