package terminal

import (
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2/terminfo"
	_ "github.com/gdamore/tcell/v2/terminfo/extended"
)

// ColorProbe reports the number of colors the terminal claims to support.
// ok is false when the answer is unknown.
type ColorProbe interface {
	Colors() (n int, ok bool)
}

// ProbeFunc adapts a function to ColorProbe
type ProbeFunc func() (int, bool)

func (f ProbeFunc) Colors() (int, bool) {
	return f()
}

// cachedProbe memoizes the first answer, including failure
type cachedProbe struct {
	probe ColorProbe

	once   sync.Once
	colors int
	ok     bool
}

// NewCachedProbe wraps p so it runs at most once; later calls return the
// first result even if it was a failure
func NewCachedProbe(p ColorProbe) ColorProbe {
	return &cachedProbe{probe: p}
}

func (c *cachedProbe) Colors() (int, bool) {
	c.once.Do(func() {
		if c.probe == nil {
			return
		}
		c.colors, c.ok = c.probe.Colors()
		if c.colors <= 0 {
			c.ok = false
		}
	})
	return c.colors, c.ok
}

// firstProbe asks each probe in order and returns the first answer
type firstProbe []ColorProbe

func (ps firstProbe) Colors() (int, bool) {
	for _, p := range ps {
		if n, ok := p.Colors(); ok && n > 0 {
			return n, true
		}
	}
	return 0, false
}

// TputProbe runs "tput colors" in a subprocess
type TputProbe struct{}

func (TputProbe) Colors() (int, bool) {
	path, err := exec.LookPath("tput")
	if err != nil {
		return 0, false
	}
	out, err := exec.Command(path, "colors").Output()
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// TerminfoProbe looks the terminal type up in tcell's terminfo database
type TerminfoProbe struct {
	// Term overrides $TERM when non-empty
	Term string
}

func (p TerminfoProbe) Colors() (int, bool) {
	name := p.Term
	if name == "" {
		name = os.Getenv("TERM")
	}
	if name == "" {
		return 0, false
	}
	ti, err := terminfo.LookupTerminfo(name)
	if err != nil || ti == nil || ti.Colors <= 0 {
		return 0, false
	}
	return ti.Colors, true
}

// defaultProbe is the process-wide probe: tput first, terminfo when tput is
// missing or fails. Its result is cached for the life of the process.
var defaultProbe = NewCachedProbe(firstProbe{TputProbe{}, TerminfoProbe{}})

// DefaultProbe returns the shared, cached probe
func DefaultProbe() ColorProbe {
	return defaultProbe
}
