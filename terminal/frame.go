// @lixen: #focus{sys[term,frame]}
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// MaxCells bounds width*height of a single Frame
const MaxCells = 1 << 24

var (
	ErrInvalidSize   = errors.New("terminal: frame width and height must be positive")
	ErrFrameTooLarge = errors.New("terminal: frame exceeds maximum cell count")
	ErrNoneColor     = errors.New("terminal: fill colors must be concrete")
)

// Frame is a fixed-size grid of cells bound to one terminal.
// A Frame is owned by a single goroutine; it does no locking.
type Frame struct {
	width  int
	height int
	cells  []Cell // row-major: cells[y*width + x]

	colorMode ColorMode
	backend   Backend

	out      *bufio.Writer
	capacity int

	termWidth  int
	termHeight int
	fits       bool

	destroyed bool
}

// Option configures Create
type Option func(*frameConfig)

type frameConfig struct {
	backend   Backend
	colorMode *ColorMode
	profile   *Profile
}

// WithBackend renders to b instead of stdout
func WithBackend(b Backend) Option {
	return func(c *frameConfig) {
		c.backend = b
	}
}

// WithColorMode skips detection and uses m
func WithColorMode(m ColorMode) Option {
	return func(c *frameConfig) {
		c.colorMode = &m
	}
}

// WithProfile fixes both color mode and reported terminal size.
// Output still goes to the configured backend (stdout by default).
func WithProfile(p Profile) Option {
	return func(c *frameConfig) {
		c.profile = &p
	}
}

// stagingCapacity sizes the output buffer: roughly 0.75 bytes of escape
// overhead per cell, but never less than one worst-case row plus one cell
func stagingCapacity(width, height int) int {
	ratio := (15*width*height + 8 + height) / 20
	row := width*maxCellLen + rowEndLen + maxCellLen
	return max(ratio, row, maxCursorLen+rowEndLen)
}

// Create allocates a width x height frame filled with glyph on fg/bg,
// resolves the color mode, then hides the cursor and enters the alternate screen.
func Create(width, height int, glyph rune, fg, bg Color, opts ...Option) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	if width > MaxCells/height {
		return nil, fmt.Errorf("%w: %dx%d", ErrFrameTooLarge, width, height)
	}
	if fg.IsNone() || bg.IsNone() {
		return nil, ErrNoneColor
	}

	var cfg frameConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.backend == nil {
		cfg.backend = newStdoutBackend()
	}
	if p := cfg.profile; p != nil {
		cfg.backend = profileBackend{Backend: cfg.backend, width: p.Width, height: p.Height}
		cfg.colorMode = &p.Mode
	}
	var mode ColorMode
	if cfg.colorMode != nil {
		mode = *cfg.colorMode
	} else {
		mode = DetectColorMode()
	}

	f := &Frame{
		width:     width,
		height:    height,
		cells:     make([]Cell, width*height),
		colorMode: mode,
		backend:   cfg.backend,
		capacity:  stagingCapacity(width, height),
		fits:      true,
	}
	f.out = bufio.NewWriterSize(backendWriter{f.backend}, f.capacity)
	f.Fill(Cell{Fg: fg, Bg: bg, Glyph: glyph})

	if err := f.backend.Write(append(append([]byte{}, csiCursorHide...), csiAltScreenEnter...)); err != nil {
		return nil, fmt.Errorf("terminal setup: %w", err)
	}
	return f, nil
}

// Destroy releases the grid and restores the terminal: clear, leave the
// alternate screen, show the cursor. Safe on nil and on destroyed frames.
func (f *Frame) Destroy() {
	if f == nil || f.destroyed {
		return
	}
	f.destroyed = true
	f.cells = nil
	f.out = nil

	restore := make([]byte, 0, len(csiClear)+len(csiAltScreenExit)+len(csiCursorShow))
	restore = append(restore, csiClear...)
	restore = append(restore, csiAltScreenExit...)
	restore = append(restore, csiCursorShow...)
	f.backend.Write(restore)
}

// Width returns the frame width in cells
func (f *Frame) Width() int {
	if f == nil {
		return 0
	}
	return f.width
}

// Height returns the frame height in cells
func (f *Frame) Height() int {
	if f == nil {
		return 0
	}
	return f.height
}

// ColorMode returns the mode resolved at creation
func (f *Frame) ColorMode() ColorMode {
	if f == nil {
		return ColorModeBase
	}
	return f.colorMode
}

// TerminalSize returns the terminal size sampled by the last Render
func (f *Frame) TerminalSize() (int, int) {
	if f == nil {
		return 0, 0
	}
	return f.termWidth, f.termHeight
}

// Fits reports whether the last Render found enough room for the frame
func (f *Frame) Fits() bool {
	return f != nil && f.fits
}

// StagingCapacity returns the output buffer size in bytes
func (f *Frame) StagingCapacity() int {
	if f == nil {
		return 0
	}
	return f.capacity
}

// live reports whether the frame can be used
func (f *Frame) live() bool {
	return f != nil && !f.destroyed
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.width && y < f.height
}

// Cell returns the cell at (x, y); ok is false outside the grid
func (f *Frame) Cell(x, y int) (Cell, bool) {
	if !f.live() || !f.inBounds(x, y) {
		return Cell{}, false
	}
	return f.cells[y*f.width+x], true
}

// at returns a pointer to an in-bounds cell
func (f *Frame) at(x, y int) *Cell {
	return &f.cells[y*f.width+x]
}

// Fill overwrites every cell with c; None colors keep existing channels
func (f *Frame) Fill(c Cell) {
	if !f.live() {
		return
	}
	for i := range f.cells {
		f.cells[i] = f.cells[i].merge(c)
	}
}

// EmergencyReset attempts to restore terminal to sane state.
// Call this from panic recovery if Destroy cannot be called normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
