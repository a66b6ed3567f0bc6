package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		fg, bg Color
		want   error
	}{
		{"zero width", 0, 10, White, Black, ErrInvalidSize},
		{"negative height", 10, -1, White, Black, ErrInvalidSize},
		{"too many cells", 1<<12 + 1, 1 << 12, White, Black, ErrFrameTooLarge},
		{"none foreground", 10, 10, None, Black, ErrNoneColor},
		{"none background", 10, 10, White, None, ErrNoneColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecorder(80, 24)
			f, err := Create(tt.w, tt.h, ' ', tt.fg, tt.bg, WithBackend(rec), WithColorMode(ColorModeBase))
			assert.Nil(t, f)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, rec.chunks, "no terminal output on failure")
		})
	}
}

func TestCreateSetsUpTerminal(t *testing.T) {
	rec := newRecorder(80, 24)
	f, err := Create(4, 3, '#', Red, Blue, WithBackend(rec), WithColorMode(ColorMode256))
	require.NoError(t, err)

	assert.Equal(t, "\x1b[?25l\x1b[?1049h", rec.output())
	assert.Equal(t, 4, f.Width())
	assert.Equal(t, 3, f.Height())
	assert.Equal(t, ColorMode256, f.ColorMode())
	assert.True(t, f.Fits())

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			c, ok := f.Cell(x, y)
			require.True(t, ok)
			assert.Equal(t, Cell{Fg: Red, Bg: Blue, Glyph: '#'}, c)
		}
	}
}

func TestCreateWriteFailure(t *testing.T) {
	rec := newRecorder(80, 24)
	rec.err = errBackendClosed

	f, err := Create(4, 3, ' ', White, Black, WithBackend(rec), WithColorMode(ColorModeBase))
	assert.Nil(t, f)
	assert.ErrorIs(t, err, errBackendClosed)
}

func TestDestroy(t *testing.T) {
	rec := newRecorder(80, 24)
	f := newTestFrame(4, 3, ColorModeBase, rec)

	f.Destroy()
	assert.Equal(t, "\x1b[H\x1b[J\x1b[?1049l\x1b[?25h", rec.output())

	rec.reset()
	f.Destroy()
	assert.Empty(t, rec.chunks, "second destroy is a no-op")

	_, ok := f.Cell(0, 0)
	assert.False(t, ok)
	assert.NoError(t, f.Render())
	assert.Empty(t, rec.chunks)

	var nilFrame *Frame
	assert.NotPanics(t, func() {
		nilFrame.Destroy()
		nilFrame.Fill(Cell{})
		nilFrame.SetCell(0, 0, 'x', White, Black, EffectNone)
		_ = nilFrame.Render()
	})
	assert.Zero(t, nilFrame.Width())
	assert.False(t, nilFrame.Fits())
}

func TestCellBounds(t *testing.T) {
	f := newTestFrame(3, 2, ColorModeBase, newRecorder(80, 24))

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {100, 100}} {
		_, ok := f.Cell(p[0], p[1])
		assert.False(t, ok, "(%d,%d)", p[0], p[1])
	}
	_, ok := f.Cell(2, 1)
	assert.True(t, ok)
}

func TestFillKeepsNoneChannels(t *testing.T) {
	f := newTestFrame(2, 2, ColorModeBase, newRecorder(80, 24))

	f.Fill(Cell{Fg: Yellow, Bg: None, Glyph: '~', Effect: EffectBold})
	c, _ := f.Cell(1, 1)
	assert.Equal(t, Cell{Fg: Yellow, Bg: Black, Glyph: '~', Effect: EffectBold}, c)
}

func TestStagingCapacity(t *testing.T) {
	// Small frames are bounded by one worst-case row plus one cell
	assert.Equal(t, 5*maxCellLen+rowEndLen+maxCellLen, stagingCapacity(5, 1))

	// Large frames use the density estimate
	assert.Equal(t, (15*200*100+8+100)/20, stagingCapacity(200, 100))

	// Tall narrow frames still fit a cursor move
	assert.GreaterOrEqual(t, stagingCapacity(1, 1), maxCursorLen+rowEndLen)

	f := newTestFrame(5, 1, ColorModeBase, newRecorder(80, 24))
	assert.Equal(t, stagingCapacity(5, 1), f.StagingCapacity())
}

func TestWithProfile(t *testing.T) {
	rec := newRecorder(80, 24)
	p := Profile{Mode: ColorModeTrueColor, Width: 3, Height: 2}

	// Profile applies regardless of option order
	f, err := Create(4, 2, ' ', White, Black, WithProfile(p), WithBackend(rec), WithColorMode(ColorModeBase))
	require.NoError(t, err)
	assert.Equal(t, ColorModeTrueColor, f.ColorMode())

	rec.reset()
	require.NoError(t, f.Render())
	w, h := f.TerminalSize()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
	assert.False(t, f.Fits(), "4 columns do not fit the 3-column profile")
	assert.NotEmpty(t, rec.chunks, "writes still reach the backend")
}

func TestEmergencyReset(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)
	assert.Equal(t, "\x1b[?25h\x1b[?1049l\x1b[0m\x1bc", buf.String())
}
