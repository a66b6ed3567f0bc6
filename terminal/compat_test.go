package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTcellColorRoundTrip(t *testing.T) {
	for _, c := range []Color{Black, White, Orange, RGB(1, 2, 3)} {
		assert.Equal(t, c, ColorFromTcell(c.ToTcell()), c.Hex())
	}
	assert.Equal(t, tcell.ColorDefault, None.ToTcell())
	assert.True(t, ColorFromTcell(tcell.ColorDefault).IsNone())
	assert.Equal(t, Maroon, ColorFromTcell(tcell.ColorMaroon))
}

func TestTcellEffects(t *testing.T) {
	assert.Equal(t, tcell.AttrBold, EffectBold.TcellAttr())
	assert.Equal(t, tcell.AttrNone, EffectConceal.TcellAttr())
	assert.Equal(t, tcell.AttrNone, EffectNone.TcellAttr())

	assert.Equal(t, EffectBold, EffectFromTcell(tcell.AttrUnderline|tcell.AttrBold))
	assert.Equal(t, EffectReverse, EffectFromTcell(tcell.AttrReverse))
	assert.Equal(t, EffectNone, EffectFromTcell(tcell.AttrDim))
}

func TestCellTcellStyle(t *testing.T) {
	c := Cell{Fg: Red, Bg: Navy, Glyph: 'z', Effect: EffectItalic}
	assert.Equal(t, c, CellFromTcell('z', c.TcellStyle()))
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"red", Red},
		{"Lime", Lime},
		{"green", Green},
		{"darkslategray", Hex(0x2F4F4F)},
		{"#336699", Hex(0x336699)},
		{"#fff", White},
		{"none", None},
		{" NONE ", None},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "nope", "#zz", "not-a-color"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, "%q", bad)
	}
}
