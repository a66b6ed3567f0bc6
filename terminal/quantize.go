// @lixen: #focus{sys[term,color]}
package terminal

// baseColors is the 16-color reference table: 8 standard, then 8 bright.
// Index order is the tie-break order.
var baseColors = [16]Color{
	Hex(0x000000), // black
	Hex(0x800000), // red
	Hex(0x008000), // green
	Hex(0x808000), // yellow
	Hex(0x000080), // blue
	Hex(0x800080), // magenta
	Hex(0x008080), // cyan
	Hex(0xC0C0C0), // light gray
	Hex(0x808080), // dark gray (bright black)
	Hex(0xFF0000), // bright red
	Hex(0x00FF00), // bright green
	Hex(0xFFFF00), // bright yellow
	Hex(0x0000FF), // bright blue
	Hex(0xFF00FF), // bright magenta
	Hex(0x00FFFF), // bright cyan
	Hex(0xFFFFFF), // bright white
}

// BaseColor returns entry i (0-15) of the base reference table
func BaseColor(i int) Color {
	return baseColors[i&15]
}

// RGBToBase returns the index (0-15) of the nearest base color by
// Euclidean RGB distance. The lowest index wins on exact ties.
func RGBToBase(c Color) int {
	best, bestDist := 0, -1
	for i, ref := range baseColors {
		d := distSq(c, ref)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// distSq is the squared Euclidean distance; ordering matches the true distance
func distSq(a, b Color) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// baseFgCode maps a base index to SGR 30-37 / 90-97
func baseFgCode(i int) int {
	if i < 8 {
		return 30 + i
	}
	return 90 + i - 8
}

// baseBgCode maps a base index to SGR 40-47 / 100-107
func baseBgCode(i int) int {
	if i < 8 {
		return 40 + i
	}
	return 100 + i - 8
}

// appendColorParams appends the SGR parameters selecting fg and bg in mode,
// without CSI prefix or 'm' suffix
func appendColorParams(dst []byte, fg, bg Color, mode ColorMode) []byte {
	switch mode {
	case ColorModeTrueColor:
		dst = append(dst, "38;2;"...)
		dst = appendRGBParams(dst, fg)
		dst = append(dst, ";48;2;"...)
		dst = appendRGBParams(dst, bg)
	case ColorMode256:
		dst = append(dst, "38;5;"...)
		dst = appendInt(dst, int(RGBTo256(fg)))
		dst = append(dst, ";48;5;"...)
		dst = appendInt(dst, int(RGBTo256(bg)))
	default:
		dst = appendInt(dst, baseFgCode(RGBToBase(fg)))
		dst = append(dst, ';')
		dst = appendInt(dst, baseBgCode(RGBToBase(bg)))
	}
	return dst
}

func appendRGBParams(dst []byte, c Color) []byte {
	dst = appendInt(dst, int(c.R))
	dst = append(dst, ';')
	dst = appendInt(dst, int(c.G))
	dst = append(dst, ';')
	return appendInt(dst, int(c.B))
}

// AppendColors appends the sequence that sets fg and bg in the given mode
func AppendColors(dst []byte, fg, bg Color, mode ColorMode) []byte {
	dst = append(dst, csi...)
	dst = appendColorParams(dst, fg, bg, mode)
	return append(dst, 'm')
}

// EncodeColors returns the sequence that sets fg and bg in the given mode
func EncodeColors(fg, bg Color, mode ColorMode) string {
	var scratch [maxStyleLen]byte
	return string(AppendColors(scratch[:0], fg, bg, mode))
}

// AppendEffect appends the sequence for e; EffectNone and undefined
// effects append nothing
func AppendEffect(dst []byte, e Effect) []byte {
	if e.orNone() == EffectNone {
		return dst
	}
	dst = append(dst, csi...)
	dst = appendInt(dst, int(e))
	return append(dst, 'm')
}

// AppendStyle appends one combined "reset, effect, colors" sequence.
// Undefined effects are dropped.
func AppendStyle(dst []byte, fg, bg Color, e Effect, mode ColorMode) []byte {
	dst = append(dst, csi...)
	dst = append(dst, '0', ';')
	if e = e.orNone(); e != EffectNone {
		dst = appendInt(dst, int(e))
		dst = append(dst, ';')
	}
	dst = appendColorParams(dst, fg, bg, mode)
	return append(dst, 'm')
}
