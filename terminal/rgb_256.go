package terminal

import "math"

// xterm 256-color palette layout
//
// Color cube: index = 16 + 36*r + 6*g + b where r,g,b ∈ [0,5]
// Grayscale ramp: indices 232-255, level = 8 + 10*(index-232)

const (
	cubeStart      = 16
	grayscaleStart = 232
	grayscaleSteps = 24
)

// grayHalfWidth is half of one gray bucket; the ramp spans 255 in 24 buckets
const grayHalfWidth = 255.0 / grayscaleSteps / 2

// cubeIndex maps a channel value 0-255 to its cube coordinate 0-5
// using round(v/255*5). Pre-computed at init time
var cubeIndex [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		cubeIndex[i] = uint8(math.Round(float64(i) / 255 * 5))
	}
}

// RGBTo256 converts a color to its xterm-256 palette index.
// Near-grays map to the grayscale ramp first; everything else maps to the
// 6x6x6 cube.
func RGBTo256(c Color) uint8 {
	if i, ok := grayBucket(c); ok {
		return Gray256(i)
	}
	return Cube256(cubeIndex[c.R], cubeIndex[c.G], cubeIndex[c.B])
}

// grayBucket returns the first ramp step whose center is within half a
// bucket of all three channels
func grayBucket(c Color) (uint8, bool) {
	for i := 0; i < grayscaleSteps; i++ {
		level := float64(grayLevel(uint8(i)))
		if math.Abs(float64(c.R)-level) <= grayHalfWidth &&
			math.Abs(float64(c.G)-level) <= grayHalfWidth &&
			math.Abs(float64(c.B)-level) <= grayHalfWidth {
			return uint8(i), true
		}
	}
	return 0, false
}

// grayLevel is the channel value at the center of ramp step i
func grayLevel(step uint8) int {
	return 8 + 10*int(step)
}

// Cube256 returns the xterm 256-palette index for an RGB cube coordinate.
// r, g, b must be in [0,5]. Values outside that range are clamped.
func Cube256(r, g, b uint8) uint8 {
	r, g, b = min(r, 5), min(g, 5), min(b, 5)
	return cubeStart + 36*r + 6*g + b
}

// CubeRGB256 returns the (r, g, b) cube coordinates for a 256-palette color cube index.
// Index must be in [16,231]. Returns (0,0,0) for out-of-range indices.
func CubeRGB256(index uint8) (r, g, b uint8) {
	if index < cubeStart || index >= grayscaleStart {
		return 0, 0, 0
	}
	n := index - cubeStart
	return n / 36, (n % 36) / 6, n % 6
}

// Gray256 returns the xterm 256-palette index for a grayscale step.
// step must be in [0,23] (maps to indices 232-255, levels 8-238).
func Gray256(step uint8) uint8 {
	return grayscaleStart + min(step, grayscaleSteps-1)
}
