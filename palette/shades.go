// Package palette derives related colours from a base colour: shade and
// tint ladders, the 50..950 scale, hue-rotation harmonies and the
// vibrating-pair check.
package palette

import "github.com/mmuldo/hexref/colorspace"

// Steps is the number of shades and of tints produced per call.
const Steps = 9

// Shades darkens c in nine steps; step i scales every channel by 1 - 0.1i.
// The last step is near black but not black.
func Shades(c colorspace.RGB) []colorspace.RGB {
	out := make([]colorspace.RGB, Steps)
	for i := 1; i <= Steps; i++ {
		f := 1 - float64(i)*0.1
		out[i-1] = colorspace.FromFloat(float64(c.R)*f, float64(c.G)*f, float64(c.B)*f)
	}
	return out
}

// Tints lightens c in nine steps; step i moves every channel 0.1i of the
// way to 255. The slice runs from the step closest to c to the step
// closest to white.
func Tints(c colorspace.RGB) []colorspace.RGB {
	out := make([]colorspace.RGB, Steps)
	lerp := func(v uint8, f float64) float64 {
		return float64(v) + (255-float64(v))*f
	}
	for i := 1; i <= Steps; i++ {
		f := float64(i) * 0.1
		out[i-1] = colorspace.FromFloat(lerp(c.R, f), lerp(c.G, f), lerp(c.B, f))
	}
	return out
}

// ScaleStep is one entry of a 50..950 scale.
type ScaleStep struct {
	Key   int
	Color colorspace.RGB
}

// Scale builds the eleven-step design-token scale: 50 to 400 are tints
// 9, 7, 5, 3 and 1, 500 is c, 600 to 950 are shades 1, 3, 5, 7 and 9.
func Scale(c colorspace.RGB) []ScaleStep {
	tints, shades := Tints(c), Shades(c)
	return []ScaleStep{
		{50, tints[8]},
		{100, tints[6]},
		{200, tints[4]},
		{300, tints[2]},
		{400, tints[0]},
		{500, c},
		{600, shades[0]},
		{700, shades[2]},
		{800, shades[4]},
		{900, shades[6]},
		{950, shades[8]},
	}
}
