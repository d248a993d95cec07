package colorspace

import (
	"fmt"
	"math"
)

// HSL holds hue in degrees [0,360) and saturation/lightness in percent.
type HSL struct {
	H, S, L float64
}

// HSL converts with the standard max-channel six-way split. Greys
// (r == g == b) get h = s = 0.
func (c RGB) HSL() HSL {
	r, g, b := c.unit()
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return HSL{0, 0, l * 100}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	return HSL{h * 60, s * 100, l * 100}
}

// Round returns the integer view: whole degrees and whole percents. A hue
// that rounds up to 360 wraps to 0.
func (h HSL) Round() HSL {
	return HSL{
		H: wrapHue(roundHalfUp(h.H)),
		S: roundHalfUp(h.S),
		L: roundHalfUp(h.L),
	}
}

// RGB converts back to 8-bit sRGB. Hue wraps; saturation and lightness
// are clamped to [0,100].
func (h HSL) RGB() RGB {
	hue := wrapHue(h.H)
	s := clamp(h.S, 0, 100)
	l := clamp(h.L, 0, 100) / 100
	a := s * math.Min(l, 1-l) / 100

	f := func(n float64) float64 {
		k := math.Mod(n+hue/30, 12)
		return 255 * (l - a*math.Max(math.Min(math.Min(k-3, 9-k), 1), -1))
	}
	return FromFloat(f(0), f(8), f(4))
}

// String formats the rounded view as hsl(h, s%, l%).
func (h HSL) String() string {
	r := h.Round()
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", int(r.H), int(r.S), int(r.L))
}
