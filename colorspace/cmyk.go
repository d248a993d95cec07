package colorspace

import (
	"fmt"
	"math"
)

// CMYK is a naive device-independent CMYK in percent, no ICC profile.
type CMYK struct {
	C, M, Y, K float64
}

// CMYK converts from sRGB. Pure black yields {0, 0, 0, 100} rather than
// dividing by zero.
func (c RGB) CMYK() CMYK {
	r, g, b := c.unit()
	k := 1 - math.Max(r, math.Max(g, b))
	if k == 1 {
		return CMYK{0, 0, 0, 100}
	}
	return CMYK{
		C: (1 - r - k) / (1 - k) * 100,
		M: (1 - g - k) / (1 - k) * 100,
		Y: (1 - b - k) / (1 - k) * 100,
		K: k * 100,
	}
}

// Round returns whole percents.
func (k CMYK) Round() CMYK {
	return CMYK{roundHalfUp(k.C), roundHalfUp(k.M), roundHalfUp(k.Y), roundHalfUp(k.K)}
}

// RGB converts back to sRGB, clamping every component to [0,100] first.
func (k CMYK) RGB() RGB {
	c := clamp(k.C, 0, 100) / 100
	m := clamp(k.M, 0, 100) / 100
	y := clamp(k.Y, 0, 100) / 100
	key := clamp(k.K, 0, 100) / 100
	return FromFloat(
		255*(1-c)*(1-key),
		255*(1-m)*(1-key),
		255*(1-y)*(1-key),
	)
}

func (k CMYK) String() string {
	r := k.Round()
	return fmt.Sprintf("cmyk(%d%%, %d%%, %d%%, %d%%)", int(r.C), int(r.M), int(r.Y), int(r.K))
}
