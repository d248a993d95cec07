package colorspace

import (
	"fmt"
	"math"
	"strconv"
)

// OKLCH is the cylindrical form of OKLab. L is a percentage, C the raw
// chroma magnitude and H degrees in [0,360).
type OKLCH struct {
	L, C, H float64
}

// SRGBToLinear applies the sRGB EOTF to a component in [0,1].
func SRGBToLinear(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

// LinearToSRGB applies the inverse transfer function to a component in [0,1].
func LinearToSRGB(v float64) float64 {
	if v > 0.0031308 {
		return 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return 12.92 * v
}

// OKLCH converts through linear sRGB, LMS and OKLab.
func (c RGB) OKLCH() OKLCH {
	r, g, b := c.unit()
	lr, lg, lb := SRGBToLinear(r), SRGBToLinear(g), SRGBToLinear(b)

	l := math.Cbrt(0.4122214708*lr + 0.5363325363*lg + 0.0514459929*lb)
	m := math.Cbrt(0.2119034982*lr + 0.6806995451*lg + 0.1073969566*lb)
	s := math.Cbrt(0.0883024619*lr + 0.2817188376*lg + 0.6299787005*lb)

	L := 0.2104542553*l + 0.7936177850*m - 0.0040720468*s
	A := 1.9779984951*l - 2.4285922050*m + 0.4505937099*s
	B := 0.0259040371*l + 0.7827717662*m - 0.8086757660*s

	return OKLCH{
		L: L * 100,
		C: math.Hypot(A, B),
		H: wrapHue(math.Atan2(B, A) * 180 / math.Pi),
	}
}

// RGB inverts the pipeline. L is clamped to [0,100], negative chroma is
// treated as zero and the result is clamped into gamut.
func (o OKLCH) RGB() RGB {
	L := clamp(o.L, 0, 100) / 100
	C := math.Max(o.C, 0)
	h := wrapHue(o.H) * math.Pi / 180
	A := C * math.Cos(h)
	B := C * math.Sin(h)

	l := L + 0.3963377774*A + 0.2158037573*B
	m := L - 0.1055613458*A - 0.0638541728*B
	s := L - 0.0894841775*A - 1.2914855480*B
	l, m, s = l*l*l, m*m*m, s*s*s

	lr := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	lg := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	lb := -0.0041960863*l - 0.7034186143*m + 1.7076147010*s

	return FromFloat(
		clamp(LinearToSRGB(lr), 0, 1)*255,
		clamp(LinearToSRGB(lg), 0, 1)*255,
		clamp(LinearToSRGB(lb), 0, 1)*255,
	)
}

// Round gives whole-percent lightness, chroma to three decimals and whole
// degrees.
func (o OKLCH) Round() OKLCH {
	return OKLCH{
		L: roundHalfUp(o.L),
		C: roundHalfUp(o.C*1000) / 1000,
		H: wrapHue(roundHalfUp(o.H)),
	}
}

// String formats the rounded view as oklch(l%, c, h).
func (o OKLCH) String() string {
	r := o.Round()
	return fmt.Sprintf("oklch(%d%%, %s, %d)", int(r.L), strconv.FormatFloat(r.C, 'f', -1, 64), int(r.H))
}
