package colorspace

import "math"

// XYZ is CIE 1931 XYZ under D65, scaled so that white has Y = 100.
type XYZ struct {
	X, Y, Z float64
}

// Lab is CIELAB relative to the D65 reference white.
type Lab struct {
	L, A, B float64
}

// D65 reference white.
const (
	whiteX = 95.047
	whiteY = 100.000
	whiteZ = 108.883
)

// XYZ converts linearized sRGB with the D65 matrix.
func (c RGB) XYZ() XYZ {
	r, g, b := c.unit()
	lr, lg, lb := SRGBToLinear(r), SRGBToLinear(g), SRGBToLinear(b)
	return XYZ{
		X: (0.4124564*lr + 0.3575761*lg + 0.1804375*lb) * 100,
		Y: (0.2126729*lr + 0.7151522*lg + 0.0721750*lb) * 100,
		Z: (0.0193339*lr + 0.1191920*lg + 0.9503041*lb) * 100,
	}
}

// Lab converts XYZ to CIELAB.
func (x XYZ) Lab() Lab {
	f := func(t float64) float64 {
		if t > 0.008856 {
			return math.Cbrt(t)
		}
		return 7.787*t + 16.0/116
	}
	fx := f(x.X / whiteX)
	fy := f(x.Y / whiteY)
	fz := f(x.Z / whiteZ)
	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// Lab is shorthand for c.XYZ().Lab().
func (c RGB) Lab() Lab {
	return c.XYZ().Lab()
}

// DeltaE76 is the CIE76 colour difference: Euclidean distance in Lab.
func DeltaE76(a, b Lab) float64 {
	dl, da, db := a.L-b.L, a.A-b.A, a.B-b.B
	return math.Sqrt(dl*dl + da*da + db*db)
}
