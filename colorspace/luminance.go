package colorspace

import "math"

// Two luminance notions live here and are kept apart on purpose:
// RelativeLuminance is gamma-correct and feeds WCAG contrast, while
// FastLuminance is a plain weighted sum of 0-255 channels used only to pick
// overlay text colour.

// WCAG thresholds.
const (
	ContrastAA       = 4.5
	ContrastAALarge  = 3.0
	ContrastAAA      = 7.0
	ContrastAAALarge = 4.5
)

// RelativeLuminance is the WCAG 2.x relative luminance in [0,1].
func (c RGB) RelativeLuminance() float64 {
	lin := func(v uint8) float64 {
		s := float64(v) / 255
		if s <= 0.03928 {
			return s / 12.92
		}
		return math.Pow((s+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

// ContrastRatio returns (L_lighter + 0.05) / (L_darker + 0.05), in [1,21].
func ContrastRatio(a, b RGB) float64 {
	la, lb := a.RelativeLuminance(), b.RelativeLuminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// WCAGRating reports which conformance levels a contrast ratio meets.
type WCAGRating struct {
	AA       bool `json:"AA"`
	AALarge  bool `json:"AALarge"`
	AAA      bool `json:"AAA"`
	AAALarge bool `json:"AAALarge"`
}

func RateContrast(ratio float64) WCAGRating {
	return WCAGRating{
		AA:       ratio >= ContrastAA,
		AALarge:  ratio >= ContrastAALarge,
		AAA:      ratio >= ContrastAAA,
		AAALarge: ratio >= ContrastAAALarge,
	}
}

// FastLuminance is 0.2126r + 0.7152g + 0.0722b on raw 0-255 channels,
// without gamma correction.
func (c RGB) FastLuminance() float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

// IsDark reports whether light text should be laid over c.
func (c RGB) IsDark() bool {
	return c.FastLuminance() < 128
}

// OverlayText returns white for dark backgrounds and black otherwise.
func (c RGB) OverlayText() RGB {
	if c.IsDark() {
		return White
	}
	return Black
}
