// Package meaning attaches illustrative psychology and cultural notes to a
// colour. Both are static tables selected by hue band, with a separate
// grey scale for low-saturation colours.
package meaning

import "github.com/mmuldo/hexref/colorspace"

// HueRange is the half-open interval [From, To) in degrees. A range with
// From > To wraps through 0.
type HueRange struct {
	From, To float64
}

// Contains reports whether h falls in the range.
func (r HueRange) Contains(h float64) bool {
	if r.From > r.To {
		return h >= r.From || h < r.To
	}
	return h >= r.From && h < r.To
}

// neutralSaturation is the rounded saturation below which a colour is read
// as white, grey or black.
const neutralSaturation = 12

// lightnessRule picks a neutral by rounded lightness: l > above and l < below.
type lightnessRule struct {
	above, below float64
}

func (r lightnessRule) matches(l float64) bool {
	return l > r.above && l < r.below
}

func hsl(c colorspace.RGB) colorspace.HSL {
	return c.HSL().Round()
}
