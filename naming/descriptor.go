package naming

import (
	"math"

	"github.com/mmuldo/hexref/colorspace"
)

var (
	anyAbove = math.Inf(-1)
	anyBelow = math.Inf(1)
)

// modifierRule matches when l < lBelow, s > sAbove and s < sBelow.
type modifierRule struct {
	lBelow, sAbove, sBelow float64
	name                   string
}

// modifiers is evaluated top to bottom; the first matching rule wins.
var modifiers = []modifierRule{
	{10, anyAbove, anyBelow, "Blackish"},
	{20, anyAbove, 20, "Very Dark Grayish"},
	{20, anyAbove, anyBelow, "Very Dark"},

	{35, 70, anyBelow, "Deep"},
	{35, anyAbove, 25, "Dark Grayish"},
	{35, anyAbove, anyBelow, "Dark"},

	{50, 80, anyBelow, "Strong"},
	{50, anyAbove, 20, "Grayish"},
	{50, anyAbove, anyBelow, "Moderate"},

	{65, 80, anyBelow, "Vivid"},
	{65, 50, anyBelow, "Brilliant"},
	{65, anyAbove, 20, "Light Grayish"},
	{65, anyAbove, anyBelow, "Light"},

	{80, 60, anyBelow, "Brilliant"},
	{80, 30, anyBelow, "Light"},
	{80, anyAbove, anyBelow, "Pale"},

	{anyBelow, 40, anyBelow, "Very Light"},
	{anyBelow, 15, anyBelow, "Very Pale"},
	{anyBelow, anyAbove, anyBelow, "Whitish"},
}

// hueBand matches hues below its upper bound.
type hueBand struct {
	below float64
	name  string
}

var hueFamilies = []hueBand{
	{8, "Red"},
	{20, "Reddish Orange"},
	{33, "Orange"},
	{42, "Orange Yellow"},
	{52, "Yellow Orange"},
	{62, "Yellow"},
	{73, "Greenish Yellow"},
	{85, "Yellow Green"},
	{105, "Yellowish Green"},
	{128, "Green"},
	{150, "Bluish Green"},
	{170, "Green Blue"},
	{185, "Greenish Blue"},
	{195, "Cyan"},
	{210, "Blue Cyan"},
	{230, "Blue"},
	{250, "Blue"},
	{265, "Purplish Blue"},
	{280, "Violet"},
	{295, "Purple"},
	{310, "Reddish Purple"},
	{330, "Purplish Red"},
	{345, "Pink"},
	{anyBelow, "Red"},
}

// neutralBand matches lightness strictly above its bound.
type neutralBand struct {
	above float64
	name  string
}

// neutralSaturation is the saturation below which the grey scale replaces
// the modifier and hue family.
const neutralSaturation = 5

var neutrals = []neutralBand{
	{95, "White"},
	{80, "Very Light Gray"},
	{60, "Light Gray"},
	{40, "Medium Gray"},
	{20, "Dark Gray"},
	{5, "Very Dark Gray"},
	{anyAbove, "Black"},
}

// Modifier returns the ISCC-NBS lightness/saturation modifier.
func Modifier(s, l float64) string {
	for _, r := range modifiers {
		if l < r.lBelow && s > r.sAbove && s < r.sBelow {
			return r.name
		}
	}
	return ""
}

// HueFamily returns the family name for a hue in [0, 360).
func HueFamily(h float64) string {
	for _, b := range hueFamilies {
		if h < b.below {
			return b.name
		}
	}
	return ""
}

// Descriptor classifies an integer-rounded HSL value, e.g. "Deep Blue" or
// "Light Gray" for near-neutrals.
func Descriptor(h colorspace.HSL) string {
	if h.S < neutralSaturation {
		for _, b := range neutrals {
			if h.L > b.above {
				return b.name
			}
		}
	}
	return Modifier(h.S, h.L) + " " + HueFamily(h.H)
}

// Describe is Descriptor applied to the rounded HSL view of c.
func Describe(c colorspace.RGB) string {
	return Descriptor(c.HSL().Round())
}
