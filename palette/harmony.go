package palette

import "github.com/mmuldo/hexref/colorspace"

// Kind names a harmony scheme.
type Kind string

const (
	Complementary      Kind = "complementary"
	SplitComplementary Kind = "splitComplementary"
	Analogous          Kind = "analogous"
	Triadic            Kind = "triadic"
	Tetradic           Kind = "tetradic"
	Square             Kind = "square"
)

// Kinds lists every scheme in display order.
var Kinds = []Kind{Complementary, SplitComplementary, Analogous, Triadic, Tetradic, Square}

// rotations holds the hue offsets, in degrees, for each scheme.
var rotations = map[Kind][]float64{
	Complementary:      {180},
	SplitComplementary: {150, 210},
	Analogous:          {-30, 30},
	Triadic:            {120, 240},
	Tetradic:           {60, 180, 240},
	Square:             {90, 180, 270},
}

// HarmonySet maps each scheme to its derived colours.
type HarmonySet map[Kind][]colorspace.RGB

// Harmonies rotates the hue of c's rounded HSL while keeping saturation
// and lightness.
func Harmonies(c colorspace.RGB) HarmonySet {
	base := c.HSL().Round()
	set := make(HarmonySet, len(rotations))
	for _, k := range Kinds {
		offsets := rotations[k]
		colors := make([]colorspace.RGB, len(offsets))
		for i, off := range offsets {
			colors[i] = Rotate(base, off)
		}
		set[k] = colors
	}
	return set
}

// Rotate turns h by deg degrees, wrapping modulo 360.
func Rotate(h colorspace.HSL, deg float64) colorspace.RGB {
	return colorspace.HSL{H: h.H + deg, S: h.S, L: h.L}.RGB()
}
