package meaning

import (
	"math"

	"github.com/mmuldo/hexref/colorspace"
)

// Tone is the lightness/saturation variant of a hue.
type Tone string

const (
	Pastel   Tone = "pastel"
	Vivid    Tone = "vivid"
	Dark     Tone = "dark"
	Muted    Tone = "muted"
	Balanced Tone = "balanced"
)

// Reading is the text for one hue and tone.
type Reading struct {
	Emotions    []string `json:"emotions"`
	Description string   `json:"description"`
}

// Profile is the psychology of a colour.
type Profile struct {
	Name        string   `json:"name"`
	Tone        string   `json:"tone"`
	Variant     Tone     `json:"variant,omitempty"`
	Emotions    []string `json:"emotions"`
	Description string   `json:"description"`
}

type hueProfile struct {
	Range    HueRange
	Name     string
	Variants map[Tone]Reading
}

type toneRule struct {
	lAbove, lBelow float64
	sAbove, sBelow float64
	tone           Tone
	label          string
}

var (
	inf  = math.Inf(1)
	ninf = math.Inf(-1)
)

// toneRules is evaluated top to bottom; the last rule always matches.
var toneRules = []toneRule{
	{72, inf, ninf, 65, Pastel, "Soft & Gentle"},
	{ninf, 30, ninf, inf, Dark, "Deep & Commanding"},
	{ninf, inf, ninf, 35, Muted, "Muted & Sophisticated"},
	{ninf, inf, 65, inf, Vivid, "Vibrant & Bold"},
	{ninf, inf, ninf, inf, Balanced, "Natural & Versatile"},
}

// ToneOf returns the variant and its label for a rounded saturation and
// lightness.
func ToneOf(s, l float64) (Tone, string) {
	for _, r := range toneRules {
		if l > r.lAbove && l < r.lBelow && s > r.sAbove && s < r.sBelow {
			return r.tone, r.label
		}
	}
	return Balanced, "Natural & Versatile"
}

type neutralProfile struct {
	lightnessRule
	profile Profile
}

var neutralProfiles = []neutralProfile{
	{lightnessRule{90, inf}, Profile{
		Name:        "White",
		Tone:        "Pure & Minimalist",
		Emotions:    []string{"Purity", "Clarity", "New Beginnings"},
		Description: "A blank canvas that symbolizes infinite possibility. It reduces visual clutter and provides the ultimate breathing space for surrounding elements.",
	}},
	{lightnessRule{ninf, 15}, Profile{
		Name:        "Black",
		Tone:        "Absolute & Powerful",
		Emotions:    []string{"Authority", "Prestige", "Mystery"},
		Description: "The most commanding visual presence. It absorbs light and projects power, luxury, and an impenetrable sense of sophisticated mystery.",
	}},
	{lightnessRule{60, inf}, Profile{
		Name:        "Light Grey",
		Tone:        "Neutral & Airy",
		Emotions:    []string{"Objectivity", "Clarity", "Subtlety"},
		Description: "A refined neutral that provides a calm, professional foundation. It eliminates distraction and lets content take center stage.",
	}},
	{lightnessRule{ninf, inf}, Profile{
		Name:        "Grey",
		Tone:        "Neutral & Anchoring",
		Emotions:    []string{"Balance", "Maturity", "Composure"},
		Description: "A color of stability and timelessness. It grounds dynamic compositions and signals reliability without competing for attention.",
	}},
}

// Psychology describes the emotional associations of c.
func Psychology(c colorspace.RGB) Profile {
	h := hsl(c)
	if h.S < neutralSaturation {
		for _, n := range neutralProfiles {
			if n.matches(h.L) {
				return n.profile
			}
		}
	}

	entry := unknownHue
	for _, p := range hueProfiles {
		if p.Range.Contains(h.H) {
			entry = p
			break
		}
	}
	tone, label := ToneOf(h.S, h.L)
	reading := entry.Variants[tone]
	return Profile{
		Name:        entry.Name,
		Tone:        label,
		Variant:     tone,
		Emotions:    reading.Emotions,
		Description: reading.Description,
	}
}
