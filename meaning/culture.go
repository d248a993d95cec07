package meaning

import "github.com/mmuldo/hexref/colorspace"

// Sentiment grades a cultural note.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
	Warning  Sentiment = "warning"
)

// Note is what a colour family means in one region.
type Note struct {
	Region    string    `json:"region"`
	Meaning   string    `json:"meaning"`
	Sentiment Sentiment `json:"sentiment"`
}

// Analysis gathers the cultural notes for a colour family.
type Analysis struct {
	Family    string   `json:"family"`
	Notes     []Note   `json:"notes"`
	Warnings  []string `json:"warnings"`
	DesignTip string   `json:"designTip"`
}

type cultureBand struct {
	Range    HueRange
	Analysis Analysis
}

var neutralCultures = []struct {
	lightnessRule
	analysis *Analysis
}{
	{lightnessRule{90, inf}, &whiteCulture},
	{lightnessRule{ninf, 15}, &blackCulture},
	{lightnessRule{ninf, inf}, &greyCulture},
}

var globalCulture = Analysis{
	Family:    "Global",
	Notes:     []Note{{"Global", "A unique hue with few strong cultural associations.", Neutral}},
	DesignTip: "This shade has no major documented cultural taboos. Verify with local focus groups for niche markets.",
}

// Culture returns the regional associations of c.
func Culture(c colorspace.RGB) Analysis {
	h := hsl(c)
	if h.S < neutralSaturation {
		for _, n := range neutralCultures {
			if n.matches(h.L) {
				return *n.analysis
			}
		}
	}
	for _, b := range cultureBands {
		if b.Range.Contains(h.H) {
			return b.Analysis
		}
	}
	return globalCulture
}

// Cautions lists the notes graded as warnings, followed by the general
// warnings.
func (a Analysis) Cautions() []string {
	var out []string
	for _, n := range a.Notes {
		if n.Sentiment == Warning {
			out = append(out, n.Region+": "+n.Meaning)
		}
	}
	return append(out, a.Warnings...)
}
