package palette

import (
	"math"
	"testing"

	"github.com/mmuldo/hexref/colorspace"
)

func hexes(cs []colorspace.RGB) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Hex()
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func lightness(c colorspace.RGB) int {
	return int(c.R) + int(c.G) + int(c.B)
}

func TestShades(t *testing.T) {
	got := hexes(Shades(colorspace.MustParseHex("#3366CC")))
	want := []string{"#2E5CB8", "#2952A3", "#24478F", "#1F3D7A", "#1A3366", "#142952", "#0F1F3D", "#0A1429", "#050A14"}
	if !equalStrings(got, want) {
		t.Errorf("Shades = %v, want %v", got, want)
	}
}

func TestTints(t *testing.T) {
	got := hexes(Tints(colorspace.MustParseHex("#3366CC")))
	want := []string{"#4775D1", "#5C85D6", "#7094DB", "#85A3E0", "#99B3E6", "#ADC2EB", "#C2D1F0", "#D6E0F5", "#EBF0FA"}
	if !equalStrings(got, want) {
		t.Errorf("Tints = %v, want %v", got, want)
	}
}

func TestLaddersAreOrderedAndExcludeEnds(t *testing.T) {
	for _, hex := range []string{"#3366CC", "#FF0000", "#808080", "#123456"} {
		c := colorspace.MustParseHex(hex)
		shades, tints := Shades(c), Tints(c)
		if len(shades) != Steps || len(tints) != Steps {
			t.Fatalf("%s: got %d shades and %d tints", hex, len(shades), len(tints))
		}
		for i := 1; i < Steps; i++ {
			if lightness(shades[i]) >= lightness(shades[i-1]) {
				t.Errorf("%s: shade %d not darker than shade %d", hex, i, i-1)
			}
			if lightness(tints[i]) <= lightness(tints[i-1]) {
				t.Errorf("%s: tint %d not lighter than tint %d", hex, i, i-1)
			}
		}
		if shades[0] == c || tints[0] == c {
			t.Errorf("%s: step 0 must be excluded", hex)
		}
		if tints[Steps-1] == colorspace.White {
			t.Errorf("%s: last tint must not be pure white", hex)
		}
	}
	if got := Shades(colorspace.White)[Steps-1]; got == colorspace.Black {
		t.Errorf("last shade of white must not be pure black, got %s", got.Hex())
	}
}

func TestScale(t *testing.T) {
	c := colorspace.MustParseHex("#3366CC")
	scale := Scale(c)
	keys := []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}
	if len(scale) != len(keys) {
		t.Fatalf("Scale has %d steps", len(scale))
	}
	for i, s := range scale {
		if s.Key != keys[i] {
			t.Errorf("step %d key = %d, want %d", i, s.Key, keys[i])
		}
	}
	checks := map[int]string{50: "#EBF0FA", 400: "#4775D1", 500: "#3366CC", 600: "#2E5CB8", 950: "#050A14"}
	for _, s := range scale {
		if want, ok := checks[s.Key]; ok && s.Color.Hex() != want {
			t.Errorf("step %d = %s, want %s", s.Key, s.Color.Hex(), want)
		}
	}
}

func TestHarmonies(t *testing.T) {
	set := Harmonies(colorspace.MustParseHex("#3366CC"))
	wantLen := map[Kind]int{
		Complementary: 1, SplitComplementary: 2, Analogous: 2,
		Triadic: 2, Tetradic: 3, Square: 3,
	}
	for _, k := range Kinds {
		if got := len(set[k]); got != wantLen[k] {
			t.Errorf("%s has %d colours, want %d", k, got, wantLen[k])
		}
	}
	if got := set[Complementary][0].Hex(); got != "#CC9933" {
		t.Errorf("complementary = %s, want #CC9933", got)
	}
	if got := hexes(set[Analogous]); !equalStrings(got, []string{"#33B3CC", "#4D33CC"}) {
		t.Errorf("analogous = %v", got)
	}
	if got := hexes(set[Triadic]); !equalStrings(got, []string{"#CC3366", "#66CC33"}) {
		t.Errorf("triadic = %v", got)
	}
}

func TestComplementOfRedKeepsSaturationAndLightness(t *testing.T) {
	red := colorspace.MustParseHex("#FF0000")
	comp := Harmonies(red)[Complementary][0]
	back, err := colorspace.ParseHex(comp.Hex())
	if err != nil {
		t.Fatal(err)
	}
	h := back.HSL().Round()
	if h != (colorspace.HSL{H: 180, S: 100, L: 50}) {
		t.Errorf("complement of red = %+v, want hue 180 at s100 l50", h)
	}
}

func TestHarmonyHuesWrap(t *testing.T) {
	for _, c := range Harmonies(colorspace.MustParseHex("#FF0000"))[Analogous] {
		h := c.HSL().Round().H
		if h != 330 && h != 30 {
			t.Errorf("analogous of red has hue %v, want 330 or 30", h)
		}
	}
}

func TestIsVibratingCombo(t *testing.T) {
	cyan := colorspace.MustParseHex("#00FFFF")
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"red and cyan", "#FF0000", "#00FFFF", true},
		{"saturation exactly 50", "#BF4040", "#00FFFF", false},
		{"saturation 51", "#C13E3E", "#00FFFF", true},
		{"too light", "#FF0000", "#80FFFF", false},
		{"too dark", "#800000", "#006666", false},
		{"hues too close", "#FF0000", "#FFFF00", false},
		{"greys", "#808080", "#404040", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := colorspace.MustParseHex(tt.a), colorspace.MustParseHex(tt.b)
			if got := IsVibratingCombo(a, b); got != tt.want {
				t.Errorf("IsVibratingCombo(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := IsVibratingCombo(b, a); got != tt.want {
				t.Errorf("IsVibratingCombo must be symmetric for %s, %s", tt.a, tt.b)
			}
		})
	}
	if !HasVibration(colorspace.MustParseHex("#FF0000"), []colorspace.RGB{colorspace.White, cyan}) {
		t.Errorf("HasVibration should find cyan against red")
	}
	if HasVibration(colorspace.MustParseHex("#BF4040"), []colorspace.RGB{cyan}) {
		t.Errorf("HasVibration must stay false when the base is at s=50")
	}
}

func TestDeltaE2000(t *testing.T) {
	// First pair of Sharma, Wu and Dalal's CIEDE2000 test data.
	a := colorspace.Lab{L: 50, A: 2.6772, B: -79.7751}
	b := colorspace.Lab{L: 50, A: 0, B: -82.7485}
	if got := DeltaE2000(a, b); math.Abs(got-2.0425) > 0.01 {
		t.Errorf("DeltaE2000 = %v, want 2.0425", got)
	}
	if got := DeltaE2000(a, a); got != 0 {
		t.Errorf("DeltaE2000 to self = %v", got)
	}
}

func TestDedupe(t *testing.T) {
	in := []colorspace.RGB{
		colorspace.MustParseHex("#FF0000"),
		colorspace.MustParseHex("#FE0101"),
		colorspace.MustParseHex("#0000FF"),
		colorspace.MustParseHex("#FF0000"),
	}
	got := hexes(Dedupe(in, 5))
	if !equalStrings(got, []string{"#FF0000", "#0000FF"}) {
		t.Errorf("Dedupe = %v", got)
	}
}
