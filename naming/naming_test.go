package naming

import (
	"strings"
	"testing"

	"github.com/mmuldo/hexref/colorspace"
)

func TestCuratedTable(t *testing.T) {
	entries := Curated()
	if len(entries) != len(curated) {
		t.Fatalf("Curated has %d entries, want %d", len(entries), len(curated))
	}
	for _, e := range entries {
		c, err := colorspace.ParseHex(e.Hex)
		if err != nil {
			t.Fatalf("%s: %v", e.Name, err)
		}
		if e.RGB != c || e.Lab != c.Lab() {
			t.Errorf("%s: cached values out of sync with %s", e.Name, e.Hex)
		}
	}
	if Default() != Default() {
		t.Errorf("Default must be built once")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		hex        string
		name       string
		nearest    string
		distance   float64
		exact      bool
		descriptor string
		display    string
	}{
		{"#FF0000", "Red", "#FF0000", 0, true, "Vivid Red", "Red"},
		{"#4682B5", "Steel Blue", "#4682B4", 0.6, true, "Moderate Blue Cyan", "Steel Blue"},
		{"#3366CC", "Denim", "#1560BD", 6.6, false, "Brilliant Blue", "Brilliant Blue"},
		{"#7B3F00", "Saddle Brown", "#8B4513", 6.4, false, "Deep Orange", "Deep Orange"},
		{"#123456", "Charcoal", "#36454F", 18.3, false, "Dark Blue", "Dark Blue"},
		{"#808080", "Gray", "#808080", 0, true, "Medium Gray", "Gray"},
		{"#000000", "Black", "#000000", 0, true, "Black", "Black"},
		{"#FFFFFF", "White", "#FFFFFF", 0, true, "White", "White"},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			res := Resolve(colorspace.MustParseHex(tt.hex))
			if res.Name != tt.name || res.NearestHex != tt.nearest {
				t.Errorf("nearest = %s %s, want %s %s", res.Name, res.NearestHex, tt.name, tt.nearest)
			}
			if res.Distance != tt.distance {
				t.Errorf("distance = %v, want %v", res.Distance, tt.distance)
			}
			if res.Exact != tt.exact {
				t.Errorf("exact = %v, want %v", res.Exact, tt.exact)
			}
			if res.Descriptor != tt.descriptor {
				t.Errorf("descriptor = %q, want %q", res.Descriptor, tt.descriptor)
			}
			if got := res.DisplayName(); got != tt.display {
				t.Errorf("display name = %q, want %q", got, tt.display)
			}
		})
	}
}

func TestTiesGoToFirstEntry(t *testing.T) {
	tests := map[string]string{
		"#00FFFF": "Cyan",
		"#FF00FF": "Magenta",
		"#D2691E": "Chocolate",
	}
	for hex, want := range tests {
		if got := Resolve(colorspace.MustParseHex(hex)).Name; got != want {
			t.Errorf("Resolve(%s).Name = %q, want %q", hex, got, want)
		}
	}
}

func TestFindNearestPrefersFirstOfTie(t *testing.T) {
	a, _ := NewEntry("A", "#102030")
	b, _ := NewEntry("B", "#102030")
	c, _ := NewEntry("C", "#FFFFFF")
	ix := NewIndex([]Entry{c, a, b})
	m, ok := ix.FindNearest(colorspace.MustParseHex("#112233").Lab())
	if !ok || m.Name != "A" {
		t.Errorf("FindNearest = %+v, want A", m)
	}

	if _, ok := NewIndex(nil).FindNearest(colorspace.Black.Lab()); ok {
		t.Errorf("empty index must report no match")
	}
}

func TestFindNearestStopsAtFirstCloseMatch(t *testing.T) {
	far, _ := NewEntry("Far", "#FFFFFF")
	near, _ := NewEntry("Close", "#818181")
	exact, _ := NewEntry("Exact", "#808080")
	ix := NewIndex([]Entry{far, near, exact})

	q := colorspace.MustParseHex("#808080").Lab()
	if d := colorspace.DeltaE76(q, near.Lab); d >= 1 {
		t.Fatalf("test colours too far apart: %v", d)
	}
	m, ok := ix.FindNearest(q)
	if !ok || m.Name != "Close" {
		t.Errorf("FindNearest = %+v, want Close", m)
	}

	// listed first, the exact entry wins outright
	ix = NewIndex([]Entry{far, exact, near})
	if m, _ := ix.FindNearest(q); m.Name != "Exact" || m.Distance != 0 {
		t.Errorf("FindNearest = %+v, want Exact", m)
	}
}

func TestNearest(t *testing.T) {
	matches := Default().Nearest(colorspace.MustParseHex("#00FFFF").Lab(), 3)
	if len(matches) != 3 {
		t.Fatalf("got %d matches", len(matches))
	}
	if matches[0].Name != "Cyan" || matches[1].Name != "Aqua" {
		t.Errorf("top matches = %s, %s; want Cyan, Aqua", matches[0].Name, matches[1].Name)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Distance < matches[i-1].Distance {
			t.Errorf("matches out of order at %d", i)
		}
	}
	if got := Default().Nearest(colorspace.Black.Lab(), 0); got != nil {
		t.Errorf("Nearest(0) = %v", got)
	}
	if got := len(Default().Nearest(colorspace.Black.Lab(), 1000)); got != Default().Len() {
		t.Errorf("Nearest beyond table size returned %d", got)
	}
}

func TestWithMetric(t *testing.T) {
	calls := 0
	ix := NewIndex(Curated(), WithMetric(func(a, b colorspace.Lab) float64 {
		calls++
		return colorspace.DeltaE76(a, b) * 2
	}))
	res := NewResolver(ix).Resolve(colorspace.MustParseHex("#4682B5"))
	if calls == 0 {
		t.Fatalf("custom metric not used")
	}
	if res.Name != "Steel Blue" || res.Distance != 1.2 {
		t.Errorf("got %s at %v, want Steel Blue at 1.2", res.Name, res.Distance)
	}
}

func TestEmptyIndexFallsBackToDescriptor(t *testing.T) {
	res := NewResolver(NewIndex(nil)).Resolve(colorspace.MustParseHex("#3366CC"))
	if res.Name != "" || res.Exact {
		t.Errorf("unexpected match %+v", res)
	}
	if res.DisplayName() != "Brilliant Blue" {
		t.Errorf("DisplayName = %q", res.DisplayName())
	}
}

func TestDisplayThresholdIsSeparateFromExact(t *testing.T) {
	r := Result{Name: "Scarlet", Descriptor: "Vivid Red", Distance: 4.1, Exact: false}
	if r.DisplayName() != "Scarlet" {
		t.Errorf("a 4.1 match is not exact but should still be displayed by name")
	}
	r.Distance = 5
	if r.DisplayName() != "Vivid Red" {
		t.Errorf("a distance of exactly 5 must fall back to the descriptor")
	}
}

func TestDescriptor(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    string
	}{
		{220, 10, 50, "Light Grayish Blue"},
		{220, 4, 50, "Medium Gray"},
		{0, 0, 96, "White"},
		{0, 0, 95, "Very Light Gray"},
		{0, 0, 6, "Very Dark Gray"},
		{0, 0, 5, "Black"},
		{7, 100, 50, "Vivid Red"},
		{8, 100, 50, "Vivid Reddish Orange"},
		{344, 100, 50, "Vivid Pink"},
		{345, 100, 50, "Vivid Red"},
		{200, 50, 9, "Blackish Blue Cyan"},
		{120, 10, 15, "Very Dark Grayish Green"},
		{120, 71, 30, "Deep Green"},
		{120, 70, 30, "Dark Green"},
		{240, 81, 45, "Strong Blue"},
		{240, 19, 45, "Grayish Blue"},
		{240, 45, 45, "Moderate Blue"},
		{270, 51, 60, "Brilliant Violet"},
		{270, 50, 60, "Light Violet"},
		{100, 20, 75, "Pale Yellowish Green"},
		{100, 41, 90, "Very Light Yellowish Green"},
		{100, 16, 90, "Very Pale Yellowish Green"},
		{100, 15, 90, "Whitish Yellowish Green"},
	}
	for _, tt := range tests {
		h := colorspace.HSL{H: tt.h, S: tt.s, L: tt.l}
		if got := Descriptor(h); got != tt.want {
			t.Errorf("Descriptor(%v) = %q, want %q", h, got, tt.want)
		}
	}
}

func TestHueFamiliesCoverCircle(t *testing.T) {
	for h := 0; h < 360; h++ {
		if HueFamily(float64(h)) == "" {
			t.Errorf("hue %d has no family", h)
		}
	}
}

func TestCSSEntries(t *testing.T) {
	entries := CSSEntries()
	if len(entries) < 140 {
		t.Fatalf("only %d CSS colours", len(entries))
	}
	byName := map[string]string{}
	for _, e := range entries {
		if strings.ToLower(e.Name[:1]) == e.Name[:1] {
			t.Errorf("%q is not title-cased", e.Name)
		}
		byName[e.Name] = e.Hex
	}
	checks := map[string]string{
		"Dark Slate Blue": "#483D8B",
		"Alice Blue":      "#F0F8FF",
		"Red":             "#FF0000",
	}
	for name, hex := range checks {
		if byName[name] != hex {
			t.Errorf("%s = %q, want %s", name, byName[name], hex)
		}
	}
	res := NewResolver(NewIndex(entries)).Resolve(colorspace.MustParseHex("#483D8B"))
	if res.Name != "Dark Slate Blue" || !res.Exact {
		t.Errorf("CSS index resolved %+v", res)
	}
}
