// Package dataset fetches the reference list of named colours, filters it
// and caches it in a local SQLite database.
package dataset

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/mmuldo/hexref/colorspace"
)

// ErrUnknownFilter is returned by ParseFilter.
var ErrUnknownFilter = errors.New("unknown filter")

// Color is one entry of the dataset.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex_code"`
}

// RGB parses the entry's hex code.
func (c Color) RGB() (colorspace.RGB, error) {
	return colorspace.ParseHex(c.Hex)
}

// Filter selects entries by background brightness.
type Filter string

const (
	All   Filter = "all"
	Dark  Filter = "dark"
	Light Filter = "light"
)

// ParseFilter accepts all, dark or light in any case.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case All, Dark, Light:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

// Apply returns the entries matching f, in order. Dark and Light use the
// uncorrected luminance split at 128 and drop entries with a malformed
// hex code.
func Apply(colors []Color, f Filter) []Color {
	if f == All || f == "" {
		return colors
	}
	out := make([]Color, 0, len(colors))
	for _, c := range colors {
		rgb, err := c.RGB()
		if err != nil {
			continue
		}
		if rgb.IsDark() == (f == Dark) {
			out = append(out, c)
		}
	}
	return out
}

// Pick returns a random entry, or false when colors is empty.
func Pick(colors []Color, rng *rand.Rand) (Color, bool) {
	if len(colors) == 0 {
		return Color{}, false
	}
	return colors[rng.Intn(len(colors))], true
}
