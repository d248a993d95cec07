// Package colorspace converts 8-bit sRGB colours to and from the other
// representations the tool displays: hex, HSL, CMYK, OKLCH, XYZ and CIELAB.
//
// RGB is the only source of truth. Every other record is a derived view; the
// float-valued records keep full precision and expose Round for the integer
// view that is shown to users and fed to the band classifiers.
package colorspace

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidHex is returned for anything that is not #RRGGBB.
	ErrInvalidHex = errors.New("invalid hex color")
	// ErrInvalidFormat is returned when a functional notation such as
	// rgb(...) or hsl(...) cannot be parsed.
	ErrInvalidFormat = errors.New("invalid color format")
)

// RGB is an 8-bit sRGB colour.
type RGB struct {
	R, G, B uint8
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// NewRGB builds a colour from integer channels, clamping each to [0,255].
func NewRGB(r, g, b int) RGB {
	return RGB{clampByte(r), clampByte(g), clampByte(b)}
}

// FromFloat rounds and clamps float channels given on the 0-255 scale.
func FromFloat(r, g, b float64) RGB {
	return RGB{
		clampByte(int(roundHalfUp(r))),
		clampByte(int(roundHalfUp(g))),
		clampByte(int(roundHalfUp(b))),
	}
}

// ParseHex parses a #RRGGBB string. Digits are case-insensitive.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// MustParseHex is like ParseHex but panics on malformed input. It is meant
// for compiled-in tables.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// NormalizeHex mirrors the editor input: surrounding space is dropped, a
// missing '#' is added and anything past seven characters is cut off.
func NormalizeHex(s string) string {
	s = strings.TrimSpace(s)
	if s != "" && !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) > 7 {
		s = s[:7]
	}
	return strings.ToUpper(s)
}

// Hex returns the canonical uppercase #RRGGBB form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String formats the colour as rgb(r, g, b).
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Random returns a random colour in [#000000, #FFFFFE].
func Random(rng *rand.Rand) RGB {
	v := rng.Intn(0xFFFFFF)
	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}
}

// FromClock turns a wall-clock time into the #HHMMSS "hex clock" colour.
// Hours, minutes and seconds are read as hex digits.
func FromClock(t time.Time) RGB {
	c, _ := ParseHex(fmt.Sprintf("#%02d%02d%02d", t.Hour(), t.Minute(), t.Second()))
	return c
}

func (c RGB) unit() (float64, float64, float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// roundHalfUp rounds .5 towards +Inf so results match the reference
// tables for negative intermediates as well.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// wrapHue maps any angle onto [0,360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
