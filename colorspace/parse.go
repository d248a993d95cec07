package colorspace

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	rgbPattern = regexp.MustCompile(`(?i)rgb\((\d+),\s*(\d+),\s*(\d+)\)`)
	hslPattern = regexp.MustCompile(`(?i)hsl\((\d+),\s*(\d+)%,\s*(\d+)%\)`)
)

// ParseRGB parses rgb(r, g, b). Channels are clamped to [0,255].
func ParseRGB(s string) (RGB, error) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return NewRGB(atoi(m[1]), atoi(m[2]), atoi(m[3])), nil
}

// ParseHSL parses hsl(h, s%, l%). Hue is clamped to [0,360] and the
// percentages to [0,100].
func ParseHSL(s string) (HSL, error) {
	m := hslPattern.FindStringSubmatch(s)
	if m == nil {
		return HSL{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return HSL{
		H: clamp(float64(atoi(m[1])), 0, 360),
		S: clamp(float64(atoi(m[2])), 0, 100),
		L: clamp(float64(atoi(m[3])), 0, 100),
	}, nil
}

// Parse accepts a hex colour (with or without '#'), rgb(...) or hsl(...).
func Parse(s string) (RGB, error) {
	t := strings.TrimSpace(s)
	lower := strings.ToLower(t)
	switch {
	case strings.HasPrefix(lower, "rgb("):
		return ParseRGB(t)
	case strings.HasPrefix(lower, "hsl("):
		h, err := ParseHSL(t)
		if err != nil {
			return RGB{}, err
		}
		return h.RGB(), nil
	}
	if !strings.HasPrefix(t, "#") {
		t = "#" + t
	}
	return ParseHex(t)
}

// atoi is only fed \d+ captures; values too large for int saturate so
// they clamp like any other out-of-range channel.
func atoi(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return v
}
