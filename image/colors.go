// Package image extracts a ranked, named palette from a raster image.
package image

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"sort"

	"github.com/esimov/colorquant"

	"github.com/mmuldo/hexref/colorspace"
	"github.com/mmuldo/hexref/logging"
	"github.com/mmuldo/hexref/naming"
	"github.com/mmuldo/hexref/palette"
)

// SampleStep is the pixel stride used when counting colours.
const SampleStep = 5

// Swatch is one colour of an extracted palette.
type Swatch struct {
	Color colorspace.RGB `json:"-"`
	Hex   string         `json:"hex"`
	Count int            `json:"count"`
	Share float64        `json:"share"`
	Name  naming.Result  `json:"name"`
}

// Swatches sorts by descending count.
type Swatches []Swatch

func (s Swatches) Len() int           { return len(s) }
func (s Swatches) Less(i, j int) bool { return s[i].Count > s[j].Count }
func (s Swatches) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Quantize reduces img to at most n colours without dithering.
func Quantize(img image.Image, n int) image.Image {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(img, dst, n, false, true)
	return dst
}

// CountColors maps each opaque colour seen every step pixels to its
// number of samples.
func CountColors(img image.Image, step int) map[colorspace.RGB]int {
	if step < 1 {
		step = 1
	}
	m := make(map[colorspace.RGB]int)
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x += step {
		for y := b.Min.Y; y < b.Max.Y; y += step {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			m[colorspace.RGB{R: c.R, G: c.G, B: c.B}]++
		}
	}
	return m
}

// Rank turns a colour count into swatches ordered by prevalence. Equal
// counts are ordered by hex.
func Rank(m map[colorspace.RGB]int) Swatches {
	s := make(Swatches, 0, len(m))
	for c, n := range m {
		s = append(s, Swatch{Color: c, Hex: c.Hex(), Count: n})
	}
	sort.Slice(s, func(i, j int) bool {
		if s[i].Count != s[j].Count {
			return s[i].Count > s[j].Count
		}
		return s[i].Hex < s[j].Hex
	})
	s.share()
	return s
}

// Group folds every swatch closer than threshold (CIEDE2000) to a more
// prevalent one into it.
func Group(s Swatches, threshold float64) Swatches {
	out := make(Swatches, 0, len(s))
	for _, sw := range s {
		merged := false
		for i := range out {
			if !palette.Distinct(sw.Color, out[i].Color, threshold) {
				out[i].Count += sw.Count
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, sw)
		}
	}
	sort.Stable(out)
	out.share()
	return out
}

// Name resolves every swatch with r.
func (s Swatches) Name(r *naming.Resolver) {
	for i := range s {
		s[i].Name = r.Resolve(s[i].Color)
	}
}

func (s Swatches) share() {
	total := 0
	for _, sw := range s {
		total += sw.Count
	}
	if total == 0 {
		return
	}
	for i := range s {
		s[i].Share = float64(s[i].Count) / float64(total)
	}
}

// Options tunes Extract.
type Options struct {
	// Colors is the quantizer's palette size.
	Colors int
	// Merge is the CIEDE2000 distance under which swatches are grouped.
	// Zero disables grouping.
	Merge float64
	// Resolver names the swatches; nil uses the built-in table.
	Resolver *naming.Resolver
}

// Extract loads the image at path and returns its dominant colours.
func Extract(path string, opts Options) (Swatches, error) {
	if opts.Colors < 1 {
		return nil, fmt.Errorf("palette size must be positive, got %d", opts.Colors)
	}
	img, err := Load(path)
	if err != nil {
		return nil, err
	}

	s := Rank(CountColors(Quantize(img, opts.Colors), SampleStep))
	if len(s) < opts.Colors {
		logger().Debug("image has less variation than requested", "path", path, "colors", len(s), "requested", opts.Colors)
	}
	if opts.Merge > 0 {
		s = Group(s, opts.Merge)
	}

	r := opts.Resolver
	if r == nil {
		r = naming.NewResolver(nil)
	}
	s.Name(r)
	return s, nil
}

func logger() *slog.Logger {
	return logging.Logger().With("pkg", "image")
}
