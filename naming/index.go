// Package naming finds the nearest named colour for an arbitrary colour and
// classifies it with an ISCC-NBS style descriptor such as "Vivid Blue".
package naming

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mmuldo/hexref/colorspace"
)

// Entry is one reference colour with its Lab value computed up front.
type Entry struct {
	Name string         `json:"name"`
	Hex  string         `json:"hex"`
	RGB  colorspace.RGB `json:"-"`
	Lab  colorspace.Lab `json:"-"`
}

// NewEntry parses hex and caches its Lab value.
func NewEntry(name, hex string) (Entry, error) {
	c, err := colorspace.ParseHex(hex)
	if err != nil {
		return Entry{}, fmt.Errorf("entry %q: %w", name, err)
	}
	return Entry{Name: name, Hex: c.Hex(), RGB: c, Lab: c.Lab()}, nil
}

// Metric measures the difference between two Lab colours.
type Metric func(a, b colorspace.Lab) float64

// Match is an entry together with its distance from the query.
type Match struct {
	Entry
	Distance float64 `json:"distance"`
}

// exactEnough ends a FindNearest scan.
const exactEnough = 1.0

// Index is a read-only table of reference colours searched linearly.
type Index struct {
	entries []Entry
	metric  Metric
}

// Option configures an Index.
type Option func(*Index)

// WithMetric replaces the default CIE76 distance.
func WithMetric(m Metric) Option {
	return func(ix *Index) {
		if m != nil {
			ix.metric = m
		}
	}
}

// NewIndex builds an index over entries. The slice is copied.
func NewIndex(entries []Entry, opts ...Option) *Index {
	ix := &Index{
		entries: append([]Entry(nil), entries...),
		metric:  colorspace.DeltaE76,
	}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// Len returns the number of entries.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Entries returns a copy of the table in order.
func (ix *Index) Entries() []Entry {
	return append([]Entry(nil), ix.entries...)
}

// FindNearest returns the closest entry to lab. The first entry wins a tie,
// and the scan stops at the first entry closer than 1. ok is false only for
// an empty index.
func (ix *Index) FindNearest(lab colorspace.Lab) (m Match, ok bool) {
	for _, e := range ix.entries {
		d := ix.metric(lab, e.Lab)
		if !ok || d < m.Distance {
			m, ok = Match{Entry: e, Distance: d}, true
			if d < exactEnough {
				break
			}
		}
	}
	return m, ok
}

// Nearest returns up to n entries ordered by distance, ties in table order.
func (ix *Index) Nearest(lab colorspace.Lab, n int) []Match {
	if n <= 0 {
		return nil
	}
	all := make([]Match, len(ix.entries))
	for i, e := range ix.entries {
		all[i] = Match{Entry: e, Distance: ix.metric(lab, e.Lab)}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Distance < all[j].Distance
	})
	if n < len(all) {
		all = all[:n]
	}
	return all
}

var (
	curatedOnce    sync.Once
	curatedEntries []Entry
	defaultIndex   *Index
)

// Curated returns the built-in table. Lab values are computed on first use.
func Curated() []Entry {
	curatedOnce.Do(func() {
		curatedEntries = make([]Entry, len(curated))
		for i, c := range curated {
			curatedEntries[i] = mustEntry(c.name, c.hex)
		}
		defaultIndex = NewIndex(curatedEntries)
	})
	return append([]Entry(nil), curatedEntries...)
}

// Default is the CIE76 index over the built-in table.
func Default() *Index {
	Curated()
	return defaultIndex
}

// CSSEntries returns the CSS/SVG named colours in alphabetical order, with
// title-cased names.
func CSSEntries() []Entry {
	title := cases.Title(language.English)
	out := make([]Entry, 0, len(colornames.Names))
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		rgb := colorspace.NewRGB(int(c.R), int(c.G), int(c.B))
		out = append(out, Entry{
			Name: title.String(splitCSSName(name)),
			Hex:  rgb.Hex(),
			RGB:  rgb,
			Lab:  rgb.Lab(),
		})
	}
	return out
}

// cssWords are the words the compound CSS colour names are built from.
var cssWords = []string{
	"aquamarine", "turquoise", "goldenrod", "chartreuse",
	"white", "blue", "green", "gray", "grey", "yellow", "pink", "red",
	"purple", "violet", "orchid", "brown", "cyan", "magenta", "orange",
	"salmon", "khaki", "olive", "slate", "steel", "cadet", "sea",
	"sky", "spring", "lawn", "lime", "forest", "navy", "midnight",
	"royal", "dodger", "powder", "alice", "ghost", "floral", "antique",
	"navajo", "misty", "lavender", "blush", "lemon", "chiffon",
	"light", "dark", "medium", "pale", "deep", "hot", "dim", "indian",
	"rose", "old", "lace", "smoke", "drab", "whip", "papaya", "puff",
	"peach", "blanched", "almond", "cornflower", "sandy", "saddle",
	"rebecca", "mint", "cream", "rosy",
}

// splitCSSName inserts spaces into names such as "darkslateblue".
func splitCSSName(name string) string {
	var words []string
	rest := name
	for rest != "" {
		matched := ""
		for _, w := range cssWords {
			if strings.HasPrefix(rest, w) && len(w) > len(matched) {
				matched = w
			}
		}
		if matched == "" {
			words = append(words, rest)
			break
		}
		words = append(words, matched)
		rest = rest[len(matched):]
	}
	return strings.Join(words, " ")
}

func mustEntry(name, hex string) Entry {
	e, err := NewEntry(name, hex)
	if err != nil {
		panic(err)
	}
	return e
}
