package naming

import (
	"math"

	"github.com/mmuldo/hexref/colorspace"
)

const (
	// ExactThreshold is the distance under which a match counts as exact.
	ExactThreshold = 3.0
	// DisplayThreshold is the rounded distance under which DisplayName
	// prefers the matched name over the descriptor.
	DisplayThreshold = 5.0
)

// Result is the outcome of naming one colour.
type Result struct {
	Name       string  `json:"name"`
	Descriptor string  `json:"descriptor"`
	Distance   float64 `json:"distance"`
	NearestHex string  `json:"nearestHex"`
	Exact      bool    `json:"exact"`
}

// DisplayName is Name for close matches and Descriptor otherwise.
func (r Result) DisplayName() string {
	if r.Name != "" && r.Distance < DisplayThreshold {
		return r.Name
	}
	return r.Descriptor
}

// Resolver names colours against an Index.
type Resolver struct {
	index *Index
}

// NewResolver returns a Resolver over ix, or over Default when ix is nil.
func NewResolver(ix *Index) *Resolver {
	if ix == nil {
		ix = Default()
	}
	return &Resolver{index: ix}
}

// Resolve finds the nearest entry for c and classifies it. With an empty
// index only the descriptor is set.
func (r *Resolver) Resolve(c colorspace.RGB) Result {
	res := Result{Descriptor: Describe(c)}
	m, ok := r.index.FindNearest(c.Lab())
	if !ok {
		return res
	}
	res.Name = m.Name
	res.NearestHex = m.Hex
	res.Distance = math.Round(m.Distance*10) / 10
	res.Exact = m.Distance < ExactThreshold
	return res
}

// Candidates lists the n nearest entries for c.
func (r *Resolver) Candidates(c colorspace.RGB, n int) []Match {
	return r.index.Nearest(c.Lab(), n)
}

// Resolve names c against the built-in table.
func Resolve(c colorspace.RGB) Result {
	return NewResolver(nil).Resolve(c)
}

// DisplayName is Resolve(c).DisplayName().
func DisplayName(c colorspace.RGB) string {
	return Resolve(c).DisplayName()
}
