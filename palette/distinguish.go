package palette

import (
	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"

	"github.com/mmuldo/hexref/colorspace"
)

var klch = &deltae.KLChDefault

// DeltaE2000 is the CIEDE2000 difference between two Lab colours. It can be
// handed to naming.WithMetric in place of the default CIE76 distance.
func DeltaE2000(a, b colorspace.Lab) float64 {
	return deltae.CIE2000(toChromath(a), toChromath(b), klch)
}

// Distinct reports whether a and b differ by at least threshold under
// CIEDE2000.
func Distinct(a, b colorspace.RGB, threshold float64) bool {
	return DeltaE2000(a.Lab(), b.Lab()) >= threshold
}

// Dedupe keeps the first colour of every cluster whose members lie closer
// than threshold to it. Order of first appearance is preserved.
func Dedupe(colors []colorspace.RGB, threshold float64) []colorspace.RGB {
	kept := make([]colorspace.RGB, 0, len(colors))
	for _, c := range colors {
		unique := true
		for _, k := range kept {
			if !Distinct(c, k, threshold) {
				unique = false
				break
			}
		}
		if unique {
			kept = append(kept, c)
		}
	}
	return kept
}

func toChromath(l colorspace.Lab) chromath.Lab {
	return chromath.Lab{l.L, l.A, l.B}
}
