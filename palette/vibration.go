package palette

import (
	"math"

	"github.com/mmuldo/hexref/colorspace"
)

// IsVibratingCombo flags saturated, mid-lightness, near-opposite pairs that
// appear to shimmer when placed side by side. It is advisory only.
func IsVibratingCombo(a, b colorspace.RGB) bool {
	ha, hb := a.HSL().Round(), b.HSL().Round()

	if ha.S <= 50 || hb.S <= 50 {
		return false
	}
	if ha.L < 30 || ha.L > 70 || hb.L < 30 || hb.L > 70 {
		return false
	}
	if math.Abs(ha.L-hb.L) > 20 {
		return false
	}

	diff := math.Abs(ha.H - hb.H)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff >= 100
}

// HasVibration reports whether any colour vibrates against base.
func HasVibration(base colorspace.RGB, colors []colorspace.RGB) bool {
	for _, c := range colors {
		if IsVibratingCombo(base, c) {
			return true
		}
	}
	return false
}
