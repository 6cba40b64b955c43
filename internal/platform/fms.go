//go:build !qd_nofms

package platform

import "math"

// HasFMS reports whether exact products are formed with a fused
// multiply-subtract rather than split-based emulation.
const HasFMS = true

// FMS returns a*b - c computed with a single rounding.
//
// For float32 words the float64 product of two words is exact, so the
// difference is exact as well and the final conversion does not round.
func FMS(a, b, c Word) Word {
	return Word(math.FMA(float64(a), float64(b), -float64(c)))
}
