//go:build !qd_float32

package platform

import "math"

// Word is the native floating-point type of one expansion component.
type Word = float64

const (
	// WordBits is the storage width of a Word.
	WordBits = 64
	// Mantissa is the number of significand bits of a Word, hidden bit included.
	Mantissa = 53
	// Splitter is 2^27 + 1, the Veltkamp constant splitting a word into two
	// 26-bit halves whose pairwise products are exact.
	Splitter Word = 134217729.0
	// SplitThreshold is 2^996. Above it Splitter*a could overflow.
	SplitThreshold Word = 0x1p996
	// SplitScaleDown is 2^-28, applied before splitting a word above SplitThreshold.
	SplitScaleDown Word = 3.7252902984619140625e-09
	// SplitScaleUp is 2^28, restoring the scale of both halves afterwards.
	SplitScaleUp Word = 268435456.0
	// MaxWord is the largest finite Word.
	MaxWord Word = math.MaxFloat64
	// MinExp is the exponent of the smallest normalized Word.
	MinExp = -1022
	// MaxExp is the exponent of the largest finite Word.
	MaxExp = 1023
)
