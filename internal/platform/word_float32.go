//go:build qd_float32

package platform

import "math"

// Word is the native floating-point type of one expansion component.
type Word = float32

const (
	// WordBits is the storage width of a Word.
	WordBits = 32
	// Mantissa is the number of significand bits of a Word, hidden bit included.
	Mantissa = 24
	// Splitter is 2^12 + 1, the Veltkamp constant splitting a word into two
	// 12-bit halves whose pairwise products are exact.
	Splitter Word = 4097.0
	// SplitThreshold is 2^115. Above it Splitter*a could overflow.
	SplitThreshold Word = 0x1p115
	// SplitScaleDown is 2^-13, applied before splitting a word above SplitThreshold.
	SplitScaleDown Word = 0.0001220703125
	// SplitScaleUp is 2^13, restoring the scale of both halves afterwards.
	SplitScaleUp Word = 8192.0
	// MaxWord is the largest finite Word.
	MaxWord Word = math.MaxFloat32
	// MinExp is the exponent of the smallest normalized Word.
	MinExp = -126
	// MaxExp is the exponent of the largest finite Word.
	MaxExp = 127
)
