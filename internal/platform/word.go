package platform

import "math"

// Word helpers. The conversions through float64 are exact for both word
// widths, and for float32 the float64 result of Floor, Ceil and Ldexp is
// representable again, so each helper behaves like its native counterpart.

// Abs returns |x|.
func Abs(x Word) Word { return Word(math.Abs(float64(x))) }

// Floor returns the greatest integer value less than or equal to x.
func Floor(x Word) Word { return Word(math.Floor(float64(x))) }

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x Word) Word { return Word(math.Ceil(float64(x))) }

// Sqrt returns the correctly rounded square root of x.
func Sqrt(x Word) Word { return Word(math.Sqrt(float64(x))) }

// Ldexp returns x * 2^exp.
func Ldexp(x Word, exp int) Word { return Word(math.Ldexp(float64(x), exp)) }

// IsInf reports whether x is an infinity of either sign.
func IsInf(x Word) bool { return math.IsInf(float64(x), 0) }

// IsNaN reports whether x is a NaN.
func IsNaN(x Word) bool { return x != x }

// NaN returns a quiet NaN word.
func NaN() Word { return Word(math.NaN()) }

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf(sign int) Word { return Word(math.Inf(sign)) }

// MinNormalWord returns the smallest positive normalized Word, 2^MinExp.
func MinNormalWord() Word { return Ldexp(1, MinExp) }

// Eps returns the unit roundoff of one Word, 2^-Mantissa.
func Eps() Word { return Ldexp(1, -Mantissa) }
