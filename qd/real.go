package qd

import (
	"math"

	"github.com/agbru/qdcalc/eft"
	"github.com/agbru/qdcalc/internal/platform"
)

// Word is a single component of an expansion.
type Word = platform.Word

// Real is a quad-word expansion: the value is c0 + c1 + c2 + c3.
type Real [4]Word

// New returns the expansion (x0, x1, x2, x3) as given. The caller is
// responsible for the components being canonical; use Normalize otherwise.
func New(x0, x1, x2, x3 Word) Real {
	return Real{x0, x1, x2, x3}
}

// Normalize returns the canonical expansion of x0+x1+x2+x3. The words must
// be roughly ordered by decreasing magnitude.
func Normalize(x0, x1, x2, x3 Word) Real {
	return renorm4(x0, x1, x2, x3)
}

// FromWord widens a single word.
func FromWord(w Word) Real {
	return Real{w}
}

// FromWords returns the exact sum of up to four words as a canonical
// expansion, in any order. Words beyond the fourth are added as well but the
// result is then subject to rounding.
func FromWords(ws ...Word) Real {
	var r Real
	for _, w := range ws {
		r = r.AddWord(w)
	}
	return r
}

// FromDD widens a double-word value.
func FromDD(d DD) Real {
	return Real{d[0], d[1]}
}

// FromVec4 reinterprets a four-word vector as an expansion, component for
// component.
func FromVec4(v [4]Word) Real {
	return Real(v)
}

// FromInt returns i exactly. The integer is assembled from 16-bit chunks so
// that every partial sum is representable in either word width.
func FromInt(i int64) Real {
	r := FromWord(Word(i >> 48))
	for shift := 32; shift >= 0; shift -= 16 {
		r = r.MulPwr2(65536).AddWord(Word((i >> uint(shift)) & 0xffff))
	}
	return r
}

// FromFloat64 returns f exactly. With float64 words this is FromWord; with
// float32 words f is peeled into successive float32 residuals.
func FromFloat64(f float64) Real {
	x0 := Word(f)
	if platform.IsInf(x0) || platform.IsNaN(x0) {
		return FromWord(x0)
	}
	r1 := f - float64(x0)
	x1 := Word(r1)
	r2 := r1 - float64(x1)
	x2 := Word(r2)
	x3 := Word(r2 - float64(x2))
	return quickRenorm(x0, x1, x2, x3, 0)
}

// Zero returns 0.
func Zero() Real { return Real{} }

// One returns 1.
func One() Real { return Real{1} }

// Word returns the leading component, the best single-word approximation.
func (a Real) Word() Word { return a[0] }

// Float64 returns the value rounded to a float64.
func (a Real) Float64() float64 {
	if platform.WordBits == 64 {
		return float64(a[0])
	}
	return ((float64(a[3]) + float64(a[2])) + float64(a[1])) + float64(a[0])
}

// Int returns the leading component truncated toward zero. NaN yields 0 and
// out-of-range values saturate.
func (a Real) Int() int64 {
	x := float64(a[0])
	switch {
	case x != x:
		return 0
	case x >= math.MaxInt64:
		return math.MaxInt64
	case x <= math.MinInt64:
		return math.MinInt64
	}
	return int64(x)
}

// DD drops the two least significant components.
func (a Real) DD() DD { return DD{a[0], a[1]} }

// Vec4 returns the components as a vector.
func (a Real) Vec4() [4]Word { return [4]Word(a) }

// Renorm restores canonical form in place.
func (a *Real) Renorm() {
	*a = renorm4(a[0], a[1], a[2], a[3])
}

// IsZero reports whether a is zero.
func (a Real) IsZero() bool { return a[0] == 0 }

// IsOne reports whether a is exactly one.
func (a Real) IsOne() bool { return a[0] == 1 && a[1] == 0 && a[2] == 0 && a[3] == 0 }

// IsPositive reports whether a > 0.
func (a Real) IsPositive() bool { return a[0] > 0 }

// IsNegative reports whether a < 0.
func (a Real) IsNegative() bool { return a[0] < 0 }

// IsNaN reports whether a is not a number. When the leading component is
// infinite the trailing ones carry no meaning and are not inspected.
func (a Real) IsNaN() bool {
	if platform.IsNaN(a[0]) {
		return true
	}
	if platform.IsInf(a[0]) {
		return false
	}
	return platform.IsNaN(a[1]) || platform.IsNaN(a[2]) || platform.IsNaN(a[3])
}

// IsCanonical reports whether a is finite, has only trailing zeros, and no
// component exceeds one unit in the last place of its predecessor. Every
// arithmetic result on finite operands has this form.
func (a Real) IsCanonical() bool {
	for _, w := range a {
		if platform.IsNaN(w) || platform.IsInf(w) {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		if a[i] == 0 {
			for _, w := range a[i+1:] {
				if w != 0 {
					return false
				}
			}
			return true
		}
		if math.Abs(float64(a[i+1])) > ulp(a[i]) {
			return false
		}
	}
	return true
}

// ulp returns the unit in the last place of x, clamped to the smallest
// normal exponent.
func ulp(x Word) float64 {
	_, e := math.Frexp(float64(x))
	if e-1 < platform.MinExp {
		e = platform.MinExp + 1
	}
	return math.Ldexp(1, e-platform.Mantissa)
}

// IsInf reports whether a is infinite.
func (a Real) IsInf() bool { return platform.IsInf(a[0]) }

// IsFinite reports whether a is neither infinite nor NaN.
func (a Real) IsFinite() bool { return !a.IsInf() && !a.IsNaN() }

// Neg returns -a.
func (a Real) Neg() Real { return Real{-a[0], -a[1], -a[2], -a[3]} }

// Abs returns |a|.
func (a Real) Abs() Real {
	if a[0] < 0 {
		return a.Neg()
	}
	return a
}

// MulPwr2 scales every component by w, which must be a power of two, so the
// product is exact barring overflow or underflow.
func (a Real) MulPwr2(w Word) Real {
	return Real{Word(a[0] * w), Word(a[1] * w), Word(a[2] * w), Word(a[3] * w)}
}

// Ldexp returns a * 2^n.
func (a Real) Ldexp(n int) Real {
	return Real{
		platform.Ldexp(a[0], n), platform.Ldexp(a[1], n),
		platform.Ldexp(a[2], n), platform.Ldexp(a[3], n),
	}
}

// wordNint rounds each component to the nearest integer.
func wordNint(a Real) Real {
	return Real{eft.Nint(a[0]), eft.Nint(a[1]), eft.Nint(a[2]), eft.Nint(a[3])}
}
