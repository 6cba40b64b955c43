package qd

import (
	"math"

	"github.com/agbru/qdcalc/internal/platform"
)

// Pow returns a raised to the integer power n by binary exponentiation.
// Pow(0, 0) is NaN.
func (a Real) Pow(n int) Real {
	if n == 0 {
		if a.IsZero() {
			return NaN
		}
		return One()
	}

	r := a
	s := One()
	N := n
	if N < 0 {
		N = -N
	}
	if N > 1 {
		for N > 0 {
			if N%2 == 1 {
				s = s.Mul(r)
			}
			N /= 2
			if N > 0 {
				r = Sqr(r)
			}
		}
	} else {
		s = r
	}

	if n < 0 {
		return s.Inv()
	}
	return s
}

// Sqrt returns the square root of a, NaN for negative a.
//
// The native reciprocal square root seeds three Newton steps on 1/sqrt(a),
// each doubling the number of correct bits, and the result is multiplied
// by a.
func (a Real) Sqrt() Real {
	switch {
	case a.IsZero():
		return a
	case a.IsNaN(), a.IsNegative():
		return NaN
	case a.IsInf():
		return a
	}

	r := FromWord(1 / platform.Sqrt(a[0]))
	h := a.MulPwr2(0.5)
	for i := 0; i < 3; i++ {
		r = r.Add(WordSub(0.5, h.Mul(Sqr(r))).Mul(r))
	}
	return r.Mul(a)
}

// NRoot returns the positive n-th root of a. Even roots of negative values
// and n <= 0 yield NaN; odd roots of negative values are negative.
//
// A native seed for a^(-1/n) is refined with three Newton steps and
// inverted.
func (a Real) NRoot(n int) Real {
	switch {
	case n <= 0, a.IsNaN():
		return NaN
	case n%2 == 0 && a.IsNegative():
		return NaN
	case n == 1:
		return a
	case n == 2:
		return a.Sqrt()
	case a.IsZero():
		return Zero()
	case a.IsInf():
		return a
	}

	r := a.Abs()
	x := FromWord(Word(math.Exp(-math.Log(float64(r[0])) / float64(n))))
	dn := Word(n)
	for i := 0; i < 3; i++ {
		x = x.Add(x.Mul(WordSub(1, r.Mul(x.Pow(n)))).DivWord(dn))
	}
	if a[0] < 0 {
		x = x.Neg()
	}
	return x.Inv()
}

// Rem returns a - n*b where n is a/b rounded to the nearest integer.
func (a Real) Rem(b Real) Real {
	_, r := a.DivRem(b)
	return r
}

// DivRem returns n, a/b rounded to the nearest integer, and the remainder
// a - n*b.
func (a Real) DivRem(b Real) (n, r Real) {
	n = a.Div(b).Nint()
	return n, a.Sub(n.Mul(b))
}

// Fmod returns a - n*b where n is a/b truncated toward zero, so the result
// has the sign of a.
func (a Real) Fmod(b Real) Real {
	n := a.Div(b).Aint()
	return a.Sub(b.Mul(n))
}
