package qd

import (
	"errors"

	"github.com/agbru/qdcalc/internal/platform"
)

var (
	// ErrNoConvergence is returned by Polyroot when Newton's iteration does
	// not reach the requested threshold.
	ErrNoConvergence = errors.New("qd: polynomial root did not converge")
	// ErrDegree is returned by Polyroot for constant polynomials.
	ErrDegree = errors.New("qd: polynomial degree must be at least 1")
)

// Polyeval evaluates c[0] + c[1]*x + ... + c[n]*x^n with Horner's rule.
func Polyeval(c []Real, x Real) Real {
	if len(c) == 0 {
		return Zero()
	}
	n := len(c) - 1
	r := c[n]
	for i := n - 1; i >= 0; i-- {
		r = r.Mul(x).Add(c[i])
	}
	return r
}

// Polyroot finds a root of the polynomial with coefficients c, lowest degree
// first, by Newton's iteration from x0. It stops once |p(x)| falls below
// thresh times the largest coefficient magnitude; a zero thresh means Eps.
func Polyroot(c []Real, x0 Real, maxIter int, thresh Word) (Real, error) {
	n := len(c) - 1
	if n < 1 {
		return NaN, ErrDegree
	}
	if thresh == 0 {
		thresh = Eps
	}

	d := make([]Real, n)
	maxC := platform.Abs(c[0][0])
	for i := 1; i <= n; i++ {
		if v := platform.Abs(c[i][0]); v > maxC {
			maxC = v
		}
		d[i-1] = c[i].MulWord(Word(i))
	}
	thresh *= maxC

	x := x0
	for i := 0; i < maxIter; i++ {
		f := Polyeval(c, x)
		if f.Abs().LtWord(thresh) {
			return x, nil
		}
		x = x.Sub(f.Div(Polyeval(d, x)))
	}
	return NaN, ErrNoConvergence
}
