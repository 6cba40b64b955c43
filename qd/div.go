package qd

import (
	"github.com/agbru/qdcalc/eft"
	"github.com/agbru/qdcalc/internal/platform"
)

// wordQuotient reports whether the refinement cannot proceed and the native
// quotient q of the leading words, widened, is the answer: q is infinite or
// NaN (division by zero, Inf/Inf, NaN operands) or the divisor's leading
// word d is infinite.
func wordQuotient(q, d Word) bool {
	return platform.IsInf(q) || platform.IsNaN(q) || platform.IsInf(d)
}

// SloppyDiv returns a / b from four quotient words, each the native quotient
// of the running remainder's leading word by b's leading word.
func SloppyDiv(a, b Real) Real {
	q0 := a[0] / b[0]
	if wordQuotient(q0, b[0]) {
		return FromWord(q0)
	}
	r := a.Sub(b.MulWord(q0))

	q1 := r[0] / b[0]
	r = r.Sub(b.MulWord(q1))

	q2 := r[0] / b[0]
	r = r.Sub(b.MulWord(q2))

	q3 := r[0] / b[0]

	return renorm4(q0, q1, q2, q3)
}

// AccurateDiv returns a / b from five quotient words.
func AccurateDiv(a, b Real) Real {
	q0 := a[0] / b[0]
	if wordQuotient(q0, b[0]) {
		return FromWord(q0)
	}
	r := a.Sub(b.MulWord(q0))

	q1 := r[0] / b[0]
	r = r.Sub(b.MulWord(q1))

	q2 := r[0] / b[0]
	r = r.Sub(b.MulWord(q2))

	q3 := r[0] / b[0]
	r = r.Sub(b.MulWord(q3))

	q4 := r[0] / b[0]

	return renorm5(q0, q1, q2, q3, q4)
}

// DivWord returns a / w. Each remainder update subtracts the exact product
// of the quotient word and w.
func (a Real) DivWord(w Word) Real {
	q0 := a[0] / w
	if wordQuotient(q0, w) {
		return FromWord(q0)
	}
	t0, t1 := eft.TwoProd(q0, w)
	r := a.SubDD(DD{t0, t1})

	q1 := r[0] / w
	t0, t1 = eft.TwoProd(q1, w)
	r = r.SubDD(DD{t0, t1})

	q2 := r[0] / w
	t0, t1 = eft.TwoProd(q2, w)
	r = r.SubDD(DD{t0, t1})

	q3 := r[0] / w

	return renorm4(q0, q1, q2, q3)
}

// DivDD returns a / d. It follows the build's division strategy: four
// quotient words when built with qd_sloppy_div, five otherwise.
func (a Real) DivDD(d DD) Real {
	q0 := a[0] / d[0]
	if wordQuotient(q0, d[0]) {
		return FromWord(q0)
	}
	r := a.Sub(FromDD(d).MulWord(q0))

	q1 := r[0] / d[0]
	r = r.Sub(FromDD(d).MulWord(q1))

	q2 := r[0] / d[0]
	r = r.Sub(FromDD(d).MulWord(q2))

	q3 := r[0] / d[0]
	if sloppyDiv {
		return renorm4(q0, q1, q2, q3)
	}
	r = r.Sub(FromDD(d).MulWord(q3))

	q4 := r[0] / d[0]

	return renorm5(q0, q1, q2, q3, q4)
}

// WordDiv returns w / a.
func WordDiv(w Word, a Real) Real { return FromWord(w).Div(a) }

// Inv returns 1 / a.
func (a Real) Inv() Real { return FromWord(1).Div(a) }
