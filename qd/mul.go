package qd

import "github.com/agbru/qdcalc/eft"

// MulWord returns a * w.
func (a Real) MulWord(w Word) Real {
	p0, q0 := eft.TwoProd(a[0], w)
	p1, q1 := eft.TwoProd(a[1], w)
	p2, q2 := eft.TwoProd(a[2], w)
	p3 := Word(a[3] * w)

	s0 := p0
	s1, s2 := eft.TwoSum(q0, p1)
	s2, q1, p2 = threeSum(s2, q1, p2)
	q1, q2 = threeSum2(q1, q2, p3)
	s3 := q1
	s4 := q2 + p2

	return renorm5(s0, s1, s2, s3, s4)
}

// MulDD returns a * d.
func (a Real) MulDD(d DD) Real {
	// a0*b0                    0
	//      a0*b1               1
	//      a1*b0               2
	//           a1*b1          3
	//           a2*b0          4
	//                a2*b1     5
	//                a3*b0     6
	//                     a3*b1 7
	p0, q0 := eft.TwoProd(a[0], d[0])
	p1, q1 := eft.TwoProd(a[0], d[1])
	p2, q2 := eft.TwoProd(a[1], d[0])
	p3, q3 := eft.TwoProd(a[1], d[1])
	p4, q4 := eft.TwoProd(a[2], d[0])

	p1, p2, q0 = threeSum(p1, p2, q0)

	// five-three sum
	p2, p3, p4 = threeSum(p2, p3, p4)
	q1, q2 = eft.TwoSum(q1, q2)
	s0, t0 := eft.TwoSum(p2, q1)
	s1, t1 := eft.TwoSum(p3, q2)
	s1, t0 = eft.TwoSum(s1, t0)
	s2 := t0 + t1 + p4
	p2 = s0

	p3 = Word(a[2]*d[1]) + Word(a[3]*d[0]) + q3 + q4
	p3, q0 = threeSum2(p3, q0, s1)
	p4 = q0 + s2

	return renorm5(p0, p1, p2, p3, p4)
}

// SloppyMul returns a * b keeping exact products only for terms of degree
// two or less; degree-three cross terms enter as plain products.
func SloppyMul(a, b Real) Real {
	p0, q0 := eft.TwoProd(a[0], b[0])

	p1, q1 := eft.TwoProd(a[0], b[1])
	p2, q2 := eft.TwoProd(a[1], b[0])

	p3, q3 := eft.TwoProd(a[0], b[2])
	p4, q4 := eft.TwoProd(a[1], b[1])
	p5, q5 := eft.TwoProd(a[2], b[0])

	p1, p2, q0 = threeSum(p1, p2, q0)

	// six-three sum of p2, q1, q2, p3, p4, p5
	p2, q1, q2 = threeSum(p2, q1, q2)
	p3, p4, p5 = threeSum(p3, p4, p5)
	s0, t0 := eft.TwoSum(p2, p3)
	s1, t1 := eft.TwoSum(q1, p4)
	s2 := q2 + p5
	s1, t0 = eft.TwoSum(s1, t0)
	s2 += t0 + t1

	s1 += Word(a[0]*b[3]) + Word(a[1]*b[2]) + Word(a[2]*b[1]) + Word(a[3]*b[0]) +
		q0 + q3 + q4 + q5

	return renorm5(p0, p1, s0, s1, s2)
}

// AccurateMul returns a * b, additionally forming the degree-three terms
// exactly and folding their errors in; only degree-four terms enter as
// plain products.
func AccurateMul(a, b Real) Real {
	p0, q0 := eft.TwoProd(a[0], b[0])

	p1, q1 := eft.TwoProd(a[0], b[1])
	p2, q2 := eft.TwoProd(a[1], b[0])

	p3, q3 := eft.TwoProd(a[0], b[2])
	p4, q4 := eft.TwoProd(a[1], b[1])
	p5, q5 := eft.TwoProd(a[2], b[0])

	p1, p2, q0 = threeSum(p1, p2, q0)

	// six-three sum of p2, q1, q2, p3, p4, p5
	p2, q1, q2 = threeSum(p2, q1, q2)
	p3, p4, p5 = threeSum(p3, p4, p5)
	s0, t0 := eft.TwoSum(p2, p3)
	s1, t1 := eft.TwoSum(q1, p4)
	s2 := q2 + p5
	s1, t0 = eft.TwoSum(s1, t0)
	s2 += t0 + t1

	p6, q6 := eft.TwoProd(a[0], b[3])
	p7, q7 := eft.TwoProd(a[1], b[2])
	p8, q8 := eft.TwoProd(a[2], b[1])
	p9, q9 := eft.TwoProd(a[3], b[0])

	// nine-two sum of q0, s1, q3, q4, q5, p6, p7, p8, p9
	q0, q3 = eft.TwoSum(q0, q3)
	q4, q5 = eft.TwoSum(q4, q5)
	p6, p7 = eft.TwoSum(p6, p7)
	p8, p9 = eft.TwoSum(p8, p9)

	t0, t1 = eft.TwoSum(q0, q4)
	t1 += q3 + q5

	r0, r1 := eft.TwoSum(p6, p8)
	r1 += p7 + p9

	q3, q4 = eft.TwoSum(t0, r0)
	q4 += t1 + r1

	t0, t1 = eft.TwoSum(q3, s1)
	t1 += q4

	// nine-one sum of the degree-four terms
	t1 += Word(a[1]*b[3]) + Word(a[2]*b[2]) + Word(a[3]*b[1]) +
		q6 + q7 + q8 + q9 + s2

	return renorm5(p0, p1, s0, t0, t1)
}

// Sqr returns a * a. The symmetric cross terms are formed once and doubled,
// saving work over AccurateMul(a, a).
func Sqr(a Real) Real {
	p0, q0 := eft.TwoSqr(a[0])
	p1, q1 := eft.TwoProd(Word(2*a[0]), a[1])
	p2, q2 := eft.TwoProd(Word(2*a[0]), a[2])
	p3, q3 := eft.TwoSqr(a[1])

	p1, q0 = eft.TwoSum(q0, p1)

	q0, q1 = eft.TwoSum(q0, q1)
	p2, p3 = eft.TwoSum(p2, p3)

	s0, t0 := eft.TwoSum(q0, p2)
	s1, t1 := eft.TwoSum(q1, p3)

	s1, t0 = eft.TwoSum(s1, t0)
	t0 += t1

	s1, t0 = eft.QuickTwoSum(s1, t0)
	p2, t1 = eft.QuickTwoSum(s0, s1)
	p3, q0 = eft.QuickTwoSum(t1, t0)

	p4 := Word(Word(2*a[0]) * a[3])
	p5 := Word(Word(2*a[1]) * a[2])

	p4, p5 = eft.TwoSum(p4, p5)
	q2, q3 = eft.TwoSum(q2, q3)

	t0, t1 = eft.TwoSum(p4, q2)
	t1 = t1 + p5 + q3

	p3, p4 = eft.TwoSum(p3, t0)
	p4 = p4 + q0 + t1

	return renorm5(p0, p1, p2, p3, p4)
}

// Sqr returns a * a.
func (a Real) Sqr() Real { return Sqr(a) }
