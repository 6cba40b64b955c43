package qd

import "github.com/agbru/qdcalc/eft"

// Sum returns the sum of xs.
func Sum(xs []Real) Real {
	var s Real
	for _, x := range xs {
		s = s.Add(x)
	}
	return s
}

// SumWords returns the sum of ws accumulated in a Real, so that no rounding
// occurs until the running sum needs more than four words.
func SumWords(ws []Word) Real {
	var s Real
	for _, w := range ws {
		s = s.AddWord(w)
	}
	return s
}

// Dot returns the inner product of x and y. It panics if the lengths
// differ.
func Dot(x, y []Real) Real {
	if len(x) != len(y) {
		panic("qd: Dot of slices with different lengths")
	}
	var s Real
	for i := range x {
		s = s.Add(x[i].Mul(y[i]))
	}
	return s
}

// DotWords returns the inner product of two word slices. Each product is
// formed exactly and both of its words are accumulated. It panics if the
// lengths differ.
func DotWords(x, y []Word) Real {
	if len(x) != len(y) {
		panic("qd: DotWords of slices with different lengths")
	}
	var s Real
	for i := range x {
		p, e := eft.TwoProd(x[i], y[i])
		s = s.AddDD(DD{p, e})
	}
	return s
}
