//go:build qd_nofms

package eft

// TwoProd computes p = fl(a*b) and err = a*b - p.
//
// This build emulates the exact product: both operands are split into
// half-width pieces and the four partial products, each exact, are
// accumulated against p.
func TwoProd(a, b Word) (p, err Word) {
	p = Word(a * b)
	aHi, aLo := Split(a)
	bHi, bLo := Split(b)
	err = ((Word(aHi*bHi) - p) + Word(aHi*bLo) + Word(aLo*bHi)) + Word(aLo*bLo)
	return p, err
}

// TwoSqr computes p = fl(a*a) and err = a*a - p, splitting a only once.
func TwoSqr(a Word) (p, err Word) {
	p = Word(a * a)
	hi, lo := Split(a)
	err = ((Word(hi*hi) - p) + Word(2*hi*lo)) + Word(lo*lo)
	return p, err
}
