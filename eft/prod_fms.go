//go:build !qd_nofms

package eft

import "github.com/agbru/qdcalc/internal/platform"

// TwoProd computes p = fl(a*b) and err = a*b - p.
//
// This build forms the error term with a single fused multiply-subtract,
// exact and branch-free.
func TwoProd(a, b Word) (p, err Word) {
	p = Word(a * b)
	return p, platform.FMS(a, b, p)
}

// TwoSqr computes p = fl(a*a) and err = a*a - p.
func TwoSqr(a Word) (p, err Word) {
	p = Word(a * a)
	return p, platform.FMS(a, a, p)
}
