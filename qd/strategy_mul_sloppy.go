//go:build qd_sloppy_mul

package qd

const mulStrategy = "sloppy"

// Mul returns a * b using SloppyMul.
func (a Real) Mul(b Real) Real { return SloppyMul(a, b) }
