//go:build !qd_sloppy_mul

package qd

const mulStrategy = "accurate"

// Mul returns a * b using AccurateMul. Build with qd_sloppy_mul to use
// SloppyMul.
func (a Real) Mul(b Real) Real { return AccurateMul(a, b) }
