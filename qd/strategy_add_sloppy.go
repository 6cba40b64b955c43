//go:build !qd_ieee_add

package qd

const addStrategy = "sloppy"

// Add returns a + b using SloppyAdd. Build with qd_ieee_add to use IEEEAdd.
func (a Real) Add(b Real) Real { return SloppyAdd(a, b) }
