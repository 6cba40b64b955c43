//go:build qd_ieee_add

package qd

const addStrategy = "ieee"

// Add returns a + b using IEEEAdd.
func (a Real) Add(b Real) Real { return IEEEAdd(a, b) }
