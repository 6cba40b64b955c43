//go:build qd_sloppy_div

package qd

const (
	divStrategy = "sloppy"
	sloppyDiv   = true
)

// Div returns a / b using SloppyDiv.
func (a Real) Div(b Real) Real { return SloppyDiv(a, b) }
