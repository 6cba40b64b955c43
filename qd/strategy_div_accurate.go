//go:build !qd_sloppy_div

package qd

const (
	divStrategy = "accurate"
	sloppyDiv   = false
)

// Div returns a / b using AccurateDiv. Build with qd_sloppy_div to use
// SloppyDiv.
func (a Real) Div(b Real) Real { return AccurateDiv(a, b) }
