package qd

import (
	"github.com/agbru/qdcalc/eft"
	"github.com/agbru/qdcalc/internal/platform"
)

// Floor returns the greatest integer value less than or equal to a.
func (a Real) Floor() Real {
	var x1, x2, x3 Word
	x0 := platform.Floor(a[0])
	if x0 != a[0] {
		return Real{x0}
	}
	x1 = platform.Floor(a[1])
	if x1 == a[1] {
		x2 = platform.Floor(a[2])
		if x2 == a[2] {
			x3 = platform.Floor(a[3])
		}
	}
	return renorm4(x0, x1, x2, x3)
}

// Ceil returns the least integer value greater than or equal to a.
func (a Real) Ceil() Real {
	var x1, x2, x3 Word
	x0 := platform.Ceil(a[0])
	if x0 != a[0] {
		return Real{x0}
	}
	x1 = platform.Ceil(a[1])
	if x1 == a[1] {
		x2 = platform.Ceil(a[2])
		if x2 == a[2] {
			x3 = platform.Ceil(a[3])
		}
	}
	return renorm4(x0, x1, x2, x3)
}

// Aint truncates a toward zero.
func (a Real) Aint() Real {
	if a[0] >= 0 {
		return a.Floor()
	}
	return a.Ceil()
}

// Nint rounds a to the nearest integer, halfway cases toward +Inf.
//
// The first component that is not already integral decides the rounding;
// an exact half is corrected by the sign of the next component.
func (a Real) Nint() Real {
	var x1, x2, x3 Word
	x0 := eft.Nint(a[0])
	if x0 == a[0] {
		x1 = eft.Nint(a[1])
		if x1 == a[1] {
			x2 = eft.Nint(a[2])
			if x2 == a[2] {
				x3 = eft.Nint(a[3])
			} else if platform.Abs(x2-a[2]) == 0.5 && a[3] < 0 {
				x2--
			}
		} else if platform.Abs(x1-a[1]) == 0.5 && a[2] < 0 {
			x1--
		}
	} else if platform.Abs(x0-a[0]) == 0.5 && a[1] < 0 {
		x0--
	}
	return renorm4(x0, x1, x2, x3)
}

// QuickNint rounds every component independently and renormalizes. It may
// be off by one when a is very close to halfway between two integers.
func (a Real) QuickNint() Real {
	r := wordNint(a)
	r.Renorm()
	return r
}
