package qd

import "github.com/agbru/qdcalc/eft"

// DD is a double-word expansion: the value is hi + lo with |lo| <= ulp(hi)/2.
// It is the operand type of the mixed quad/double-word operations and the
// result of narrowing a Real.
type DD [2]Word

// NewDD returns the normalized double-word sum hi + lo.
func NewDD(hi, lo Word) DD {
	s, e := eft.TwoSum(hi, lo)
	return DD{s, e}
}

// DDFromWord widens a single word.
func DDFromWord(w Word) DD { return DD{w} }

// Hi returns the leading word.
func (d DD) Hi() Word { return d[0] }

// Lo returns the trailing word.
func (d DD) Lo() Word { return d[1] }

// Neg returns -d.
func (d DD) Neg() DD { return DD{-d[0], -d[1]} }

// Add returns d + e with the IEEE-style double-word addition.
func (d DD) Add(e DD) DD {
	s1, s2 := eft.TwoSum(d[0], e[0])
	t1, t2 := eft.TwoSum(d[1], e[1])
	s2 += t1
	s1, s2 = eft.QuickTwoSum(s1, s2)
	s2 += t2
	s1, s2 = eft.QuickTwoSum(s1, s2)
	return DD{s1, s2}
}

// Sub returns d - e.
func (d DD) Sub(e DD) DD { return d.Add(e.Neg()) }

// Mul returns d * e.
func (d DD) Mul(e DD) DD {
	p1, p2 := eft.TwoProd(d[0], e[0])
	p2 += Word(d[0]*e[1]) + Word(d[1]*e[0])
	p1, p2 = eft.QuickTwoSum(p1, p2)
	return DD{p1, p2}
}
