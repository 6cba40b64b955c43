package qd

import (
	"github.com/agbru/qdcalc/eft"
	"github.com/agbru/qdcalc/internal/platform"
)

// quickRenorm folds five roughly sorted words into four with two passes of
// QuickTwoSum. It never branches on zeros, so a zero in a non-trailing slot
// survives; only inputs produced by a carry chain are suitable.
func quickRenorm(c0, c1, c2, c3, c4 Word) Real {
	var t0, t1, t2, t3, s Word
	s, t3 = eft.QuickTwoSum(c3, c4)
	s, t2 = eft.QuickTwoSum(c2, s)
	s, t1 = eft.QuickTwoSum(c1, s)
	c0, t0 = eft.QuickTwoSum(c0, s)

	s, t2 = eft.QuickTwoSum(t2, t3)
	s, t1 = eft.QuickTwoSum(t1, s)
	c1, t0 = eft.QuickTwoSum(t0, s)

	s, t1 = eft.QuickTwoSum(t1, t2)
	c2, t0 = eft.QuickTwoSum(t0, s)

	return Real{c0, c1, c2, t0 + t1}
}

// renorm4 returns the canonical form of c0+c1+c2+c3.
//
// A carry chain runs from the least to the most significant word, then a
// compaction pass emits words from the top, skipping any slot whose
// accumulated remainder is exactly zero so that zeros only trail.
func renorm4(c0, c1, c2, c3 Word) Real {
	if platform.IsInf(c0) {
		return Real{c0, c1, c2, c3}
	}

	var s0, s1, s2, s3 Word
	s0, c3 = eft.QuickTwoSum(c2, c3)
	s0, c2 = eft.QuickTwoSum(c1, s0)
	c0, c1 = eft.QuickTwoSum(c0, s0)

	s0, s1 = c0, c1
	if s1 != 0 {
		s1, s2 = eft.QuickTwoSum(s1, c2)
		if s2 != 0 {
			s2, s3 = eft.QuickTwoSum(s2, c3)
		} else {
			s1, s2 = eft.QuickTwoSum(s1, c3)
		}
	} else {
		s0, s1 = eft.QuickTwoSum(s0, c2)
		if s1 != 0 {
			s1, s2 = eft.QuickTwoSum(s1, c3)
		} else {
			s0, s1 = eft.QuickTwoSum(s0, c3)
		}
	}
	return Real{s0, s1, s2, s3}
}

// renorm5 is renorm4 with a fifth, least significant input word that is
// folded into the four outputs.
func renorm5(c0, c1, c2, c3, c4 Word) Real {
	if platform.IsInf(c0) {
		return Real{c0, c1, c2, c3}
	}

	var s0, s1, s2, s3 Word
	s0, c4 = eft.QuickTwoSum(c3, c4)
	s0, c3 = eft.QuickTwoSum(c2, s0)
	s0, c2 = eft.QuickTwoSum(c1, s0)
	c0, c1 = eft.QuickTwoSum(c0, s0)

	s0, s1 = eft.QuickTwoSum(c0, c1)
	if s1 != 0 {
		s1, s2 = eft.QuickTwoSum(s1, c2)
		if s2 != 0 {
			s2, s3 = eft.QuickTwoSum(s2, c3)
			if s3 != 0 {
				s3 += c4
			} else {
				s2 += c4
			}
		} else {
			s1, s2 = eft.QuickTwoSum(s1, c3)
			if s2 != 0 {
				s2, s3 = eft.QuickTwoSum(s2, c4)
			} else {
				s1, s2 = eft.QuickTwoSum(s1, c4)
			}
		}
	} else {
		s0, s1 = eft.QuickTwoSum(s0, c2)
		if s1 != 0 {
			s1, s2 = eft.QuickTwoSum(s1, c3)
			if s2 != 0 {
				s2, s3 = eft.QuickTwoSum(s2, c4)
			} else {
				s1, s2 = eft.QuickTwoSum(s1, c4)
			}
		} else {
			s0, s1 = eft.QuickTwoSum(s0, c3)
			if s1 != 0 {
				s1, s2 = eft.QuickTwoSum(s1, c4)
			} else {
				s0, s1 = eft.QuickTwoSum(s0, c4)
			}
		}
	}
	return Real{s0, s1, s2, s3}
}
