package qd

import (
	"github.com/agbru/qdcalc/eft"
	"github.com/agbru/qdcalc/internal/platform"
)

// threeSum returns the exact sum of a, b and c as three words, most
// significant first.
func threeSum(a, b, c Word) (Word, Word, Word) {
	t1, t2 := eft.TwoSum(a, b)
	a, t3 := eft.TwoSum(c, t1)
	b, c = eft.TwoSum(t2, t3)
	return a, b, c
}

// threeSum2 is threeSum with the two low words merged into one.
func threeSum2(a, b, c Word) (Word, Word) {
	t1, t2 := eft.TwoSum(a, b)
	a, t3 := eft.TwoSum(c, t1)
	return a, t2 + t3
}

// quickThreeAccum adds c to the double-word accumulator (a, b). When the
// sum no longer fits in two words the leading word s is returned non-zero
// and (a, b) keeps the remainder; otherwise s is zero and (a, b) holds the
// whole sum.
func quickThreeAccum(a, b, c Word) (s, na, nb Word) {
	s, b = eft.TwoSum(b, c)
	s, a = eft.TwoSum(a, s)

	if a != 0 && b != 0 {
		return s, a, b
	}
	if b == 0 {
		return 0, s, a
	}
	return 0, s, b
}

// SloppyAdd returns a + b using componentwise two-sums whose errors are
// merged with three-term carries. It is fast but its error bound is only
// relative to |a| + |b|, so heavy cancellation loses accuracy.
func SloppyAdd(a, b Real) Real {
	// The four two-sums are interleaved stage by stage so that they do not
	// depend on each other.
	s0 := a[0] + b[0]
	s1 := a[1] + b[1]
	s2 := a[2] + b[2]
	s3 := a[3] + b[3]

	v0 := s0 - a[0]
	v1 := s1 - a[1]
	v2 := s2 - a[2]
	v3 := s3 - a[3]

	u0 := s0 - v0
	u1 := s1 - v1
	u2 := s2 - v2
	u3 := s3 - v3

	w0 := a[0] - u0
	w1 := a[1] - u1
	w2 := a[2] - u2
	w3 := a[3] - u3

	u0 = b[0] - v0
	u1 = b[1] - v1
	u2 = b[2] - v2
	u3 = b[3] - v3

	t0 := w0 + u0
	t1 := w1 + u1
	t2 := w2 + u2
	t3 := w3 + u3

	s1, t0 = eft.TwoSum(s1, t0)
	s2, t0, t1 = threeSum(s2, t0, t1)
	s3, t0 = threeSum2(s3, t0, t2)
	t0 = t0 + t1 + t3

	return renorm5(s0, s1, s2, s3, t0)
}

// IEEEAdd returns a + b with an error bound relative to |a + b|. Both
// operands are merged by decreasing magnitude into a double-word
// accumulator, which emits a finished word each time it overflows.
func IEEEAdd(a, b Real) Real {
	if platform.IsInf(a[0]) || platform.IsInf(b[0]) || platform.IsNaN(a[0]) || platform.IsNaN(b[0]) {
		return FromWord(a[0] + b[0])
	}

	var x [4]Word
	var u, v, t, s Word
	i, j, k := 0, 0, 0

	if platform.Abs(a[i]) > platform.Abs(b[j]) {
		u = a[i]
		i++
	} else {
		u = b[j]
		j++
	}
	if platform.Abs(a[i]) > platform.Abs(b[j]) {
		v = a[i]
		i++
	} else {
		v = b[j]
		j++
	}
	u, v = eft.QuickTwoSum(u, v)

	for k < 4 {
		if i >= 4 && j >= 4 {
			x[k] = u
			if k < 3 {
				k++
				x[k] = v
			}
			break
		}

		switch {
		case i >= 4:
			t = b[j]
			j++
		case j >= 4:
			t = a[i]
			i++
		case platform.Abs(a[i]) > platform.Abs(b[j]):
			t = a[i]
			i++
		default:
			t = b[j]
			j++
		}

		s, u, v = quickThreeAccum(u, v, t)
		if s != 0 {
			x[k] = s
			k++
		}
	}

	for ; i < 4; i++ {
		x[3] += a[i]
	}
	for ; j < 4; j++ {
		x[3] += b[j]
	}
	return renorm4(x[0], x[1], x[2], x[3])
}

// AddWord returns a + w.
func (a Real) AddWord(w Word) Real {
	c0, e := eft.TwoSum(a[0], w)
	c1, e := eft.TwoSum(a[1], e)
	c2, e := eft.TwoSum(a[2], e)
	c3, e := eft.TwoSum(a[3], e)
	return renorm5(c0, c1, c2, c3, e)
}

// AddDD returns a + d.
func (a Real) AddDD(d DD) Real {
	s0, t0 := eft.TwoSum(a[0], d[0])
	s1, t1 := eft.TwoSum(a[1], d[1])

	s1, t0 = eft.TwoSum(s1, t0)

	s2, t0, t1 := threeSum(a[2], t0, t1)

	s3, t0 := eft.TwoSum(t0, a[3])
	t0 += t1

	return renorm5(s0, s1, s2, s3, t0)
}

// Sub returns a - b.
func (a Real) Sub(b Real) Real { return a.Add(b.Neg()) }

// SubWord returns a - w.
func (a Real) SubWord(w Word) Real { return a.AddWord(-w) }

// SubDD returns a - d.
func (a Real) SubDD(d DD) Real { return a.AddDD(d.Neg()) }

// WordSub returns w - a.
func WordSub(w Word, a Real) Real { return a.Neg().AddWord(w) }
