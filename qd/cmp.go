package qd

// The relational operators compare components lexicographically, which is
// only correct for canonical operands. Results involving NaN are
// unspecified.

// Eq reports whether a == b.
func (a Real) Eq(b Real) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2] && a[3] == b[3]
}

// Ne reports whether a != b.
func (a Real) Ne(b Real) bool { return !a.Eq(b) }

// Lt reports whether a < b.
func (a Real) Lt(b Real) bool {
	return a[0] < b[0] ||
		(a[0] == b[0] && (a[1] < b[1] ||
			(a[1] == b[1] && (a[2] < b[2] ||
				(a[2] == b[2] && a[3] < b[3])))))
}

// Le reports whether a <= b.
func (a Real) Le(b Real) bool {
	return a[0] < b[0] ||
		(a[0] == b[0] && (a[1] < b[1] ||
			(a[1] == b[1] && (a[2] < b[2] ||
				(a[2] == b[2] && a[3] <= b[3])))))
}

// Gt reports whether a > b.
func (a Real) Gt(b Real) bool {
	return a[0] > b[0] ||
		(a[0] == b[0] && (a[1] > b[1] ||
			(a[1] == b[1] && (a[2] > b[2] ||
				(a[2] == b[2] && a[3] > b[3])))))
}

// Ge reports whether a >= b.
func (a Real) Ge(b Real) bool {
	return a[0] > b[0] ||
		(a[0] == b[0] && (a[1] > b[1] ||
			(a[1] == b[1] && (a[2] > b[2] ||
				(a[2] == b[2] && a[3] >= b[3])))))
}

// Cmp returns -1, 0 or +1 as a is less than, equal to, or greater than b.
func (a Real) Cmp(b Real) int {
	switch {
	case a.Lt(b):
		return -1
	case a.Gt(b):
		return 1
	}
	return 0
}

// EqWord reports whether a == w.
func (a Real) EqWord(w Word) bool {
	return a[0] == w && a[1] == 0 && a[2] == 0 && a[3] == 0
}

// NeWord reports whether a != w.
func (a Real) NeWord(w Word) bool { return !a.EqWord(w) }

// LtWord reports whether a < w.
func (a Real) LtWord(w Word) bool { return a[0] < w || (a[0] == w && a[1] < 0) }

// LeWord reports whether a <= w.
func (a Real) LeWord(w Word) bool { return a[0] < w || (a[0] == w && a[1] <= 0) }

// GtWord reports whether a > w.
func (a Real) GtWord(w Word) bool { return a[0] > w || (a[0] == w && a[1] > 0) }

// GeWord reports whether a >= w.
func (a Real) GeWord(w Word) bool { return a[0] > w || (a[0] == w && a[1] >= 0) }

// EqDD reports whether a == d.
func (a Real) EqDD(d DD) bool {
	return a[0] == d[0] && a[1] == d[1] && a[2] == 0 && a[3] == 0
}

// NeDD reports whether a != d.
func (a Real) NeDD(d DD) bool { return !a.EqDD(d) }

// LtDD reports whether a < d.
func (a Real) LtDD(d DD) bool {
	return a[0] < d[0] || (a[0] == d[0] && (a[1] < d[1] || (a[1] == d[1] && a[2] < 0)))
}

// LeDD reports whether a <= d.
func (a Real) LeDD(d DD) bool {
	return a[0] < d[0] || (a[0] == d[0] && (a[1] < d[1] || (a[1] == d[1] && a[2] <= 0)))
}

// GtDD reports whether a > d.
func (a Real) GtDD(d DD) bool {
	return a[0] > d[0] || (a[0] == d[0] && (a[1] > d[1] || (a[1] == d[1] && a[2] > 0)))
}

// GeDD reports whether a >= d.
func (a Real) GeDD(d DD) bool {
	return a[0] > d[0] || (a[0] == d[0] && (a[1] > d[1] || (a[1] == d[1] && a[2] >= 0)))
}

// Min returns the smallest of its arguments.
func Min(a, b Real, more ...Real) Real {
	m := a
	if b.Lt(m) {
		m = b
	}
	for _, c := range more {
		if c.Lt(m) {
			m = c
		}
	}
	return m
}

// Max returns the largest of its arguments.
func Max(a, b Real, more ...Real) Real {
	m := a
	if b.Gt(m) {
		m = b
	}
	for _, c := range more {
		if c.Gt(m) {
			m = c
		}
	}
	return m
}
