package eft

import "github.com/agbru/qdcalc/internal/platform"

// Word is the component type selected by the platform build tags.
type Word = platform.Word

// QuickTwoSum computes s = fl(a+b) and err = (a+b) - s. Requires |a| >= |b|.
func QuickTwoSum(a, b Word) (s, err Word) {
	s = a + b
	err = b - (s - a)
	return s, err
}

// QuickTwoDiff computes s = fl(a-b) and err = (a-b) - s. Requires |a| >= |b|.
func QuickTwoDiff(a, b Word) (s, err Word) {
	s = a - b
	err = (a - s) - b
	return s, err
}

// TwoSum computes s = fl(a+b) and err = (a+b) - s for any operand order.
func TwoSum(a, b Word) (s, err Word) {
	s = a + b
	bb := s - a
	err = (a - (s - bb)) + (b - bb)
	return s, err
}

// TwoDiff computes s = fl(a-b) and err = (a-b) - s for any operand order.
func TwoDiff(a, b Word) (s, err Word) {
	s = a - b
	bb := s - a
	err = (a - (s - bb)) - (b + bb)
	return s, err
}

// Split decomposes a into hi+lo, each holding at most half of the
// significand bits, so that products of the halves are exact.
//
// Words above platform.SplitThreshold in magnitude are scaled down by a
// power of two before splitting and scaled back afterwards, so the
// Veltkamp product cannot overflow.
func Split(a Word) (hi, lo Word) {
	if a > platform.SplitThreshold || a < -platform.SplitThreshold {
		a = Word(a * platform.SplitScaleDown)
		t := Word(platform.Splitter * a)
		hi = t - (t - a)
		lo = a - hi
		return Word(hi * platform.SplitScaleUp), Word(lo * platform.SplitScaleUp)
	}
	t := Word(platform.Splitter * a)
	hi = t - (t - a)
	lo = a - hi
	return hi, lo
}

// Nint returns the word nearest to d, rounding halfway cases up.
func Nint(d Word) Word {
	if d == platform.Floor(d) {
		return d
	}
	return platform.Floor(d + 0.5)
}

// Aint truncates d toward zero.
func Aint(d Word) Word {
	if d >= 0 {
		return platform.Floor(d)
	}
	return platform.Ceil(d)
}
