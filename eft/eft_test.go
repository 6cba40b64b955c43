package eft

import (
	"math"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/qdcalc/internal/platform"
)

// ─────────────────────────────────────────────────────────────────────────────
// Test Utilities
// ─────────────────────────────────────────────────────────────────────────────

// exactPrec is wide enough to hold the exact sum or product of any two
// words whose exponents are in the ranges generated below.
const exactPrec = 4096

func exact(ws ...Word) *big.Float {
	z := new(big.Float).SetPrec(exactPrec)
	for _, w := range ws {
		z.Add(z, new(big.Float).SetFloat64(float64(w)))
	}
	return z
}

func exactProd(a, b Word) *big.Float {
	z := new(big.Float).SetPrec(exactPrec)
	return z.Mul(new(big.Float).SetFloat64(float64(a)), new(big.Float).SetFloat64(float64(b)))
}

// halfULP returns half a unit in the last place of s.
func halfULP(s Word) float64 {
	if s == 0 {
		return 0
	}
	_, e := math.Frexp(float64(s))
	if e-1 < platform.MinExp {
		e = platform.MinExp + 1
	}
	return math.Ldexp(1, e-platform.Mantissa-1)
}

func word(m float64, e int) Word {
	return Word(math.Ldexp(m, e))
}

func finite(ws ...Word) bool {
	for _, w := range ws {
		if platform.IsNaN(w) || platform.IsInf(w) {
			return false
		}
	}
	return true
}

// sumSpan keeps sums away from overflow; prodSpan keeps products and their
// error terms inside the normalized range.
var (
	sumSpan  = platform.MaxExp - 2
	prodSpan = (platform.MaxExp - 2*platform.Mantissa) / 2
)

// ─────────────────────────────────────────────────────────────────────────────
// Property Tests
// ─────────────────────────────────────────────────────────────────────────────

func TestTwoSum_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 2000
	properties := gopter.NewProperties(parameters)

	properties.Property("TwoSum is error-free and |err| <= ulp(s)/2", prop.ForAll(
		func(m1 float64, e1 int, m2 float64, e2 int) bool {
			a, b := word(m1, e1), word(m2, e2)
			s, err := TwoSum(a, b)
			if !finite(s, err) {
				return true
			}
			if exact(s, err).Cmp(exact(a, b)) != 0 {
				return false
			}
			return math.Abs(float64(err)) <= halfULP(s)
		},
		gen.Float64Range(-1, 1), gen.IntRange(-sumSpan, sumSpan),
		gen.Float64Range(-1, 1), gen.IntRange(-sumSpan, sumSpan),
	))

	properties.Property("TwoDiff is error-free", prop.ForAll(
		func(m1 float64, e1 int, m2 float64, e2 int) bool {
			a, b := word(m1, e1), word(m2, e2)
			s, err := TwoDiff(a, b)
			if !finite(s, err) {
				return true
			}
			want := exact(a).Sub(exact(a), exact(b))
			return exact(s, err).Cmp(want) == 0
		},
		gen.Float64Range(-1, 1), gen.IntRange(-sumSpan, sumSpan),
		gen.Float64Range(-1, 1), gen.IntRange(-sumSpan, sumSpan),
	))

	properties.Property("QuickTwoSum is error-free when |a| >= |b|", prop.ForAll(
		func(m1 float64, e1 int, m2 float64, e2 int) bool {
			a, b := word(m1, e1), word(m2, e2)
			if platform.Abs(a) < platform.Abs(b) {
				a, b = b, a
			}
			s, err := QuickTwoSum(a, b)
			if !finite(s, err) {
				return true
			}
			return exact(s, err).Cmp(exact(a, b)) == 0
		},
		gen.Float64Range(-1, 1), gen.IntRange(-sumSpan, sumSpan),
		gen.Float64Range(-1, 1), gen.IntRange(-sumSpan, sumSpan),
	))

	properties.TestingRun(t)
}

func TestTwoProd_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 2000
	properties := gopter.NewProperties(parameters)

	properties.Property("TwoProd is error-free", prop.ForAll(
		func(m1 float64, e1 int, m2 float64, e2 int) bool {
			a, b := word(m1, e1), word(m2, e2)
			p, err := TwoProd(a, b)
			if !finite(p, err) {
				return true
			}
			return exact(p, err).Cmp(exactProd(a, b)) == 0
		},
		gen.Float64Range(-1, 1), gen.IntRange(-prodSpan, prodSpan),
		gen.Float64Range(-1, 1), gen.IntRange(-prodSpan, prodSpan),
	))

	properties.Property("TwoSqr matches TwoProd(a, a)", prop.ForAll(
		func(m float64, e int) bool {
			a := word(m, e)
			p1, e1 := TwoSqr(a)
			p2, e2 := TwoProd(a, a)
			return p1 == p2 && e1 == e2
		},
		gen.Float64Range(-1, 1), gen.IntRange(-prodSpan, prodSpan),
	))

	properties.Property("Split halves reconstruct a and multiply exactly", prop.ForAll(
		func(m float64, e int) bool {
			a := word(m, e)
			hi, lo := Split(a)
			if hi+lo != a || exact(hi, lo).Cmp(exact(a)) != 0 {
				return false
			}
			return exactProd(hi, hi).Cmp(exact(Word(hi*hi))) == 0
		},
		gen.Float64Range(-1, 1), gen.IntRange(-prodSpan, prodSpan),
	))

	properties.TestingRun(t)
}

// ─────────────────────────────────────────────────────────────────────────────
// Unit Tests
// ─────────────────────────────────────────────────────────────────────────────

func TestTwoSum_LostLowWord(t *testing.T) {
	t.Parallel()
	tiny := platform.Ldexp(1, -2*platform.Mantissa)
	s, err := TwoSum(1, tiny)
	if s != 1 {
		t.Errorf("s = %v, want 1", s)
	}
	if err != tiny {
		t.Errorf("err = %v, want %v", err, tiny)
	}
}

func TestSplitLargeMagnitudes(t *testing.T) {
	t.Parallel()
	for _, a := range []Word{
		platform.SplitThreshold,
		-platform.SplitThreshold * 1.5,
		platform.Ldexp(1.25, platform.MaxExp-8),
	} {
		hi, lo := Split(a)
		if !finite(hi, lo) {
			t.Errorf("Split(%v) = (%v, %v), not finite", a, hi, lo)
			continue
		}
		if hi+lo != a {
			t.Errorf("Split(%v): hi+lo = %v", a, hi+lo)
		}
	}
}

func TestNintAint(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in         Word
		nint, aint Word
	}{
		{2.5, 3, 2},
		{-2.5, -2, -2},
		{2.4, 2, 2},
		{-2.6, -3, -2},
		{7, 7, 7},
		{-0.5, 0, 0},
	}
	for _, tt := range tests {
		if got := Nint(tt.in); got != tt.nint {
			t.Errorf("Nint(%v) = %v, want %v", tt.in, got, tt.nint)
		}
		if got := Aint(tt.in); got != tt.aint {
			t.Errorf("Aint(%v) = %v, want %v", tt.in, got, tt.aint)
		}
	}
}

func TestTransformsDoNotAllocate(t *testing.T) {
	a, b := Word(1.0/3.0), Word(2.0/7.0)
	var sink Word
	allocs := testing.AllocsPerRun(100, func() {
		s, e := TwoSum(a, b)
		p, f := TwoProd(a, b)
		h, l := Split(a)
		sink += s + e + p + f + h + l
	})
	if allocs != 0 {
		t.Errorf("transforms allocated %v times per run", allocs)
	}
	_ = sink
}

// ─────────────────────────────────────────────────────────────────────────────
// Fuzz Tests
// ─────────────────────────────────────────────────────────────────────────────

func FuzzTwoSum(f *testing.F) {
	f.Add(1.0, 1e-30)
	f.Add(1e300, -1e300)
	f.Add(0.1, 0.2)
	f.Add(-3.5, 3.5000000000000004)
	f.Fuzz(func(t *testing.T, x, y float64) {
		a, b := Word(x), Word(y)
		s, err := TwoSum(a, b)
		if !finite(a, b, s, err) {
			return
		}
		if exact(s, err).Cmp(exact(a, b)) != 0 {
			t.Fatalf("TwoSum(%v, %v) = (%v, %v) is not exact", a, b, s, err)
		}
	})
}

func FuzzTwoProd(f *testing.F) {
	f.Add(1.0/3.0, 3.0)
	f.Add(1e150, 1e-150)
	f.Add(134217729.0, 134217729.0)
	f.Fuzz(func(t *testing.T, x, y float64) {
		a, b := Word(x), Word(y)
		p, err := TwoProd(a, b)
		if !finite(a, b, p, err) || p == 0 {
			return
		}
		// Error terms below the subnormal range are not representable.
		if math.Abs(float64(p)) < math.Ldexp(1, platform.MinExp+2*platform.Mantissa) {
			return
		}
		if exact(p, err).Cmp(exactProd(a, b)) != 0 {
			t.Fatalf("TwoProd(%v, %v) = (%v, %v) is not exact", a, b, p, err)
		}
	})
}
