package qd

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/qdcalc/internal/platform"
)

// ─────────────────────────────────────────────────────────────────────────────
// Property Tests
// ─────────────────────────────────────────────────────────────────────────────

func TestRenorm_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("renormalizing a canonical value leaves it unchanged", prop.ForAll(
		func(a Real) bool {
			b := a
			b.Renorm()
			return b == a && Normalize(a[0], a[1], a[2], a[3]) == a
		},
		genReal(),
	))

	properties.Property("renorm preserves the value of a carry chain", prop.ForAll(
		func(a Real, w float64) bool {
			// The fifth word overlaps c3.
			c4 := Word(Word(w) * platform.Abs(a[3]))
			r := renorm5(a[0], a[1], a[2], a[3], c4)
			want := a.BigFloat()
			want.Add(want, FromWord(c4).BigFloat())
			return canonical(r) && relErr(r, want) <= tolerance
		},
		genReal(), gen.Float64Range(-1, 1),
	))

	properties.TestingRun(t)
}

func TestArithmetic_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	sameSign := func(a, b Real) (Real, Real) {
		if a.IsNegative() != b.IsNegative() {
			b = b.Neg()
		}
		return a, b
	}

	properties.Property("SloppyAdd is canonical and accurate without cancellation", prop.ForAll(
		func(a, b Real) bool {
			a, b = sameSign(a, b)
			r := SloppyAdd(a, b)
			want := big0().Add(a.BigFloat(), b.BigFloat())
			return canonical(r) && relErr(r, want) <= tolerance
		},
		genReal(), genReal(),
	))

	properties.Property("IEEEAdd is canonical and accurate", prop.ForAll(
		func(a, b Real) bool {
			r := IEEEAdd(a, b)
			want := big0().Add(a.BigFloat(), b.BigFloat())
			return canonical(r) && relErr(r, want) <= tolerance
		},
		genReal(), genReal(),
	))

	properties.Property("AccurateMul and SloppyMul are canonical and accurate", prop.ForAll(
		func(a, b Real) bool {
			want := big0().Mul(a.BigFloat(), b.BigFloat())
			r1, r2 := AccurateMul(a, b), SloppyMul(a, b)
			return canonical(r1) && canonical(r2) &&
				relErr(r1, want) <= tolerance && relErr(r2, want) <= tolerance
		},
		genReal(), genReal(),
	))

	properties.Property("Sqr agrees with the exact square", prop.ForAll(
		func(a Real) bool {
			want := big0().Mul(a.BigFloat(), a.BigFloat())
			r := Sqr(a)
			return canonical(r) && relErr(r, want) <= tolerance
		},
		genReal(),
	))

	properties.Property("AccurateDiv and SloppyDiv are canonical and accurate", prop.ForAll(
		func(a, b Real) bool {
			if b.IsZero() {
				return true
			}
			want := big0().Quo(a.BigFloat(), b.BigFloat())
			r1, r2 := AccurateDiv(a, b), SloppyDiv(a, b)
			return canonical(r1) && canonical(r2) &&
				relErr(r1, want) <= tolerance && relErr(r2, want) <= 4*tolerance
		},
		genReal(), genReal(),
	))

	properties.Property("mixed word and double-word operands match the widened ones", prop.ForAll(
		func(a, b Real) bool {
			w, d := b[0], b.DD()
			ok := relErr(a.AddWord(w), big0().Add(a.BigFloat(), FromWord(w).BigFloat())) <= tolerance
			ok = ok && relErr(a.MulWord(w), big0().Mul(a.BigFloat(), FromWord(w).BigFloat())) <= tolerance
			ok = ok && relErr(a.MulDD(d), big0().Mul(a.BigFloat(), FromDD(d).BigFloat())) <= tolerance
			if w != 0 {
				ok = ok && relErr(a.DivWord(w), big0().Quo(a.BigFloat(), FromWord(w).BigFloat())) <= tolerance
				ok = ok && relErr(a.DivDD(d), big0().Quo(a.BigFloat(), FromDD(d).BigFloat())) <= 4*tolerance
			}
			return ok
		},
		genReal(), genReal(),
	))

	properties.Property("Sqrt squares back", prop.ForAll(
		func(a Real) bool {
			a = a.Abs()
			if a.IsZero() {
				return true
			}
			r := a.Sqrt()
			return canonical(r) && relErr(Sqr(r), a.BigFloat()) <= 2*tolerance
		},
		genReal(),
	))

	properties.TestingRun(t)
}

func TestSplitThreshold_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	// Leading words on both sides of the split threshold.
	large := genRealIn(splitExp-6, splitExp+4)
	// Operands whose product lands near the threshold.
	half := genRealIn(splitExp/2-4, splitExp/2+4)
	unit := genRealIn(-4, 4)

	properties.Property("additions around the threshold are canonical and accurate", prop.ForAll(
		func(a, b Real) bool {
			want := big0().Add(a.BigFloat(), b.BigFloat())
			r := IEEEAdd(a, b)
			ok := canonical(r) && relErr(r, want) <= tolerance
			if a.IsNegative() == b.IsNegative() {
				r = SloppyAdd(a, b)
				ok = ok && canonical(r) && relErr(r, want) <= tolerance
			}
			return ok
		},
		large, large,
	))

	properties.Property("products with a factor above the threshold are accurate", prop.ForAll(
		func(a, b Real) bool {
			want := big0().Mul(a.BigFloat(), b.BigFloat())
			r1, r2 := AccurateMul(a, b), SloppyMul(a, b)
			return canonical(r1) && canonical(r2) &&
				relErr(r1, want) <= tolerance && relErr(r2, want) <= tolerance &&
				relErr(a.MulWord(b[0]), big0().Mul(a.BigFloat(), FromWord(b[0]).BigFloat())) <= tolerance
		},
		large, unit,
	))

	properties.Property("products reaching the threshold are accurate", prop.ForAll(
		func(a, b Real) bool {
			want := big0().Mul(a.BigFloat(), b.BigFloat())
			r1, r2 := AccurateMul(a, b), SloppyMul(a, b)
			sq := Sqr(a)
			return canonical(r1) && canonical(r2) && canonical(sq) &&
				relErr(r1, want) <= tolerance && relErr(r2, want) <= tolerance &&
				relErr(sq, big0().Mul(a.BigFloat(), a.BigFloat())) <= tolerance
		},
		half, half,
	))

	properties.Property("quotients of values above the threshold are accurate", prop.ForAll(
		func(a, b Real) bool {
			// Keep the quotient finite.
			if b.Abs().LtWord(0x1p-8) {
				return true
			}
			want := big0().Quo(a.BigFloat(), b.BigFloat())
			r1, r2 := AccurateDiv(a, b), SloppyDiv(a, b)
			return canonical(r1) && canonical(r2) &&
				relErr(r1, want) <= tolerance && relErr(r2, want) <= 4*tolerance
		},
		large, unit,
	))

	properties.TestingRun(t)
}

func TestAlgebra_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("x + 0 == x and x + (-x) == 0", prop.ForAll(
		func(a Real) bool {
			return a.Add(Zero()) == a && IEEEAdd(a, Zero()) == a &&
				a.Add(a.Neg()).IsZero() && IEEEAdd(a, a.Neg()).IsZero()
		},
		genReal(),
	))

	properties.Property("addition is associative within the error bound", prop.ForAll(
		func(a, b, c Real) bool {
			if a.IsNegative() != b.IsNegative() {
				b = b.Neg()
			}
			if a.IsNegative() != c.IsNegative() {
				c = c.Neg()
			}
			l := a.Add(b).Add(c)
			r := a.Add(b.Add(c))
			return relErr(l, r.BigFloat()) <= 2*tolerance
		},
		genReal(), genReal(), genReal(),
	))

	properties.Property("comparisons agree with the exact order", prop.ForAll(
		func(a, b Real) bool {
			want := a.BigFloat().Cmp(b.BigFloat())
			return a.Cmp(b) == want &&
				a.Lt(b) == (want < 0) && a.Le(b) == (want <= 0) &&
				a.Gt(b) == (want > 0) && a.Ge(b) == (want >= 0) &&
				a.Eq(b) == (want == 0) && a.Ne(b) == (want != 0)
		},
		genReal(), genReal(),
	))

	properties.Property("comparisons resolve ties in the leading word", prop.ForAll(
		func(a Real, k int) bool {
			b := a.AddWord(platform.Ldexp(a[0], -k))
			want := a.BigFloat().Cmp(b.BigFloat())
			return a.Cmp(b) == want && b.Cmp(a) == -want
		},
		genReal(), gen.IntRange(platform.Mantissa+1, 3*platform.Mantissa),
	))

	properties.Property("word and double-word round trips are exact", prop.ForAll(
		func(a Real) bool {
			return FromWord(a[0]).Word() == a[0] && FromDD(a.DD()).DD() == a.DD() &&
				FromVec4(a.Vec4()) == a
		},
		genReal(),
	))

	properties.Property("Rem and Fmod leave a remainder smaller than the divisor", prop.ForAll(
		func(a, b Real) bool {
			if b.IsZero() {
				return true
			}
			// Keep the quotient within the integers a Real holds exactly.
			q := a.Div(b).Abs()
			if q.GtWord(platform.Ldexp(1, 2*platform.Mantissa)) {
				return true
			}
			r := a.Rem(b)
			f := a.Fmod(b)
			return r.Abs().Le(b.Abs().MulPwr2(0.5).MulWord(1+Word(tolerance))) &&
				f.Abs().Lt(b.Abs().MulWord(1+Word(tolerance)))
		},
		genReal(), genReal(),
	))

	properties.Property("MarshalText round-trips every component", prop.ForAll(
		func(a Real) bool {
			text, err := a.MarshalText()
			if err != nil {
				return false
			}
			var b Real
			return b.UnmarshalText(text) == nil && b == a
		},
		genReal(),
	))

	properties.TestingRun(t)
}
