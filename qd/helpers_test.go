package qd

import (
	"math"
	"math/big"
	"math/rand/v2"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	"github.com/agbru/qdcalc/internal/platform"
)

// ─────────────────────────────────────────────────────────────────────────────
// Test Utilities
// ─────────────────────────────────────────────────────────────────────────────

// tolerance is the relative error accepted from a single core operation,
// 2^-200 with float64 words.
var tolerance = 512 * float64(Eps)

// span bounds operand exponents so that products and their trailing
// components stay within the normalized range.
const span = (platform.MaxExp - 4*platform.Mantissa) / 2

func big0() *big.Float { return new(big.Float).SetPrec(BigPrec) }

// relErr returns |got - want| / |want|, or |got| when want is zero.
func relErr(got Real, want *big.Float) float64 {
	g := got.BigFloat()
	if g == nil {
		return math.Inf(1)
	}
	d := big0().Sub(g, want)
	d.Abs(d)
	if want.Sign() != 0 {
		d.Quo(d, big0().Abs(want))
	}
	f, _ := d.Float64()
	return f
}

// canonical reports whether r is in canonical form.
func canonical(r Real) bool { return r.IsCanonical() }

// realFrom builds the canonical expansion nearest to the sum of four
// mantissas scaled to consecutive word positions below 2^e.
func realFrom(m [4]float64, e int) Real {
	x := big0()
	var t big.Float
	for i, mi := range m {
		x.Add(x, t.SetFloat64(math.Ldexp(mi, e-i*platform.Mantissa)))
	}
	return FromBigFloat(x)
}

// splitExp is the exponent of platform.SplitThreshold.
var splitExp = math.Ilogb(float64(platform.SplitThreshold))

// genReal generates canonical expansions with full-width mantissas and
// exponents in [-span, span].
func genReal() gopter.Gen {
	return genRealIn(-span, span)
}

// genRealIn generates canonical expansions with full-width mantissas and
// exponents in [lo, hi].
func genRealIn(lo, hi int) gopter.Gen {
	return gopter.CombineGens(
		gen.Float64Range(-1, 1), gen.Float64Range(-1, 1),
		gen.Float64Range(-1, 1), gen.Float64Range(-1, 1),
		gen.IntRange(lo, hi),
	).Map(func(v []interface{}) Real {
		return realFrom([4]float64{v[0].(float64), v[1].(float64), v[2].(float64), v[3].(float64)}, v[4].(int))
	})
}

// randReal draws a canonical expansion from rng with exponent in
// [-maxExp, maxExp].
func randReal(rng *rand.Rand, maxExp int) Real {
	var m [4]float64
	for i := range m {
		m[i] = 2*rng.Float64() - 1
	}
	return realFrom(m, rng.IntN(2*maxExp+1)-maxExp)
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
