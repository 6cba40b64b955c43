package qd

import (
	"math/big"

	"github.com/agbru/qdcalc/internal/platform"
)

// BigPrec is the precision, in bits, of the big.Float values exchanged with
// Real. It spans the whole exponent range of the word type plus headroom,
// so any finite expansion, however wide its gaps, converts exactly.
const BigPrec = uint(platform.MaxExp-platform.MinExp) + 2*platform.Mantissa + 64

// BigFloat returns the exact value of a as a big.Float of precision
// BigPrec. It returns nil for NaN.
func (a Real) BigFloat() *big.Float {
	z := new(big.Float).SetPrec(BigPrec)
	if a.IsNaN() {
		return nil
	}
	if a.IsInf() {
		return z.SetInf(a[0] < 0)
	}
	var t big.Float
	for i := 3; i >= 0; i-- {
		z.Add(z, t.SetFloat64(float64(a[i])))
	}
	return z
}

// FromBigFloat rounds x to the nearest expansion, one word at a time: each
// component is the word nearest to what the previous ones left over. The
// result is canonical. A nil x yields NaN.
func FromBigFloat(x *big.Float) Real {
	if x == nil {
		return NaN
	}
	if x.IsInf() {
		return FromWord(platform.Inf(x.Sign()))
	}

	rem := new(big.Float).SetPrec(BigPrec).Set(x)
	var r Real
	var t big.Float
	for i := range r {
		w := bigWord(rem)
		r[i] = w
		if platform.IsInf(w) {
			return FromWord(w)
		}
		if w == 0 {
			break
		}
		rem.Sub(rem, t.SetFloat64(float64(w)))
	}
	return r
}

// bigWord rounds x to the nearest word.
func bigWord(x *big.Float) Word {
	if platform.WordBits == 32 {
		f, _ := x.Float32()
		return Word(f)
	}
	f, _ := x.Float64()
	return Word(f)
}
