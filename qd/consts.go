package qd

import (
	"math"
	"math/big"

	"github.com/agbru/qdcalc/internal/platform"
)

// NDigits is the number of decimal digits a Real carries reliably.
var NDigits = int(math.Floor(float64(4*platform.Mantissa-3) * math.Log10(2)))

const (
	piDigits   = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798"
	eDigits    = "2.71828182845904523536028747135266249775724709369995957496696762772407663035354759457138217852516642742746"
	ln2Digits  = "0.693147180559945309417232121458176568075500134360255254120680009493393621969694715605863326996418687542"
	ln10Digits = "2.30258509299404568401799145468436420760110148862877297603332790096757260967735248023599720508959829834196778"
)

// Named constants, each rounded component by component from a decimal
// expansion well beyond the precision of a Real.
var (
	Pi       = constant(piDigits, 1, 1)
	TwoPi    = constant(piDigits, 2, 1)
	Pi2      = constant(piDigits, 1, 2)
	Pi4      = constant(piDigits, 1, 4)
	ThreePi4 = constant(piDigits, 3, 4)
	E        = constant(eDigits, 1, 1)
	Ln2      = constant(ln2Digits, 1, 1)
	Ln10     = constant(ln10Digits, 1, 1)
)

// Special values and limits.
var (
	NaN = Real{platform.NaN(), platform.NaN(), platform.NaN(), platform.NaN()}
	Inf = Real{platform.Inf(1), platform.Inf(1), platform.Inf(1), platform.Inf(1)}

	// Eps is the relative spacing of a Real, 2^-(4p-3) for p-bit words.
	Eps = platform.Ldexp(1, -(4*platform.Mantissa - 3))

	// MinNormalized is the smallest magnitude whose four components are all
	// normal words.
	MinNormalized = platform.Ldexp(1, platform.MinExp+3*platform.Mantissa)

	// MaxValue is the largest finite expansion.
	MaxValue = Real{
		platform.MaxWord,
		platform.Ldexp(platform.MaxWord, -(platform.Mantissa + 1)),
		platform.Ldexp(platform.MaxWord, -2*(platform.Mantissa+1)),
		platform.Ldexp(platform.MaxWord, -3*(platform.Mantissa+1)),
	}

	// SafeMax is MaxValue with a leading word of only half-width significand, so
	// that splitting it cannot round up to infinity.
	SafeMax = Real{
		platform.Ldexp(1-platform.Ldexp(1, -(platform.Mantissa/2)), platform.MaxExp+1),
		MaxValue[1], MaxValue[2], MaxValue[3],
	}
)

func constant(digits string, num, den int64) Real {
	x, _, err := big.ParseFloat(digits, 10, BigPrec, big.ToNearestEven)
	if err != nil {
		panic("qd: bad constant " + digits)
	}
	x.Mul(x, new(big.Float).SetInt64(num))
	x.Quo(x, new(big.Float).SetInt64(den))
	return FromBigFloat(x)
}
