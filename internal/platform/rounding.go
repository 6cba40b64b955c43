package platform

import (
	"errors"
	"fmt"
)

// ErrRounding is returned by CheckRounding when the floating-point
// environment does not provide the semantics the error-free transforms
// depend on.
var ErrRounding = errors.New("platform: unsupported floating-point rounding")

// CheckRounding verifies at runtime that word arithmetic rounds to nearest
// with ties to even, keeps gradual underflow, and that FMS is exact.
//
// Go has no fast-math mode and never reassociates floating-point
// expressions; the only licence the compiler has is fusing x*y+z, which
// every transform defeats with an explicit Word conversion. This check
// covers what the language cannot promise about the hardware.
func CheckRounding() error {
	one := opaque(1)
	half := Ldexp(one, -Mantissa)
	if sum := one + half; sum != one {
		return fmt.Errorf("%w: 1 + 2^-%d = %v, want 1 (ties to even)", ErrRounding, Mantissa, sum)
	}
	odd := one + 2*half
	if sum := odd + half; sum != one+4*half {
		return fmt.Errorf("%w: (1 + 2^-%d) + 2^-%d rounded away from even", ErrRounding, Mantissa-1, Mantissa)
	}
	tiny := opaque(MinNormalWord())
	if tiny/2 == 0 {
		return fmt.Errorf("%w: subnormals are flushed to zero", ErrRounding)
	}
	if HasFMS {
		k := (Mantissa + 1) / 2
		a := one + Ldexp(one, -k)
		p := Word(a * a)
		if err := fmsExact(a, p); err != Ldexp(one, -2*k) {
			return fmt.Errorf("%w: fused multiply-subtract error term is %v, want 2^-%d", ErrRounding, err, 2*k)
		}
	}
	return nil
}

// UnguardedContraction reports whether the compiler fuses a plain a*b - c
// on this target. It is informational: the transforms never rely on the
// unguarded form.
func UnguardedContraction() bool {
	k := (Mantissa + 1) / 2
	a := opaque(1 + Ldexp(1, -k))
	p := Word(a * a)
	return contract(a, a, p) != 0
}

//go:noinline
func opaque(x Word) Word { return x }

//go:noinline
func contract(a, b, c Word) Word { return a*b - c }
