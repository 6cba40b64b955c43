package accuracy

import (
	"math/big"

	"github.com/agbru/qdcalc/qd"
)

// Operation names shared by the variants of one arithmetic operation.
const (
	OpAdd = "add"
	OpMul = "mul"
	OpDiv = "div"
)

// Variant is one implementation of an arithmetic operation under study.
type Variant struct {
	// Name identifies the variant, e.g. "sloppy mul".
	Name string
	// Op is the operation it implements.
	Op string
	// Accurate marks the variant with the tighter error bound of the pair.
	Accurate bool
	// Fn computes the quad-double result.
	Fn func(a, b qd.Real) qd.Real
}

// Variants returns the six variants studied, paired by operation with the
// sloppy variant first.
func Variants() []Variant {
	return []Variant{
		{Name: "sloppy add", Op: OpAdd, Fn: qd.SloppyAdd},
		{Name: "ieee add", Op: OpAdd, Accurate: true, Fn: qd.IEEEAdd},
		{Name: "sloppy mul", Op: OpMul, Fn: qd.SloppyMul},
		{Name: "accurate mul", Op: OpMul, Accurate: true, Fn: qd.AccurateMul},
		{Name: "sloppy div", Op: OpDiv, Fn: qd.SloppyDiv},
		{Name: "accurate div", Op: OpDiv, Accurate: true, Fn: qd.AccurateDiv},
	}
}

// reference computes the operation on x and y into z at qd.BigPrec.
func reference(op string, z, x, y *big.Float) *big.Float {
	switch op {
	case OpAdd:
		return z.Add(x, y)
	case OpMul:
		return z.Mul(x, y)
	default:
		return z.Quo(x, y)
	}
}
