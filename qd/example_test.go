//go:build !qd_float32

package qd_test

import (
	"fmt"

	"github.com/agbru/qdcalc/qd"
)

func ExampleReal_AddWord() {
	tiny := 0x1p-95
	r := qd.One().AddWord(tiny)
	fmt.Println(r.Dump())
	fmt.Println(1+tiny == 1.0)
	// Output:
	// [0x1p+00 0x1p-95 0x0p+00 0x0p+00]
	// true
}

func ExampleReal_Sqrt() {
	fmt.Printf("%.60f\n", qd.FromWord(2).Sqrt())
	// Output:
	// 1.414213562373095048801688724209698078569671875376948073176680
}

func ExampleParse() {
	r, err := qd.Parse("0.1")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.40e\n", r.Mul(qd.FromWord(3)))
	// Output:
	// 3.0000000000000000000000000000000000000000e-01
}

func ExamplePi() {
	fmt.Println(qd.Pi)
	fmt.Println(qd.Pi.Dump())
	// Output:
	// 3.1415926535897932384626433832795028841971693993751058209749446
	// [0x1.921fb54442d18p+01 0x1.1a62633145c07p-53 -0x1.f1976b7ed8fbcp-109 0x1.4cf98e804177dp-163]
}

func ExampleStrategy() {
	s := qd.Strategy()
	fmt.Println(s.WordBits)
	// Output:
	// 64
}
