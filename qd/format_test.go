package qd

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		check func(Real) bool
	}{
		{"1", Real.IsOne},
		{"  -2.5 ", func(r Real) bool { return r.EqWord(-2.5) }},
		{"0x1p-3", func(r Real) bool { return r.EqWord(0.125) }},
		{"1e2", func(r Real) bool { return r.EqWord(100) }},
		{"NaN", Real.IsNaN},
		{"-Inf", func(r Real) bool { return r.IsInf() && r.IsNegative() }},
		{"+infinity", func(r Real) bool { return r.IsInf() && r.IsPositive() }},
		{"1e99999", Real.IsInf},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			r, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if !tt.check(r) {
				t.Errorf("Parse(%q) = %s", tt.in, r.Dump())
			}
		})
	}

	for _, bad := range []string{"", "abc", "1.2.3", "--1"} {
		if _, err := Parse(bad); !errors.Is(err, ErrSyntax) {
			t.Errorf("Parse(%q) error = %v, want ErrSyntax", bad, err)
		}
	}
}

func TestParseDecimalPrecision(t *testing.T) {
	t.Parallel()
	r := MustParse("0.1")
	want, _, _ := big.ParseFloat("0.1", 10, BigPrec, big.ToNearestEven)
	if e := relErr(r, want); e > float64(Eps) {
		t.Errorf("0.1 relative error %g", e)
	}
	if !canonical(r) {
		t.Errorf("0.1 = %s is not canonical", r.Dump())
	}

	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic on bad input")
		}
	}()
	MustParse("not a number")
}

func TestStringAndText(t *testing.T) {
	t.Parallel()
	if got := One().String(); got != "1" {
		t.Errorf("One().String() = %q", got)
	}
	if got := NaN.String(); got != "NaN" {
		t.Errorf("NaN.String() = %q", got)
	}
	if got := Inf.Neg().String(); got != "-Inf" {
		t.Errorf("-Inf.String() = %q", got)
	}
	if got := FromWord(0.5).Text('f', 3); got != "0.500" {
		t.Errorf("Text('f', 3) = %q", got)
	}
	pi := Pi.String()
	const prefix = "3.14159265358979323846"
	if !strings.HasPrefix(pi, prefix) {
		t.Errorf("Pi.String() = %q, want prefix %q", pi, prefix)
	}
}

func TestFormatVerbs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		arg    Real
		want   string
	}{
		{"%v", FromWord(0.5), "0.5"},
		{"%s", FromWord(-2), "-2"},
		{"%.10f", Pi, "3.1415926536"},
		{"%.3e", FromWord(1234.5), "1.234e+03"},
		{"%.3E", FromWord(1234.5), "1.234E+03"},
		{"%10.2f", FromWord(1.5), "      1.50"},
		{"%-8.1f|", FromWord(1.5), "1.5     |"},
		{"%+.1f", FromWord(1.5), "+1.5"},
		{"%08.2f", FromWord(-1.5), "-0001.50"},
		{"%f", FromWord(2), "2.000000"},
		{"%6v", NaN, "   NaN"},
		{"%06v", NaN, "   NaN"},
		{"%d", One(), "%!d(qd.Real=1)"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()
			if got := fmt.Sprintf(tt.format, tt.arg); got != tt.want {
				t.Errorf("Sprintf(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestScan(t *testing.T) {
	t.Parallel()
	var a, b Real
	n, err := fmt.Sscan("0.25 -3e1", &a, &b)
	if err != nil || n != 2 {
		t.Fatalf("Sscan: n=%d err=%v", n, err)
	}
	if !a.EqWord(0.25) || !b.EqWord(-30) {
		t.Errorf("scanned %s and %s", a.Dump(), b.Dump())
	}
	if _, err := fmt.Sscan("zzz", &a); err == nil {
		t.Error("Sscan of garbage did not fail")
	}
}

func TestTextMarshaling(t *testing.T) {
	t.Parallel()
	for _, r := range []Real{Pi, E.Neg(), Zero(), Inf, FromWords(1, 1e-30)} {
		text, err := r.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%s): %v", r.Dump(), err)
		}
		var back Real
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != r && !(r.IsInf() && back.IsInf()) {
			t.Errorf("round trip of %s gave %s via %q", r.Dump(), back.Dump(), text)
		}
	}
	if text, _ := NaN.MarshalText(); string(text) != "NaN" {
		t.Errorf("NaN marshals to %q", text)
	}
	var r Real
	if err := r.UnmarshalText([]byte("bogus")); !errors.Is(err, ErrSyntax) {
		t.Errorf("UnmarshalText(bogus) = %v", err)
	}
}

func TestDump(t *testing.T) {
	t.Parallel()
	if got := New(1, 0.5, 0, 0).Dump(); got != "[0x1p+00 0x1p-01 0x0p+00 0x0p+00]" {
		t.Errorf("Dump() = %q", got)
	}
}
