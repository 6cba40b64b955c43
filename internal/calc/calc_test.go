package calc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/agbru/qdcalc/qd"
	"github.com/google/go-cmp/cmp"
)

func TestEval(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		expr string
		want qd.Real
	}{
		{"number", "42", qd.FromInt(42)},
		{"addition", "1 2 +", qd.FromInt(3)},
		{"subtraction order", "10 4 -", qd.FromInt(6)},
		{"division order", "1 4 /", qd.FromWord(0.25)},
		{"power", "2 10 ^ 1 -", qd.FromInt(1023)},
		{"negative power", "2 -2 ^", qd.FromWord(0.25)},
		{"constant", "pi", qd.Pi},
		{"case insensitive", "PI 2 *", qd.TwoPi},
		{"unary chain", "2.5 neg abs floor", qd.FromInt(2)},
		{"ceil", "-2.5 ceil", qd.FromInt(-2)},
		{"nint", "2.5 nint", qd.FromInt(3)},
		{"aint", "-2.7 aint", qd.FromInt(-2)},
		{"min max", "3 1 min 2 max", qd.FromInt(2)},
		{"rem", "7 2 rem", qd.FromInt(-1)},
		{"fmod", "7 2 fmod", qd.FromInt(1)},
		{"inv", "4 inv", qd.FromWord(0.25)},
		{"sqr", "3 sqr", qd.FromInt(9)},
		{"dup", "3 dup *", qd.FromInt(9)},
		{"swap", "1 2 swap -", qd.FromInt(1)},
		{"drop", "1 2 drop", qd.FromInt(1)},
		{"exponent literal", "1e3 1 +", qd.FromInt(1001)},
		{"surrounding whitespace", "  \t1\n2 +  ", qd.FromInt(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Eval(tt.expr)
			if err != nil {
				t.Fatalf("Eval(%q) error = %v", tt.expr, err)
			}
			if diff := cmp.Diff(tt.want.Vec4(), got.Vec4()); diff != "" {
				t.Errorf("Eval(%q) mismatch (-want +got):\n%s", tt.expr, diff)
			}
		})
	}
}

func TestEvalOneThird(t *testing.T) {
	t.Parallel()
	got, err := Eval("1 3 / 3 *")
	if err != nil {
		t.Fatal(err)
	}
	if d := got.SubWord(1).Abs(); d.GtWord(4*qd.Eps) {
		t.Errorf("(1/3)*3 - 1 = %v, want within 4 eps", d)
	}
}

func TestEvalRoots(t *testing.T) {
	t.Parallel()
	tests := []struct {
		expr string
		want qd.Real
	}{
		{"27 3 root", qd.FromInt(3)},
		{"16 sqrt", qd.FromInt(4)},
		{"2 sqrt sqr", qd.FromInt(2)},
		{"pi 5 ^ 5 root", qd.Pi},
	}
	for _, tt := range tests {
		got, err := Eval(tt.expr)
		if err != nil {
			t.Errorf("Eval(%q) error = %v", tt.expr, err)
			continue
		}
		if d := got.Sub(tt.want).Abs(); d.Gt(tt.want.Abs().MulWord(16*qd.Eps)) {
			t.Errorf("Eval(%q) = %v, off by %v", tt.expr, got, d)
		}
	}
}

func TestEvalSpecialValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		expr  string
		check func(qd.Real) bool
	}{
		{"nan", qd.Real.IsNaN},
		{"-inf", func(r qd.Real) bool { return r.IsInf() && r.IsNegative() }},
		{"1 0 /", func(r qd.Real) bool { return r.IsInf() && r.IsPositive() }},
		{"-1 sqrt", qd.Real.IsNaN},
		{"0 0 ^", qd.Real.IsNaN},
	}
	for _, tt := range tests {
		got, err := Eval(tt.expr)
		if err != nil {
			t.Errorf("Eval(%q) error = %v", tt.expr, err)
			continue
		}
		if !tt.check(got) {
			t.Errorf("Eval(%q) = %v", tt.expr, got)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		expr    string
		wantErr error
		wantPos int
		wantTok string
	}{
		{"empty", "   ", ErrEmpty, 3, ""},
		{"underflow binary", "1 +", ErrUnderflow, 2, "+"},
		{"underflow unary", "sqrt", ErrUnderflow, 0, "sqrt"},
		{"underflow swap", "1 swap", ErrUnderflow, 2, "swap"},
		{"underflow drop", "drop", ErrUnderflow, 0, "drop"},
		{"underflow dup", "dup", ErrUnderflow, 0, "dup"},
		{"unknown", "1 2 frob", ErrUnknown, 4, "frob"},
		{"unbalanced", "1 2", ErrUnbalanced, 3, ""},
		{"fractional power", "2 0.5 ^", ErrNotInteger, 6, "^"},
		{"infinite power", "2 inf ^", ErrNotInteger, 6, "^"},
		{"huge power", "2 1e9 ^", ErrOutOfRange, 6, "^"},
		{"zeroth root", "8 0 root", ErrOutOfRange, 4, "root"},
		{"bad number", "1 2..3 +", qd.ErrSyntax, 2, "2..3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Eval(tt.expr)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Eval(%q) error = %v, want %v", tt.expr, err, tt.wantErr)
			}
			var calcErr *Error
			if !errors.As(err, &calcErr) {
				t.Fatalf("Eval(%q) error %T is not *Error", tt.expr, err)
			}
			if calcErr.Pos != tt.wantPos || calcErr.Token != tt.wantTok {
				t.Errorf("Eval(%q) error at %d %q, want %d %q", tt.expr, calcErr.Pos, calcErr.Token, tt.wantPos, tt.wantTok)
			}
		})
	}
}

func TestStackPersistsAcrossExec(t *testing.T) {
	t.Parallel()
	var s Stack
	if err := s.Exec("1 2"); err != nil {
		t.Fatal(err)
	}
	if err := s.Exec("+ 10 *"); err != nil {
		t.Fatal(err)
	}
	top, ok := s.Top()
	if !ok || !top.EqWord(30) {
		t.Errorf("Top() = %v, %v, want 30", top, ok)
	}

	if err := s.Exec("5 frob"); err == nil {
		t.Fatal("Exec with unknown token succeeded")
	}
	if diff := cmp.Diff([]qd.Real{qd.FromInt(30)}, s.Values()); diff != "" {
		t.Errorf("stack not restored after error (-want +got):\n%s", diff)
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() after Clear = %d", s.Len())
	}
	if _, ok := s.Top(); ok {
		t.Error("Top() on empty stack reported a value")
	}
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()
	_, err := Eval("1 +")
	if got, want := err.Error(), `stack underflow at position 2 ("+")`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	_, err = Eval("")
	if got, want := err.Error(), "empty expression at position 0"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNamesAndConstants(t *testing.T) {
	t.Parallel()
	names := Names()
	for _, want := range []string{"+", "sqrt", "root", "dup", "pi", "eps"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("Names() missing %q", want)
		}
	}
	if got := len(Constants()); got != 9 {
		t.Errorf("len(Constants()) = %d, want 9", got)
	}
	if c, ok := Constant("LN2"); !ok || !c.Eq(qd.Ln2) {
		t.Errorf("Constant(LN2) = %v, %v", c, ok)
	}
	if _, ok := Constant("tau"); ok {
		t.Error("Constant(tau) reported a value")
	}
}

func FuzzEval(f *testing.F) {
	for _, seed := range []string{"1 2 +", "2 sqrt", "pi 3 root", "1 0 /", "dup", "1e400 neg"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, expr string) {
		got, err := Eval(expr)
		if err != nil {
			var calcErr *Error
			if !errors.As(err, &calcErr) {
				t.Fatalf("Eval(%q) error %T is not *Error", expr, err)
			}
			if calcErr.Pos < 0 || calcErr.Pos > len(expr) {
				t.Fatalf("Eval(%q) error position %d out of range", expr, calcErr.Pos)
			}
			return
		}
		_ = got.String()
	})
}

func ExampleEval() {
	x, err := Eval("2 sqrt sqr")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.20f\n", x)
	// Output: 2.00000000000000000000
}
