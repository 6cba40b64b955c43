package calc

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/agbru/qdcalc/qd"
)

// Sentinel causes wrapped by Error.
var (
	ErrUnderflow  = errors.New("stack underflow")
	ErrUnbalanced = errors.New("unbalanced expression")
	ErrUnknown    = errors.New("unknown token")
	ErrEmpty      = errors.New("empty expression")
	ErrNotInteger = errors.New("operand must be an integer")
	ErrOutOfRange = errors.New("operand out of range")
)

// MaxExponent bounds the integer operands of ^ and root.
const MaxExponent = 1 << 20

// Error reports a failure at a token of the expression.
type Error struct {
	// Pos is the byte offset of the token in the expression.
	Pos int
	// Token is the offending token, empty at end of input.
	Token string
	// Err is the cause, one of the sentinel errors or a qd parse error.
	Err error
}

func (e *Error) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%v at position %d", e.Err, e.Pos)
	}
	return fmt.Sprintf("%v at position %d (%q)", e.Err, e.Pos, e.Token)
}

func (e *Error) Unwrap() error { return e.Err }

type op struct {
	arity int
	fn    func(args []qd.Real) (qd.Real, error)
}

func unary(f func(qd.Real) qd.Real) op {
	return op{1, func(a []qd.Real) (qd.Real, error) { return f(a[0]), nil }}
}

func binary(f func(a, b qd.Real) qd.Real) op {
	return op{2, func(a []qd.Real) (qd.Real, error) { return f(a[0], a[1]), nil }}
}

// intArg converts x to a machine integer in [lo, hi].
func intArg(x qd.Real, lo, hi int) (int, error) {
	if !x.IsFinite() || !x.Aint().Eq(x) {
		return 0, ErrNotInteger
	}
	n := x.Int()
	if n < int64(lo) || n > int64(hi) {
		return 0, ErrOutOfRange
	}
	return int(n), nil
}

var constants = map[string]func() qd.Real{
	"pi":   func() qd.Real { return qd.Pi },
	"2pi":  func() qd.Real { return qd.TwoPi },
	"pi2":  func() qd.Real { return qd.Pi2 },
	"pi4":  func() qd.Real { return qd.Pi4 },
	"3pi4": func() qd.Real { return qd.ThreePi4 },
	"e":    func() qd.Real { return qd.E },
	"ln2":  func() qd.Real { return qd.Ln2 },
	"ln10": func() qd.Real { return qd.Ln10 },
	"eps":  func() qd.Real { return qd.FromWord(qd.Eps) },
}

var operators = map[string]op{
	"+":     binary(qd.Real.Add),
	"-":     binary(qd.Real.Sub),
	"*":     binary(qd.Real.Mul),
	"/":     binary(qd.Real.Div),
	"min":   binary(func(a, b qd.Real) qd.Real { return qd.Min(a, b) }),
	"max":   binary(func(a, b qd.Real) qd.Real { return qd.Max(a, b) }),
	"rem":   binary(qd.Real.Rem),
	"fmod":  binary(qd.Real.Fmod),
	"neg":   unary(qd.Real.Neg),
	"sqr":   unary(qd.Real.Sqr),
	"sqrt":  unary(qd.Real.Sqrt),
	"abs":   unary(qd.Real.Abs),
	"floor": unary(qd.Real.Floor),
	"ceil":  unary(qd.Real.Ceil),
	"aint":  unary(qd.Real.Aint),
	"nint":  unary(qd.Real.Nint),
	"inv":   unary(qd.Real.Inv),
	"^": {2, func(a []qd.Real) (qd.Real, error) {
		n, err := intArg(a[1], -MaxExponent, MaxExponent)
		if err != nil {
			return qd.Real{}, err
		}
		return a[0].Pow(n), nil
	}},
	"root": {2, func(a []qd.Real) (qd.Real, error) {
		n, err := intArg(a[1], 1, MaxExponent)
		if err != nil {
			return qd.Real{}, err
		}
		return a[0].NRoot(n), nil
	}},
}

// Names returns the sorted list of constant and operator names the
// evaluator recognizes, including the stack operations.
func Names() []string {
	names := []string{"dup", "swap", "drop"}
	for k := range constants {
		names = append(names, k)
	}
	for k := range operators {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// Constants returns the named constants in a stable order.
func Constants() []string {
	names := make([]string, 0, len(constants))
	for k := range constants {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// Constant returns the named constant.
func Constant(name string) (qd.Real, bool) {
	f, ok := constants[strings.ToLower(name)]
	if !ok {
		return qd.Real{}, false
	}
	return f(), true
}

// Stack is an RPN operand stack. The zero value is empty and ready to use.
// A Stack is not safe for concurrent use.
type Stack struct {
	values []qd.Real
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int { return len(s.values) }

// Values returns a copy of the stack, bottom first.
func (s *Stack) Values() []qd.Real { return slices.Clone(s.values) }

// Push pushes x.
func (s *Stack) Push(x qd.Real) { s.values = append(s.values, x) }

// Clear empties the stack.
func (s *Stack) Clear() { s.values = s.values[:0] }

// Top returns the value on top of the stack.
func (s *Stack) Top() (qd.Real, bool) {
	if len(s.values) == 0 {
		return qd.Real{}, false
	}
	return s.values[len(s.values)-1], true
}

// Exec evaluates every token of expr against the stack. On error the stack
// is left as it was before the call.
func (s *Stack) Exec(expr string) error {
	saved := slices.Clone(s.values)
	for _, tok := range tokenize(expr) {
		if err := s.step(tok.text); err != nil {
			s.values = saved
			return &Error{Pos: tok.pos, Token: tok.text, Err: err}
		}
	}
	return nil
}

func (s *Stack) step(tok string) error {
	name := strings.ToLower(tok)
	switch name {
	case "dup":
		top, ok := s.Top()
		if !ok {
			return ErrUnderflow
		}
		s.Push(top)
		return nil
	case "swap":
		n := len(s.values)
		if n < 2 {
			return ErrUnderflow
		}
		s.values[n-1], s.values[n-2] = s.values[n-2], s.values[n-1]
		return nil
	case "drop":
		if len(s.values) == 0 {
			return ErrUnderflow
		}
		s.values = s.values[:len(s.values)-1]
		return nil
	}
	if c, ok := constants[name]; ok {
		s.Push(c())
		return nil
	}
	if o, ok := operators[name]; ok {
		n := len(s.values)
		if n < o.arity {
			return ErrUnderflow
		}
		r, err := o.fn(s.values[n-o.arity:])
		if err != nil {
			return err
		}
		s.values = append(s.values[:n-o.arity], r)
		return nil
	}
	if !startsNumber(tok) {
		return ErrUnknown
	}
	x, err := qd.Parse(tok)
	if err != nil {
		return err
	}
	s.Push(x)
	return nil
}

// Eval evaluates expr on a fresh stack and returns its single result.
func Eval(expr string) (qd.Real, error) {
	var s Stack
	if err := s.Exec(expr); err != nil {
		return qd.Real{}, err
	}
	switch s.Len() {
	case 0:
		return qd.Real{}, &Error{Pos: len(expr), Err: ErrEmpty}
	case 1:
		top, _ := s.Top()
		return top, nil
	}
	return qd.Real{}, &Error{Pos: len(expr), Err: fmt.Errorf("%w: %d values left", ErrUnbalanced, s.Len())}
}

func startsNumber(tok string) bool {
	t := strings.TrimLeft(tok, "+-")
	if t == "" {
		return false
	}
	switch strings.ToLower(t) {
	case "nan", "inf", "infinity":
		return true
	}
	return unicode.IsDigit(rune(t[0])) || t[0] == '.'
}

type token struct {
	text string
	pos  int
}

func tokenize(expr string) []token {
	var toks []token
	start := -1
	for i, r := range expr {
		if unicode.IsSpace(r) {
			if start >= 0 {
				toks = append(toks, token{expr[start:i], start})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		toks = append(toks, token{expr[start:], start})
	}
	return toks
}
