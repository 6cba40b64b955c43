package qd

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/agbru/qdcalc/internal/platform"
)

// ErrSyntax is wrapped by the errors Parse returns for malformed input.
var ErrSyntax = errors.New("qd: invalid syntax")

// Parse converts a decimal or hexadecimal floating-point literal to the
// nearest Real. It accepts an optional sign, "inf", "infinity" and "nan" in
// any case, and the literal forms accepted by big.Float with base 0.
func Parse(s string) (Real, error) {
	t := strings.TrimSpace(s)
	switch strings.ToLower(strings.TrimLeft(t, "+-")) {
	case "nan":
		return NaN, nil
	case "inf", "infinity":
		if strings.HasPrefix(t, "-") {
			return Inf.Neg(), nil
		}
		return Inf, nil
	}
	x, _, err := big.ParseFloat(t, 0, BigPrec, big.ToNearestEven)
	if err != nil {
		return NaN, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return FromBigFloat(x), nil
}

// MustParse is like Parse but panics on error. It simplifies the
// initialization of package-level values.
func MustParse(s string) Real {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// String formats a with NDigits significant digits.
func (a Real) String() string {
	return a.Text('g', NDigits)
}

// Text converts a to a string according to the format and precision, with
// the meaning they have for big.Float.Text ('e', 'E', 'f', 'g', 'G', 'x',
// 'p', 'b'). A negative prec selects the fewest digits that represent a
// exactly.
func (a Real) Text(format byte, prec int) string {
	if a.IsNaN() {
		return "NaN"
	}
	return a.BigFloat().Text(format, prec)
}

// Format implements fmt.Formatter. The verbs e, E, f, F, g, G, x, X, b and p
// behave as for big.Float, with flags and width honored. Without an
// explicit precision, e and f print 6 digits and g prints NDigits
// significant digits. The verbs v and s are g.
func (a Real) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		verb = 'g'
	case 'e', 'E', 'f', 'F', 'g', 'G', 'x', 'X', 'b', 'p':
	default:
		fmt.Fprintf(s, "%%!%c(qd.Real=%s)", verb, a.String())
		return
	}

	var spec strings.Builder
	spec.WriteByte('%')
	for _, flag := range "+- 0#" {
		// NaN is padded with spaces only.
		if s.Flag(int(flag)) && !(flag == '0' && a.IsNaN()) {
			spec.WriteRune(flag)
		}
	}
	if w, ok := s.Width(); ok {
		spec.WriteString(strconv.Itoa(w))
	}

	if a.IsNaN() {
		spec.WriteByte('s')
		fmt.Fprintf(s, spec.String(), "NaN")
		return
	}

	prec, ok := s.Precision()
	if !ok {
		switch verb {
		case 'g', 'G':
			prec = NDigits
		case 'x', 'X', 'b', 'p':
			prec = -1
		default:
			prec = 6
		}
	}
	if prec >= 0 {
		spec.WriteByte('.')
		spec.WriteString(strconv.Itoa(prec))
	}
	spec.WriteRune(verb)
	fmt.Fprintf(s, spec.String(), a.BigFloat())
}

// Scan implements fmt.Scanner for the verbs v, e, f and g.
func (a *Real) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'v', 'e', 'E', 'f', 'F', 'g', 'G':
	default:
		return fmt.Errorf("qd: bad verb %%%c for Real", verb)
	}
	state.SkipSpace()
	tok, err := state.Token(false, isLiteralRune)
	if err != nil {
		return err
	}
	if len(tok) == 0 {
		return io.ErrUnexpectedEOF
	}
	r, err := Parse(string(tok))
	if err != nil {
		return err
	}
	*a = r
	return nil
}

func isLiteralRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	}
	return r == '.' || r == '+' || r == '-' || r == '_'
}

// MarshalText implements encoding.TextMarshaler. The text is the exact
// value in hexadecimal floating-point form, so unmarshaling restores every
// component.
func (a Real) MarshalText() ([]byte, error) {
	if a.IsNaN() {
		return []byte("NaN"), nil
	}
	return a.BigFloat().Append(nil, 'x', -1), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Real) UnmarshalText(text []byte) error {
	r, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = r
	return nil
}

// Dump returns the four components in hexadecimal floating-point notation.
func (a Real) Dump() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range a {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(float64(c), 'x', -1, platform.WordBits))
	}
	b.WriteByte(']')
	return b.String()
}
