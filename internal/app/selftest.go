package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/agbru/qdcalc/internal/calc"
	"github.com/agbru/qdcalc/internal/cli"
	apperrors "github.com/agbru/qdcalc/internal/errors"
	"github.com/agbru/qdcalc/internal/metrics"
	"github.com/agbru/qdcalc/internal/platform"
	"github.com/agbru/qdcalc/internal/sysmon"
	"github.com/agbru/qdcalc/qd"
)

// selfTestTolerance bounds the relative error of the scenario results in
// units of qd.Eps.
const selfTestTolerance = 512

// allocRuns is the number of calls averaged by the allocation check.
const allocRuns = 1000

var allocSink qd.Real

// selfCheck is one verification of the running build.
type selfCheck struct {
	name string
	run  func() (detail string, err error)
}

func selfChecks() []selfCheck {
	return []selfCheck{
		{"floating-point rounding", checkRounding},
		{"tiny increment survives", checkTinyIncrement},
		{"operands near the split threshold", checkSplitThreshold},
		{"named constants are canonical", checkConstants},
		{"core operations do not allocate", checkAllocations},
	}
}

// runSelfTest verifies the arithmetic environment of this binary and
// reports the host it ran on. Failed checks are joined into the returned
// error.
func (a *Application) runSelfTest(ctx context.Context, out io.Writer) error {
	ctx, cancel := a.lifecycle(ctx)
	defer cancel()

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		fmt.Fprintf(out, "Host: %s\n", platform.DetectHost())
		fmt.Fprintf(out, "Load: %s\n\n", sysmon.Sample())
	}

	checks := selfChecks()
	lines := make([]cli.CheckLine, 0, len(checks))
	var errs []error
	for _, c := range checks {
		if err := ctx.Err(); err != nil {
			return a.contextError("self-test", err)
		}
		detail, err := c.run()
		lines = append(lines, cli.CheckLine{Name: c.name, Detail: detail, Err: err})
		if err != nil {
			errs = append(errs, err)
		}
	}

	if a.Config.Quiet {
		if len(errs) == 0 {
			fmt.Fprintln(out, "ok")
		}
	} else {
		cli.CLIResultPresenter{}.PresentChecks("Self-test", lines, out)
	}
	return errors.Join(errs...)
}

func checkRounding() (string, error) {
	if err := platform.CheckRounding(); err != nil {
		return "", apperrors.CheckError{Check: "rounding", Want: "round to nearest even with subnormals", Got: err.Error()}
	}
	detail := "round to nearest even"
	if platform.UnguardedContraction() {
		detail += ", compiler fuses a*b-c"
	}
	return detail, nil
}

// checkTinyIncrement adds a word far below the unit roundoff of a single
// word to one: the expansion must keep it exactly as its second component.
func checkTinyIncrement() (string, error) {
	k := platform.Mantissa + 42
	tiny := platform.Ldexp(1, -k)
	r := qd.One().AddWord(tiny)
	if r.Vec4() != [4]platform.Word{1, tiny, 0, 0} {
		return "", apperrors.CheckError{Check: "tiny increment", Want: fmt.Sprintf("[1 2^-%d 0 0]", k), Got: r.Dump()}
	}
	return fmt.Sprintf("1 + 2^-%d", k), nil
}

// checkSplitThreshold multiplies and divides operands just below the
// threshold where splitting switches to scaled halves.
func checkSplitThreshold() (string, error) {
	a := qd.FromWord(platform.Word(1.1) * platform.SplitThreshold / 64)
	b := qd.FromWord(0.75)
	cases := []struct {
		name string
		got  qd.Real
		want *big.Float
	}{
		{"mul", a.Mul(b), new(big.Float).SetPrec(qd.BigPrec).Mul(a.BigFloat(), b.BigFloat())},
		{"sloppy mul", qd.SloppyMul(a, b), new(big.Float).SetPrec(qd.BigPrec).Mul(a.BigFloat(), b.BigFloat())},
		{"mul word", a.MulWord(0.75), new(big.Float).SetPrec(qd.BigPrec).Mul(a.BigFloat(), b.BigFloat())},
		{"div", a.Div(b), new(big.Float).SetPrec(qd.BigPrec).Quo(a.BigFloat(), b.BigFloat())},
	}
	for _, c := range cases {
		if !c.got.IsFinite() || !c.got.IsCanonical() {
			return "", apperrors.CheckError{Check: "split threshold " + c.name, Want: "finite canonical result", Got: c.got.Dump()}
		}
		if e := relErrEps(c.got, c.want); e > selfTestTolerance {
			return "", apperrors.CheckError{Check: "split threshold " + c.name, Want: fmt.Sprintf("error <= %d eps", selfTestTolerance), Got: fmt.Sprintf("%.3g eps", e)}
		}
	}
	return fmt.Sprintf("a = %s", a.Text('e', 3)), nil
}

func checkConstants() (string, error) {
	names := calc.Constants()
	for _, name := range names {
		c, _ := calc.Constant(name)
		if !c.IsCanonical() {
			return "", apperrors.CheckError{Check: "constant " + name, Want: "canonical", Got: c.Dump()}
		}
	}
	return fmt.Sprintf("%d constants", len(names)), nil
}

func checkAllocations() (string, error) {
	x, y := qd.Pi, qd.E
	allocs := metrics.NewMemoryCollector().AllocsPerRun(allocRuns, func() {
		allocSink = x.Mul(y).Add(x).Div(y).Add(qd.Sqr(x)).Sqrt()
	})
	if allocs != 0 {
		return "", apperrors.CheckError{Check: "allocations", Want: "0 per call", Got: fmt.Sprintf("%d per call", allocs)}
	}
	return "0 per call", nil
}

// relErrEps returns |got - want| / |want| in units of qd.Eps.
func relErrEps(got qd.Real, want *big.Float) float64 {
	diff := new(big.Float).SetPrec(qd.BigPrec).Sub(got.BigFloat(), want)
	if want.Sign() != 0 {
		diff.Quo(diff, want)
	}
	e, _ := diff.Abs(diff).Float64()
	return e / float64(qd.Eps)
}
