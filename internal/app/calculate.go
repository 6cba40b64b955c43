package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/qdcalc/internal/accuracy"
	"github.com/agbru/qdcalc/internal/calc"
	"github.com/agbru/qdcalc/internal/cli"
	apperrors "github.com/agbru/qdcalc/internal/errors"
	"github.com/agbru/qdcalc/internal/logging"
	"github.com/agbru/qdcalc/internal/server"
	"github.com/agbru/qdcalc/internal/tui"
	"github.com/agbru/qdcalc/qd"
)

// lifecycle bounds ctx by the configured timeout and by SIGINT/SIGTERM.
func (a *Application) lifecycle(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

// contextError converts a context error into the application error
// carrying the matching exit code.
func (a *Application) contextError(operation string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.TimeoutError{Operation: operation, Limit: a.Config.Timeout}
	}
	return err
}

type evalResult struct {
	x   qd.Real
	err error
}

// runEval evaluates the configured expression once.
func (a *Application) runEval(ctx context.Context, out io.Writer) error {
	ctx, cancel := a.lifecycle(ctx)
	defer cancel()

	expr := a.Config.Expr
	done := make(chan evalResult, 1)
	start := time.Now()
	go func() {
		x, err := calc.Eval(expr)
		done <- evalResult{x, err}
	}()

	var res evalResult
	select {
	case res = <-done:
	case <-ctx.Done():
		return a.contextError("evaluation", ctx.Err())
	}
	duration := time.Since(start)

	if res.err != nil {
		fmt.Fprintln(a.ErrWriter, cli.FormatEvalError(expr, res.err))
		return apperrors.EvalError{Expr: expr, Cause: res.err}
	}
	a.Logger.Debug("evaluated", logging.String("expr", expr), logging.Float64("seconds", duration.Seconds()))
	cli.DisplayResult(out, expr, res.x, duration, a.outputConfig())
	return nil
}

// runAccuracy runs the accuracy study, presents the report and checks the
// accuracy relations.
func (a *Application) runAccuracy(ctx context.Context, out io.Writer) error {
	ctx, cancel := a.lifecycle(ctx)
	defer cancel()

	studyCfg := accuracy.Config{
		Trials:  a.Config.Trials,
		Seed:    a.Config.Seed,
		Workers: a.Config.Workers,
	}
	if a.Config.TUI {
		if err := tui.Run(ctx, studyCfg, Version); err != nil {
			return a.contextError("accuracy study", err)
		}
		return nil
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	// Choose progress reporter based on quiet mode
	var reporter accuracy.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet {
		reporter = accuracy.NullProgressReporter{}
		progressOut = io.Discard
	}

	report, err := accuracy.Run(ctx, studyCfg, reporter, progressOut)
	if err != nil {
		return a.contextError("accuracy study", err)
	}
	a.Logger.Debug("accuracy study finished",
		logging.Int("trials", report.Trials),
		logging.Uint64("seed", report.Seed),
		logging.Duration("duration", report.Duration))

	if a.Config.Quiet {
		for _, res := range report.Results {
			fmt.Fprintf(out, "%s %.4g %.4g %d\n", res.Name, res.MeanErr, res.MaxErr, res.NonCanonical)
		}
	} else {
		fmt.Fprintln(out)
		cli.CLIResultPresenter{}.PresentAccuracyReport(report, out)
	}
	return report.Check()
}

// seedAccuracyGauges runs a study in the background of the serve mode and
// publishes its results.
func (a *Application) seedAccuracyGauges(ctx context.Context, m *server.Metrics) {
	report, err := accuracy.Run(ctx, accuracy.Config{
		Trials:  a.Config.Trials,
		Seed:    a.Config.Seed,
		Workers: a.Config.Workers,
	}, accuracy.NullProgressReporter{}, io.Discard)
	if err != nil {
		if !apperrors.IsContextError(err) {
			a.Logger.Error("accuracy study failed", err)
		}
		return
	}
	m.RecordAccuracy(report)
	a.Logger.Info("accuracy gauges updated", logging.Int("trials", report.Trials))
	if err := report.Check(); err != nil {
		a.Logger.Error("accuracy check failed", err)
	}
}
