package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/qdcalc/internal/cli"
	"github.com/agbru/qdcalc/internal/config"
	apperrors "github.com/agbru/qdcalc/internal/errors"
	"github.com/agbru/qdcalc/internal/logging"
	"github.com/agbru/qdcalc/internal/server"
	"github.com/agbru/qdcalc/internal/ui"
)

// Application represents the qdcalc application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	ErrWriter io.Writer
	In        io.Reader
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets the diagnostic logger. By default the application logs
// JSON lines to ErrWriter at the configured level.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithInput sets the reader used by the REPL (stdin by default).
func WithInput(r io.Reader) AppOption {
	return func(a *Application) { a.In = r }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}

	programName := "qdcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			fmt.Fprintln(errWriter, "Error:", err)
			return nil, apperrors.ConfigError{Message: err.Error()}
		}
		app.Logger = logging.NewLogger(errWriter, "qdcalc").WithLevel(level)
	}
	return app, nil
}

// Run executes the application based on the configured mode and returns
// the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)
	a.Logger.Debug("starting", logging.String("mode", a.Config.Mode), logging.String("version", Version))

	var err error
	switch a.Config.Mode {
	case config.ModeEval:
		err = a.runEval(ctx, out)
	case config.ModeREPL:
		a.runREPL(out)
	case config.ModeConsts:
		cli.DisplayConstants(out, a.outputConfig())
	case config.ModeAccuracy:
		err = a.runAccuracy(ctx, out)
	case config.ModeSelfTest:
		err = a.runSelfTest(ctx, out)
	case config.ModeServe:
		err = a.runServe(ctx)
	default:
		err = apperrors.NewConfigError("unknown mode %q", a.Config.Mode)
	}
	return a.exit(err)
}

// exit logs err, reports it on ErrWriter and maps it to an exit code.
func (a *Application) exit(err error) int {
	code := apperrors.ExitCodeFor(err)
	if err == nil {
		return code
	}
	var evalErr apperrors.EvalError
	if !errors.As(err, &evalErr) {
		fmt.Fprintf(a.ErrWriter, "%sError:%s %v\n", ui.ColorRed(), ui.ColorReset(), err)
	}
	a.Logger.Debug("exiting", logging.Err(err), logging.Int("code", code))
	return code
}

func (a *Application) outputConfig() cli.OutputConfig {
	return cli.OutputConfig{
		Digits:         a.Config.Digits,
		Format:         a.Config.Format,
		Quiet:          a.Config.Quiet,
		Verbose:        a.Config.Verbose,
		ShowComponents: a.Config.ShowComponents,
	}
}

// runREPL starts the interactive session.
func (a *Application) runREPL(out io.Writer) {
	repl := cli.NewREPL(cli.REPLConfig{Output: a.outputConfig()})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start()
}

// runServe serves the HTTP API until ctx is canceled or a signal arrives.
// A background accuracy study seeds the accuracy gauges.
func (a *Application) runServe(ctx context.Context) error {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	srv := server.New(server.DefaultConfig(a.Config.Addr), a.Logger)
	go a.seedAccuracyGauges(ctx, srv.Metrics())

	if err := srv.ListenAndServe(ctx); err != nil {
		return apperrors.WrapError(err, "serving on %s", a.Config.Addr)
	}
	return nil
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
