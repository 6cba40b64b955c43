package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/qdcalc/internal/errors"
)

// EnvPrefix is prepended to every environment variable the configuration reads.
const EnvPrefix = "QDCALC_"

// Execution modes.
const (
	ModeEval     = "eval"
	ModeREPL     = "repl"
	ModeAccuracy = "accuracy"
	ModeSelfTest = "selftest"
	ModeServe    = "serve"
	ModeConsts   = "consts"
)

// Modes lists every accepted value of the -mode flag.
var Modes = []string{ModeEval, ModeREPL, ModeAccuracy, ModeSelfTest, ModeServe, ModeConsts}

// Formats lists every accepted value of the -format flag.
var Formats = []string{"e", "f", "g"}

// MaxDigits bounds the -digits flag. Output beyond the working precision is
// noise but remains well defined.
const MaxDigits = 1000

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Mode selects what the program does. Empty resolves to eval when an
	// expression is present and repl otherwise.
	Mode string
	// Expr is the RPN expression evaluated in eval mode.
	Expr string
	// Digits is the number of significant digits printed; zero selects the
	// working precision.
	Digits int
	// Format is the output verb: e, f or g.
	Format string
	// Trials is the number of operand pairs drawn per operation by the
	// accuracy study.
	Trials int
	// Seed seeds the accuracy study's generator.
	Seed uint64
	// Workers is the accuracy study's worker count; zero selects a value
	// from the host CPU count.
	Workers int
	// Timeout bounds eval, accuracy and selftest runs.
	Timeout time.Duration
	// Addr is the listen address in serve mode.
	Addr string
	// Verbose prints extra detail such as timings.
	Verbose bool
	// Quiet prints results only.
	Quiet bool
	// NoColor disables ANSI colors.
	NoColor bool
	// LogLevel is the zerolog level name for diagnostic logs.
	LogLevel string
	// ShowComponents prints the four words of each result.
	ShowComponents bool
	// TUI runs the accuracy study inside the interactive dashboard.
	TUI bool
}

// Validate checks the configuration for consistency.
//
// Returns:
//   - error: A ConfigError describing the first problem found, or nil.
func (c AppConfig) Validate() error {
	if c.Mode != "" && !slices.Contains(Modes, c.Mode) {
		return apperrors.NewConfigError("unknown mode %q (want one of %s)", c.Mode, strings.Join(Modes, ", "))
	}
	if c.Mode == ModeEval && strings.TrimSpace(c.Expr) == "" {
		return apperrors.NewConfigError("eval mode requires an expression")
	}
	if c.Digits < 0 || c.Digits > MaxDigits {
		return apperrors.NewConfigError("digits must be between 0 and %d, got %d", MaxDigits, c.Digits)
	}
	if !slices.Contains(Formats, c.Format) {
		return apperrors.NewConfigError("unknown format %q (want e, f or g)", c.Format)
	}
	if c.Trials <= 0 {
		return apperrors.NewConfigError("trials must be positive, got %d", c.Trials)
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("workers must not be negative, got %d", c.Workers)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.Verbose && c.Quiet {
		return apperrors.NewConfigError("-verbose and -quiet are mutually exclusive")
	}
	if c.TUI && c.Mode != ModeAccuracy {
		return apperrors.NewConfigError("-tui requires accuracy mode")
	}
	if c.TUI && c.Quiet {
		return apperrors.NewConfigError("-tui and -quiet are mutually exclusive")
	}
	return nil
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags left unset, resolves defaults and
// validates the result. Remaining positional arguments are joined into the
// expression.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The arguments, without the program name.
//   - errorWriter: Destination for usage and parse errors.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	config := AppConfig{}

	fs.StringVar(&config.Mode, "mode", "", "Mode: "+strings.Join(Modes, ", ")+".")
	fs.StringVar(&config.Expr, "expr", "", "RPN expression to evaluate.")
	fs.StringVar(&config.Expr, "e", "", "RPN expression to evaluate (shorthand).")
	fs.IntVar(&config.Digits, "digits", 0, "Significant digits to print (0 = working precision).")
	fs.StringVar(&config.Format, "format", "g", "Output format: e, f or g.")
	fs.IntVar(&config.Trials, "trials", 10000, "Operand pairs per operation in accuracy mode.")
	fs.Uint64Var(&config.Seed, "seed", 1, "Seed for the accuracy study.")
	fs.IntVar(&config.Workers, "workers", 0, "Accuracy workers (0 = from CPU count).")
	fs.DurationVar(&config.Timeout, "timeout", time.Minute, "Maximum run time for eval, accuracy and selftest.")
	fs.StringVar(&config.Addr, "addr", ":8080", "Listen address in serve mode.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Print timings and extra detail.")
	fs.BoolVar(&config.Verbose, "v", false, "Print timings and extra detail (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print results only.")
	fs.BoolVar(&config.Quiet, "q", false, "Print results only (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error.")
	fs.BoolVar(&config.ShowComponents, "components", false, "Print the four words of each result.")
	fs.BoolVar(&config.TUI, "tui", false, "Show the accuracy study in an interactive dashboard.")

	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [flags] [expression]\n\nFlags:\n", programName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	if rest := fs.Args(); len(rest) > 0 && config.Expr == "" {
		config.Expr = strings.Join(rest, " ")
	}
	config = ApplyAdaptiveDefaults(config)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Error:", err)
		return AppConfig{}, err
	}
	return config, nil
}
