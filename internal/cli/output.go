// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatValue], [FormatEvalError].

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/agbru/qdcalc/internal/calc"
	"github.com/agbru/qdcalc/internal/format"
	"github.com/agbru/qdcalc/internal/ui"
	"github.com/agbru/qdcalc/qd"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// Digits is the number of significant digits (decimals for the f
	// format); zero selects qd.NDigits.
	Digits int
	// Format is the output verb: e, f or g.
	Format string
	// Quiet mode prints the bare value.
	Quiet bool
	// Verbose adds the evaluation time.
	Verbose bool
	// ShowComponents adds the four words of the expansion.
	ShowComponents bool
}

// FormatValue renders x according to cfg.
//
// Parameters:
//   - x: The value to render.
//   - cfg: Output configuration.
//
// Returns:
//   - string: The rendered value.
func FormatValue(x qd.Real, cfg OutputConfig) string {
	digits := cfg.Digits
	if digits <= 0 {
		digits = qd.NDigits
	}
	switch cfg.Format {
	case "e":
		return x.Text('e', digits-1)
	case "f":
		return x.Text('f', digits)
	}
	return x.Text('g', digits)
}

// FormatEvalError renders an evaluation error, pointing a caret at the
// offending token when the error carries a position.
//
// Parameters:
//   - expr: The expression that failed.
//   - err: The evaluation error.
//
// Returns:
//   - string: One or two lines describing the error.
func FormatEvalError(expr string, err error) string {
	var calcErr *calc.Error
	if !errors.As(err, &calcErr) {
		return err.Error()
	}
	width := max(len(calcErr.Token), 1)
	return fmt.Sprintf("%s\n%s%s %v", expr, strings.Repeat(" ", calcErr.Pos), strings.Repeat("^", width), calcErr.Err)
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
//
// Parameters:
//   - out: The output writer.
//   - x: The value.
//   - cfg: Output configuration.
func DisplayQuietResult(out io.Writer, x qd.Real, cfg OutputConfig) {
	fmt.Fprintln(out, FormatValue(x, cfg))
}

// DisplayResult displays an evaluated expression and its value, with the
// components and timing when requested.
//
// Parameters:
//   - out: The output writer.
//   - expr: The evaluated expression.
//   - x: The value.
//   - duration: The evaluation time.
//   - cfg: Output configuration.
func DisplayResult(out io.Writer, expr string, x qd.Real, duration time.Duration, cfg OutputConfig) {
	if cfg.Quiet {
		DisplayQuietResult(out, x, cfg)
		return
	}
	fmt.Fprintf(out, "%s%s%s = %s%s%s\n",
		ui.ColorCyan(), expr, ui.ColorReset(), ui.ColorGreen(), FormatValue(x, cfg), ui.ColorReset())
	if cfg.ShowComponents {
		fmt.Fprintf(out, "  components: %s\n", x.Dump())
	}
	if cfg.Verbose {
		fmt.Fprintf(out, "  time:       %s%s%s\n", ui.ColorYellow(), format.FormatExecutionDuration(duration), ui.ColorReset())
	}
}

// DisplayConstants lists the named constants as a table.
//
// Parameters:
//   - out: The output writer.
//   - cfg: Output configuration.
func DisplayConstants(out io.Writer, cfg OutputConfig) {
	names := calc.Constants()
	if cfg.Quiet {
		for _, name := range names {
			c, _ := calc.Constant(name)
			fmt.Fprintf(out, "%s %s\n", name, FormatValue(c, cfg))
		}
		return
	}
	st := ui.CurrentStyles()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		c, _ := calc.Constant(name)
		row := []string{st.Label.Render(name), st.Value.Render(FormatValue(c, cfg))}
		if cfg.ShowComponents {
			row = append(row, c.Dump())
		}
		rows = append(rows, row)
	}
	headers := []string{"Name", "Value"}
	if cfg.ShowComponents {
		headers = append(headers, "Components")
	}
	fmt.Fprintln(out, st.Title.Render("Named constants"))
	fmt.Fprint(out, ui.Table(st, headers, rows))
}
