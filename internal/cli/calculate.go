package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/qdcalc/internal/config"
	"github.com/agbru/qdcalc/internal/platform"
	"github.com/agbru/qdcalc/internal/ui"
	"github.com/agbru/qdcalc/qd"
)

// PrintExecutionConfig displays the configuration of a long-running mode
// (accuracy study or self-test) to the user: workload, timeout, environment
// details and the arithmetic build.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	if cfg.Mode == config.ModeAccuracy {
		fmt.Fprintf(out, "Studying %s%d%s operand pairs per variant (seed %d) with a timeout of %s%s%s.\n",
			ui.ColorMagenta(), cfg.Trials, ui.ColorReset(), cfg.Seed, ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	} else {
		fmt.Fprintf(out, "Mode %s%s%s with a timeout of %s%s%s.\n",
			ui.ColorMagenta(), cfg.Mode, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	}
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, %s%d%s workers, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), cfg.Workers, ui.ColorReset(),
		ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Arithmetic: %s%s%s, %s%s%s.\n",
		ui.ColorCyan(), qd.Strategy(), ui.ColorReset(), ui.ColorCyan(), platform.CurrentProfile(), ui.ColorReset())
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
