package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/agbru/qdcalc/internal/accuracy"
	"github.com/agbru/qdcalc/internal/format"
	"github.com/agbru/qdcalc/internal/ui"
)

// CLIProgressReporter implements accuracy.ProgressReporter for CLI output.
// It wraps the DisplayProgress function to provide a spinner and progress bar
// display during a study.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements accuracy.ProgressReporter.
var _ accuracy.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for a running study.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan accuracy.ProgressUpdate, numTasks int, out io.Writer) {
	DisplayProgress(wg, progressChan, numTasks, out)
}

// CheckLine is one line of a self-test summary.
type CheckLine struct {
	// Name describes what was checked.
	Name string
	// Detail is shown next to a passing check.
	Detail string
	// Err is non-nil when the check failed.
	Err error
}

// CLIResultPresenter renders study reports and self-test summaries.
type CLIResultPresenter struct{}

// PresentAccuracyReport displays the per-variant error table of a study.
func (CLIResultPresenter) PresentAccuracyReport(report *accuracy.Report, out io.Writer) {
	st := ui.CurrentStyles()
	fmt.Fprintln(out, st.Title.Render("Accuracy study"))
	fmt.Fprintf(out, "%s %s trials per variant, seed %d, %d workers, exponents within 2^±%d\n",
		st.Label.Render("Setup:"), format.FormatNumberString(fmt.Sprint(report.Trials)),
		report.Seed, report.Workers, report.Spread)
	fmt.Fprintf(out, "%s %s\n\n", st.Label.Render("Build:"), report.Strategy)

	rows := make([][]string, 0, len(report.Results))
	for _, res := range report.Results {
		canon := st.Good.Render("0")
		if res.NonCanonical > 0 {
			canon = st.Bad.Render(fmt.Sprint(res.NonCanonical))
		}
		rows = append(rows, []string{
			res.Name,
			fmt.Sprintf("%.4g", res.MeanErr),
			fmt.Sprintf("%.4g", res.MaxErr),
			canon,
		})
	}
	fmt.Fprint(out, ui.Table(st, []string{"Variant", "Mean err (eps)", "Max err (eps)", "Non-canonical"}, rows))
	fmt.Fprintf(out, "\nCompleted in %s (%s trials/s)\n", format.FormatExecutionDuration(report.Duration),
		format.FormatRate(format.Throughput(report.Trials*len(report.Results), report.Duration)))
}

// PresentChecks displays a titled list of passed and failed checks.
func (CLIResultPresenter) PresentChecks(title string, lines []CheckLine, out io.Writer) {
	st := ui.CurrentStyles()
	fmt.Fprintln(out, st.Title.Render(title))
	for _, l := range lines {
		if l.Err != nil {
			fmt.Fprintf(out, "  %s %s: %v\n", st.Bad.Render("FAIL"), l.Name, l.Err)
			continue
		}
		if l.Detail != "" {
			fmt.Fprintf(out, "  %s %s %s\n", st.Good.Render("ok  "), l.Name, st.Dim.Render("("+l.Detail+")"))
		} else {
			fmt.Fprintf(out, "  %s %s\n", st.Good.Render("ok  "), l.Name)
		}
	}
}
