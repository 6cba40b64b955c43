//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/qdcalc/internal/accuracy"
	"github.com/agbru/qdcalc/internal/format"
	"github.com/agbru/qdcalc/internal/ui"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of the `DisplayProgress` function from a
// specific spinner implementation, facilitating easier testing and maintenance.
// It defines the essential controls for a spinner: starting, stopping, and
// updating its status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface. This adapter allows the `spinner` library to be used
// within the application's CLI framework.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
//
// Parameters:
//   - suffix: The string to display.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress renders a spinner with an aggregated progress bar and ETA
// while an accuracy study runs. It returns, calling wg.Done, once
// progressChan is closed.
//
// Parameters:
//   - wg: The WaitGroup to signal on return.
//   - progressChan: Updates from the study workers.
//   - numTasks: The number of variants being tracked.
//   - out: The writer for the spinner and the final line.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan accuracy.ProgressUpdate, numTasks int, out io.Writer) {
	defer wg.Done()
	if numTasks <= 0 {
		for range progressChan {
			// Drain channel silently
		}
		return
	}

	state := format.NewProgressWithETA(numTasks)
	s := newSpinner(spinner.WithWriter(out))
	s.Start()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	var (
		progress float64
		eta      time.Duration
	)
	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.Stop()
				fmt.Fprintf(out, "%s[%s] 100%%%s done in %s\n",
					ui.ColorGreen(), format.ProgressBar(1, ProgressBarWidth), ui.ColorReset(),
					format.FormatExecutionDuration(state.Elapsed()))
				return
			}
			progress, eta = state.UpdateWithETA(update.Index, update.Value)
		case <-ticker.C:
			s.UpdateSuffix(" " + format.FormatProgressBarWithETA(progress, eta, ProgressBarWidth))
		}
	}
}
