package accuracy

import (
	"io"
	"sync"
)

// ProgressUpdate reports the completed fraction of one variant's trials.
type ProgressUpdate struct {
	// Index is the position of the variant in the study.
	Index int
	// Value is the completed fraction in [0, 1].
	Value float64
}

// ProgressReporter defines the interface for displaying study progress.
// This interface decouples the study from the presentation layer.
//
// Implementations handle the visual representation of progress (spinners,
// progress bars, etc.) while the study focuses on running trials.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It is called in a separate goroutine and runs until progressChan is
	// closed, then calls wg.Done.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from workers.
	//   - numTasks: The number of variants being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numTasks int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numTasks int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numTasks int, out io.Writer) {
	f(wg, progressChan, numTasks, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}
