package tui

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/qdcalc/internal/accuracy"
	"github.com/agbru/qdcalc/internal/format"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIProgressReporter implements accuracy.ProgressReporter.
// It drains the progress channel and forwards updates as bubbletea messages.
type TUIProgressReporter struct {
	ref        *programRef
	generation uint64
}

var _ accuracy.ProgressReporter = (*TUIProgressReporter)(nil)

// DisplayProgress drains the progress channel and sends a ProgressMsg per
// update, then a ProgressDoneMsg once the channel is closed.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan accuracy.ProgressUpdate, numTasks int, _ io.Writer) {
	defer wg.Done()

	if numTasks <= 0 {
		for range progressChan {
		}
		return
	}

	tracker := format.NewProgressWithETA(numTasks)
	for update := range progressChan {
		avg, eta := tracker.UpdateWithETA(update.Index, update.Value)
		t.ref.Send(ProgressMsg{
			Index:   update.Index,
			Value:   update.Value,
			Average: avg,
			ETA:     eta,

			Generation: t.generation,
		})
	}
	t.ref.Send(ProgressDoneMsg{})
}
