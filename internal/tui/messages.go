package tui

import (
	"time"

	"github.com/agbru/qdcalc/internal/accuracy"
)

// ProgressMsg carries one progress update of a study variant.
type ProgressMsg struct {
	Index   int           // variant index
	Value   float64       // variant progress, 0..1
	Average float64       // progress across all variants, 0..1
	ETA     time.Duration // zero while unknown

	Generation uint64
}

// ProgressDoneMsg signals that the progress channel was closed.
type ProgressDoneMsg struct{}

// StudyCompleteMsg carries the outcome of a study run.
type StudyCompleteMsg struct {
	Report     *accuracy.Report
	Err        error
	Generation uint64
}

// ContextCancelledMsg signals that the context of a run ended before the
// dashboard was quit.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}

// TickMsg drives periodic sampling.
type TickMsg time.Time

// SysStatsMsg carries one system load sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}
