package format

import (
	"strings"
	"sync"
)

// ProgressState aggregates the progress of several concurrent tasks, such
// as the per-operation runs of an accuracy study, into a single average.
// It is safe for concurrent use.
type ProgressState struct {
	mu         sync.Mutex
	numTasks   int
	progresses []float64
}

// NewProgressState creates a ProgressState tracking numTasks tasks.
func NewProgressState(numTasks int) *ProgressState {
	if numTasks < 0 {
		numTasks = 0
	}
	return &ProgressState{numTasks: numTasks, progresses: make([]float64, numTasks)}
}

// Update records the progress of task index, clamped to [0, 1]. Indexes out
// of range are ignored.
func (p *ProgressState) Update(index int, progress float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index < 0 || index >= p.numTasks {
		return
	}
	p.progresses[index] = clamp01(progress)
}

// CalculateAverage returns the mean progress over all tasks.
func (p *ProgressState) CalculateAverage() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.averageLocked()
}

func (p *ProgressState) averageLocked() float64 {
	if p.numTasks == 0 {
		return 0
	}
	var sum float64
	for _, v := range p.progresses {
		sum += v
	}
	return sum / float64(p.numTasks)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// ProgressBar renders progress in [0, 1] as a bar of length runes.
func ProgressBar(progress float64, length int) string {
	if length <= 0 {
		return ""
	}
	filled := int(clamp01(progress) * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}
