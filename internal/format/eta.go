package format

import (
	"fmt"
	"time"
)

// maxETA caps estimates derived from very slow progress rates.
const maxETA = 24 * time.Hour

// ProgressWithETA extends ProgressState with a smoothed progress rate used
// to estimate the remaining time.
type ProgressWithETA struct {
	*ProgressState
	startTime    time.Time
	lastUpdate   time.Time
	lastProgress float64
	progressRate float64 // fraction per second, exponentially smoothed
}

// NewProgressWithETA creates a tracker for numTasks tasks starting now.
func NewProgressWithETA(numTasks int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState: NewProgressState(numTasks),
		startTime:     now,
		lastUpdate:    now,
	}
}

// UpdateWithETA records the progress of task index and returns the new
// average progress with the estimated time remaining.
func (p *ProgressWithETA) UpdateWithETA(index int, progress float64) (float64, time.Duration) {
	p.Update(index, progress)

	p.mu.Lock()
	defer p.mu.Unlock()
	avg := p.averageLocked()
	now := time.Now()
	if dt := now.Sub(p.lastUpdate).Seconds(); dt > 0 && avg > p.lastProgress {
		rate := (avg - p.lastProgress) / dt
		if p.progressRate == 0 {
			p.progressRate = rate
		} else {
			p.progressRate = 0.3*rate + 0.7*p.progressRate
		}
		p.lastUpdate = now
		p.lastProgress = avg
	}
	return avg, p.etaLocked(avg)
}

// GetETA returns the estimated time remaining, or zero while no rate is
// known yet.
func (p *ProgressWithETA) GetETA() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.etaLocked(p.averageLocked())
}

func (p *ProgressWithETA) etaLocked(avg float64) time.Duration {
	if p.progressRate <= 0 || avg >= 1 {
		return 0
	}
	secs := (1 - avg) / p.progressRate
	eta := time.Duration(secs * float64(time.Second))
	if secs > maxETA.Seconds() || eta > maxETA {
		return maxETA
	}
	return eta
}

// FormatETA renders an estimate compactly, e.g. "45s", "2m30s" or "1h15m".
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m := int(eta.Minutes())
		if s := int(eta.Seconds()) % 60; s > 0 {
			return fmt.Sprintf("%dm%ds", m, s)
		}
		return fmt.Sprintf("%dm", m)
	}
	h := int(eta.Hours())
	if m := int(eta.Minutes()) % 60; m > 0 {
		return fmt.Sprintf("%dh%dm", h, m)
	}
	return fmt.Sprintf("%dh", h)
}

// FormatProgressBarWithETA renders "[bar] pct% ETA: eta".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", ProgressBar(progress, width), clamp01(progress)*100, FormatETA(eta))
}

// Elapsed returns the time since the tracker was created.
func (p *ProgressWithETA) Elapsed() time.Duration { return time.Since(p.startTime) }
