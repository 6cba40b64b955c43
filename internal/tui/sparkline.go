package tui

// sparkBlocks are the eight heights of a sparkline cell, lowest first.
var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// RingBuffer keeps the most recent samples of a dashboard series such as
// CPU load or trial throughput. The zero capacity is raised to one.
type RingBuffer struct {
	data  []float64
	next  int // slot of the next sample
	count int
}

// NewRingBuffer creates a buffer holding up to capacity samples.
func NewRingBuffer(capacity int) *RingBuffer {
	return &RingBuffer{data: make([]float64, max(capacity, 1))}
}

// Push appends v, dropping the oldest sample when full.
func (r *RingBuffer) Push(v float64) {
	r.data[r.next] = v
	r.next = (r.next + 1) % len(r.data)
	r.count = min(r.count+1, len(r.data))
}

// Len returns the number of samples held.
func (r *RingBuffer) Len() int { return r.count }

// Cap returns the capacity.
func (r *RingBuffer) Cap() int { return len(r.data) }

// Last returns the newest sample, or 0 when empty.
func (r *RingBuffer) Last() float64 {
	if r.count == 0 {
		return 0
	}
	return r.data[(r.next-1+len(r.data))%len(r.data)]
}

// Peak returns the largest sample held, or 0 when empty.
func (r *RingBuffer) Peak() float64 {
	var peak float64
	for i, v := range r.Slice() {
		if i == 0 || v > peak {
			peak = v
		}
	}
	return peak
}

// Slice returns the samples oldest first.
func (r *RingBuffer) Slice() []float64 {
	if r.count == 0 {
		return nil
	}
	if r.count < len(r.data) {
		return append([]float64(nil), r.data[:r.count]...)
	}
	out := make([]float64, 0, r.count)
	out = append(out, r.data[r.next:]...)
	return append(out, r.data[:r.next]...)
}

// Resize changes the capacity and keeps the newest samples that fit.
func (r *RingBuffer) Resize(capacity int) {
	capacity = max(capacity, 1)
	if capacity == len(r.data) {
		return
	}
	samples := r.Slice()
	if len(samples) > capacity {
		samples = samples[len(samples)-capacity:]
	}
	r.data = make([]float64, capacity)
	r.next, r.count = 0, 0
	for _, v := range samples {
		r.Push(v)
	}
}

// Reset drops every sample.
func (r *RingBuffer) Reset() {
	r.next, r.count = 0, 0
}

// RenderSparkline renders percentages in 0..100.
func RenderSparkline(values []float64) string {
	return RenderScaledSparkline(values, 100)
}

// RenderScaledSparkline renders values in 0..hi, one cell per value. A
// non-positive hi scales to the largest sample, for series such as trial
// throughput that have no natural ceiling.
func RenderScaledSparkline(values []float64, hi float64) string {
	if len(values) == 0 {
		return ""
	}
	if hi <= 0 {
		for _, v := range values {
			hi = max(hi, v)
		}
		if hi <= 0 {
			hi = 1
		}
	}
	top := len(sparkBlocks) - 1
	cells := make([]rune, len(values))
	for i, v := range values {
		level := int(min(max(v, 0), hi) / hi * float64(top))
		cells[i] = sparkBlocks[min(level, top)]
	}
	return string(cells)
}
