// Package metrics reads runtime memory statistics for the self-test report.
package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
	Mallocs      uint64 // cumulative count of heap allocations
	TotalAlloc   uint64 // cumulative bytes allocated
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
		Mallocs:      m.Mallocs,
		TotalAlloc:   m.TotalAlloc,
	}
}

// AllocsPerRun returns the average number of heap allocations made by one
// call of f, measured over runs calls after a warm-up call. GOMAXPROCS is
// held at 1 during the measurement.
func (mc *MemoryCollector) AllocsPerRun(runs int, f func()) uint64 {
	if runs <= 0 {
		return 0
	}
	defer runtime.GOMAXPROCS(runtime.GOMAXPROCS(1))

	f()
	before := mc.Snapshot()
	for range runs {
		f()
	}
	after := mc.Snapshot()
	return (after.Mallocs - before.Mallocs) / uint64(runs)
}

// Delta returns the allocation counters accumulated between two snapshots.
func (s MemorySnapshot) Delta(later MemorySnapshot) (mallocs, bytes uint64) {
	return later.Mallocs - s.Mallocs, later.TotalAlloc - s.TotalAlloc
}
