// Package sysmon samples host load for the self-test report and the
// accuracy dashboard, so timing and allocation figures can be read against
// what else the machine was doing.
package sysmon

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent  float64 // 0.0 .. 100.0
	MemPercent  float64 // 0.0 .. 100.0
	LogicalCPUs int     // 0 when unknown
	TotalMemory uint64  // bytes, 0 when unknown
	ModelName   string  // first CPU model reported by the host
}

// Load samples only the CPU and memory usage percentages, for callers that
// poll.
// CPU uses interval=0 (delta since last call).
func Load() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.TotalMemory = vmem.Total
	}
	return s
}

// Sample collects a single system-wide snapshot including the host
// description. Fields that cannot be read keep their zero values.
func Sample() Stats {
	s := Load()
	if n, err := cpu.Counts(true); err == nil {
		s.LogicalCPUs = n
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		s.ModelName = infos[0].ModelName
	}
	return s
}

// String renders the sample on one line.
func (s Stats) String() string {
	model := s.ModelName
	if model == "" {
		model = "unknown cpu"
	}
	return fmt.Sprintf("%s, %d logical cpus, cpu %.1f%%, mem %.1f%% of %.1f GiB",
		model, s.LogicalCPUs, s.CPUPercent, s.MemPercent, float64(s.TotalMemory)/(1<<30))
}
