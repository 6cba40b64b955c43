package config

import (
	"runtime"
	"strings"
)

// Default resolution chain (highest priority first):
//   1. CLI flags (-mode, -workers, ...)
//   2. Environment variables (QDCALC_MODE, QDCALC_WORKERS, ...)
//   3. Hardware and context estimation (this file)

// ApplyAdaptiveDefaults fills the fields left at their zero value with
// values derived from the host and from the other fields. Explicit
// settings are preserved.
func ApplyAdaptiveDefaults(cfg AppConfig) AppConfig {
	if cfg.Mode == "" {
		if strings.TrimSpace(cfg.Expr) != "" {
			cfg.Mode = ModeEval
		} else {
			cfg.Mode = ModeREPL
		}
	}
	if cfg.Workers == 0 {
		cfg.Workers = EstimateWorkers()
	}
	return cfg
}

// EstimateWorkers provides a heuristic worker count for the accuracy study:
// one worker per core, capped at 16.
func EstimateWorkers() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 1:
		return 1
	case numCPU <= 16:
		return numCPU
	default:
		return 16
	}
}
