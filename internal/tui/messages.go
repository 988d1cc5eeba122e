package tui

import (
	"time"

	"github.com/agbru/mpcalc/internal/orchestration"
)

// ProgressMsg reports that one engine finished.
type ProgressMsg struct {
	Update     orchestration.ProgressUpdate
	Finished   int
	Fraction   float64
	ETA        time.Duration
	Generation uint64
}

// RunCompleteMsg carries the results of a run, fastest first.
type RunCompleteMsg struct {
	Results    []orchestration.OperationResult
	ExitCode   int
	Generation uint64
}

// TickMsg drives the periodic metric sampling.
type TickMsg time.Time

// MemStatsMsg carries a runtime memory sample.
type MemStatsMsg struct {
	Alloc        uint64
	HeapSys      uint64
	NumGC        uint32
	PauseTotalNs uint64
	NumGoroutine int
}

// SysStatsMsg carries a system-wide CPU and memory sample, in percent.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// ContextCancelledMsg reports that the run context ended.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}
