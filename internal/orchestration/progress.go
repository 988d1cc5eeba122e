package orchestration

import (
	"time"
)

// ProgressUpdate reports that one engine finished the operation.
type ProgressUpdate struct {
	// Index is the position of the engine in the run.
	Index int
	// Engine is the engine name.
	Engine string
	// Duration is the time the engine took.
	Duration time.Duration
	// Err is the engine's error, if any.
	Err error
}

// ProgressAggregator tracks how many engines of a run have finished and
// estimates the remaining time from the pace so far.
type ProgressAggregator struct {
	start      time.Time
	done       []bool
	finished   int
	numEngines int
}

// NewProgressAggregator creates an aggregator for numEngines engines.
// Returns nil if numEngines <= 0.
func NewProgressAggregator(numEngines int) *ProgressAggregator {
	if numEngines <= 0 {
		return nil
	}
	return &ProgressAggregator{
		start:      time.Now(),
		done:       make([]bool, numEngines),
		numEngines: numEngines,
	}
}

// AggregatedProgress holds the result of processing a single update.
type AggregatedProgress struct {
	// Update is the update that was processed.
	Update ProgressUpdate
	// Finished is the number of engines done so far.
	Finished int
	// Fraction is Finished over the number of engines.
	Fraction float64
	// ETA is the estimated time until every engine is done.
	ETA time.Duration
}

// Update records one finished engine. Repeated or out-of-range indexes are
// ignored.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	if update.Index >= 0 && update.Index < a.numEngines && !a.done[update.Index] {
		a.done[update.Index] = true
		a.finished++
	}
	return AggregatedProgress{
		Update:   update,
		Finished: a.finished,
		Fraction: a.Fraction(),
		ETA:      a.ETA(),
	}
}

// Finished returns the number of engines done.
func (a *ProgressAggregator) Finished() int {
	return a.finished
}

// Fraction returns the share of engines done, between 0 and 1.
func (a *ProgressAggregator) Fraction() float64 {
	return float64(a.finished) / float64(a.numEngines)
}

// ETA returns the estimated remaining time, or 0 before the first engine
// finishes and after the last one.
func (a *ProgressAggregator) ETA() time.Duration {
	if a.finished == 0 || a.finished == a.numEngines {
		return 0
	}
	perEngine := time.Since(a.start) / time.Duration(a.finished)
	return perEngine * time.Duration(a.numEngines-a.finished)
}

// NumEngines returns the number of engines being tracked.
func (a *ProgressAggregator) NumEngines() int {
	return a.numEngines
}

// IsMultiEngine reports whether more than one engine is tracked.
func (a *ProgressAggregator) IsMultiEngine() bool {
	return a.numEngines > 1
}

// DrainChannel reads all updates from the channel without processing them.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
