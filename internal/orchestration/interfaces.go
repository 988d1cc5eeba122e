package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/mpcalc/internal/mpint"
)

// OperationResult is the outcome of running the requested operation on one
// engine. It is the shared domain type between orchestration and
// presentation.
type OperationResult struct {
	// Name is the engine that produced the result.
	Name string
	// Value is the primary result. It is nil if an error occurred.
	Value *mpint.Int
	// Remainder is the second result of divmod, nil otherwise.
	Remainder *mpint.Int
	// Duration is the time the engine spent on the operation.
	Duration time.Duration
	// Err contains any error that occurred during the operation.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	// Op is the operation that produced the result.
	Op string
	// Verbose prints the full value even when it is long.
	Verbose bool
	// Details prints size, memory and host information.
	Details bool
	// Quiet prints only the value.
	Quiet bool
	// Scale renders the value as a fixed-point decimal when non-negative.
	Scale int
}

// ProgressReporter displays progress while engines run.
//
// Implementations handle the visual representation (spinners, plain
// status lines) while the orchestration layer coordinates the engines.
type ProgressReporter interface {
	// DisplayProgress consumes updates until progressChan is closed and
	// then calls wg.Done.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numEngines int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numEngines int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numEngines int, out io.Writer) {
	f(wg, progressChan, numEngines, out)
}

// NullProgressReporter drains the progress channel without displaying
// anything. It is used in quiet mode and in tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter presents operation results.
type ResultPresenter interface {
	// PresentComparisonTable displays the per-engine summary table.
	PresentComparisonTable(results []OperationResult, out io.Writer)

	// PresentResult displays the final result.
	PresentResult(result OperationResult, opts PresentationOptions, out io.Writer)
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// ErrorHandler handles operation errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
