package tui

import (
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/mpcalc/internal/errors"
	"github.com/agbru/mpcalc/internal/format"
	"github.com/agbru/mpcalc/internal/orchestration"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIProgressReporter implements orchestration.ProgressReporter.
// It drains the progress channel and forwards updates as bubbletea messages
// tagged with the run generation.
type TUIProgressReporter struct {
	ref        *programRef
	generation uint64
}

var _ orchestration.ProgressReporter = (*TUIProgressReporter)(nil)

// DisplayProgress drains the progress channel and sends a ProgressMsg per
// finished engine.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numEngines int, _ io.Writer) {
	defer wg.Done()

	agg := orchestration.NewProgressAggregator(numEngines)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	for update := range progressChan {
		ap := agg.Update(update)
		t.ref.Send(ProgressMsg{
			Update:     ap.Update,
			Finished:   ap.Finished,
			Fraction:   ap.Fraction,
			ETA:        ap.ETA,
			Generation: t.generation,
		})
	}
}

// TUIResultPresenter implements the orchestration presentation interfaces.
// The dashboard renders results from RunCompleteMsg, so presenting writes
// nothing.
type TUIResultPresenter struct{}

var (
	_ orchestration.ResultPresenter   = TUIResultPresenter{}
	_ orchestration.DurationFormatter = TUIResultPresenter{}
	_ orchestration.ErrorHandler      = TUIResultPresenter{}
)

// PresentComparisonTable is a no-op; the engines panel shows the comparison.
func (TUIResultPresenter) PresentComparisonTable([]orchestration.OperationResult, io.Writer) {}

// PresentResult is a no-op; the result panel shows the chosen result.
func (TUIResultPresenter) PresentResult(orchestration.OperationResult, orchestration.PresentationOptions, io.Writer) {
}

// FormatDuration delegates to the CLI formatter.
func (TUIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// HandleError returns the exit code for err.
func (TUIResultPresenter) HandleError(err error, _ time.Duration, _ io.Writer) int {
	return apperrors.ExitCodeFor(err)
}
