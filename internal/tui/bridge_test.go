package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	apperrors "github.com/agbru/mpcalc/internal/errors"
	"github.com/agbru/mpcalc/internal/mpint"
	"github.com/agbru/mpcalc/internal/orchestration"
)

func TestTUIProgressReporter_DrainsChannel(t *testing.T) {
	tests := []struct {
		name       string
		numEngines int
		updates    []orchestration.ProgressUpdate
	}{
		{"single engine", 1, []orchestration.ProgressUpdate{{Index: 0, Engine: "pure"}}},
		{"several engines", 3, []orchestration.ProgressUpdate{
			{Index: 2, Engine: "gmp"}, {Index: 0, Engine: "pure"}, {Index: 1, Engine: "bigref", Err: errors.New("boom")},
		}},
		{"zero engines", 0, []orchestration.ProgressUpdate{{Index: 0}}},
		{"empty channel", 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter := &TUIProgressReporter{ref: &programRef{}} // nil program - Send is a no-op
			ch := make(chan orchestration.ProgressUpdate, len(tt.updates))
			for _, u := range tt.updates {
				ch <- u
			}
			close(ch)

			var wg sync.WaitGroup
			wg.Add(1)
			go reporter.DisplayProgress(&wg, ch, tt.numEngines, nil)
			wg.Wait()
		})
	}
}

func TestProgramRef_Send_Concurrent(t *testing.T) {
	ref := &programRef{}

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ref.Send(ProgressMsg{Update: orchestration.ProgressUpdate{Index: i}})
		}(i)
	}
	wg.Wait()
}

func TestTUIResultPresenter(t *testing.T) {
	presenter := TUIResultPresenter{}
	results := []orchestration.OperationResult{
		{Name: "pure", Value: mpint.NewInt(55), Duration: 100 * time.Millisecond},
	}
	// Presenting writes nothing; a nil writer must be accepted.
	presenter.PresentComparisonTable(results, nil)
	presenter.PresentResult(results[0], orchestration.PresentationOptions{Op: "mul"}, nil)

	if presenter.FormatDuration(42*time.Millisecond) == "" {
		t.Error("FormatDuration returned an empty string")
	}

	codes := []struct {
		err  error
		want int
	}{
		{nil, apperrors.ExitSuccess},
		{context.DeadlineExceeded, apperrors.ExitErrorTimeout},
		{context.Canceled, apperrors.ExitErrorCanceled},
		{errors.New("something failed"), apperrors.ExitErrorGeneric},
	}
	for _, c := range codes {
		if got := presenter.HandleError(c.err, time.Second, nil); got != c.want {
			t.Errorf("HandleError(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}
