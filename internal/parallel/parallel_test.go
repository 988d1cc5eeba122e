package parallel

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestExecute3RunsAllTasks(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	task := func() error {
		calls.Add(1)
		return nil
	}
	if err := Execute3(task, task, task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("expected 3 calls, got %d", got)
	}
}

func TestExecute3ReturnsError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	tests := []struct {
		name    string
		a, b, c func() error
	}{
		{"first", func() error { return boom }, nop, nop},
		{"second", nop, func() error { return boom }, nop},
		{"third", nop, nop, func() error { return boom }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := Execute3(tt.a, tt.b, tt.c); !errors.Is(err, boom) {
				t.Errorf("expected boom, got %v", err)
			}
		})
	}
}

func TestExecuteAllLimit(t *testing.T) {
	t.Parallel()
	var inFlight, peak atomic.Int32
	fns := make([]func() error, 16)
	for i := range fns {
		fns[i] = func() error {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			inFlight.Add(-1)
			return nil
		}
	}
	if err := ExecuteAll(2, fns...); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p := peak.Load(); p > 2 {
		t.Errorf("peak concurrency %d exceeds limit 2", p)
	}
}

func nop() error { return nil }
