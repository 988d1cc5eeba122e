package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/mpcalc/internal/config"
	"github.com/agbru/mpcalc/internal/engine"
	apperrors "github.com/agbru/mpcalc/internal/errors"
	"github.com/agbru/mpcalc/internal/mpint"
	"github.com/agbru/mpcalc/internal/orchestration"
)

func newTestModel(t *testing.T, op string, a, b int64) Model {
	t.Helper()
	engines := []engine.Engine{engine.NewPure(mpint.DefaultOptions()), engine.BigRef{}}
	req := orchestration.Request{Op: op, A: mpint.NewInt(a), B: mpint.NewInt(b)}
	m := NewModel(context.Background(), engines, req, config.AppConfig{Timeout: time.Minute}, "dev")
	t.Cleanup(m.cancel)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 50})
	return updated.(Model)
}

// complete runs the operation synchronously and feeds the outcome back.
func complete(t *testing.T, m Model) Model {
	t.Helper()
	msg := runOperationCmd(m.ref, m.ctx, m.backends, m.req, m.generation)()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func press(m Model, r rune) (Model, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return updated.(Model), cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_InitialView(t *testing.T) {
	engines := []engine.Engine{engine.BigRef{}}
	req := orchestration.Request{Op: "add", A: mpint.NewInt(1), B: mpint.NewInt(2)}
	m := NewModel(context.Background(), engines, req, config.AppConfig{Timeout: time.Second}, "dev")
	defer m.cancel()
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() before sizing = %q", got)
	}
	if m.Init() == nil {
		t.Error("Init() returned no command")
	}
}

func TestModel_RunningView(t *testing.T) {
	m := newTestModel(t, "mul", 6, 7)
	view := m.View()
	for _, want := range []string{"ENGINES", "pure", "bigref", "RUNNING", "Computing mul on 2 engine(s)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModel_ProgressMsg(t *testing.T) {
	m := newTestModel(t, "mul", 6, 7)

	stale := ProgressMsg{Update: orchestration.ProgressUpdate{Index: 0, Duration: time.Millisecond}, Generation: 99}
	updated, _ := m.Update(stale)
	m = updated.(Model)
	if m.engines.statuses[0] != StatusRunning {
		t.Error("stale progress message was applied")
	}

	updated, _ = m.Update(ProgressMsg{
		Update:   orchestration.ProgressUpdate{Index: 1, Engine: "bigref", Duration: time.Millisecond},
		Finished: 1, Fraction: 0.5, ETA: time.Millisecond,
	})
	m = updated.(Model)
	if m.engines.statuses[1] != StatusComplete || m.engines.finished != 1 {
		t.Errorf("engine 1 status = %v, finished = %d", m.engines.statuses[1], m.engines.finished)
	}
	if m.engines.statuses[0] != StatusRunning {
		t.Error("engine 0 should still be running")
	}
}

func TestModel_RunComplete(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		a, b     int64
		wantCode int
		wantView []string
	}{
		{"product", "mul", 6, 7, apperrors.ExitSuccess,
			[]string{"DONE", "mul = 42", "Global Status: Success. All valid results are consistent.", "Fastest:"}},
		{"truncated remainder", "rem", -7, 2, apperrors.ExitSuccess,
			[]string{"rem = -1"}},
		{"division by zero", "quo", 1, 0, apperrors.ExitErrorGeneric,
			[]string{"FAILED", "ERR", "No engine could complete the operation", "division by zero"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := complete(t, newTestModel(t, tt.op, tt.a, tt.b))
			if !m.done || m.exitCode != tt.wantCode {
				t.Fatalf("done = %v, exitCode = %d; want true, %d", m.done, m.exitCode, tt.wantCode)
			}
			view := m.View()
			for _, want := range tt.wantView {
				if !strings.Contains(view, want) {
					t.Errorf("view missing %q:\n%s", want, view)
				}
			}
		})
	}
}

func TestModel_Mismatch(t *testing.T) {
	m := newTestModel(t, "mul", 6, 7)
	updated, _ := m.Update(RunCompleteMsg{
		Results: []orchestration.OperationResult{
			{Name: "pure", Value: mpint.NewInt(42), Duration: time.Millisecond},
			{Name: "bigref", Value: mpint.NewInt(41), Duration: 2 * time.Millisecond},
		},
		ExitCode: apperrors.ExitErrorMismatch,
	})
	m = updated.(Model)
	if !strings.Contains(m.View(), "CRITICAL ERROR") {
		t.Errorf("view:\n%s", m.View())
	}
}

func TestModel_ToggleHexAndHelp(t *testing.T) {
	m := complete(t, newTestModel(t, "mul", 6, 7))

	m, _ = press(m, 'x')
	if !strings.Contains(m.View(), "mul = 0x2a") {
		t.Errorf("hex view:\n%s", m.View())
	}
	m, _ = press(m, 'x')
	if !strings.Contains(m.View(), "mul = 42") {
		t.Errorf("decimal view:\n%s", m.View())
	}

	m, _ = press(m, '?')
	if !m.help.ShowAll {
		t.Error("help did not expand")
	}
	m, _ = press(m, 'v')
	if !m.results.showFull {
		t.Error("full value not toggled")
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, "mul", 6, 7)
	m, cmd := press(m, 'q')
	if !isQuit(cmd) {
		t.Fatal("q did not quit")
	}
	if m.exitCode != apperrors.ExitErrorCanceled {
		t.Errorf("exitCode = %d, want %d when quitting a running operation", m.exitCode, apperrors.ExitErrorCanceled)
	}

	done := complete(t, newTestModel(t, "add", 1, 2))
	done, cmd = press(done, 'q')
	if !isQuit(cmd) || done.exitCode != apperrors.ExitSuccess {
		t.Errorf("quit after success: exitCode = %d", done.exitCode)
	}
}

func TestModel_Rerun(t *testing.T) {
	m := complete(t, newTestModel(t, "mul", 6, 7))
	gen := m.generation

	m, cmd := press(m, 'r')
	if cmd == nil {
		t.Fatal("rerun returned no command")
	}
	if m.generation != gen+1 || m.done || m.results.results != nil {
		t.Errorf("state after rerun: generation=%d done=%v results=%v", m.generation, m.done, m.results.results)
	}
	for i, s := range m.engines.statuses {
		if s != StatusRunning {
			t.Errorf("engine %d status = %v after rerun", i, s)
		}
	}

	// Results of the previous generation are dropped.
	updated, _ := m.Update(RunCompleteMsg{ExitCode: apperrors.ExitErrorMismatch, Generation: gen})
	if updated.(Model).done {
		t.Error("stale completion was applied")
	}

	m = complete(t, m)
	if !m.done || m.exitCode != apperrors.ExitSuccess {
		t.Errorf("rerun outcome: done=%v exitCode=%d", m.done, m.exitCode)
	}
}

func TestModel_ContextCancelled(t *testing.T) {
	m := newTestModel(t, "mul", 6, 7)

	updated, cmd := m.Update(ContextCancelledMsg{Err: context.DeadlineExceeded})
	if cmd != nil || updated.(Model).done {
		t.Error("deadline should be reported by the run, not end the session")
	}

	updated, cmd = m.Update(ContextCancelledMsg{Err: context.Canceled})
	m = updated.(Model)
	if !isQuit(cmd) || m.exitCode != apperrors.ExitErrorCanceled || !m.canceled {
		t.Errorf("cancellation: exitCode=%d canceled=%v", m.exitCode, m.canceled)
	}
}

func TestModel_MetricsMessages(t *testing.T) {
	m := newTestModel(t, "mul", 6, 7)

	updated, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick while running should schedule sampling")
	}
	m = updated.(Model)

	updated, _ = m.Update(MemStatsMsg{Alloc: 2048, HeapSys: 4096, NumGC: 3, NumGoroutine: 7})
	m = updated.(Model)
	updated, _ = m.Update(SysStatsMsg{CPUPercent: 50, MemPercent: 25})
	m = updated.(Model)

	view := m.View()
	for _, want := range []string{"Heap:", "Goroutines:", "CPU", "MEM", "50.0%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	m, _ = press(m, 'p')
	if !m.paused || !strings.Contains(m.View(), "PAUSED") {
		t.Error("pause not shown")
	}

	m = complete(t, m)
	if _, cmd := m.Update(TickMsg(time.Now())); cmd != nil {
		t.Error("tick after completion should stop sampling")
	}
}

func TestFormatResultValue(t *testing.T) {
	long, _ := new(mpint.Int).SetString("-123456789012345678901234567890")
	tests := []struct {
		name  string
		x     *mpint.Int
		hex   bool
		full  bool
		limit int
		want  string
	}{
		{"short", mpint.NewInt(42), false, false, 30, "42"},
		{"hex", mpint.NewInt(-255), true, false, 30, "-0xff"},
		{"truncated", long, false, false, 11, "-123...7890"},
		{"full", long, false, true, 11, "-123456789012345678901234567890"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatResultValue(tt.x, tt.hex, tt.full, tt.limit); got != tt.want {
				t.Errorf("formatResultValue() = %q, want %q", got, tt.want)
			}
		})
	}
}
