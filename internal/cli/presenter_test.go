package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/mpcalc/internal/errors"
	"github.com/agbru/mpcalc/internal/metrics"
	"github.com/agbru/mpcalc/internal/mpint"
	"github.com/agbru/mpcalc/internal/orchestration"
)

func TestPresentComparisonTable(t *testing.T) {
	t.Parallel()
	results := []orchestration.OperationResult{
		{Name: "pure", Value: mpint.NewInt(1 << 40), Duration: 2 * time.Millisecond},
		{Name: "bigref", Value: mpint.NewInt(1 << 40)},
		{Name: "gmp", Err: errors.New("boom")},
	}
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)
	output := buf.String()
	for _, want := range []string{"Comparison Summary", "Engine", "pure", "bigref", "41", "< 1µs", "Success", "Failure (boom)"} {
		if !strings.Contains(output, want) {
			t.Errorf("table missing %q:\n%s", want, output)
		}
	}
}

func TestPresentResult(t *testing.T) {
	t.Parallel()
	res := orchestration.OperationResult{Name: "pure", Value: mpint.NewInt(42)}

	var quiet bytes.Buffer
	CLIResultPresenter{}.PresentResult(res, orchestration.PresentationOptions{Op: "add", Quiet: true, Scale: -1}, &quiet)
	if quiet.String() != "42\n" {
		t.Errorf("quiet output = %q", quiet.String())
	}

	var normal bytes.Buffer
	CLIResultPresenter{}.PresentResult(res, orchestration.PresentationOptions{Op: "add", Scale: -1}, &normal)
	if !strings.Contains(normal.String(), "--- Result ---") {
		t.Errorf("normal output = %q", normal.String())
	}
}

func TestHandleError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		code int
		want string
	}{
		{"timeout", context.DeadlineExceeded, apperrors.ExitErrorTimeout, "Timeout"},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled, "Canceled"},
		{"division", apperrors.NewArithmeticError("quo", apperrors.ErrDivisionByZero), apperrors.ExitErrorGeneric, "division by zero"},
		{"validation", apperrors.ValidationError{Field: "a", Message: "bad"}, apperrors.ExitErrorConfig, "bad"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			code := CLIResultPresenter{}.HandleError(tt.err, time.Second, &buf)
			if code != tt.code {
				t.Errorf("code = %d, want %d", code, tt.code)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output %q does not contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()
	if got := (CLIResultPresenter{}).FormatDuration(1500 * time.Microsecond); got == "" {
		t.Error("empty duration")
	}
}

func TestDisplayMemoryStats(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayMemoryStats(metrics.MemorySnapshot{HeapAlloc: 2048, TotalAlloc: 4096, NumGC: 3, PauseTotalNs: 1_500_000}, &buf)
	for _, want := range []string{"2.0 KiB", "4.0 KiB", "GC cycles:       3", "1.50ms"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("missing %q in:\n%s", want, buf.String())
		}
	}
}
