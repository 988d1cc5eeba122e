package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestOperationMetrics_Observe(t *testing.T) {
	t.Parallel()
	m := NewOperationMetrics()

	m.Observe("pure", "mul", 3*time.Millisecond, 128, nil)
	m.Observe("pure", "mul", 5*time.Millisecond, 130, nil)
	m.Observe("bigref", "quo", time.Millisecond, 0, errors.New("division by zero"))
	m.RecordMismatch()

	if got := testutil.ToFloat64(m.operations.WithLabelValues("pure", "mul", "success")); got != 2 {
		t.Errorf("pure mul successes = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.operations.WithLabelValues("bigref", "quo", "error")); got != 1 {
		t.Errorf("bigref quo errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.resultBits.WithLabelValues("pure", "mul")); got != 130 {
		t.Errorf("result bits = %v, want 130", got)
	}
	if got := testutil.ToFloat64(m.mismatches); got != 1 {
		t.Errorf("mismatches = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.duration); got != 1 {
		t.Errorf("duration series = %d, want 1", got)
	}
}

func TestOperationMetrics_WriteToTextfile(t *testing.T) {
	t.Parallel()
	m := NewOperationMetrics()
	m.Observe("auto", "sqr", time.Millisecond, 64, nil)

	path := filepath.Join(t.TempDir(), "mpcalc.prom")
	if err := m.WriteToTextfile(path); err != nil {
		t.Fatalf("WriteToTextfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	body := string(data)
	for _, want := range []string{
		`mpcalc_operations_total{engine="auto",op="sqr",status="success"} 1`,
		"mpcalc_operation_duration_seconds_bucket",
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("textfile missing %q", want)
		}
	}

	if err := m.WriteToTextfile(""); err == nil {
		t.Error("empty path should fail")
	}
}
