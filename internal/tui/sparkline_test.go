package tui

import (
	"slices"
	"testing"
)

func TestSampleHistory(t *testing.T) {
	t.Parallel()
	h := newSampleHistory(3)
	if h.last() != 0 || len(h.tail(5)) != 0 {
		t.Fatal("new history should be empty")
	}
	for _, v := range []float64{10, 20, 30, 40} {
		h.add(v)
	}
	if got := h.tail(10); !slices.Equal(got, []float64{20, 30, 40}) {
		t.Errorf("tail(10) = %v, oldest sample should have been dropped", got)
	}
	if got := h.tail(2); !slices.Equal(got, []float64{30, 40}) {
		t.Errorf("tail(2) = %v", got)
	}
	if h.last() != 40 {
		t.Errorf("last() = %v, want 40", h.last())
	}

	h.clear()
	if h.last() != 0 || len(h.tail(3)) != 0 {
		t.Error("clear() kept samples")
	}
}

func TestSampleHistory_MinimumLimit(t *testing.T) {
	t.Parallel()
	h := newSampleHistory(0)
	h.add(1)
	h.add(2)
	if got := h.tail(5); !slices.Equal(got, []float64{2}) {
		t.Errorf("tail = %v, want [2]", got)
	}
}

func TestSparkline(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{"empty", nil, ""},
		{"idle", []float64{0, 0, 0}, "▁▁▁"},
		{"saturated", []float64{100, 100}, "██"},
		{"ramp", []float64{0, 50, 100}, "▁▄█"},
		{"out of range", []float64{-20, 150}, "▁█"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := sparkline(tt.values); got != tt.want {
				t.Errorf("sparkline(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}
