package tui

// sparkLevels are the block characters of a sparkline, lowest first.
const sparkLevels = "▁▂▃▄▅▆▇█"

// sampleHistory keeps the most recent percentage samples of one metric,
// oldest first.
type sampleHistory struct {
	samples []float64
	limit   int
}

func newSampleHistory(limit int) *sampleHistory {
	limit = max(limit, 1)
	return &sampleHistory{samples: make([]float64, 0, limit), limit: limit}
}

// add appends v, dropping the oldest sample once the history is full.
func (h *sampleHistory) add(v float64) {
	if len(h.samples) == h.limit {
		copy(h.samples, h.samples[1:])
		h.samples = h.samples[:h.limit-1]
	}
	h.samples = append(h.samples, v)
}

// last returns the newest sample, or 0 when empty.
func (h *sampleHistory) last() float64 {
	if len(h.samples) == 0 {
		return 0
	}
	return h.samples[len(h.samples)-1]
}

// tail returns at most n of the newest samples.
func (h *sampleHistory) tail(n int) []float64 {
	if n < len(h.samples) {
		return h.samples[len(h.samples)-n:]
	}
	return h.samples
}

func (h *sampleHistory) clear() {
	h.samples = h.samples[:0]
}

// sparkline draws one block per value. Values are percentages and are
// clamped to 0..100.
func sparkline(values []float64) string {
	levels := []rune(sparkLevels)
	top := len(levels) - 1
	out := make([]rune, len(values))
	for i, v := range values {
		v = min(max(v, 0), 100)
		out[i] = levels[min(int(v*float64(top)/100), top)]
	}
	return string(out)
}
