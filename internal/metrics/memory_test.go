package metrics

import "testing"

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	snap := mc.Snapshot()

	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
}

func TestMemoryCollector_Delta(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	before := mc.Snapshot()

	buf := make([]byte, 1024*1024) // 1 MB
	buf[len(buf)-1] = 1

	after := mc.Snapshot()

	// Sys should not decrease between snapshots
	if after.Sys < before.Sys {
		t.Error("Sys should not decrease between snapshots")
	}
	if after.TotalAlloc < before.TotalAlloc {
		t.Error("TotalAlloc should not decrease between snapshots")
	}
}

func TestMemorySnapshotSub(t *testing.T) {
	t.Parallel()

	before := MemorySnapshot{HeapAlloc: 10, TotalAlloc: 100, NumGC: 2, PauseTotalNs: 50}
	after := MemorySnapshot{HeapAlloc: 7, TotalAlloc: 160, NumGC: 5, PauseTotalNs: 80}
	d := after.Sub(before)
	if d.HeapAlloc != 7 || d.TotalAlloc != 60 || d.NumGC != 3 || d.PauseTotalNs != 30 {
		t.Errorf("Sub = %+v", d)
	}
	if z := before.Sub(after); z.TotalAlloc != 0 || z.NumGC != 0 {
		t.Errorf("reversed Sub should clamp at zero, got %+v", z)
	}
}
