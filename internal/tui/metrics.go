package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/mpcalc/internal/format"
)

// historySize is the number of system samples kept for the sparklines.
const historySize = 60

// MetricsModel displays runtime memory statistics and the recent CPU and
// memory usage of the host.
type MetricsModel struct {
	alloc        uint64
	heapSys      uint64
	numGC        uint32
	pauseTotalNs uint64
	numGoroutine int

	cpuHistory *sampleHistory
	memHistory *sampleHistory
	width      int
}

// NewMetricsModel creates a new metrics panel.
func NewMetricsModel() MetricsModel {
	return MetricsModel{
		cpuHistory: newSampleHistory(historySize),
		memHistory: newSampleHistory(historySize),
	}
}

// SetWidth updates the available width.
func (m *MetricsModel) SetWidth(w int) {
	m.width = w
}

// UpdateMemStats updates memory statistics.
func (m *MetricsModel) UpdateMemStats(msg MemStatsMsg) {
	m.alloc = msg.Alloc
	m.heapSys = msg.HeapSys
	m.numGC = msg.NumGC
	m.pauseTotalNs = msg.PauseTotalNs
	m.numGoroutine = msg.NumGoroutine
}

// UpdateSysStats records a host sample.
func (m *MetricsModel) UpdateSysStats(msg SysStatsMsg) {
	m.cpuHistory.add(msg.CPUPercent)
	m.memHistory.add(msg.MemPercent)
}

// Reset clears the sample histories.
func (m *MetricsModel) Reset() {
	m.cpuHistory.clear()
	m.memHistory.clear()
}

// View renders the metrics panel content.
func (m MetricsModel) View() string {
	var rows strings.Builder

	pipe := metricLabelStyle.Render(" | ")
	rows.WriteString(fmt.Sprintf("%s %s%s%s %s%s%s %s",
		metricLabelStyle.Render("Heap:"), metricValueStyle.Render(format.FormatBytes(m.alloc)+" / "+format.FormatBytes(m.heapSys)),
		pipe,
		metricLabelStyle.Render("GC:"), metricValueStyle.Render(fmt.Sprintf("%d (%.1fms)", m.numGC, float64(m.pauseTotalNs)/1e6)),
		pipe,
		metricLabelStyle.Render("Goroutines:"), metricValueStyle.Render(fmt.Sprintf("%d", m.numGoroutine))))

	width := max(m.width-20, 10)
	rows.WriteString("\n")
	rows.WriteString(sparklineRow("CPU", m.cpuHistory, width, cpuSparklineStyle))
	rows.WriteString("\n")
	rows.WriteString(sparklineRow("MEM", m.memHistory, width, memSparklineStyle))
	return rows.String()
}

// sparklineRow renders the most recent samples that fit in width, followed
// by the last value.
func sparklineRow(label string, history *sampleHistory, width int, style lipgloss.Style) string {
	return fmt.Sprintf("%s %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-4s", label)),
		style.Render(sparkline(history.tail(width))),
		metricValueStyle.Render(fmt.Sprintf("%5.1f%%", history.last())))
}
