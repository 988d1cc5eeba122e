package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/mpcalc/internal/format"
)

// EngineStatus is the state of one engine in the current run.
type EngineStatus int

const (
	StatusRunning EngineStatus = iota
	StatusComplete
	StatusError
)

// enginesState holds the per-engine rows of the dashboard.
type enginesState struct {
	names     []string
	statuses  []EngineStatus
	durations []time.Duration
	errs      []error
	finished  int
	eta       time.Duration
}

func newEnginesState(names []string) enginesState {
	s := enginesState{names: names}
	s.reset()
	return s
}

func (s *enginesState) reset() {
	s.statuses = make([]EngineStatus, len(s.names))
	s.durations = make([]time.Duration, len(s.names))
	s.errs = make([]error, len(s.names))
	s.finished = 0
	s.eta = 0
}

// markDone records the outcome of engine i.
func (s *enginesState) markDone(i int, d time.Duration, err error) {
	if i < 0 || i >= len(s.names) {
		return
	}
	s.durations[i] = d
	s.errs[i] = err
	s.statuses[i] = StatusComplete
	if err != nil {
		s.statuses[i] = StatusError
	}
}

// indexOf returns the row of the named engine, or -1.
func (s *enginesState) indexOf(name string) int {
	for i, n := range s.names {
		if n == name {
			return i
		}
	}
	return -1
}

// Column widths for the engine table (shared between header and rows).
const (
	colWidthName   = 14
	colWidthStatus = 10
	colWidthDur    = 12
)

// renderEngineTable renders one row per engine.
func (m Model) renderEngineTable() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("ENGINES"))
	if m.running() && m.engines.eta > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d/%d done, ETA %s",
			m.engines.finished, len(m.engines.names), format.FormatExecutionDuration(m.engines.eta))))
	}
	b.WriteString("\n")

	colName := lipgloss.NewStyle().Width(colWidthName)
	colStatus := lipgloss.NewStyle().Width(colWidthStatus)
	colDur := lipgloss.NewStyle().Width(colWidthDur).Align(lipgloss.Right)

	b.WriteString(tableHeaderStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		colName.Render("Engine"), " ", colStatus.Render("Status"), " ", colDur.Render("Duration"), "  ", "Detail")))
	b.WriteString("\n")

	for i, name := range m.engines.names {
		var status, detail string
		dur := "-"
		switch m.engines.statuses[i] {
		case StatusRunning:
			status = statusRunningStyle.Render(m.spinner.View() + " RUN")
			if !m.running() {
				status = mutedStyle.Render("-")
			}
		case StatusComplete:
			status = statusDoneStyle.Render("OK")
			dur = formatDuration(m.engines.durations[i])
			if r, ok := m.resultFor(name); ok && r.Value != nil {
				detail = mutedStyle.Render(fmt.Sprintf("%s bits", format.FormatNumberString(fmt.Sprint(r.Value.BitLen()))))
			}
		case StatusError:
			status = statusErrorStyle.Render("ERR")
			dur = formatDuration(m.engines.durations[i])
			detail = statusErrorStyle.Render(truncateString(m.engines.errs[i].Error(), max(m.width-colWidthName-colWidthStatus-colWidthDur-12, 10)))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			colName.Render(engineNameStyle.Render(truncateString(name, colWidthName))), " ",
			colStatus.Render(status), " ",
			colDur.Render(dur), "  ", detail))
		if i < len(m.engines.names)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// truncateString truncates a string to maxLen characters, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// formatDuration formats a duration for the table, showing sub-microsecond
// runs explicitly.
func formatDuration(d time.Duration) string {
	if d < time.Microsecond {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}
