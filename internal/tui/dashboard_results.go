package tui

import (
	"fmt"
	"strings"

	"github.com/agbru/mpcalc/internal/cli"
	apperrors "github.com/agbru/mpcalc/internal/errors"
	"github.com/agbru/mpcalc/internal/format"
	"github.com/agbru/mpcalc/internal/mpint"
	"github.com/agbru/mpcalc/internal/orchestration"
)

// resultsState holds the outcome of the last finished run.
type resultsState struct {
	results  []orchestration.OperationResult
	showHex  bool
	showFull bool
}

// best returns the fastest successful result. Results arrive sorted
// fastest first with failures last.
func (s resultsState) best() (orchestration.OperationResult, bool) {
	if len(s.results) == 0 || s.results[0].Err != nil {
		return orchestration.OperationResult{}, false
	}
	return s.results[0], true
}

// resultFor returns the result of the named engine in the last run.
func (m Model) resultFor(name string) (orchestration.OperationResult, bool) {
	for _, r := range m.results.results {
		if r.Name == name {
			return r, true
		}
	}
	return orchestration.OperationResult{}, false
}

// renderResultsSection renders the result panel content.
func (m Model) renderResultsSection() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("RESULT"))
	b.WriteString("\n")

	if m.running() {
		b.WriteString(fmt.Sprintf("%s Computing %s on %d engine(s)...", m.spinner.View(), m.req.Op, len(m.engines.names)))
		return b.String()
	}
	if m.canceled {
		b.WriteString(statusErrorStyle.Render("Run canceled. Press r to run again."))
		return b.String()
	}

	best, ok := m.results.best()
	if !ok {
		msg := "No engine could complete the operation."
		if len(m.results.results) > 0 {
			msg = fmt.Sprintf("%s %v", msg, m.results.results[0].Err)
		}
		b.WriteString(statusErrorStyle.Render(msg))
		return b.String()
	}

	switch {
	case m.exitCode == apperrors.ExitErrorMismatch:
		b.WriteString(statusErrorStyle.Render("Global Status: CRITICAL ERROR! The engines returned different results."))
	case len(m.results.results) > 1:
		b.WriteString(statusDoneStyle.Render("Global Status: Success. All valid results are consistent."))
	default:
		b.WriteString(statusDoneStyle.Render("Global Status: Success."))
	}
	b.WriteString("\n")

	limit := m.maxValueLength()
	b.WriteString(fmt.Sprintf("%s = %s\n", m.req.Op,
		resultValueStyle.Render(formatResultValue(best.Value, m.results.showHex, m.results.showFull, limit))))
	if best.Remainder != nil {
		b.WriteString(fmt.Sprintf("modulus = %s\n",
			resultValueStyle.Render(formatResultValue(best.Remainder, m.results.showHex, m.results.showFull, limit))))
	}
	digits := len(strings.TrimPrefix(best.Value.String(), "-"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s digits, %s bits. Fastest: %s (%s)",
		format.FormatNumberString(fmt.Sprint(digits)),
		format.FormatNumberString(fmt.Sprint(best.Value.BitLen())),
		best.Name, formatDuration(best.Duration))))
	return b.String()
}

// formatResultValue renders x in decimal or hexadecimal, shortened to limit
// characters unless full is set.
func formatResultValue(x *mpint.Int, hex, full bool, limit int) string {
	s := x.String()
	if hex {
		s = cli.FormatHex(x)
	}
	if full || len(s) <= limit {
		return s
	}
	edge := max((limit-3)/2, 1)
	return s[:edge] + "..." + s[len(s)-edge:]
}

// maxValueLength returns the maximum result value length based on terminal width.
func (m Model) maxValueLength() int {
	switch {
	case m.width > 160:
		return 120
	case m.width > 120:
		return 80
	case m.width > 80:
		return 50
	}
	return 30
}
