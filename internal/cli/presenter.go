package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	apperrors "github.com/agbru/mpcalc/internal/errors"
	"github.com/agbru/mpcalc/internal/format"
	"github.com/agbru/mpcalc/internal/metrics"
	"github.com/agbru/mpcalc/internal/orchestration"
	"github.com/agbru/mpcalc/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// terminal spinner.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner while the engines run.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numEngines int, out io.Writer) {
	DisplayProgress(wg, progressChan, numEngines, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for
// colorized terminal output.
type CLIResultPresenter struct{}

var (
	_ orchestration.ResultPresenter   = CLIResultPresenter{}
	_ orchestration.DurationFormatter = CLIResultPresenter{}
	_ orchestration.ErrorHandler      = CLIResultPresenter{}
)

// PresentComparisonTable renders one row per engine with its duration,
// result size and status.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.OperationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")
	fmt.Fprintln(out, renderComparisonTable(results))
}

func renderComparisonTable(results []orchestration.OperationResult) string {
	th := ui.GetCurrentTableTheme()
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(th.Border)).
		Headers("Engine", "Duration", "Bits", "Status").
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return style.Bold(true).Foreground(th.Header)
			case col == 0:
				return style.Foreground(th.Name)
			case col < 3:
				return style.Foreground(th.Value).Align(lipgloss.Right)
			case row < len(results) && results[row].Err != nil:
				return style.Foreground(th.Error)
			}
			return style.Foreground(th.Success)
		})

	for _, res := range results {
		duration := format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		bits, status := "-", "✅ Success"
		if res.Err != nil {
			status = fmt.Sprintf("❌ Failure (%v)", res.Err)
		} else {
			bits = format.FormatNumberString(fmt.Sprint(res.Value.BitLen()))
		}
		t.Row(res.Name, duration, bits, status)
	}
	return t.Render()
}

// PresentResult displays the final result, or only its value in quiet
// mode.
func (CLIResultPresenter) PresentResult(result orchestration.OperationResult, opts orchestration.PresentationOptions, out io.Writer) {
	if opts.Quiet {
		DisplayQuietResult(out, result)
		return
	}
	DisplayResult(result, opts, out)
}

// FormatDuration formats a duration with the CLI's standard formatting.
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// HandleError prints a status line for err and returns its exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	code := apperrors.ExitCodeFor(err)
	switch code {
	case apperrors.ExitErrorTimeout:
		fmt.Fprintf(out, "Status: %sFailure (Timeout)%s. The execution limit was reached after %s%s%s.\n",
			ui.ColorRed(), ui.ColorReset(), ui.ColorYellow(), format.FormatExecutionDuration(duration), ui.ColorReset())
	case apperrors.ExitErrorCanceled:
		fmt.Fprintf(out, "Status: %sCanceled%s.\n", ui.ColorYellow(), ui.ColorReset())
	default:
		fmt.Fprintf(out, "Status: %sFailure%s. %v\n", ui.ColorRed(), ui.ColorReset(), err)
	}
	return code
}

// DisplayMemoryStats shows the allocation activity of a run.
func DisplayMemoryStats(delta metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(delta.HeapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(delta.TotalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", delta.NumGC)
	if delta.PauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(delta.PauseTotalNs)/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms\n")
	}
}
