//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/mpcalc/internal/decimal"
	"github.com/agbru/mpcalc/internal/format"
	"github.com/agbru/mpcalc/internal/mpint"
	"github.com/agbru/mpcalc/internal/orchestration"
	"github.com/agbru/mpcalc/internal/sysmon"
	"github.com/agbru/mpcalc/internal/ui"
)

const (
	// TruncationLimit is the digit count from which a result is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges is the number of digits shown at each end of a
	// truncated number.
	DisplayEdges = 25
	// ProgressRefreshRate is the refresh period of the progress line.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the width in characters of the progress bar.
	ProgressBarWidth = 20
)

// Spinner abstracts a terminal spinner so that DisplayProgress can be
// tested without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() {
	rs.s.Start()
}

func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress shows a spinner with the number of finished engines and
// the elapsed time until progressChan is closed.
//
// Parameters:
//   - wg: Signaled when the display is done.
//   - progressChan: Receives one update per finished engine.
//   - numEngines: The number of engines running.
//   - out: The writer for the spinner.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numEngines int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numEngines)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	start := time.Now()
	s.UpdateSuffix(progressSuffix(agg, 0))
	s.Start()
	defer s.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()
	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				return
			}
			agg.Update(update)
		case <-ticker.C:
		}
		s.UpdateSuffix(progressSuffix(agg, time.Since(start)))
	}
}

// progressSuffix renders the text shown after the spinner.
func progressSuffix(agg *orchestration.ProgressAggregator, elapsed time.Duration) string {
	if !agg.IsMultiEngine() {
		return fmt.Sprintf(" Computing... %s", format.FormatExecutionDuration(elapsed))
	}
	suffix := fmt.Sprintf(" %s %d/%d engines, %s", progressBar(agg.Fraction(), ProgressBarWidth),
		agg.Finished(), agg.NumEngines(), format.FormatExecutionDuration(elapsed))
	if eta := agg.ETA(); eta > 0 {
		suffix += ", ETA " + format.FormatExecutionDuration(eta)
	}
	return suffix
}

// progressBar renders a textual progress bar of the given width.
func progressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// DisplayResult prints a result with its timing and, on request, the
// fixed-point rendering and the detailed analysis.
//
// Parameters:
//   - result: The result to display.
//   - opts: The presentation options.
//   - out: The output writer.
func DisplayResult(result orchestration.OperationResult, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintf(out, "\n--- Result ---\n")
	fmt.Fprintf(out, "Engine: %s%s%s, time: %s%s%s\n",
		ui.ColorBlue(), result.Name, ui.ColorReset(),
		ui.ColorYellow(), format.FormatExecutionDuration(result.Duration), ui.ColorReset())

	truncated := displayValue(out, opts.Op, result.Value, opts.Verbose)
	if result.Remainder != nil {
		truncated = displayValue(out, "modulus", result.Remainder, opts.Verbose) || truncated
	}
	if truncated {
		fmt.Fprintf(out, "%sTip: use -v to print the full value.%s\n", ui.ColorMagenta(), ui.ColorReset())
	}

	if opts.Scale >= 0 {
		if s, ok := decimal.Format(result.Value, opts.Scale); ok {
			fmt.Fprintf(out, "Fixed-point (scale %d): %s%s%s\n", opts.Scale, ui.ColorGreen(), s, ui.ColorReset())
		} else {
			fmt.Fprintf(out, "Fixed-point (scale %d): %svalue does not fit in 64 bits%s\n", opts.Scale, ui.ColorRed(), ui.ColorReset())
		}
	}

	if opts.Details {
		DisplayDetails(result.Value, out)
		DisplaySystemStats(sysmon.Sample(), out)
	}
}

// displayValue prints one labeled value and reports whether it was
// truncated.
func displayValue(out io.Writer, label string, x *mpint.Int, verbose bool) bool {
	s := x.String()
	digits := len(strings.TrimPrefix(s, "-"))
	if verbose || digits <= TruncationLimit {
		fmt.Fprintf(out, "%s = %s%s%s\n", label, ui.ColorGreen(), s, ui.ColorReset())
		return false
	}
	fmt.Fprintf(out, "%s = %s%s%s (truncated, %s digits)\n", label, ui.ColorGreen(),
		format.TruncateDigits(s, TruncationLimit, DisplayEdges), ui.ColorReset(),
		format.FormatNumberString(fmt.Sprint(digits)))
	return true
}

// DisplayDetails prints the size analysis of x.
func DisplayDetails(x *mpint.Int, out io.Writer) {
	s := x.String()
	fmt.Fprintf(out, "\nDetailed result analysis:\n")
	fmt.Fprintf(out, "  Sign: %d\n", x.Sign())
	fmt.Fprintf(out, "  Result binary size: %s%s%s bits (%d limbs)\n",
		ui.ColorCyan(), format.FormatNumberString(fmt.Sprint(x.BitLen())), ui.ColorReset(), x.Len())
	fmt.Fprintf(out, "  Number of digits: %s%s%s\n",
		ui.ColorCyan(), format.FormatNumberString(fmt.Sprint(len(strings.TrimPrefix(s, "-")))), ui.ColorReset())
	fmt.Fprintf(out, "  Trailing zero bits: %d\n", x.TrailingZeroBits())
}

// DisplaySystemStats prints the host snapshot. Unknown fields are skipped.
func DisplaySystemStats(stats sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "\nSystem:\n")
	if stats.CPUModel != "" {
		fmt.Fprintf(out, "  CPU:    %s\n", stats.CPUModel)
	}
	fmt.Fprintf(out, "  CPU use: %.1f%%\n", stats.CPUPercent)
	if stats.MemTotal > 0 {
		fmt.Fprintf(out, "  Memory: %.1f%% of %s\n", stats.MemPercent, format.FormatBytes(stats.MemTotal))
	}
}
