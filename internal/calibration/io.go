package calibration

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/agbru/mpcalc/internal/config"
	"github.com/agbru/mpcalc/internal/format"
	"github.com/agbru/mpcalc/internal/ui"
)

// printCalibrationResults formats and prints the timing table of one sweep.
func printCalibrationResults(out io.Writer, results []calibrationResult, bestThreshold int) {
	fmt.Fprintln(out)
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %sThreshold%s    │ %sExecution Time%s\n", ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())
	fmt.Fprintf(tw, "  %s┼%s\n", strings.Repeat("─", 14), strings.Repeat("─", 25))
	for _, res := range results {
		thresholdLabel := fmt.Sprintf("%d limbs", res.Threshold)
		if res.Threshold == 0 {
			thresholdLabel = "Sequential"
		}
		durationStr := fmt.Sprintf("%sN/A%s", ui.ColorRed(), ui.ColorReset())
		if res.Err == nil {
			durationStr = format.FormatExecutionDuration(res.Duration)
			if res.Duration == 0 {
				durationStr = "< 1µs"
			}
		}
		highlight := ""
		if res.Threshold == bestThreshold && res.Err == nil {
			highlight = fmt.Sprintf(" %s(Optimal)%s", ui.ColorGreen(), ui.ColorReset())
		}
		fmt.Fprintf(tw, "  %s%-12s%s │ %s%s%s%s\n", ui.ColorCyan(), thresholdLabel, ui.ColorReset(), ui.ColorYellow(), durationStr, ui.ColorReset(), highlight)
	}
	tw.Flush()
}

// printCalibrationOutput prints the thresholds a calibration produced.
func printCalibrationOutput(cfg config.AppConfig, out io.Writer) {
	parallel := fmt.Sprintf("%d", cfg.ParallelThreshold)
	if cfg.ParallelThreshold < 0 {
		parallel = "off"
	}
	fmt.Fprintf(out, "%sCalibrated thresholds%s: karatsuba=%s%d%s, toom=%s%d%s, karatsuba-sqr=%s%d%s, toom-sqr=%s%d%s, parallel=%s%s%s limbs\n",
		ui.ColorGreen(), ui.ColorReset(),
		ui.ColorYellow(), cfg.KaratsubaThreshold, ui.ColorReset(),
		ui.ColorYellow(), cfg.ToomCookThreshold, ui.ColorReset(),
		ui.ColorYellow(), cfg.KaratsubaSquareThreshold, ui.ColorReset(),
		ui.ColorYellow(), cfg.ToomCookSquareThreshold, ui.ColorReset(),
		ui.ColorYellow(), parallel, ui.ColorReset())
}
