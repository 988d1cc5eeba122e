package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/agbru/mpcalc/internal/config"
	"github.com/agbru/mpcalc/internal/engine"
	"github.com/agbru/mpcalc/internal/ui"
)

// PrintExecutionConfig displays the operation, the timeout, the host and
// the multiplication thresholds in effect.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Running %s%s%s on %s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.Op, ui.ColorReset(), describeOperands(cfg),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Thresholds (limbs): Karatsuba=%s%d%s, Toom-3=%s%d%s, squaring=%s%d/%d%s, parallel=%s%d%s.\n",
		ui.ColorCyan(), cfg.KaratsubaThreshold, ui.ColorReset(),
		ui.ColorCyan(), cfg.ToomCookThreshold, ui.ColorReset(),
		ui.ColorCyan(), cfg.KaratsubaSquareThreshold, cfg.ToomCookSquareThreshold, ui.ColorReset(),
		ui.ColorCyan(), cfg.ParallelThreshold, ui.ColorReset())
}

// describeOperands summarizes the operands by digit count.
func describeOperands(cfg config.AppConfig) string {
	digits := func(s string) int { return len(strings.TrimLeft(s, "+-")) }
	arity, _ := config.OperationArity(cfg.Op)
	switch arity {
	case config.Unary:
		return fmt.Sprintf("a (%d digits)", digits(cfg.A))
	case config.Shift:
		return fmt.Sprintf("a (%d digits) by %s bits", digits(cfg.A), cfg.B)
	}
	return fmt.Sprintf("a (%d digits) and b (%d digits)", digits(cfg.A), digits(cfg.B))
}

// PrintExecutionMode displays whether one engine runs or several are
// compared.
//
// Parameters:
//   - engines: The engines that will run.
//   - out: The writer for standard output.
func PrintExecutionMode(engines []engine.Engine, out io.Writer) {
	var modeDesc string
	if len(engines) > 1 {
		modeDesc = fmt.Sprintf("Parallel comparison of %d engines", len(engines))
	} else {
		modeDesc = fmt.Sprintf("Single run with the %s%s%s engine",
			ui.ColorGreen(), engines[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
