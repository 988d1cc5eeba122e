package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/mpcalc/internal/cli"
	apperrors "github.com/agbru/mpcalc/internal/errors"
	"github.com/agbru/mpcalc/internal/logging"
	"github.com/agbru/mpcalc/internal/metrics"
	"github.com/agbru/mpcalc/internal/orchestration"
)

// runCalculate runs the configured operation on the selected engines and
// presents the outcome.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	req, err := orchestration.NewRequest(a.Config)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}
	engines, err := orchestration.GetEnginesToRun(a.Config, a.Factory)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(engines, out)
	}

	var progressReporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet {
		progressReporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()
	results := orchestration.ExecuteOperations(ctx, engines, req, progressReporter, progressOut)
	memDelta := collector.Snapshot().Sub(before)

	opMetrics := metrics.NewOperationMetrics()
	for _, res := range results {
		bits := 0
		if res.Value != nil {
			bits = res.Value.BitLen()
		}
		opMetrics.Observe(res.Name, req.Op, res.Duration, bits, res.Err)
		a.Logger.Debug("engine finished",
			logging.String("engine", res.Name), logging.String("op", req.Op),
			logging.Int("bits", bits), logging.Err(res.Err))
	}

	presenter := cli.CLIResultPresenter{}
	opts := orchestration.PresentationOptions{
		Op:      req.Op,
		Verbose: a.Config.Verbose,
		Details: a.Config.Details,
		Quiet:   a.Config.Quiet,
		Scale:   a.Config.Scale,
	}
	exitCode := orchestration.AnalyzeComparisonResults(results, opts, presenter, presenter, out)

	switch exitCode {
	case apperrors.ExitErrorMismatch:
		opMetrics.RecordMismatch()
		a.Logger.Error("engines returned different results", nil,
			logging.String("op", req.Op), logging.Int("engines", len(results)))
	case apperrors.ExitSuccess:
		if a.Config.Details && !a.Config.Quiet {
			cli.DisplayMemoryStats(memDelta, out)
		}
		outputCfg := cli.OutputConfig{OutputFile: a.Config.OutputFile, Quiet: a.Config.Quiet}
		if err := cli.SaveResult(out, results[0], req.Op, outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
			exitCode = apperrors.ExitErrorGeneric
		}
	}

	if a.Config.MetricsFile != "" {
		if err := opMetrics.WriteToTextfile(a.Config.MetricsFile); err != nil {
			a.Logger.Error("could not write metrics", err, logging.String("path", a.Config.MetricsFile))
		}
	}
	return exitCode
}
