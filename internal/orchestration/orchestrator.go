package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/mpcalc/internal/engine"
	apperrors "github.com/agbru/mpcalc/internal/errors"
)

const tracerName = "github.com/agbru/mpcalc/internal/orchestration"

// ProgressBufferMultiplier sizes the progress channel per engine so that a
// slow reporter never blocks an engine goroutine.
const ProgressBufferMultiplier = 2

// ExecuteOperations runs req on every engine concurrently.
//
// Each engine runs in its own goroutine under a span named after the
// operation. Engine failures are recorded in the results and never cancel
// the other engines.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - engines: The engines to run.
//   - req: The parsed operation.
//   - progressReporter: The progress display (NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress output.
//
// Returns:
//   - []OperationResult: One result per engine, in the order of engines.
func ExecuteOperations(ctx context.Context, engines []engine.Engine, req Request, progressReporter ProgressReporter, out io.Writer) []OperationResult {
	g, ctx := errgroup.WithContext(ctx)
	tracer := otel.Tracer(tracerName)
	results := make([]OperationResult, len(engines))
	progressChan := make(chan ProgressUpdate, len(engines)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(engines), out)

	for i, e := range engines {
		idx, eng := i, e
		g.Go(func() error {
			spanCtx, span := tracer.Start(ctx, "mpcalc."+req.Op, trace.WithAttributes(
				attribute.String("mpcalc.engine", eng.Name()),
				attribute.Int("mpcalc.a.limbs", req.A.Len()),
			))
			start := time.Now()
			value, rem, err := Evaluate(spanCtx, eng, req)
			elapsed := time.Since(start)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			} else {
				span.SetAttributes(attribute.Int("mpcalc.result.bits", value.BitLen()))
			}
			span.End()

			results[idx] = OperationResult{
				Name: eng.Name(), Value: value, Remainder: rem, Duration: elapsed, Err: err,
			}
			progressChan <- ProgressUpdate{Index: idx, Engine: eng.Name(), Duration: elapsed, Err: err}
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// sameResult reports whether two successful results carry equal values.
func sameResult(a, b OperationResult) bool {
	if a.Value.Cmp(b.Value) != 0 {
		return false
	}
	if (a.Remainder == nil) != (b.Remainder == nil) {
		return false
	}
	return a.Remainder == nil || a.Remainder.Cmp(b.Remainder) == 0
}

// AnalyzeComparisonResults sorts the results by duration, checks that every
// successful engine agrees, presents the outcome and returns the exit code.
//
// The comparison table is only shown when more than one engine ran.
//
// Parameters:
//   - results: The results to analyze.
//   - opts: The presentation options.
//   - presenter: The result presenter.
//   - errHandler: Maps the first error to an exit code when every engine failed.
//   - out: The io.Writer for the report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []OperationResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValid *OperationResult
	var firstError error
	var firstErrorDuration time.Duration
	successCount := 0
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
				firstErrorDuration = results[i].Duration
			}
			continue
		}
		successCount++
		if firstValid == nil {
			firstValid = &results[i]
		}
	}

	if len(results) > 1 && !opts.Quiet {
		presenter.PresentComparisonTable(results, out)
	}

	if successCount == 0 {
		if len(results) > 1 && !opts.Quiet {
			fmt.Fprintf(out, "\nGlobal Status: Failure. No engine could complete the operation.\n")
		}
		if firstError == nil {
			return apperrors.ExitErrorGeneric
		}
		return errHandler.HandleError(firstError, firstErrorDuration, out)
	}

	for _, res := range results {
		if res.Err == nil && !sameResult(res, *firstValid) {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! The engines returned different results.\n")
			return apperrors.ExitErrorMismatch
		}
	}

	if len(results) > 1 && !opts.Quiet {
		fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	}
	presenter.PresentResult(*firstValid, opts, out)
	return apperrors.ExitSuccess
}
