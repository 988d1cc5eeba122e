// Package calibration measures the multiplication thresholds of the pure
// engine on the current host and caches them in a JSON profile.
package calibration

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/agbru/mpcalc/internal/config"
	apperrors "github.com/agbru/mpcalc/internal/errors"
	"github.com/agbru/mpcalc/internal/logging"
	"github.com/agbru/mpcalc/internal/mpint"
)

// never is a threshold no calibration operand reaches.
const never = 1 << 30

// calibrationResult is the timing of one candidate threshold.
type calibrationResult struct {
	Threshold int
	Duration  time.Duration
	Err       error
}

// sweep describes the measurement of one threshold.
type sweep struct {
	name       string
	candidates []int
	limbs      int
	square     bool
	set        func(o *mpint.Options, v int)
}

// Calibrator runs the threshold sweeps.
type Calibrator struct {
	// Rounds is the number of timed runs per candidate; the fastest counts.
	Rounds int
	// Karatsuba, ToomCook and Parallel override the candidate lists.
	Karatsuba []int
	ToomCook  []int
	Parallel  []int
	// OperandScale multiplies the operand length of every sweep.
	OperandScale int

	Logger logging.Logger
	rng    *rand.Rand
}

// NewCalibrator returns a calibrator with the default candidate lists.
func NewCalibrator(logger logging.Logger) *Calibrator {
	return &Calibrator{
		Rounds:       3,
		Karatsuba:    GenerateKaratsubaThresholds(),
		ToomCook:     GenerateToomCookThresholds(),
		Parallel:     GenerateParallelThresholds(),
		OperandScale: 4,
		Logger:       logger,
	}
}

func (c *Calibrator) sweeps() []sweep {
	maxOf := func(v []int) int {
		if len(v) == 0 {
			return 1
		}
		return max(slices.Max(v), 1)
	}
	scale := max(c.OperandScale, 1)
	return []sweep{
		{"karatsuba", c.Karatsuba, scale * maxOf(c.Karatsuba), false,
			func(o *mpint.Options, v int) { o.KaratsubaThreshold = v; o.ToomCookThreshold = never }},
		{"karatsuba-sqr", c.Karatsuba, scale * maxOf(c.Karatsuba), true,
			func(o *mpint.Options, v int) { o.KaratsubaSquareThreshold = v; o.ToomCookSquareThreshold = never }},
		{"toom", c.ToomCook, scale * maxOf(c.ToomCook), false,
			func(o *mpint.Options, v int) { o.ToomCookThreshold = v }},
		{"toom-sqr", c.ToomCook, scale * maxOf(c.ToomCook), true,
			func(o *mpint.Options, v int) { o.ToomCookSquareThreshold = v }},
		{"parallel", c.Parallel, scale * maxOf(c.Parallel), false,
			func(o *mpint.Options, v int) { o.ParallelThreshold = v }},
	}
}

// Run sweeps every threshold in turn, each sweep starting from the best
// values found so far, and returns the resulting profile. Per-sweep tables
// are written to out.
func (c *Calibrator) Run(ctx context.Context, out io.Writer) (*CalibrationProfile, error) {
	start := time.Now()
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	best := mpint.DefaultOptions()
	profile := NewProfile()

	for _, s := range c.sweeps() {
		if len(s.candidates) == 0 {
			continue
		}
		results, chosen, err := c.runSweep(ctx, s, best)
		if err != nil {
			return nil, apperrors.WrapError(err, "%s sweep", s.name)
		}
		fmt.Fprintf(out, "\n--- %s threshold (%d-limb operands) ---", s.name, s.limbs)
		printCalibrationResults(out, results, chosen)
		s.set(&best, chosen)
		c.Logger.Info("calibration sweep finished",
			logging.String("threshold", s.name), logging.Int("best", chosen))
	}

	for _, v := range []*int{&best.ToomCookThreshold, &best.ToomCookSquareThreshold} {
		if *v == never {
			*v = 0
		}
	}
	profile.OptimalKaratsubaThreshold = best.KaratsubaThreshold
	profile.OptimalKaratsubaSquareThreshold = best.KaratsubaSquareThreshold
	profile.OptimalToomCookThreshold = best.ToomCookThreshold
	profile.OptimalToomCookSquareThreshold = best.ToomCookSquareThreshold
	profile.OptimalParallelThreshold = best.ParallelThreshold
	if best.ParallelThreshold == 0 {
		profile.OptimalParallelThreshold = -1
	}
	profile.CalibrationTime = time.Since(start).Round(time.Millisecond).String()
	return profile, nil
}

// runSweep times every candidate and returns the fastest. Candidates that
// fail are reported but never chosen.
func (c *Calibrator) runSweep(ctx context.Context, s sweep, base mpint.Options) ([]calibrationResult, int, error) {
	x := randomOperand(c.rng, s.limbs)
	y := randomOperand(c.rng, s.limbs)

	results := make([]calibrationResult, 0, len(s.candidates))
	bestIdx := -1
	for _, cand := range s.candidates {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		opts := base
		s.set(&opts, cand)
		d, err := c.measure(x, y, s.square, opts)
		results = append(results, calibrationResult{Threshold: cand, Duration: d, Err: err})
		if err != nil {
			c.Logger.Error("calibration candidate failed", err, logging.String("threshold", s.name), logging.Int("candidate", cand))
			continue
		}
		if bestIdx < 0 || d < results[bestIdx].Duration {
			bestIdx = len(results) - 1
		}
	}
	if bestIdx < 0 {
		return results, 0, apperrors.CalculationError{Cause: fmt.Errorf("no %s candidate succeeded", s.name)}
	}
	return results, results[bestIdx].Threshold, nil
}

// measure returns the fastest of c.Rounds runs.
func (c *Calibrator) measure(x, y *mpint.Int, square bool, opts mpint.Options) (time.Duration, error) {
	var best time.Duration
	z := new(mpint.Int)
	for i := 0; i < max(c.Rounds, 1); i++ {
		start := time.Now()
		var err error
		if square {
			_, err = z.SqrWith(x, opts)
		} else {
			_, err = z.MulWith(x, y, opts)
		}
		if err != nil {
			return 0, err
		}
		if d := time.Since(start); i == 0 || d < best {
			best = d
		}
	}
	return best, nil
}

func randomOperand(rng *rand.Rand, limbs int) *mpint.Int {
	w := make([]mpint.Word, limbs)
	for i := range w {
		w[i] = mpint.Word(rng.Uint32())
	}
	if limbs > 0 {
		w[limbs-1] |= 1 << 31
	}
	return new(mpint.Int).SetWords(w, false)
}

// RunCalibration measures the thresholds, saves the profile and prints a
// summary. It returns the process exit code.
func RunCalibration(ctx context.Context, cfg config.AppConfig, out io.Writer, logger logging.Logger) int {
	fmt.Fprintf(out, "--- Calibration Mode: measuring multiplication thresholds ---\n")
	profile, err := NewCalibrator(logger).Run(ctx, out)
	if err != nil {
		logger.Error("calibration failed", err)
		fmt.Fprintf(out, "Calibration failed: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}

	path := cfg.CalibrationProfile
	if path == "" {
		path = GetDefaultProfilePath()
	}
	if err := profile.SaveProfile(path); err != nil {
		logger.Error("could not save calibration profile", err, logging.String("path", path))
		fmt.Fprintf(out, "Warning: %v\n", err)
	} else {
		fmt.Fprintf(out, "\nProfile saved to %s\n", path)
	}
	printCalibrationOutput(profile.ApplyTo(config.AppConfig{}), out)
	return apperrors.ExitSuccess
}
