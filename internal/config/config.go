// Package config parses and validates the mpcalc command line.
//
// Values are resolved in this order, highest priority first: command-line
// flags, MPCALC_* environment variables, the cached calibration profile,
// hardware-based estimates and finally the static defaults of the mpint
// package.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/mpcalc/internal/errors"
	"github.com/agbru/mpcalc/internal/mpint"
	"github.com/agbru/mpcalc/internal/ui"
)

// EnvPrefix is the prefix of every environment variable read by mpcalc.
const EnvPrefix = "MPCALC_"

const (
	// DefaultTimeout bounds a whole run.
	DefaultTimeout = 5 * time.Minute
	// DefaultOperation is the operation run when -op is absent.
	DefaultOperation = "mul"
	// DefaultTheme is the color scheme used when -theme is absent.
	DefaultTheme = "dark"
	// DefaultEngine is the engine run when -engine is absent.
	DefaultEngine = "auto"
	// AllEngines selects every registered engine for comparison.
	AllEngines = "all"
	// NoScale disables the fixed-point rendering of the result.
	NoScale = -1
)

// Arity describes the operands an operation takes.
type Arity int

const (
	// Unary operations read only -a.
	Unary Arity = iota + 1
	// Binary operations read -a and -b.
	Binary
	// Shift operations read -a and a non-negative bit count in -b.
	Shift
)

var operations = map[string]Arity{
	"add": Binary, "sub": Binary, "mul": Binary, "sqr": Unary,
	"quo": Binary, "rem": Binary, "mod": Binary, "divmod": Binary,
	"and": Binary, "or": Binary, "xor": Binary, "andnot": Binary, "not": Unary,
	"lsh": Shift, "rsh": Shift, "gcd": Binary,
}

// Operations returns the supported operation names in sorted order.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// OperationArity reports the operands op takes.
func OperationArity(op string) (Arity, bool) {
	a, ok := operations[op]
	return a, ok
}

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Op is the operation to run.
	Op string
	// A and B are the decimal operands. B is the bit count for shifts.
	A, B string
	// Engine selects the backend, or "all" to compare every backend.
	Engine string
	// Timeout bounds the whole run.
	Timeout time.Duration

	// Multiplication thresholds, in limbs. Zero means not configured.
	KaratsubaThreshold       int
	ToomCookThreshold        int
	KaratsubaSquareThreshold int
	ToomCookSquareThreshold  int
	// ParallelThreshold is the length from which parallel Karatsuba is
	// used. A negative value disables it.
	ParallelThreshold int
	// NativeThreshold is the length from which the auto engine uses the
	// native backend. A negative value keeps it on the pure engine.
	NativeThreshold int

	// Scale renders the result as a fixed-point decimal with this many
	// fractional digits. NoScale disables it.
	Scale int

	OutputFile string
	Quiet      bool
	Verbose    bool
	Details    bool
	NoColor    bool
	// Theme names the color scheme of the terminal output.
	Theme string

	// Calibrate runs the threshold calibration instead of an operation.
	Calibrate bool
	// CalibrationProfile overrides the calibration profile path.
	CalibrationProfile string
	// MetricsFile receives Prometheus metrics in text format after the run.
	MetricsFile string

	// Interactive starts the read-eval-print loop instead of a single run.
	Interactive bool
	// Completion names a shell whose completion script is printed.
	Completion string
	// TUI runs the operation inside the interactive dashboard.
	TUI bool
}

// MulOptions returns the multiplication thresholds for the pure engine.
func (c AppConfig) MulOptions() mpint.Options {
	return mpint.Options{
		KaratsubaThreshold:       max(c.KaratsubaThreshold, 0),
		ToomCookThreshold:        max(c.ToomCookThreshold, 0),
		KaratsubaSquareThreshold: max(c.KaratsubaSquareThreshold, 0),
		ToomCookSquareThreshold:  max(c.ToomCookSquareThreshold, 0),
		ParallelThreshold:        max(c.ParallelThreshold, 0),
	}
}

// Validate checks the semantic validity of the configuration.
//
// Parameters:
//   - availableEngines: The engine names the registry can build.
//
// Returns:
//   - error: A ConfigError describing the first problem found.
func (c AppConfig) Validate(availableEngines []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if _, ok := ui.LookupTheme(c.Theme); !ok {
		return apperrors.NewConfigError("unrecognized theme: '%s'. Valid themes: %s",
			c.Theme, strings.Join(ui.ThemeNames(), ", "))
	}
	if c.Calibrate || c.Completion != "" {
		return nil
	}
	if c.Engine != AllEngines && !slices.Contains(availableEngines, c.Engine) {
		return apperrors.NewConfigError("unrecognized engine: '%s'. Valid engines: %s, %s",
			c.Engine, strings.Join(availableEngines, ", "), AllEngines)
	}
	if c.Interactive && c.TUI {
		return apperrors.NewConfigError("-interactive and -tui cannot be combined")
	}
	if c.Interactive {
		return nil
	}
	arity, ok := operations[c.Op]
	if !ok {
		return apperrors.NewConfigError("unrecognized operation: '%s'. Valid operations: %s",
			c.Op, strings.Join(Operations(), ", "))
	}
	if c.A == "" {
		return apperrors.NewConfigError("operation '%s' requires -a", c.Op)
	}
	if arity != Unary && c.B == "" {
		return apperrors.NewConfigError("operation '%s' requires -b", c.Op)
	}
	if c.Scale < NoScale || c.Scale > 19 {
		return apperrors.NewConfigError("scale must be between 0 and 19, got %d", c.Scale)
	}
	for name, v := range map[string]int{
		"karatsuba":     c.KaratsubaThreshold,
		"toom":          c.ToomCookThreshold,
		"karatsuba-sqr": c.KaratsubaSquareThreshold,
		"toom-sqr":      c.ToomCookSquareThreshold,
	} {
		if v < 0 {
			return apperrors.NewConfigError("-%s threshold cannot be negative (%d)", name, v)
		}
	}
	return nil
}

// ParseConfig parses the command-line arguments, applies environment
// overrides and validates the result.
//
// Parameters:
//   - programName: The name of the program, used in usage messages.
//   - args: The command-line arguments without the program name.
//   - errorWriter: The writer for flag errors and usage.
//   - availableEngines: The engine names accepted by -engine.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when help was requested, or a parse or
//     validation error.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableEngines []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s -op <operation> -a <int> [-b <int>] [flags]\n\n", programName)
		fmt.Fprintf(errorWriter, "Operations: %s\n\nFlags:\n", strings.Join(Operations(), " "))
		fs.PrintDefaults()
	}

	config := AppConfig{}
	fs.StringVar(&config.Op, "op", DefaultOperation, "Operation to run.")
	fs.StringVar(&config.A, "a", "", "First operand (decimal).")
	fs.StringVar(&config.B, "b", "", "Second operand (decimal), or the bit count for lsh/rsh.")
	fs.StringVar(&config.Engine, "engine", DefaultEngine,
		fmt.Sprintf("Engine to use: %s or %s.", strings.Join(availableEngines, ", "), AllEngines))
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum duration of the run.")
	fs.IntVar(&config.KaratsubaThreshold, "karatsuba", 0, "Karatsuba threshold in limbs (0 = automatic).")
	fs.IntVar(&config.ToomCookThreshold, "toom", 0, "Toom-Cook threshold in limbs (0 = automatic).")
	fs.IntVar(&config.KaratsubaSquareThreshold, "karatsuba-sqr", 0, "Karatsuba squaring threshold in limbs (0 = automatic).")
	fs.IntVar(&config.ToomCookSquareThreshold, "toom-sqr", 0, "Toom-Cook squaring threshold in limbs (0 = automatic).")
	fs.IntVar(&config.ParallelThreshold, "parallel", 0, "Parallel Karatsuba threshold in limbs (0 = automatic, -1 = disabled).")
	fs.IntVar(&config.NativeThreshold, "native-threshold", 0, "Operand length in limbs from which the auto engine uses the native backend (0 = default, -1 = never).")
	fs.IntVar(&config.Scale, "scale", NoScale, "Also print the result as a fixed-point decimal with this many fractional digits.")
	fs.StringVar(&config.OutputFile, "output", "", "Write the result to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Write the result to this file (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the result.")
	fs.BoolVar(&config.Quiet, "q", false, "Print only the result (shorthand).")
	fs.BoolVar(&config.Verbose, "verbose", false, "Print the full result even when it is long.")
	fs.BoolVar(&config.Verbose, "v", false, "Print the full result (shorthand).")
	fs.BoolVar(&config.Details, "details", false, "Print result size, memory and system details.")
	fs.BoolVar(&config.Details, "d", false, "Print details (shorthand).")
	fs.BoolVar(&config.Calibrate, "calibrate", false, "Measure the multiplication thresholds and save a calibration profile.")
	fs.StringVar(&config.CalibrationProfile, "calibration-profile", "", "Path of the calibration profile.")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the run.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.Theme, "theme", DefaultTheme, "Color theme: dark, light or none.")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start the interactive calculator.")
	fs.BoolVar(&config.Interactive, "i", false, "Start the interactive calculator (shorthand).")
	fs.StringVar(&config.Completion, "completion", "", "Print a shell completion script (bash, zsh, fish).")
	fs.BoolVar(&config.TUI, "tui", false, "Run the operation in the interactive dashboard.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&config, fs)
	config.Op = strings.ToLower(config.Op)
	config.Engine = strings.ToLower(config.Engine)
	config.Theme = strings.ToLower(config.Theme)

	if err := config.Validate(availableEngines); err != nil {
		fmt.Fprintln(errorWriter, "Error:", err)
		return AppConfig{}, err
	}
	return config, nil
}
