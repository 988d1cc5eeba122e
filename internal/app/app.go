// Package app wires the configuration, the engines and the presentation
// layer into the mpcalc command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/mpcalc/internal/calibration"
	"github.com/agbru/mpcalc/internal/cli"
	"github.com/agbru/mpcalc/internal/config"
	"github.com/agbru/mpcalc/internal/engine"
	apperrors "github.com/agbru/mpcalc/internal/errors"
	"github.com/agbru/mpcalc/internal/logging"
	"github.com/agbru/mpcalc/internal/orchestration"
	"github.com/agbru/mpcalc/internal/tui"
	"github.com/agbru/mpcalc/internal/ui"
)

// Application represents the mpcalc application instance.
type Application struct {
	Config    config.AppConfig
	Factory   engine.Factory
	Logger    logging.Logger
	ErrWriter io.Writer
	In        io.Reader
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom engine factory. The default factory is built
// from the parsed thresholds.
func WithFactory(f engine.Factory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithInput sets the reader of the interactive mode.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// New creates an Application by parsing command-line arguments. args[0] is
// the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}

	available := engine.Names()
	if app.Factory != nil {
		available = app.Factory.List()
	}

	programName := "mpcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, available)
	if err != nil {
		return nil, err
	}

	if cfgWithProfile, loaded := calibration.LoadCachedCalibration(cfg, cfg.CalibrationProfile); loaded {
		cfg = cfgWithProfile
	} else {
		cfg = config.ApplyAdaptiveThresholds(cfg)
	}

	if app.Factory == nil {
		app.Factory = engine.NewDefaultFactory(engine.Settings{
			Options:         cfg.MulOptions(),
			NativeThreshold: cfg.NativeThreshold,
		})
	}
	app.Logger = logging.NewLogger(errWriter, "mpcalc")
	app.Config = cfg
	return app, nil
}

// Run executes the application in the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if a.Config.Quiet {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}
	ui.InitTheme(a.Config.Theme, a.Config.NoColor)

	if a.Config.Calibrate {
		return a.runCalibration(ctx, out)
	}
	if a.Config.Interactive {
		return a.runInteractive(out)
	}
	if a.Config.TUI {
		return a.runTUI(ctx)
	}
	return a.runCalculate(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Factory.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runCalibration measures the thresholds and saves the profile.
func (a *Application) runCalibration(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()
	return calibration.RunCalibration(ctx, a.Config, out, a.Logger)
}

// runInteractive starts the read-eval-print loop.
func (a *Application) runInteractive(out io.Writer) int {
	repl := cli.NewREPL(a.Factory, cli.REPLConfig{
		DefaultEngine: a.Config.Engine,
		Timeout:       a.Config.Timeout,
	})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runTUI runs the operation inside the dashboard.
func (a *Application) runTUI(ctx context.Context) int {
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
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer stopSignals()
	return tui.Run(ctx, engines, req, a.Config, Version)
}

// IsHelpError checks if the error is a help flag error (-help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
