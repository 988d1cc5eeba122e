package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/mpcalc/internal/config"
	"github.com/agbru/mpcalc/internal/engine"
	apperrors "github.com/agbru/mpcalc/internal/errors"
	"github.com/agbru/mpcalc/internal/orchestration"
	"github.com/agbru/mpcalc/internal/sysmon"
)

// tickInterval is the metric sampling period.
const tickInterval = 500 * time.Millisecond

// ExecutionState holds the execution-related fields of a dashboard session.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	backends   []engine.Engine
	req        orchestration.Request
	generation uint64
	done       bool
	canceled   bool
	exitCode   int
}

// Model is the root bubbletea model of the dashboard.
type Model struct {
	header  HeaderModel
	metrics MetricsModel
	help    help.Model
	spinner spinner.Model
	keymap  KeyMap

	engines enginesState
	results resultsState

	ExecutionState

	width     int
	height    int
	parentCtx context.Context
	config    config.AppConfig
	ref       *programRef
	paused    bool
}

// NewModel creates a dashboard that runs req on engines.
func NewModel(parentCtx context.Context, engines []engine.Engine, req orchestration.Request, cfg config.AppConfig, version string) Model {
	names := make([]string, len(engines))
	for i, e := range engines {
		names[i] = e.Name()
	}
	ctx, cancel := context.WithTimeout(parentCtx, cfg.Timeout)
	summary := fmt.Sprintf("%s on %s", req.Op, strings.Join(names, ", "))

	return Model{
		header:  NewHeaderModel(version, summary),
		metrics: NewMetricsModel(),
		help:    help.New(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(statusRunningStyle)),
		keymap:  DefaultKeyMap(),
		engines: newEnginesState(names),
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			backends: engines,
			req:      req,
			exitCode: apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		config:    cfg,
		ref:       &programRef{},
	}
}

// running reports whether the current run is still in progress.
func (m Model) running() bool {
	return !m.done
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return m.startCmds()
}

func (m Model) startCmds() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		m.spinner.Tick,
		runOperationCmd(m.ref, m.ctx, m.backends, m.req, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(m.width)
		m.metrics.SetWidth(m.width - 4)
		m.help.Width = m.width
		return m, nil

	case ProgressMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from a previous run
		}
		m.engines.markDone(msg.Update.Index, msg.Update.Duration, msg.Update.Err)
		m.engines.finished = msg.Finished
		m.engines.eta = msg.ETA
		return m, nil

	case RunCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		for _, r := range msg.Results {
			m.engines.markDone(m.engines.indexOf(r.Name), r.Duration, r.Err)
		}
		m.engines.finished = len(msg.Results)
		m.results.results = msg.Results
		m.exitCode = msg.ExitCode
		m.done = true
		m.header.SetDone()
		m.cancel()
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation || m.done {
			return m, nil
		}
		// The run itself reports deadline errors per engine; only an
		// external cancellation ends the session.
		if errors.Is(msg.Err, context.Canceled) {
			m.done = true
			m.canceled = true
			m.exitCode = apperrors.ExitErrorCanceled
			m.header.SetDone()
			return m, tea.Quit
		}
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		if !m.paused {
			return m, tea.Batch(sampleMemStatsCmd(), sampleSysStatsCmd(), tickCmd())
		}
		return m, tickCmd()

	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.metrics.UpdateSysStats(msg)
		return m, nil

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if !m.done {
			m.exitCode = apperrors.ExitErrorCanceled
		}
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		return m, nil

	case key.Matches(msg, m.keymap.Hex):
		m.results.showHex = !m.results.showHex
		return m, nil

	case key.Matches(msg, m.keymap.Full):
		m.results.showFull = !m.results.showFull
		return m, nil

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Rerun):
		return m.rerun()
	}

	return m, nil
}

// rerun cancels the current run and starts a new one.
func (m Model) rerun() (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	m.generation++
	m.ctx, m.cancel = context.WithTimeout(m.parentCtx, m.config.Timeout)

	m.header.Reset()
	m.engines.reset()
	m.metrics.Reset()
	m.results.results = nil
	m.done = false
	m.canceled = false
	m.paused = false
	m.exitCode = apperrors.ExitSuccess
	return m, m.startCmds()
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	inner := max(m.width-2, 0)

	status := statusRunningStyle.Render("RUNNING")
	switch {
	case m.canceled:
		status = statusErrorStyle.Render("CANCELED")
	case m.done && m.exitCode != apperrors.ExitSuccess:
		status = statusErrorStyle.Render("FAILED")
	case m.done:
		status = statusDoneStyle.Render("DONE")
	case m.paused:
		status = statusPausedStyle.Render("PAUSED")
	}
	footer := status + "  " + m.help.View(m.keymap)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		panelStyle.Width(inner).Render(m.renderEngineTable()),
		panelStyle.Width(inner).Render(m.renderResultsSection()),
		panelStyle.Width(inner).Render(m.metrics.View()),
		footer,
	)
}

// Run is the public entry point for the dashboard mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, engines []engine.Engine, req orchestration.Request, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, engines, req, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return apperrors.ExitCodeFor(ctx.Err())
		}
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// runOperationCmd returns a tea.Cmd that runs the operation on every engine
// and reports the sorted results.
func runOperationCmd(ref *programRef, ctx context.Context, engines []engine.Engine, req orchestration.Request, gen uint64) tea.Cmd {
	return func() tea.Msg {
		reporter := &TUIProgressReporter{ref: ref, generation: gen}
		presenter := TUIResultPresenter{}
		results := orchestration.ExecuteOperations(ctx, engines, req, reporter, io.Discard)
		opts := orchestration.PresentationOptions{Op: req.Op, Quiet: true, Scale: config.NoScale}
		exitCode := orchestration.AnalyzeComparisonResults(results, opts, presenter, presenter, io.Discard)
		return RunCompleteMsg{Results: results, ExitCode: exitCode, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after tickInterval.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleMemStatsCmd reads runtime memory stats and returns a MemStatsMsg.
func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return MemStatsMsg{
			Alloc:        ms.Alloc,
			HeapSys:      ms.HeapSys,
			NumGC:        ms.NumGC,
			PauseTotalNs: ms.PauseTotalNs,
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}

// sampleSysStatsCmd reads system-wide CPU and memory stats and returns a SysStatsMsg.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{
			CPUPercent: s.CPUPercent,
			MemPercent: s.MemPercent,
		}
	}
}

// watchContextCmd waits for the run context to end and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
