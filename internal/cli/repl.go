package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/agbru/mpcalc/internal/config"
	"github.com/agbru/mpcalc/internal/engine"
	apperrors "github.com/agbru/mpcalc/internal/errors"
	"github.com/agbru/mpcalc/internal/format"
	"github.com/agbru/mpcalc/internal/orchestration"
	"github.com/agbru/mpcalc/internal/ui"
)

// REPLConfig holds configuration for the interactive session.
type REPLConfig struct {
	// DefaultEngine is the engine selected at start.
	DefaultEngine string
	// Timeout bounds each command.
	Timeout time.Duration
	// HexOutput displays results in hexadecimal.
	HexOutput bool
}

// REPL is an interactive calculator session.
type REPL struct {
	config        REPLConfig
	factory       engine.Factory
	currentEngine string
	in            io.Reader
	out           io.Writer
}

// NewREPL creates a session over the engines of factory.
func NewREPL(factory engine.Factory, config REPLConfig) *REPL {
	current := config.DefaultEngine
	if current == "" || current == "all" {
		current = engine.PureName
	}
	if config.Timeout <= 0 {
		config.Timeout = time.Minute
	}
	return &REPL{
		config:        config,
		factory:       factory,
		currentEngine: current,
		in:            os.Stdin,
		out:           os.Stdout,
	}
}

// SetInput sets a custom input reader.
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer.
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start reads and runs commands until exit or end of input.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"mpcalc> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}
		eof := errors.Is(err, io.EOF)

		if input = strings.TrimSpace(input); input != "" {
			if !r.processCommand(input) {
				return
			}
		}
		if eof {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s   %smpcalc - Interactive Mode%s                  %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<op> <a> [<b>]%s         - Run an operation (%s)\n", ui.ColorYellow(), ui.ColorReset(), strings.Join(config.Operations(), ", "))
	fmt.Fprintf(r.out, "  %scompare <op> <a> [<b>]%s - Run an operation on every engine\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sengine <name>%s          - Change engine (%s)\n", ui.ColorYellow(), ui.ColorReset(), strings.Join(r.factory.List(), ", "))
	fmt.Fprintf(r.out, "  %slist%s                   - List available engines\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shex%s                    - Toggle hexadecimal display\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s                 - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s                   - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s            - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand runs one command. It returns false when the session
// should end.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "engine", "e":
		r.cmdEngine(args)
	case "compare", "cmp":
		r.cmdCompare(args)
	case "list", "ls":
		r.cmdList()
	case "hex":
		r.cmdHex()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		if _, ok := config.OperationArity(cmd); ok {
			r.cmdRun(cmd, args)
			return true
		}
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}
	return true
}

// parseRequest builds a request from an operation and its arguments.
func (r *REPL) parseRequest(op string, args []string) (orchestration.Request, bool) {
	arity, _ := config.OperationArity(op)
	want := 2
	if arity == config.Unary {
		want = 1
	}
	if len(args) != want {
		usage := op + " <a> <b>"
		switch arity {
		case config.Unary:
			usage = op + " <a>"
		case config.Shift:
			usage = op + " <a> <bits>"
		}
		fmt.Fprintf(r.out, "%sUsage: %s%s\n", ui.ColorRed(), usage, ui.ColorReset())
		return orchestration.Request{}, false
	}
	cfg := config.AppConfig{Op: op, A: args[0]}
	if want == 2 {
		cfg.B = args[1]
	}
	req, err := orchestration.NewRequest(cfg)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid input: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return orchestration.Request{}, false
	}
	return req, true
}

// cmdRun runs an operation on the current engine.
func (r *REPL) cmdRun(op string, args []string) {
	req, ok := r.parseRequest(op, args)
	if !ok {
		return
	}
	e, err := r.factory.Get(r.currentEngine)
	if err != nil {
		fmt.Fprintf(r.out, "%sEngine not found: %s%s\n", ui.ColorRed(), r.currentEngine, ui.ColorReset())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()
	results := orchestration.ExecuteOperations(ctx, []engine.Engine{e}, req, CLIProgressReporter{}, r.out)
	res := results[0]
	if err := res.Err; err != nil {
		if apperrors.IsContextError(err) {
			err = apperrors.TimeoutError{Operation: op, Limit: r.config.Timeout}
		}
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	fmt.Fprintf(r.out, "\n%sResult:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Time: %s%s%s\n", ui.ColorGreen(), format.FormatExecutionDuration(res.Duration), ui.ColorReset())
	fmt.Fprintf(r.out, "  Bits: %s%d%s\n", ui.ColorCyan(), res.Value.BitLen(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s = %s%s%s\n", op, ui.ColorGreen(), r.render(res.Value.String(), FormatHex(res.Value)), ui.ColorReset())
	if res.Remainder != nil {
		fmt.Fprintf(r.out, "  modulus = %s%s%s\n", ui.ColorGreen(), r.render(res.Remainder.String(), FormatHex(res.Remainder)), ui.ColorReset())
	}
	fmt.Fprintln(r.out)
}

// render picks the hexadecimal or the possibly truncated decimal form.
func (r *REPL) render(dec, hex string) string {
	if r.config.HexOutput {
		return hex
	}
	if len(strings.TrimPrefix(dec, "-")) > TruncationLimit {
		return format.TruncateDigits(dec, TruncationLimit, DisplayEdges) + " (truncated)"
	}
	return dec
}

func (r *REPL) cmdEngine(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: engine <name>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available engines: %s\n", strings.Join(r.factory.List(), ", "))
		return
	}
	name := strings.ToLower(args[0])
	if _, err := r.factory.Get(name); err != nil {
		fmt.Fprintf(r.out, "%sUnknown engine: %s%s\n", ui.ColorRed(), name, ui.ColorReset())
		fmt.Fprintf(r.out, "Available engines: %s\n", strings.Join(r.factory.List(), ", "))
		return
	}
	r.currentEngine = name
	fmt.Fprintf(r.out, "Engine changed to: %s%s%s\n", ui.ColorGreen(), name, ui.ColorReset())
}

// cmdCompare runs an operation on every engine and flags disagreements.
func (r *REPL) cmdCompare(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: compare <op> <a> [<b>]%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	op := strings.ToLower(args[0])
	if _, ok := config.OperationArity(op); !ok {
		fmt.Fprintf(r.out, "%sUnknown operation: %s%s\n", ui.ColorRed(), op, ui.ColorReset())
		return
	}
	req, ok := r.parseRequest(op, args[1:])
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()
	results := orchestration.ExecuteOperations(ctx, r.factory.GetAll(), req, orchestration.NullProgressReporter{}, r.out)

	fmt.Fprintf(r.out, "\n%sComparison for %s:%s\n", ui.ColorBold(), op, ui.ColorReset())
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())
	var first *orchestration.OperationResult
	for i, res := range results {
		if res.Err != nil {
			fmt.Fprintf(r.out, "  %s%-10s%s: %sError - %v%s\n",
				ui.ColorYellow(), res.Name, ui.ColorReset(), ui.ColorRed(), res.Err, ui.ColorReset())
			continue
		}
		if first == nil {
			first = &results[i]
		}
		status := ui.ColorGreen() + "✓" + ui.ColorReset()
		if res.Value.Cmp(first.Value) != 0 ||
			(res.Remainder != nil && res.Remainder.Cmp(first.Remainder) != 0) {
			status = ui.ColorRed() + "✗ INCONSISTENT" + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "  %s%-10s%s: %s%12s%s %s\n",
			ui.ColorYellow(), res.Name, ui.ColorReset(),
			ui.ColorCyan(), format.FormatExecutionDuration(res.Duration), ui.ColorReset(), status)
	}
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sAvailable engines:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, name := range r.factory.List() {
		marker := "  "
		if name == r.currentEngine {
			marker = ui.ColorGreen() + "► " + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "%s%s%s%s\n", marker, ui.ColorYellow(), name, ui.ColorReset())
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdHex() {
	r.config.HexOutput = !r.config.HexOutput
	status := "disabled"
	if r.config.HexOutput {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Hexadecimal display: %s%s%s\n", ui.ColorGreen(), status, ui.ColorReset())
}

func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Engine:      %s%s%s\n", ui.ColorCyan(), r.currentEngine, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:     %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	hexStatus := "no"
	if r.config.HexOutput {
		hexStatus = "yes"
	}
	fmt.Fprintf(r.out, "  Hexadecimal: %s%s%s\n", ui.ColorCyan(), hexStatus, ui.ColorReset())
	fmt.Fprintln(r.out)
}
