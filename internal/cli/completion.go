package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/mpcalc/internal/config"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell generators read flagRegistry, so adding a flag only requires
// appending to it.
type FlagCompletion struct {
	Long      string   // long flag name without dashes (e.g., "engine")
	Short     string   // short flag without dash (e.g., "q")
	Help      string   // description text
	Values    []string // suggested values (nil = boolean or free-form)
	ValueName string   // label for the value in zsh (e.g., "limbs")
	IsFile    bool     // the flag takes a file path
	IsEngine  bool     // values come from the engine list
	IsOp      bool     // values come from the operation list
}

var thresholdValues = []string{"16", "32", "64", "128", "256"}

// flagRegistry is the list of all CLI flags offered for completion.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "op", Help: "Operation to run", IsOp: true, ValueName: "operation"},
	{Long: "a", Help: "First operand", ValueName: "integer"},
	{Long: "b", Help: "Second operand or shift count", ValueName: "integer"},
	{Long: "engine", Help: "Engine to use", IsEngine: true, ValueName: "engine"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"10s", "1m", "5m", "30m"}, ValueName: "duration"},
	{Long: "karatsuba", Help: "Karatsuba threshold in limbs", Values: thresholdValues, ValueName: "limbs"},
	{Long: "toom", Help: "Toom-3 threshold in limbs", Values: thresholdValues, ValueName: "limbs"},
	{Long: "karatsuba-sqr", Help: "Karatsuba squaring threshold in limbs", Values: thresholdValues, ValueName: "limbs"},
	{Long: "toom-sqr", Help: "Toom-3 squaring threshold in limbs", Values: thresholdValues, ValueName: "limbs"},
	{Long: "parallel", Help: "Parallel Karatsuba threshold in limbs", Values: []string{"-1", "512", "1024", "2048"}, ValueName: "limbs"},
	{Long: "native-threshold", Help: "Native backend threshold in limbs", Values: []string{"-1", "1024", "2048"}, ValueName: "limbs"},
	{Long: "scale", Help: "Fixed-point fractional digits", ValueName: "digits"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "quiet", Short: "q", Help: "Print only the result"},
	{Long: "verbose", Short: "v", Help: "Print the full result"},
	{Long: "details", Short: "d", Help: "Print size and system details"},
	{Long: "interactive", Short: "i", Help: "Start the interactive calculator"},
	{Long: "tui", Help: "Run in the interactive dashboard"},
	{Long: "calibrate", Help: "Run calibration mode"},
	{Long: "calibration-profile", Help: "Calibration profile file", IsFile: true, ValueName: "file"},
	{Long: "metrics-file", Help: "Prometheus metrics output file", IsFile: true, ValueName: "file"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "theme", Help: "Color theme", Values: []string{"dark", "light", "none"}, ValueName: "theme"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for shell.
//
// Parameters:
//   - out: The writer for the script.
//   - shell: "bash", "zsh" or "fish".
//   - engines: The available engine names.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string, engines []string) error {
	engineList := strings.Join(append(append([]string(nil), engines...), config.AllEngines), " ")
	opList := strings.Join(config.Operations(), " ")

	var script string
	switch shell {
	case "bash":
		script = bashCompletion(engineList, opList)
	case "zsh":
		script = zshCompletion(engineList, opList)
	case "fish":
		script = fishCompletion(engineList, opList)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

// flagNames returns the dashed spellings of f.
func flagNames(f FlagCompletion) []string {
	var names []string
	if f.Long != "" {
		names = append(names, "-"+f.Long)
	}
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	return names
}

func bashCompletion(engineList, opList string) string {
	var opts []string
	var cases strings.Builder
	for _, f := range flagRegistry {
		names := flagNames(f)
		opts = append(opts, names...)

		var body string
		switch {
		case f.IsEngine:
			body = `COMPREPLY=( $(compgen -W "${engines}" -- "${cur}") )`
		case f.IsOp:
			body = `COMPREPLY=( $(compgen -W "${operations}" -- "${cur}") )`
		case f.IsFile:
			body = `COMPREPLY=( $(compgen -f -- "${cur}") )`
		case len(f.Values) > 0:
			body = fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " "))
		default:
			continue
		}
		fmt.Fprintf(&cases, "        %s)\n            %s\n            return 0\n            ;;\n", strings.Join(names, "|"), body)
	}

	return fmt.Sprintf(`# Bash completion script for mpcalc
# Add this to your ~/.bashrc or ~/.bash_completion

_mpcalc_completions() {
    local cur prev opts engines operations
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="%s"
    engines="%s"
    operations="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _mpcalc_completions mpcalc
`, strings.Join(opts, " "), engineList, opList, cases.String())
}

// zshArgEntry formats f as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case f.IsEngine:
		valueSuffix = fmt.Sprintf(":%s:($engines)", f.ValueName)
	case f.IsOp:
		valueSuffix = fmt.Sprintf(":%s:($operations)", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Long != "" && f.Short != "" {
		return fmt.Sprintf("        '(-%s -%s)'{-%s,-%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '-%s[%s]%s'", f.Long+f.Short, f.Help, valueSuffix)
}

func zshCompletion(engineList, opList string) string {
	args := make([]string, 0, len(flagRegistry))
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}
	return fmt.Sprintf(`#compdef mpcalc

# Zsh completion script for mpcalc
# Place this file in a directory of your $fpath as _mpcalc

_mpcalc() {
    local -a engines operations
    engines=(%s)
    operations=(%s)

    _arguments -s \
%s
}

_mpcalc "$@"
`, engineList, opList, strings.Join(args, " \\\n"))
}

// fishCompleteLine formats f as a fish complete command. Go flags accept a
// single dash, which fish spells -o for long names.
func fishCompleteLine(f FlagCompletion, engineList, opList string) string {
	parts := []string{"complete -c mpcalc"}
	if f.Long != "" {
		parts = append(parts, "-o "+f.Long)
	}
	if f.Short != "" {
		parts = append(parts, "-s "+f.Short)
	}
	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	switch {
	case f.IsFile:
		parts = append(parts, "-rF")
	case f.IsEngine:
		parts = append(parts, fmt.Sprintf("-xa '%s'", engineList))
	case f.IsOp:
		parts = append(parts, fmt.Sprintf("-xa '%s'", opList))
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	case f.ValueName != "":
		parts = append(parts, "-x")
	}
	return strings.Join(parts, " ")
}

func fishCompletion(engineList, opList string) string {
	lines := []string{
		"# Fish completion script for mpcalc",
		"# Add this to ~/.config/fish/completions/mpcalc.fish",
		"",
		"complete -c mpcalc -f",
	}
	for _, f := range flagRegistry {
		lines = append(lines, fishCompleteLine(f, engineList, opList))
	}
	return strings.Join(lines, "\n") + "\n"
}
