// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult], [FormatHex].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteResultToFile].

package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/mpcalc/internal/mpint"
	"github.com/agbru/mpcalc/internal/orchestration"
	"github.com/agbru/mpcalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet suppresses the confirmation message.
	Quiet bool
}

// WriteResultToFile writes a result and its metadata to a file, creating
// missing parent directories.
//
// Parameters:
//   - result: The result to save.
//   - op: The operation that produced it.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(result orchestration.OperationResult, op string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	value := result.Value.String()
	fmt.Fprintf(file, "# mpcalc result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Operation: %s\n", op)
	fmt.Fprintf(file, "# Engine: %s\n", result.Name)
	fmt.Fprintf(file, "# Duration: %s\n", result.Duration)
	fmt.Fprintf(file, "# Bits: %d\n", result.Value.BitLen())
	fmt.Fprintf(file, "# Digits: %d\n", len(strings.TrimPrefix(value, "-")))
	fmt.Fprintf(file, "\n")

	fmt.Fprintf(file, "%s =\n%s\n", op, value)
	if result.Remainder != nil {
		fmt.Fprintf(file, "modulus =\n%s\n", result.Remainder)
	}
	return file.Close()
}

// FormatQuietResult returns the value on one line, followed by the
// modulus for divmod.
func FormatQuietResult(result orchestration.OperationResult) string {
	if result.Remainder != nil {
		return result.Value.String() + " " + result.Remainder.String()
	}
	return result.Value.String()
}

// DisplayQuietResult outputs a result in quiet mode.
func DisplayQuietResult(out io.Writer, result orchestration.OperationResult) {
	fmt.Fprintln(out, FormatQuietResult(result))
}

// FormatHex renders x in hexadecimal with a 0x prefix after the sign.
func FormatHex(x *mpint.Int) string {
	digits := strings.TrimLeft(hex.EncodeToString(x.Bytes(mpint.BigEndian)), "0")
	if digits == "" {
		digits = "0"
	}
	if x.Sign() < 0 {
		return "-0x" + digits
	}
	return "0x" + digits
}

// SaveResult writes the result file requested by config and confirms it on
// out unless quiet.
func SaveResult(out io.Writer, result orchestration.OperationResult, op string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}
	if err := WriteResultToFile(result, op, config); err != nil {
		return err
	}
	if !config.Quiet {
		fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
	}
	return nil
}
