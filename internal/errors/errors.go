package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between engines.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// Arithmetic error classes. Every error returned by the arithmetic engine
// matches exactly one of them with errors.Is.
var (
	// ErrDivisionByZero is reported by any divide, remainder or modulus
	// operation whose divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOverflow is reported when a product would exceed the maximum
	// supported magnitude length.
	ErrOverflow = errors.New("magnitude overflow")
	// ErrInvalidFormat is reported when numeric text cannot be parsed.
	ErrInvalidFormat = errors.New("invalid number format")
	// ErrCapacityExhausted is reported when a magnitude would need more
	// limbs than the engine can address.
	ErrCapacityExhausted = errors.New("capacity exhausted")
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError encapsulates an engine failure while preserving the
// original cause, so callers can still match the arithmetic error class.
type CalculationError struct {
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e CalculationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e CalculationError) Unwrap() error { return e.Cause }

// ArithmeticError reports which arithmetic operation failed and why.
// Cause is one of the Err* sentinels of this package or a typed error
// wrapping one of them.
type ArithmeticError struct {
	// Op is the short name of the operation ("mul", "quo", "lsh", ...).
	Op string
	// Cause is the error class.
	Cause error
}

// Error returns "op: cause".
func (e ArithmeticError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the error class.
func (e ArithmeticError) Unwrap() error { return e.Cause }

// NewArithmeticError builds an ArithmeticError for op.
func NewArithmeticError(op string, cause error) error {
	return ArithmeticError{Op: op, Cause: cause}
}

// ParseError describes malformed numeric text.
type ParseError struct {
	// Input is the rejected text, truncated for very long inputs.
	Input string
	// Offset is the byte offset of the first offending character.
	Offset int
}

// Error returns a message naming the input and offset.
func (e ParseError) Error() string {
	return fmt.Sprintf("invalid number format: %q at offset %d", e.Input, e.Offset)
}

// Unwrap returns ErrInvalidFormat.
func (e ParseError) Unwrap() error { return ErrInvalidFormat }

// TimeoutError represents a calculation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// CapacityError represents a magnitude growth request beyond the supported
// maximum. It captures the requested and maximum bit lengths.
type CapacityError struct {
	// RequestedBits is the bit length the operation would have produced.
	RequestedBits uint64
	// LimitBits is the maximum supported bit length.
	LimitBits uint64
}

// Error returns a formatted message describing the capacity failure.
func (e CapacityError) Error() string {
	return fmt.Sprintf("capacity exhausted: requested %d bits (limit: %d)", e.RequestedBits, e.LimitBits)
}

// Unwrap returns ErrCapacityExhausted.
func (e CapacityError) Unwrap() error { return ErrCapacityExhausted }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the process exit code the CLI should use.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	}
	var timeoutErr TimeoutError
	if errors.As(err, &timeoutErr) {
		return ExitErrorTimeout
	}
	var configErr ConfigError
	var validationErr ValidationError
	if errors.As(err, &configErr) || errors.As(err, &validationErr) {
		return ExitErrorConfig
	}
	return ExitErrorGeneric
}
