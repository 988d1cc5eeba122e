// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// arithmetic, parsing, capacity, etc.) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types implement the Unwrap() method to support errors.Is() and errors.As().
// The arithmetic engine reports failures as ArithmeticError values whose
// chain always ends in one of ErrDivisionByZero, ErrOverflow,
// ErrInvalidFormat or ErrCapacityExhausted.
package apperrors
