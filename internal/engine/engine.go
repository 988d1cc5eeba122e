//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks

// Package engine defines the interchangeable arithmetic backends that the
// orchestration layer runs and compares. Every engine consumes and produces
// mpint values so results from different backends can be compared exactly.
package engine

import (
	"context"

	"github.com/agbru/mpcalc/internal/mpint"
)

// Engine is a backend able to run the expensive integer operations.
//
// Implementations must not modify their operands and must return freshly
// allocated results, so one pair of operands can be shared by engines
// running concurrently.
type Engine interface {
	// Name returns the identifier used on the command line.
	Name() string
	// Mul returns x*y.
	Mul(ctx context.Context, x, y *mpint.Int) (*mpint.Int, error)
	// Sqr returns x*x.
	Sqr(ctx context.Context, x *mpint.Int) (*mpint.Int, error)
	// QuoRem returns the truncated quotient and remainder of x/y.
	QuoRem(ctx context.Context, x, y *mpint.Int) (q, r *mpint.Int, err error)
}
