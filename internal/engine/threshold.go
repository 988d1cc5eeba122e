package engine

import (
	"context"

	"github.com/agbru/mpcalc/internal/mpint"
)

// AutoName is the registry name of the threshold dispatcher.
const AutoName = "auto"

// GMPName is the registry name of the GMP engine. The engine itself is only
// registered when the binary is built with the "gmp" tag.
const GMPName = "gmp"

// DefaultNativeThreshold is the operand length, in limbs, from which the
// dispatcher hands products to the native engine.
const DefaultNativeThreshold = 2048

// Threshold dispatches each operation to Small or Large depending on the
// length of the operands. Products use the shorter operand; quotients use
// the divisor.
type Threshold struct {
	Small Engine
	Large Engine
	// Limbs is the length from which Large is used. Zero or negative
	// values always select Small.
	Limbs int
}

// NewThreshold returns a dispatcher between small and large.
func NewThreshold(small, large Engine, limbs int) *Threshold {
	return &Threshold{Small: small, Large: large, Limbs: limbs}
}

// Name returns "auto".
func (t *Threshold) Name() string { return AutoName }

// pick returns the engine for an operation whose deciding operand has n
// limbs.
func (t *Threshold) pick(n int) Engine {
	if t.Large != nil && t.Limbs > 0 && n >= t.Limbs {
		return t.Large
	}
	return t.Small
}

// Mul returns x*y.
func (t *Threshold) Mul(ctx context.Context, x, y *mpint.Int) (*mpint.Int, error) {
	return t.pick(min(x.Len(), y.Len())).Mul(ctx, x, y)
}

// Sqr returns x*x.
func (t *Threshold) Sqr(ctx context.Context, x *mpint.Int) (*mpint.Int, error) {
	return t.pick(x.Len()).Sqr(ctx, x)
}

// QuoRem returns the truncated quotient and remainder of x/y.
func (t *Threshold) QuoRem(ctx context.Context, x, y *mpint.Int) (*mpint.Int, *mpint.Int, error) {
	return t.pick(y.Len()).QuoRem(ctx, x, y)
}
