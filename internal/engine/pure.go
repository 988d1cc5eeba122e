package engine

import (
	"context"

	"github.com/agbru/mpcalc/internal/mpint"
)

// PureName is the registry name of the pure Go engine.
const PureName = "pure"

// Pure runs operations on the mpint package with fixed algorithm thresholds.
type Pure struct {
	opts mpint.Options
}

// NewPure returns a pure engine using opts for multiplication dispatch.
func NewPure(opts mpint.Options) *Pure {
	return &Pure{opts: opts}
}

// Name returns "pure".
func (p *Pure) Name() string { return PureName }

// Options returns the thresholds the engine multiplies with.
func (p *Pure) Options() mpint.Options { return p.opts }

// Mul returns x*y.
func (p *Pure) Mul(ctx context.Context, x, y *mpint.Int) (*mpint.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return new(mpint.Int).MulWith(x, y, p.opts)
}

// Sqr returns x*x.
func (p *Pure) Sqr(ctx context.Context, x *mpint.Int) (*mpint.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return new(mpint.Int).SqrWith(x, p.opts)
}

// QuoRem returns the truncated quotient and remainder of x/y.
func (p *Pure) QuoRem(ctx context.Context, x, y *mpint.Int) (*mpint.Int, *mpint.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return new(mpint.Int).QuoRem(x, y, new(mpint.Int))
}
