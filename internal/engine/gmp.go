//go:build gmp

// This file provides the GMP engine, compiled only with the "gmp" build tag
// because it links libgmp through cgo:
//
//	go build -tags=gmp ./...
//
// System requirements: libgmp-dev on Debian/Ubuntu, gmp on Homebrew.

package engine

import (
	"context"

	"github.com/ncw/gmp"

	"github.com/agbru/mpcalc/internal/mpint"
)

func init() {
	registerNative(GMPName, func() Engine { return GMP{} })
}

// GMP runs operations on libgmp.
type GMP struct{}

// Name returns "gmp".
func (GMP) Name() string { return GMPName }

// Mul returns x*y.
func (GMP) Mul(ctx context.Context, x, y *mpint.Int) (*mpint.Int, error) {
	if err := checkProduct(ctx, "mul", x, y); err != nil {
		return nil, err
	}
	return fromGMP(new(gmp.Int).Mul(toGMP(x), toGMP(y))), nil
}

// Sqr returns x*x.
func (GMP) Sqr(ctx context.Context, x *mpint.Int) (*mpint.Int, error) {
	if err := checkProduct(ctx, "sqr", x, x); err != nil {
		return nil, err
	}
	g := toGMP(x)
	return fromGMP(g.Mul(g, g)), nil
}

// QuoRem returns the truncated quotient and remainder of x/y.
func (GMP) QuoRem(ctx context.Context, x, y *mpint.Int) (*mpint.Int, *mpint.Int, error) {
	if err := checkQuotient(ctx, y); err != nil {
		return nil, nil, err
	}
	q, r := new(gmp.Int).QuoRem(toGMP(x), toGMP(y), new(gmp.Int))
	return fromGMP(q), fromGMP(r), nil
}

func toGMP(x *mpint.Int) *gmp.Int {
	g := new(gmp.Int).SetBytes(x.Bytes(mpint.BigEndian))
	if x.Sign() < 0 {
		g.Neg(g)
	}
	return g
}

func fromGMP(g *gmp.Int) *mpint.Int {
	z := new(mpint.Int).SetBytes(g.Bytes(), mpint.BigEndian)
	if g.Sign() < 0 {
		z.Neg(z)
	}
	return z
}
