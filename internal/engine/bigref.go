package engine

import (
	"context"
	"math/big"

	apperrors "github.com/agbru/mpcalc/internal/errors"
	"github.com/agbru/mpcalc/internal/mpint"
)

// BigRefName is the registry name of the math/big reference engine.
const BigRefName = "bigref"

// BigRef runs operations on math/big. It is the trusted reference the pure
// engine is compared against.
type BigRef struct{}

// Name returns "bigref".
func (BigRef) Name() string { return BigRefName }

// Mul returns x*y.
func (BigRef) Mul(ctx context.Context, x, y *mpint.Int) (*mpint.Int, error) {
	if err := checkProduct(ctx, "mul", x, y); err != nil {
		return nil, err
	}
	return FromBig(new(big.Int).Mul(ToBig(x), ToBig(y))), nil
}

// Sqr returns x*x.
func (BigRef) Sqr(ctx context.Context, x *mpint.Int) (*mpint.Int, error) {
	if err := checkProduct(ctx, "sqr", x, x); err != nil {
		return nil, err
	}
	b := ToBig(x)
	return FromBig(b.Mul(b, b)), nil
}

// QuoRem returns the truncated quotient and remainder of x/y.
func (BigRef) QuoRem(ctx context.Context, x, y *mpint.Int) (*mpint.Int, *mpint.Int, error) {
	if err := checkQuotient(ctx, y); err != nil {
		return nil, nil, err
	}
	q, r := new(big.Int).QuoRem(ToBig(x), ToBig(y), new(big.Int))
	return FromBig(q), FromBig(r), nil
}

// ToBig converts x to a math/big integer.
func ToBig(x *mpint.Int) *big.Int {
	b := new(big.Int).SetBytes(x.Bytes(mpint.BigEndian))
	if x.Sign() < 0 {
		b.Neg(b)
	}
	return b
}

// FromBig converts b to an mpint integer.
func FromBig(b *big.Int) *mpint.Int {
	z := new(mpint.Int).SetBytes(b.Bytes(), mpint.BigEndian)
	if b.Sign() < 0 {
		z.Neg(z)
	}
	return z
}

// checkProduct applies the limits the pure engine enforces, so every engine
// fails the same way on oversized products.
func checkProduct(ctx context.Context, op string, x, y *mpint.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if uint64(x.BitLen())+uint64(y.BitLen()) > mpint.MaxBits {
		return apperrors.NewArithmeticError(op, apperrors.ErrOverflow)
	}
	return nil
}

func checkQuotient(ctx context.Context, y *mpint.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if y.IsZero() {
		return apperrors.NewArithmeticError("quorem", apperrors.ErrDivisionByZero)
	}
	return nil
}
