// Package decimal converts between mpint integers and the packed fixed-point
// representation of github.com/govalues/decimal.
//
// A packed decimal holds a coefficient of at most 19 digits and a scale
// between 0 and 19. The integer is always the coefficient; the scale only
// positions the decimal point.
package decimal

import (
	"fmt"

	"github.com/govalues/decimal"

	apperrors "github.com/agbru/mpcalc/internal/errors"
	"github.com/agbru/mpcalc/internal/mpint"
)

// MaxScale is the largest scale accepted by ToDecimal.
const MaxScale = decimal.MaxScale

// ToDecimal packs x as a coefficient with the given scale, so the result
// equals x / 10^scale. It fails with ErrOverflow when x does not fit in a
// signed 64-bit coefficient and with ErrInvalidFormat when scale is outside
// [0, MaxScale].
func ToDecimal(x *mpint.Int, scale int) (decimal.Decimal, error) {
	if scale < 0 || scale > MaxScale {
		return decimal.Decimal{}, apperrors.ValidationError{
			Field:   "scale",
			Message: fmt.Sprintf("must be between 0 and %d, got %d", MaxScale, scale),
		}
	}
	if !x.IsInt64() {
		return decimal.Decimal{}, apperrors.NewArithmeticError("decimal", apperrors.ErrOverflow)
	}
	d, err := decimal.New(x.Int64(), scale)
	if err != nil {
		return decimal.Decimal{}, apperrors.NewArithmeticError("decimal", fmt.Errorf("%w: %v", apperrors.ErrOverflow, err))
	}
	return d, nil
}

// FromDecimal unpacks d into its signed coefficient and scale.
func FromDecimal(d decimal.Decimal) (*mpint.Int, int) {
	coef := new(mpint.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		coef.Neg(coef)
	}
	return coef, d.Scale()
}

// Format renders x / 10^scale in decimal notation. It reports false when x
// cannot be packed.
func Format(x *mpint.Int, scale int) (string, bool) {
	d, err := ToDecimal(x, scale)
	if err != nil {
		return "", false
	}
	return d.String(), true
}
