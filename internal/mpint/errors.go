package mpint

import (
	"fmt"

	apperrors "github.com/agbru/mpcalc/internal/errors"
)

var (
	errNotFinite   = fmt.Errorf("%w: not a finite number", apperrors.ErrInvalidFormat)
	errNegativeArg = fmt.Errorf("%w: negative operand", apperrors.ErrInvalidFormat)
)

// opError reports a failure of the named operation.
func opError(op string, cause error) error {
	return apperrors.NewArithmeticError(op, cause)
}

// capacityError reports that op would need a magnitude of the given bit
// length.
func capacityError(op string, bits uint64) error {
	return opError(op, apperrors.CapacityError{RequestedBits: bits, LimitBits: MaxBits})
}

// checkProductBits returns an overflow error if a product of operands with
// the given bit lengths could exceed MaxBits.
func checkProductBits(op string, xbits, ybits int) error {
	if uint64(xbits)+uint64(ybits) > MaxBits {
		return opError(op, apperrors.ErrOverflow)
	}
	return nil
}
