package orchestration

import (
	"context"
	"fmt"
	"strconv"

	"github.com/agbru/mpcalc/internal/config"
	"github.com/agbru/mpcalc/internal/engine"
	apperrors "github.com/agbru/mpcalc/internal/errors"
	"github.com/agbru/mpcalc/internal/mpint"
)

// Request is a parsed operation ready to run.
type Request struct {
	// Op is the operation name.
	Op string
	// A is the first operand.
	A *mpint.Int
	// B is the second operand, nil for unary and shift operations.
	B *mpint.Int
	// Shift is the bit count of lsh and rsh.
	Shift uint
}

// engineOps are the operations an Engine implements. Every other operation
// runs directly on mpint.
var engineOps = map[string]bool{"mul": true, "sqr": true, "quo": true, "rem": true}

// UsesEngine reports whether op is dispatched through an Engine.
func UsesEngine(op string) bool {
	return engineOps[op]
}

// NewRequest parses the operands of cfg.
func NewRequest(cfg config.AppConfig) (Request, error) {
	arity, ok := config.OperationArity(cfg.Op)
	if !ok {
		return Request{}, apperrors.NewConfigError("unrecognized operation: '%s'", cfg.Op)
	}
	req := Request{Op: cfg.Op}
	a, err := new(mpint.Int).SetString(cfg.A)
	if err != nil {
		return Request{}, apperrors.ValidationError{Field: "a", Message: err.Error()}
	}
	req.A = a

	switch arity {
	case config.Binary:
		b, err := new(mpint.Int).SetString(cfg.B)
		if err != nil {
			return Request{}, apperrors.ValidationError{Field: "b", Message: err.Error()}
		}
		req.B = b
	case config.Shift:
		n, err := strconv.ParseUint(cfg.B, 10, strconv.IntSize)
		if err != nil {
			return Request{}, apperrors.ValidationError{Field: "b", Message: fmt.Sprintf("shift count must be a non-negative integer: %q", cfg.B)}
		}
		req.Shift = uint(n)
	}
	return req, nil
}

// Evaluate runs req on e. It returns the primary result and, for divmod,
// the modulus.
func Evaluate(ctx context.Context, e engine.Engine, req Request) (*mpint.Int, *mpint.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	a, b := req.A, req.B
	switch req.Op {
	case "mul":
		z, err := e.Mul(ctx, a, b)
		return z, nil, err
	case "sqr":
		z, err := e.Sqr(ctx, a)
		return z, nil, err
	case "quo":
		q, _, err := e.QuoRem(ctx, a, b)
		return q, nil, err
	case "rem":
		_, r, err := e.QuoRem(ctx, a, b)
		return r, nil, err
	case "add":
		return new(mpint.Int).Add(a, b), nil, nil
	case "sub":
		return new(mpint.Int).Sub(a, b), nil, nil
	case "mod":
		m, err := new(mpint.Int).Mod(a, b)
		return m, nil, err
	case "divmod":
		d, m, err := new(mpint.Int).DivMod(a, b, new(mpint.Int))
		if err != nil {
			return nil, nil, err
		}
		return d, m, nil
	case "and":
		return new(mpint.Int).And(a, b), nil, nil
	case "or":
		return new(mpint.Int).Or(a, b), nil, nil
	case "xor":
		return new(mpint.Int).Xor(a, b), nil, nil
	case "andnot":
		return new(mpint.Int).AndNot(a, b), nil, nil
	case "not":
		return new(mpint.Int).Not(a), nil, nil
	case "lsh":
		z, err := new(mpint.Int).Lsh(a, req.Shift)
		return z, nil, err
	case "rsh":
		return new(mpint.Int).Rsh(a, req.Shift), nil, nil
	case "gcd":
		return new(mpint.Int).GCD(a, b), nil, nil
	}
	return nil, nil, apperrors.NewConfigError("unrecognized operation: '%s'", req.Op)
}
