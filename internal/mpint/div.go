// This file implements division: the single-limb and 64-bit divisor fast
// paths, Knuth's Algorithm D for longer divisors, and the truncated and
// Euclidean division operations on Int built on them.

package mpint

import (
	"math/bits"

	apperrors "github.com/agbru/mpcalc/internal/errors"
)

// div returns q, r such that q = ⌊u/v⌋ and r = u%v = u - q·v.
// It uses z and z2 as the storage for q and r. v must not be zero.
func (z nat) div(z2, u, v nat) (q, r nat) {
	if len(v) == 0 {
		panic("mpint: division by zero")
	}

	if u.cmp(v) < 0 {
		q = z[:0]
		r = z2.set(u)
		return
	}

	switch len(v) {
	case 1:
		// Short division: the 2-by-1 guess is all we need at each step.
		var r2 Word
		q, r2 = z.divW(u, v[0])
		r = z2.setWord(r2)
		return
	case 2:
		// The divisor fits in a machine word: divide 64 bits at a time.
		var r2 uint64
		q, r2 = z.divDW(u, v.uint64())
		r = z2.setUint64(r2)
		return
	}

	q, r = z.divLarge(z2, u, v)
	return
}

// divW returns q, r such that q = ⌊x/y⌋ and r = x%y = x - q·y.
// It uses z as the storage for q.
func (z nat) divW(x nat, y Word) (q nat, r Word) {
	m := len(x)
	switch {
	case y == 0:
		panic("mpint: division by zero")
	case y == 1:
		q = z.set(x) // result is x
		return
	case m == 0:
		q = z[:0] // result is 0
		return
	}
	// m > 0
	z = z.make(m)
	r = divWVW(z, 0, x, y)
	q = z.norm()
	return
}

// divWVW overwrites z with ⌊(xn·B^len(x) + x)/y⌋, returning the remainder.
// The caller must ensure that len(z) = len(x) and xn < y.
func divWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return r
}

// divDW returns q, r such that q = ⌊x/y⌋ and r = x%y for a divisor y that
// fits in 64 bits. Each step divides a 96-bit window by y with a single
// 128-by-64 hardware division.
func (z nat) divDW(x nat, y uint64) (q nat, r uint64) {
	m := len(x)
	if m == 0 {
		return z[:0], 0
	}
	z = z.make(m)
	for i := m - 1; i >= 0; i-- {
		// r < y, so (r·2^32 + x[i]) / y < 2^32.
		qq, rr := bits.Div64(r>>32, r<<32|uint64(x[i]), y)
		z[i] = Word(qq)
		r = rr
	}
	return z.norm(), r
}

// divLarge returns q, r such that q = ⌊uIn/vIn⌋ and r = uIn%vIn.
// It uses z and u as the storage for q and r.
// The caller must ensure that len(vIn) ≥ 2 and len(uIn) ≥ len(vIn).
func (z nat) divLarge(u, uIn, vIn nat) (q, r nat) {
	n := len(vIn)
	m := len(uIn) - n

	// Scale the inputs so vIn's top bit is 1. vIn is treated as a
	// read-only input, so the scaled divisor goes to a scratch copy;
	// uIn is copied to u.
	shift := nlz(vIn[n-1])
	v := getNat(n)
	shlVU(v, vIn, shift)
	u = u.make(len(uIn) + 1)
	u[len(uIn)] = shlVU(u[0:len(uIn)], uIn, shift)

	// z and u are the two different outputs; never let them share storage.
	if alias(z, u) {
		z = nil
	}
	q = z.make(m + 1)

	q.divBasic(u, v)
	putNat(v)

	q = q.norm()

	// Undo scaling of remainder.
	shrVU(u, u, shift)
	r = u.norm()

	return q, r
}

// divBasic overwrites q with ⌊u/v⌋ and u with the remainder, using Knuth's
// Algorithm D. v must be normalized (top bit of v[n-1] set), len(v) >= 2,
// and q must be large enough to hold the quotient.
//
// It returns how many quotient digits needed the addback correction.
func (q nat) divBasic(u, v nat) (addbacks int) {
	n := len(v)
	m := len(u) - n

	qhatv := getNat(n + 1)

	vn1 := v[n-1]
	vn2 := v[n-2]

	// Compute each digit of quotient.
	for j := m; j >= 0; j-- {
		// Compute the 2-by-1 guess q̂.
		// The first iteration must invent a leading 0 for u.
		qhat := _M
		var ujn Word
		if j+n < len(u) {
			ujn = u[j+n]
		}

		// ujn ≤ vn1, or else q̂ would be more than one digit.
		// For ujn == vn1, we set q̂ to the max digit M above.
		// Otherwise, we compute the 2-by-1 guess.
		if ujn != vn1 {
			var rhat Word
			qhat, rhat = divWW(ujn, u[j+n-1], vn1)

			// Refine q̂ to a 3-by-2 guess.
			x1, x2 := mulWW(qhat, vn2)
			ujn2 := u[j+n-2]
			for greaterThan(x1, x2, rhat, ujn2) { // x1x2 > r̂ u[j+n-2]
				qhat--
				prevRhat := rhat
				rhat += vn1
				// If r̂ overflows, then r̂ u[j+n-2] is now definitely
				// larger than x1 x2.
				if rhat < prevRhat {
					break
				}
				x1, x2 = mulWW(qhat, vn2)
			}
		}

		// Compute q̂·v.
		qhatv[n] = mulAddVWW(qhatv[0:n], v, qhat, 0)
		qhl := len(qhatv)
		if j+qhl > len(u) && qhatv[n] == 0 {
			qhl--
		}

		// Subtract q̂·v from the current section of u.
		// If it underflows, q̂·v > u, which we fix up
		// by decrementing q̂ and adding v back.
		c := subVV(u[j:j+qhl], u[j:], qhatv)
		if c != 0 {
			c := addVV(u[j:j+n], u[j:], v)
			// If n == qhl, the carry from subVV and the carry from addVV
			// cancel out and don't affect u[j+n].
			if n < qhl {
				u[j+n] += c
			}
			qhat--
			addbacks++
		}

		// Save quotient digit.
		// Caller may know the top digit is zero and not leave room for it.
		if j == m && m == len(q) && qhat == 0 {
			continue
		}
		q[j] = qhat
	}

	putNat(qhatv)
	return addbacks
}

// greaterThan reports whether the two-limb number x1 x2 > y1 y2, where
// x1 and y1 are the high limbs.
func greaterThan(x1, x2, y1, y2 Word) bool {
	return x1 > y1 || x1 == y1 && x2 > y2
}

// gcd sets z to the greatest common divisor of a and b using Euclid's
// algorithm over div.
func (z nat) gcd(a, b nat) nat {
	x := nat(nil).set(a)
	y := nat(nil).set(b)
	var q, r nat
	for len(y) > 0 {
		q, r = q.div(r, x, y)
		x, y, r = y, r, x
	}
	return z.set(x)
}

// ─────────────────────────────────────────────────────────────────────────────
// Int division
// ─────────────────────────────────────────────────────────────────────────────

var intOne = &Int{abs: nat{1}}

// Quo sets z to the quotient x/y truncated toward zero and returns z.
// It returns an error wrapping ErrDivisionByZero, leaving z unchanged, if
// y == 0.
func (z *Int) Quo(x, y *Int) (*Int, error) {
	if len(y.abs) == 0 {
		return nil, opError("quo", apperrors.ErrDivisionByZero)
	}
	var r nat
	neg := x.neg != y.neg
	z.abs, _ = z.abs.div(r, x.abs, y.abs)
	z.neg = len(z.abs) > 0 && neg
	return z, nil
}

// Rem sets z to the remainder x%y of truncated division and returns z.
// A non-zero remainder has the sign of x. It returns an error wrapping
// ErrDivisionByZero, leaving z unchanged, if y == 0.
func (z *Int) Rem(x, y *Int) (*Int, error) {
	if len(y.abs) == 0 {
		return nil, opError("rem", apperrors.ErrDivisionByZero)
	}
	var q nat
	neg := x.neg
	_, z.abs = q.div(z.abs, x.abs, y.abs)
	z.neg = len(z.abs) > 0 && neg
	return z, nil
}

// QuoRem sets z to the truncated quotient x/y and r to the remainder
// x - y*z, and returns the pair (z, r). If z and r are the same Int, it
// receives the remainder. It returns an error wrapping ErrDivisionByZero,
// leaving z and r unchanged, if y == 0.
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int, error) {
	if len(y.abs) == 0 {
		return nil, nil, opError("quorem", apperrors.ErrDivisionByZero)
	}
	qNeg, rNeg := x.neg != y.neg, x.neg
	if z == r {
		var q nat
		_, r.abs = q.div(r.abs, x.abs, y.abs)
		r.neg = len(r.abs) > 0 && rNeg
		return r, r, nil
	}
	z.abs, r.abs = z.abs.div(r.abs, x.abs, y.abs)
	z.neg, r.neg = len(z.abs) > 0 && qNeg, len(r.abs) > 0 && rNeg // 0 has no sign
	return z, r, nil
}

// Div sets z to the Euclidean quotient of x/y and returns z.
// The Euclidean quotient q and modulus m satisfy x = q*y + m with
// 0 <= m < |y|. It returns an error wrapping ErrDivisionByZero, leaving z
// unchanged, if y == 0.
func (z *Int) Div(x, y *Int) (*Int, error) {
	if len(y.abs) == 0 {
		return nil, opError("div", apperrors.ErrDivisionByZero)
	}
	yNeg := y.neg // z may be an alias for y
	var r Int
	z.QuoRem(x, y, &r)
	if r.neg {
		if yNeg {
			z.Add(z, intOne)
		} else {
			z.Sub(z, intOne)
		}
	}
	return z, nil
}

// Mod sets z to the Euclidean modulus x mod y, with 0 <= z < |y|, and
// returns z. It returns an error wrapping ErrDivisionByZero, leaving z
// unchanged, if y == 0.
func (z *Int) Mod(x, y *Int) (*Int, error) {
	if len(y.abs) == 0 {
		return nil, opError("mod", apperrors.ErrDivisionByZero)
	}
	y0 := y // save y
	if z == y || alias(z.abs, y.abs) {
		y0 = new(Int).Set(y)
	}
	var q nat
	q, z.abs = q.div(z.abs, x.abs, y.abs)
	z.neg = len(z.abs) > 0 && x.neg // 0 has no sign
	if z.neg {
		if y0.neg {
			z.Sub(z, y0)
		} else {
			z.Add(z, y0)
		}
	}
	return z, nil
}

// DivMod sets z to the Euclidean quotient and m to the Euclidean modulus of
// x and y and returns the pair (z, m). If z and m are the same Int, it
// receives the modulus. It returns an error wrapping ErrDivisionByZero,
// leaving z and m unchanged, if y == 0.
func (z *Int) DivMod(x, y, m *Int) (*Int, *Int, error) {
	if len(y.abs) == 0 {
		return nil, nil, opError("divmod", apperrors.ErrDivisionByZero)
	}
	if z == m {
		m.Mod(x, y)
		return m, m, nil
	}
	y0 := y // save y
	if z == y || alias(z.abs, y.abs) || m == y || alias(m.abs, y.abs) {
		y0 = new(Int).Set(y)
	}
	z.QuoRem(x, y, m)
	if m.neg {
		if y0.neg {
			z.Add(z, intOne)
			m.Sub(m, y0)
		} else {
			z.Sub(z, intOne)
			m.Add(m, y0)
		}
	}
	return z, m, nil
}

// QuoUint32 sets z to x/y truncated toward zero for a single-limb divisor
// and returns z.
func (z *Int) QuoUint32(x *Int, y uint32) (*Int, error) {
	if y == 0 {
		return nil, opError("quo", apperrors.ErrDivisionByZero)
	}
	neg := x.neg
	z.abs, _ = z.abs.divW(x.abs, Word(y))
	z.neg = len(z.abs) > 0 && neg
	return z, nil
}

// ModUint32 returns the Euclidean modulus x mod y, in [0, y).
func (x *Int) ModUint32(y uint32) (uint32, error) {
	if y == 0 {
		return 0, opError("mod", apperrors.ErrDivisionByZero)
	}
	_, r := nat(nil).divW(x.abs, Word(y))
	if x.neg && r != 0 {
		r = Word(y) - r
	}
	return uint32(r), nil
}

// GCD sets z to the greatest common divisor of |a| and |b| and returns z.
// The result is never negative; GCD(0, 0) is 0.
func (z *Int) GCD(a, b *Int) *Int {
	z.abs = z.abs.gcd(a.abs, b.abs)
	z.neg = false
	return z
}
