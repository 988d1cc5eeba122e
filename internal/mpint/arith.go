// This file provides the single-limb and limb-vector primitives every
// higher-level routine is built on.

package mpint

import "math/bits"

// Word is a single 32-bit limb of a magnitude.
type Word uint32

const (
	_W = 32                  // limb size in bits
	_B = 1 << _W             // limb base
	_M = Word(_B - 1)        // limb mask
	_S = _W / 8              // limb size in bytes
	_D = 9                   // decimal digits per conversion chunk
	_P = Word(1e9)           // 10^_D
	_H = Word(1 << (_W - 1)) // top bit of a limb
)

// ─────────────────────────────────────────────────────────────────────────────
// Single-limb operations
// ─────────────────────────────────────────────────────────────────────────────

// mulWW returns the 64-bit product x*y as (hi, lo).
func mulWW(x, y Word) (hi, lo Word) {
	h, l := bits.Mul32(uint32(x), uint32(y))
	return Word(h), Word(l)
}

// mulAddWWW returns x*y + c as (hi, lo).
func mulAddWWW(x, y, c Word) (hi, lo Word) {
	h, l := bits.Mul32(uint32(x), uint32(y))
	l, cc := bits.Add32(l, uint32(c), 0)
	return Word(h + cc), Word(l)
}

// divWW returns the quotient and remainder of (hi, lo) / y.
// It requires hi < y.
func divWW(hi, lo, y Word) (q, r Word) {
	qq, rr := bits.Div32(uint32(hi), uint32(lo), uint32(y))
	return Word(qq), Word(rr)
}

// nlz returns the number of leading zero bits of x.
func nlz(x Word) uint {
	return uint(bits.LeadingZeros32(uint32(x)))
}

// ─────────────────────────────────────────────────────────────────────────────
// Vector operations
//
// Each routine reads len(z) limbs from its vector operands; x and y must be
// at least that long. Exact aliasing of z with an operand is safe.
// ─────────────────────────────────────────────────────────────────────────────

// addVV sets z = x + y and returns the carry.
func addVV(z, x, y []Word) (c Word) {
	for i := range z {
		s, cc := bits.Add32(uint32(x[i]), uint32(y[i]), uint32(c))
		z[i] = Word(s)
		c = Word(cc)
	}
	return
}

// subVV sets z = x - y and returns the borrow.
func subVV(z, x, y []Word) (c Word) {
	for i := range z {
		d, cc := bits.Sub32(uint32(x[i]), uint32(y[i]), uint32(c))
		z[i] = Word(d)
		c = Word(cc)
	}
	return
}

// addVW sets z = x + y for a single limb y and returns the carry.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		s, cc := bits.Add32(uint32(x[i]), uint32(c), 0)
		z[i] = Word(s)
		c = Word(cc)
	}
	return
}

// subVW sets z = x - y for a single limb y and returns the borrow.
func subVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		d, cc := bits.Sub32(uint32(x[i]), uint32(c), 0)
		z[i] = Word(d)
		c = Word(cc)
	}
	return
}

// shlVU sets z = x << s for 0 <= s < _W and returns the bits shifted out
// of the top limb.
func shlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 {
		return
	}
	ŝ := _W - s
	c = x[len(z)-1] >> ŝ
	for i := len(z) - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>ŝ
	}
	z[0] = x[0] << s
	return
}

// shrVU sets z = x >> s for 0 <= s < _W and returns the bits shifted out
// of the bottom limb, left-aligned.
func shrVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 {
		return
	}
	ŝ := _W - s
	c = x[0] << ŝ
	for i := 0; i < len(z)-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<ŝ
	}
	z[len(z)-1] = x[len(z)-1] >> s
	return
}

// mulAddVWW sets z = x*y + r and returns the high limb.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := range z {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return
}

// addMulVVW sets z += x*y and returns the high limb.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := range z {
		z1, z0 := mulAddWWW(x[i], y, z[i])
		lo, cc := bits.Add32(uint32(z0), uint32(c), 0)
		c, z[i] = Word(cc)+z1, Word(lo)
	}
	return
}
