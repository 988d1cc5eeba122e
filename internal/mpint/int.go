package mpint

import "math"

// An Int represents a signed multi-precision integer.
// The zero value for an Int represents the value 0.
//
// Operations always take pointer arguments (*Int) rather than Int values,
// and each unique Int value requires its own unique *Int pointer. To "copy"
// an Int value, an existing (or newly allocated) Int must be set to a new
// value using the Set method; shallow copies of Ints are not supported and
// may lead to errors.
//
// Methods of the form z.Op(x, y) store the result in the receiver z, which
// may be one of the operands, and return z. The receiver's storage is
// reused when it is large enough.
type Int struct {
	neg bool // sign
	abs nat  // absolute value of the integer
}

// NewInt allocates and returns a new Int set to x.
func NewInt(x int64) *Int {
	return new(Int).SetInt64(x)
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		z.abs = z.abs.set(x.abs)
		z.neg = x.neg
	}
	return z
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	neg := false
	if x < 0 {
		neg = true
		x = -x
	}
	z.abs = z.abs.setUint64(uint64(x))
	z.neg = neg
	return z
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	z.abs = z.abs.setUint64(x)
	z.neg = false
	return z
}

// SetInt32 sets z to x and returns z.
func (z *Int) SetInt32(x int32) *Int {
	return z.SetInt64(int64(x))
}

// SetUint32 sets z to x and returns z.
func (z *Int) SetUint32(x uint32) *Int {
	z.abs = z.abs.setWord(Word(x))
	z.neg = false
	return z
}

// low64 returns the low 64 bits of z in two's complement.
func (z *Int) low64() uint64 {
	v := z.abs.uint64()
	if z.neg {
		v = -v
	}
	return v
}

// Int64 returns the int64 representation of x. If x cannot be represented
// in an int64, the result keeps the low 64 bits of x's two's complement
// form, like a narrowing conversion.
func (x *Int) Int64() int64 {
	return int64(x.low64())
}

// Uint64 returns the uint64 representation of x, truncated like Int64.
func (x *Int) Uint64() uint64 {
	return x.low64()
}

// Int32 returns the low 32 bits of x's two's complement form as an int32.
func (x *Int) Int32() int32 {
	return int32(x.low64())
}

// Uint32 returns the low 32 bits of x's two's complement form as a uint32.
func (x *Int) Uint32() uint32 {
	return uint32(x.low64())
}

// IsInt64 reports whether x can be represented as an int64.
func (x *Int) IsInt64() bool {
	if len(x.abs) <= 64/_W {
		w := int64(x.abs.uint64())
		return w >= 0 || x.neg && w == -w
	}
	return false
}

// IsUint64 reports whether x can be represented as a uint64.
func (x *Int) IsUint64() bool {
	return !x.neg && len(x.abs) <= 64/_W
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x *Int) Sign() int {
	if len(x.abs) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x == 0.
func (x *Int) IsZero() bool {
	return len(x.abs) == 0
}

// Len returns the number of limbs of |x|.
func (x *Int) Len() int {
	return len(x.abs)
}

// Cap returns the number of limbs |x| can hold without reallocating.
func (x *Int) Cap() int {
	return cap(x.abs)
}

// Reserve makes sure z can hold n limbs without reallocating and returns z.
// The value of z is unchanged.
func (z *Int) Reserve(n int) *Int {
	if n > cap(z.abs) {
		m := len(z.abs)
		z.abs = z.abs.grow(n)[:m]
	}
	return z
}

// Cmp compares x and y and returns -1 if x < y, 0 if x == y and +1 if x > y.
func (x *Int) Cmp(y *Int) (r int) {
	switch {
	case x == y:
		// nothing to do
	case x.neg == y.neg:
		r = x.abs.cmp(y.abs)
		if x.neg {
			r = -r
		}
	case x.neg:
		r = -1
	default:
		r = 1
	}
	return
}

// CmpAbs compares |x| and |y|.
func (x *Int) CmpAbs(y *Int) int {
	return x.abs.cmp(y.abs)
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	z.neg = false
	return z
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	z.neg = len(z.abs) > 0 && !z.neg
	return z
}

// Add sets z to x + y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	neg := x.neg
	if x.neg == y.neg {
		// x + y == x + y
		// (-x) + (-y) == -(x + y)
		z.abs = z.abs.add(x.abs, y.abs)
	} else {
		// x + (-y) == x - y == -(y - x)
		// (-x) + y == y - x == -(x - y)
		if x.abs.cmp(y.abs) >= 0 {
			z.abs = z.abs.sub(x.abs, y.abs)
		} else {
			neg = !neg
			z.abs = z.abs.sub(y.abs, x.abs)
		}
	}
	z.neg = len(z.abs) > 0 && neg
	return z
}

// Sub sets z to x - y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	neg := x.neg
	if x.neg != y.neg {
		// x - (-y) == x + y
		// (-x) - y == -(x + y)
		z.abs = z.abs.add(x.abs, y.abs)
	} else {
		// x - y == x - y == -(y - x)
		// (-x) - (-y) == y - x == -(x - y)
		if x.abs.cmp(y.abs) >= 0 {
			z.abs = z.abs.sub(x.abs, y.abs)
		} else {
			neg = !neg
			z.abs = z.abs.sub(y.abs, x.abs)
		}
	}
	z.neg = len(z.abs) > 0 && neg
	return z
}

// BitLen returns the length of |x| in bits. The bit length of 0 is 0.
func (x *Int) BitLen() int {
	return x.abs.bitLen()
}

// TrailingZeroBits returns the number of consecutive least significant
// zero bits of |x|.
func (x *Int) TrailingZeroBits() uint {
	return x.abs.trailingZeroBits()
}

// Float64 returns the float64 value nearest to x, rounding half to even.
// Values beyond the float64 range become ±Inf.
func (x *Int) Float64() float64 {
	n := x.abs.bitLen()
	if n == 0 {
		return 0
	}
	var f float64
	if n <= 53 {
		f = float64(x.abs.uint64())
	} else {
		// Keep the top 54 bits, fold everything below into a sticky bit,
		// then round the 54-bit value to 53 bits.
		shift := uint(n - 54)
		m := nat(nil).shr(x.abs, shift).uint64()
		sticky := x.abs.sticky(shift)
		half := m & 1
		m >>= 1
		if half == 1 && (sticky == 1 || m&1 == 1) {
			m++
		}
		f = math.Ldexp(float64(m), int(shift)+1)
	}
	if x.neg {
		f = -f
	}
	return f
}

// SetFloat64 sets z to the integer part of f, truncating toward zero, and
// returns z. It returns an error wrapping ErrInvalidFormat if f is NaN or
// infinite; z is left unchanged in that case.
func (z *Int) SetFloat64(f float64) (*Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, opError("setfloat", errNotFinite)
	}
	f = math.Trunc(f)
	neg := f < 0
	if neg {
		f = -f
	}
	if f < 1<<64 {
		z.SetUint64(uint64(f))
	} else {
		mant, exp := math.Frexp(f) // f = mant * 2^exp, 0.5 <= mant < 1
		z.SetUint64(uint64(mant * (1 << 53)))
		z.abs = z.abs.shl(z.abs, uint(exp-53))
	}
	z.neg = neg && len(z.abs) > 0
	return z, nil
}

// Words returns a copy of the little-endian limbs of |x|.
func (x *Int) Words() []Word {
	return append([]Word(nil), x.abs...)
}

// SetWords sets z to the magnitude given by the little-endian limbs w and
// the sign neg, and returns z.
func (z *Int) SetWords(w []Word, neg bool) *Int {
	z.abs = z.abs.set(nat(w)).norm()
	z.neg = neg && len(z.abs) > 0
	return z
}
