// This file implements the bitwise operations on Int. They treat every
// value as an infinite two's-complement bit string: a negative x behaves as
// ^(|x|-1), that is, as |x|-1 with all bits inverted and sign-extended
// with ones.

package mpint

var natOne = nat{1}

// Bit returns the value of the i'th bit of x, that is (x>>i)&1.
func (x *Int) Bit(i uint) uint {
	if i == 0 {
		// bit 0 is the same for -x
		if len(x.abs) > 0 {
			return uint(x.abs[0] & 1)
		}
		return 0
	}
	if x.neg {
		t := nat(nil).sub(x.abs, natOne)
		return t.bit(i) ^ 1
	}
	return x.abs.bit(i)
}

// TestBit reports whether the i'th bit of x is set.
func (x *Int) TestBit(i uint) bool {
	return x.Bit(i) == 1
}

func checkBitIndex(op string, i uint) error {
	if uint64(i) >= MaxBits {
		return capacityError(op, uint64(i)+1)
	}
	return nil
}

// setBit sets z to x with the i'th bit set to b.
func (z *Int) setBit(x *Int, i uint, b uint) *Int {
	if x.neg {
		// Clearing a bit of -x sets the bit of |x|-1 and vice versa; a
		// bit above |x|-1 is a sign-extension one that setBit materializes.
		t := z.abs.sub(x.abs, natOne)
		t = t.setBit(t, i, b^1)
		z.abs = t.add(t, natOne)
		z.neg = len(z.abs) > 0
		return z
	}
	z.abs = z.abs.setBit(x.abs, i, b)
	z.neg = false
	return z
}

// SetBit sets z to x with the i'th bit set, that is x | (1<<i), and
// returns z. It returns an error wrapping ErrCapacityExhausted, leaving z
// unchanged, if i >= MaxBits.
func (z *Int) SetBit(x *Int, i uint) (*Int, error) {
	if err := checkBitIndex("setbit", i); err != nil {
		return nil, err
	}
	return z.setBit(x, i, 1), nil
}

// ClearBit sets z to x with the i'th bit cleared, that is x &^ (1<<i), and
// returns z. It fails like SetBit.
func (z *Int) ClearBit(x *Int, i uint) (*Int, error) {
	if err := checkBitIndex("clearbit", i); err != nil {
		return nil, err
	}
	return z.setBit(x, i, 0), nil
}

// FlipBit sets z to x with the i'th bit inverted, that is x ^ (1<<i), and
// returns z. It fails like SetBit.
func (z *Int) FlipBit(x *Int, i uint) (*Int, error) {
	if err := checkBitIndex("flipbit", i); err != nil {
		return nil, err
	}
	return z.setBit(x, i, x.Bit(i)^1), nil
}

// Lsh sets z = x << n and returns z. It returns an error wrapping
// ErrCapacityExhausted, leaving z unchanged, if the result would be longer
// than MaxBits.
func (z *Int) Lsh(x *Int, n uint) (*Int, error) {
	if len(x.abs) > 0 {
		if bits := uint64(x.abs.bitLen()) + uint64(n); bits > MaxBits {
			return nil, capacityError("lsh", bits)
		}
	}
	z.abs = z.abs.shl(x.abs, n)
	z.neg = x.neg
	return z, nil
}

// Rsh sets z = x >> n and returns z. Negative values round toward negative
// infinity, so -1 >> n == -1 for any n.
func (z *Int) Rsh(x *Int, n uint) *Int {
	if x.neg {
		// (-x) >> s == ^(x-1) >> s == ^((x-1) >> s) == -(((x-1) >> s) + 1)
		t := z.abs.sub(x.abs, natOne) // no underflow because |x| > 0
		t = t.shr(t, n)
		z.abs = t.add(t, natOne)
		z.neg = true // z cannot be zero if x is negative
		return z
	}

	z.abs = z.abs.shr(x.abs, n)
	z.neg = false
	return z
}

// And sets z = x & y and returns z.
func (z *Int) And(x, y *Int) *Int {
	if x.neg == y.neg {
		if x.neg {
			// (-x) & (-y) == ^(x-1) & ^(y-1) == ^((x-1) | (y-1)) == -(((x-1) | (y-1)) + 1)
			x1 := nat(nil).sub(x.abs, natOne)
			y1 := nat(nil).sub(y.abs, natOne)
			z.abs = z.abs.add(z.abs.or(x1, y1), natOne)
			z.neg = true // z cannot be zero if x and y are negative
			return z
		}

		// x & y == x & y
		z.abs = z.abs.and(x.abs, y.abs)
		z.neg = false
		return z
	}

	// x.neg != y.neg
	if x.neg {
		x, y = y, x // & is symmetric
	}

	// x & (-y) == x & ^(y-1) == x &^ (y-1)
	y1 := nat(nil).sub(y.abs, natOne)
	z.abs = z.abs.andNot(x.abs, y1)
	z.neg = false
	return z
}

// AndNot sets z = x &^ y and returns z.
func (z *Int) AndNot(x, y *Int) *Int {
	if x.neg == y.neg {
		if x.neg {
			// (-x) &^ (-y) == ^(x-1) &^ ^(y-1) == ^(x-1) & (y-1) == (y-1) &^ (x-1)
			x1 := nat(nil).sub(x.abs, natOne)
			y1 := nat(nil).sub(y.abs, natOne)
			z.abs = z.abs.andNot(y1, x1)
			z.neg = false
			return z
		}

		// x &^ y == x &^ y
		z.abs = z.abs.andNot(x.abs, y.abs)
		z.neg = false
		return z
	}

	if x.neg {
		// (-x) &^ y == ^(x-1) &^ y == ^(x-1) & ^y == ^((x-1) | y) == -(((x-1) | y) + 1)
		x1 := nat(nil).sub(x.abs, natOne)
		z.abs = z.abs.add(z.abs.or(x1, y.abs), natOne)
		z.neg = true // z cannot be zero if x is negative and y is positive
		return z
	}

	// x &^ (-y) == x &^ ^(y-1) == x & (y-1)
	y1 := nat(nil).sub(y.abs, natOne)
	z.abs = z.abs.and(x.abs, y1)
	z.neg = false
	return z
}

// Or sets z = x | y and returns z.
func (z *Int) Or(x, y *Int) *Int {
	if x.neg == y.neg {
		if x.neg {
			// (-x) | (-y) == ^(x-1) | ^(y-1) == ^((x-1) & (y-1)) == -(((x-1) & (y-1)) + 1)
			x1 := nat(nil).sub(x.abs, natOne)
			y1 := nat(nil).sub(y.abs, natOne)
			z.abs = z.abs.add(z.abs.and(x1, y1), natOne)
			z.neg = true // z cannot be zero if x and y are negative
			return z
		}

		// x | y == x | y
		z.abs = z.abs.or(x.abs, y.abs)
		z.neg = false
		return z
	}

	// x.neg != y.neg
	if x.neg {
		x, y = y, x // | is symmetric
	}

	// x | (-y) == x | ^(y-1) == ^((y-1) &^ x) == -(^((y-1) &^ x) + 1)
	y1 := nat(nil).sub(y.abs, natOne)
	z.abs = z.abs.add(z.abs.andNot(y1, x.abs), natOne)
	z.neg = true // z cannot be zero if one of x or y is negative
	return z
}

// Xor sets z = x ^ y and returns z.
func (z *Int) Xor(x, y *Int) *Int {
	if x.neg == y.neg {
		if x.neg {
			// (-x) ^ (-y) == ^(x-1) ^ ^(y-1) == (x-1) ^ (y-1)
			x1 := nat(nil).sub(x.abs, natOne)
			y1 := nat(nil).sub(y.abs, natOne)
			z.abs = z.abs.xor(x1, y1)
			z.neg = false
			return z
		}

		// x ^ y == x ^ y
		z.abs = z.abs.xor(x.abs, y.abs)
		z.neg = false
		return z
	}

	// x.neg != y.neg
	if x.neg {
		x, y = y, x // ^ is symmetric
	}

	// x ^ (-y) == x ^ ^(y-1) == ^(x ^ (y-1)) == -((x ^ (y-1)) + 1)
	y1 := nat(nil).sub(y.abs, natOne)
	z.abs = z.abs.add(z.abs.xor(x.abs, y1), natOne)
	z.neg = true // z cannot be zero if only one of x or y is negative
	return z
}

// Not sets z = ^x, which equals -x-1, and returns z.
func (z *Int) Not(x *Int) *Int {
	if x.neg {
		// ^(-x) == ^(^(x-1)) == x-1
		z.abs = z.abs.sub(x.abs, natOne)
		z.neg = false
		return z
	}

	// ^x == -x-1 == -(x+1)
	z.abs = z.abs.add(x.abs, natOne)
	z.neg = true // z cannot be zero if x is positive
	return z
}
