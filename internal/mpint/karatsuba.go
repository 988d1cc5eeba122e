// This file implements in-place Karatsuba multiplication and squaring.
//
// The recursive routines write the product of two equal-length operands
// into a caller-provided buffer and use the upper part of that same buffer
// as scratch space, so a whole recursion tree runs inside a single
// allocation of 6*k limbs.

package mpint

// karatsubaLen computes an approximation to the maximum k <= n such that
// k = p<<i for a number p <= threshold and an i >= 0. Thus, the result is
// the largest number that can be divided repeatedly by 2 before becoming
// about the value of threshold.
func karatsubaLen(n, threshold int) int {
	i := uint(0)
	for n > threshold {
		n >>= 1
		i++
	}
	return n << i
}

// karatsubaAdd sets z[:n+n/2] += x[:n], propagating the carry into the
// upper half.
func karatsubaAdd(z, x nat, n int) {
	if c := addVV(z[0:n], z, x); c != 0 {
		addVW(z[n:n+n>>1], z[n:], c)
	}
}

// karatsubaSub is like karatsubaAdd, but subtracts.
func karatsubaSub(z, x nat, n int) {
	if c := subVV(z[0:n], z, x); c != 0 {
		subVW(z[n:n+n>>1], z[n:], c)
	}
}

// karatsuba multiplies x and y and leaves the result in z.
// Both x and y must have the same length n and z must have length >= 6*n.
// The result is the 2*n limbs z[0:2*n]; the rest of z is clobbered.
//
// Let x = x1*b + x0 and y = y1*b + y0 with b = B^(n/2). Then
//
//	x*y = x1*y1*b*b + ((x1-x0)*(y0-y1) + x1*y1 + x0*y0)*b + x0*y0
//
// which needs three half-size products. Using (x1-x0)*(y0-y1) instead of
// (x1+x0)*(y1+y0) keeps the middle factors within n/2 limbs.
func karatsuba(z, x, y nat, threshold int) {
	n := len(y)

	// Switch to basic multiplication if numbers are odd or small.
	if n&1 != 0 || n < threshold || n < 2 {
		basicMul(z, x, y)
		return
	}
	// n&1 == 0 && n >= threshold && n >= 2

	n2 := n >> 1
	x1, x0 := x[n2:], x[0:n2]
	y1, y0 := y[n2:], y[0:n2]

	// z0 and z2 are computed "in place" in z
	karatsuba(z, x0, y0, threshold)     // z0 = x0*y0
	karatsuba(z[n:], x1, y1, threshold) // z2 = x1*y1

	// compute xd (or the negative value if underflow occurs)
	s := 1 // sign of product xd*yd
	xd := z[2*n : 2*n+n2]
	if subVV(xd, x1, x0) != 0 { // x1-x0
		s = -s
		subVV(xd, x0, x1) // x0-x1
	}

	// compute yd (or the negative value if underflow occurs)
	yd := z[2*n+n2 : 3*n]
	if subVV(yd, y0, y1) != 0 { // y0-y1
		s = -s
		subVV(yd, y1, y0) // y1-y0
	}

	// p = (x1-x0)*(y0-y1) == x1*y0 - x1*y1 - x0*y0 + x0*y1 for s > 0
	// p = (x0-x1)*(y0-y1) == x0*y0 - x0*y1 - x1*y0 + x1*y1 for s < 0
	p := z[n*3:]
	karatsuba(p, xd, yd, threshold)

	// save original z2:z0
	// (ok to use upper half of z since we're done recurring)
	r := z[n*4:]
	copy(r, z[:n*2])

	// add up all partial products
	//
	//   2*n     n     0
	// z = [ z2  | z0  ]
	//   +    [ z0  ]
	//   +    [ z2  ]
	//   +    [  p  ]
	//
	karatsubaAdd(z[n2:], r, n)
	karatsubaAdd(z[n2:], r[n:], n)
	if s > 0 {
		karatsubaAdd(z[n2:], p, n)
	} else {
		karatsubaSub(z[n2:], p, n)
	}
}

// karatsubaSqr squares x and leaves the result in z.
// len(x) must be n and z must have length >= 6*n.
// The result is the 2*n limbs z[0:2*n]; the rest of z is clobbered.
//
// Since x1 == y1 and x0 == y0 the middle product (x1-x0)*(x0-x1) is always
// -(x1-x0)^2, so only one difference and one recursive square are needed.
func karatsubaSqr(z, x nat, threshold int) {
	n := len(x)

	if n&1 != 0 || n < threshold || n < 2 {
		basicSqr(z[:2*n], x)
		return
	}

	n2 := n >> 1
	x1, x0 := x[n2:], x[0:n2]

	karatsubaSqr(z, x0, threshold)
	karatsubaSqr(z[n:], x1, threshold)

	// |x1-x0|; the sign does not matter once squared
	xd := z[2*n : 2*n+n2]
	if subVV(xd, x1, x0) != 0 {
		subVV(xd, x0, x1)
	}

	p := z[n*3:]
	karatsubaSqr(p, xd, threshold)

	r := z[n*4:]
	copy(r, z[:n*2])

	karatsubaAdd(z[n2:], r, n)
	karatsubaAdd(z[n2:], r[n:], n)
	karatsubaSub(z[n2:], p, n)
}

// mulKaratsuba sets z = x*y for len(x) >= len(y) >= o.karatsuba.
// z must not alias x or y.
func (z nat) mulKaratsuba(x, y nat, o *tuning) nat {
	m := len(x)
	n := len(y)

	// Use Karatsuba on a prefix of length k where both operands have
	// enough limbs, then add the partial products that involve the rest.
	k := karatsubaLen(n, o.karatsuba)
	// k <= n

	// multiply x0 and y0 via Karatsuba
	x0 := x[0:k]              // x0 is not normalized
	y0 := y[0:k]              // y0 is not normalized
	z = z.make(max(6*k, m+n)) // enough space for karatsuba of x0*y0 and full result of x*y
	karatsuba(z, x0, y0, o.karatsuba)
	z = z[0 : m+n]  // z has final length now
	z[2*k:].clear() // upper portion of z is garbage (and 2*k <= m+n since k <= n <= m)

	// If xh != 0 or yh != 0, add the missing terms to z. For
	//
	//   xh = xi*b^i + ... + x2*b^2 + x1*b (0 <= xi < b)
	//   yh =                         y1*b (0 <= y1 < b)
	//
	// the missing terms are
	//
	//   x0*y1*b and xi*y0*b^i, xi*y1*b^(i+1) for 0 < i <= k
	//
	// since all the yi for i > 1 are 0 by choice of k: If any of them
	// were > 0, then yh >= b^2 and thus y >= b^2. Then k' = k*2 would
	// be a larger valid threshold contradicting the assumption about k.
	if k < n || m != n {
		t := getNat(3 * k)

		// add x0*y1*b
		x0 := x0.norm()
		y1 := y[k:]          // y1 is normalized because y is
		t = t.mul(x0, y1, o) // update t so we don't lose t's underlying array
		addAt(z, t, k)

		// add xi*y0<<i, xi*y1*b<<(i+k)
		y0 := y0.norm()
		for i := k; i < len(x); i += k {
			xi := x[i:]
			if len(xi) > k {
				xi = xi[:k]
			}
			xi = xi.norm()
			t = t.mul(xi, y0, o)
			addAt(z, t, i)
			t = t.mul(xi, y1, o)
			addAt(z, t, i+k)
		}

		putNat(t)
	}

	return z.norm()
}

// sqrKaratsuba sets z = x*x for len(x) >= o.karatsubaSqr. The algorithm
// and layout of z are the same as for mulKaratsuba:
//
//	z = (x1*b + x0)^2 = x1^2*b^2 + 2*x1*x0*b + x0^2
func (z nat) sqrKaratsuba(x nat, o *tuning) nat {
	n := len(x)
	k := karatsubaLen(n, o.karatsubaSqr)

	x0 := x[0:k]
	z = z.make(max(6*k, 2*n))
	karatsubaSqr(z, x0, o.karatsubaSqr) // z = x0^2
	z = z[0 : 2*n]
	z[2*k:].clear()

	if k < n {
		t := getNat(2 * k)
		x0 := x0.norm()
		x1 := x[k:]
		t = t.mul(x0, x1, o)
		addAt(z, t, k)
		addAt(z, t, k) // z = 2*x1*x0*b + x0^2
		t = t.sqr(x1, o)
		addAt(z, t, 2*k) // z = x1^2*b^2 + 2*x1*x0*b + x0^2
		putNat(t)
	}

	return z.norm()
}
