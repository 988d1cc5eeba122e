// This file implements 3-way Toom-Cook multiplication and squaring.
//
// Each operand of n limbs is cut into three slices a2*b^2 + a1*b + a0 with
// b = B^k and k = ceil(n/3). The product polynomial is evaluated at
// 0, 1, -1, 2 and infinity, and its five coefficients are recovered with
// two exact halvings and one exact division by 3 (Bodrato's sequence).

package mpint

// toomSlice returns limbs [lo, lo+size) of x as a normalized, read-only
// view. Limbs at or beyond len(x) count as zero, so a window that starts
// past the end of x yields zero.
func toomSlice(x nat, lo, size int) nat {
	if lo >= len(x) || size <= 0 {
		return nil
	}
	hi := min(lo+size, len(x))
	return x[lo:hi].norm()
}

// toomSplit cuts x into its three Toom-Cook slices for a full length n.
func toomSplit(x nat, n int) (a0, a1, a2 Int) {
	k := (n + 2) / 3
	r := n - 2*k
	a0.abs = toomSlice(x, 0, k)
	a1.abs = toomSlice(x, k, k)
	a2.abs = toomSlice(x, 2*k, r)
	return
}

// exactDivideBy3 sets z = x/3 for an x known to be a multiple of 3.
//
// It multiplies each limb by 0xAAAAAAAB, the inverse of 3 modulo 2^32,
// and propagates a borrow of 0, 1 or 2 upward, which takes linear time
// instead of a general division.
func (z nat) exactDivideBy3(x nat) nat {
	z = z.make(len(x))
	var borrow Word
	for i, xi := range x {
		w := xi - borrow
		if borrow > xi {
			borrow = 1
		} else {
			borrow = 0
		}

		q := w * 0xAAAAAAAB // w/3 mod 2^32
		z[i] = q

		// q*3 overflows 2^32 once or twice depending on q.
		if q >= 0x55555556 {
			borrow++
			if q >= 0xAAAAAAAB {
				borrow++
			}
		}
	}
	return z.norm()
}

// exactHalve sets z = z/2 for an even z.
func (z *Int) exactHalve() {
	z.abs = z.abs.shr(z.abs, 1)
	z.neg = z.neg && len(z.abs) > 0
}

// exactThird sets z = z/3 for a z known to be a multiple of 3.
func (z *Int) exactThird() {
	z.abs = z.abs.exactDivideBy3(z.abs)
	z.neg = z.neg && len(z.abs) > 0
}

// double sets z = 2*x.
func (z *Int) double(x *Int) *Int {
	z.abs = z.abs.shl(x.abs, 1)
	z.neg = x.neg
	return z
}

// toomInterpolate turns the five point values into the coefficients of the
// product polynomial and accumulates them into a zeroed z at offsets
// 0, k, 2k, 3k, 4k limbs. All coefficients are non-negative since both
// factor polynomials have non-negative coefficients.
//
// v0, vm1, v1, v2 and vinf are consumed.
func toomInterpolate(z nat, k int, v0, v1, vm1, v2, vinf *Int) {
	var t1, t2, tm1 Int

	t2.Sub(v2, vm1)
	t2.exactThird() // t2 = (v2 - vm1)/3
	tm1.Sub(v1, vm1)
	tm1.exactHalve() // tm1 = (v1 - vm1)/2
	t1.Sub(v1, v0)   // t1 = v1 - v0
	t2.Sub(&t2, &t1)
	t2.exactHalve() // t2 = (t2 - t1)/2
	t1.Sub(&t1, &tm1)
	t1.Sub(&t1, vinf) // t1 = t1 - tm1 - vinf
	t2.Sub(&t2, vm1.double(vinf))
	tm1.Sub(&tm1, &t2) // tm1 = tm1 - t2

	addAt(z, v0.abs, 0)
	addAt(z, tm1.abs, k)
	addAt(z, t1.abs, 2*k)
	addAt(z, t2.abs, 3*k)
	addAt(z, vinf.abs, 4*k)
}

// mulToom sets z = x*y for len(x) >= len(y) >= o.toom. When x is at least
// twice as long as y it is cut into len(y)-limb chunks, so every Toom-3 call
// sees balanced operands. z must not alias x or y.
func (z nat) mulToom(x, y nat, o *tuning) nat {
	m, n := len(x), len(y)
	if m < 2*n {
		return z.toom3(x, y, o)
	}

	z = z.make(m + n)
	z.clear()
	var t nat
	for i := 0; i < m; i += n {
		xi := x[i:min(i+n, m)].norm()
		if len(xi) == 0 {
			continue
		}
		t = t.mul(xi, y, o)
		addAt(z, t, i)
	}
	return z.norm()
}

// toom3 sets z = x*y using 3-way Toom-Cook. z must not alias x or y.
func (z nat) toom3(x, y nat, o *tuning) nat {
	n := max(len(x), len(y))
	k := (n + 2) / 3

	a0, a1, a2 := toomSplit(x, n)
	b0, b1, b2 := toomSplit(y, n)

	var v0, v1, vm1, v2, vinf, da1, db1, t Int

	v0.mulTuned(&a0, &b0, o)
	da1.Add(&a2, &a0)
	db1.Add(&b2, &b0)
	t.Sub(&db1, &b1)
	vm1.Sub(&da1, &a1)
	vm1.mulTuned(&vm1, &t, o) // vm1 = (a2-a1+a0)*(b2-b1+b0)
	da1.Add(&da1, &a1)
	db1.Add(&db1, &b1)
	v1.mulTuned(&da1, &db1, o) // v1 = (a2+a1+a0)*(b2+b1+b0)
	da1.Add(&da1, &a2)
	da1.double(&da1)
	da1.Sub(&da1, &a0)
	db1.Add(&db1, &b2)
	db1.double(&db1)
	db1.Sub(&db1, &b0)
	v2.mulTuned(&da1, &db1, o) // v2 = (4a2+2a1+a0)*(4b2+2b1+b0)
	vinf.mulTuned(&a2, &b2, o)

	z = z.make(len(x) + len(y))
	z.clear()
	toomInterpolate(z, k, &v0, &v1, &vm1, &v2, &vinf)
	return z.norm()
}

// toom3Sqr sets z = x*x using 3-way Toom-Cook. z must not alias x.
func (z nat) toom3Sqr(x nat, o *tuning) nat {
	n := len(x)
	k := (n + 2) / 3

	a0, a1, a2 := toomSplit(x, n)

	var v0, v1, vm1, v2, vinf, da1 Int

	v0.sqrTuned(&a0, o)
	da1.Add(&a2, &a0)
	vm1.Sub(&da1, &a1)
	vm1.sqrTuned(&vm1, o)
	da1.Add(&da1, &a1)
	v1.sqrTuned(&da1, o)
	vinf.sqrTuned(&a2, o)
	da1.Add(&da1, &a2)
	da1.double(&da1)
	da1.Sub(&da1, &a0)
	v2.sqrTuned(&da1, o)

	z = z.make(2 * n)
	z.clear()
	toomInterpolate(z, k, &v0, &v1, &vm1, &v2, &vinf)
	return z.norm()
}
