// This file implements the parallel Karatsuba variant. Each eligible level
// splits its operands once and computes the three sub-products as three
// concurrent tasks, each into its own buffer, before combining them.

package mpint

import "github.com/agbru/mpcalc/internal/parallel"

// parallelEligible reports whether operands whose shorter length is n
// should be split in parallel at the given recursion depth. The threshold
// doubles with each level to bound the number of tasks.
func (o *tuning) parallelEligible(n, depth int) bool {
	return o.parallel > 0 && n >= 2 && n >= o.parallel<<depth
}

// karatsubaTask computes x*y for one parallel sub-product, recursing in
// parallel while the operands stay eligible and falling back to the
// sequential dispatch otherwise.
func karatsubaTask(x, y nat, o *tuning, depth int) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	if o.parallelEligible(len(y), depth) {
		return nat(nil).mulParallel(x, y, o, depth)
	}
	return nat(nil).mul(x, y, o.seq)
}

// sqrTask is the squaring counterpart of karatsubaTask.
func sqrTask(x nat, o *tuning, depth int) nat {
	if o.parallelEligible(len(x), depth) {
		return nat(nil).sqrParallel(x, o, depth)
	}
	return nat(nil).sqr(x, o.seq)
}

// karatsubaSplit cuts x at limb half into a normalized low part and the
// (already normalized) high part.
func karatsubaSplit(x nat, half int) (lo, hi nat) {
	if len(x) <= half {
		return x, nil
	}
	return x[:half].norm(), x[half:]
}

// karatsubaAssemble sets z = hi*b^2 + (mid - hi - lo)*b + lo with b = B^half
// and returns z normalized. size must bound the result length.
func (z nat) karatsubaAssemble(lo, mid, hi nat, half, size int) nat {
	mid = mid.sub(mid, lo)
	mid = mid.sub(mid, hi)

	z = z.make(size)
	z.clear()
	copy(z, lo)
	addAt(z, mid, half)
	addAt(z, hi, 2*half)
	return z.norm()
}

// mulParallel sets z = x*y for len(x) >= len(y), computing
// low = x0*y0, high = x1*y1 and (x0+x1)*(y0+y1) concurrently.
// z must not alias x or y.
func (z nat) mulParallel(x, y nat, o *tuning, depth int) nat {
	half := (len(x) + 1) / 2
	x0, x1 := karatsubaSplit(x, half)
	y0, y1 := karatsubaSplit(y, half)
	sx := nat(nil).add(x0, x1)
	sy := nat(nil).add(y0, y1)

	var lo, mid, hi nat
	// The tasks cannot fail.
	_ = parallel.Execute3(
		func() error { lo = karatsubaTask(x0, y0, o, depth+1); return nil },
		func() error { hi = karatsubaTask(x1, y1, o, depth+1); return nil },
		func() error { mid = karatsubaTask(sx, sy, o, depth+1); return nil },
	)

	return z.karatsubaAssemble(lo, mid, hi, half, len(x)+len(y))
}

// sqrParallel sets z = x*x, computing x0^2, x1^2 and (x0+x1)^2
// concurrently. z must not alias x.
func (z nat) sqrParallel(x nat, o *tuning, depth int) nat {
	half := (len(x) + 1) / 2
	x0, x1 := karatsubaSplit(x, half)
	sx := nat(nil).add(x0, x1)

	var lo, mid, hi nat
	_ = parallel.Execute3(
		func() error { lo = sqrTask(x0, o, depth+1); return nil },
		func() error { hi = sqrTask(x1, o, depth+1); return nil },
		func() error { mid = sqrTask(sx, o, depth+1); return nil },
	)

	return z.karatsubaAssemble(lo, mid, hi, half, 2*len(x))
}
