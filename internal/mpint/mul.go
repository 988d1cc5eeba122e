// This file implements multiplication and squaring of Ints and the
// length-based algorithm dispatch shared by every multiplication routine.

package mpint

// Default algorithm thresholds, in limbs of the shorter operand.
const (
	DefaultKaratsubaThreshold       = 80
	DefaultToomCookThreshold        = 240
	DefaultKaratsubaSquareThreshold = 128
	DefaultToomCookSquareThreshold  = 216
)

// Options tunes multiplication algorithm selection. All lengths are in limbs
// of the shorter operand. A zero field selects the corresponding default;
// ParallelThreshold defaults to 0, which disables parallel Karatsuba.
//
// Options only change how a product is computed, never its value.
type Options struct {
	// KaratsubaThreshold is the length from which Karatsuba replaces
	// schoolbook multiplication. Values below 2 are raised to 2.
	KaratsubaThreshold int
	// ToomCookThreshold is the length from which 3-way Toom-Cook replaces
	// Karatsuba. Values below 3 are raised to 3.
	ToomCookThreshold int
	// KaratsubaSquareThreshold and ToomCookSquareThreshold play the same
	// roles for squaring.
	KaratsubaSquareThreshold int
	ToomCookSquareThreshold  int
	// ParallelThreshold is the length from which the three Karatsuba
	// sub-products are computed concurrently. It doubles at each recursion
	// level.
	ParallelThreshold int
}

// DefaultOptions returns the options used by Mul and Sqr.
func DefaultOptions() Options {
	return Options{
		KaratsubaThreshold:       DefaultKaratsubaThreshold,
		ToomCookThreshold:        DefaultToomCookThreshold,
		KaratsubaSquareThreshold: DefaultKaratsubaSquareThreshold,
		ToomCookSquareThreshold:  DefaultToomCookSquareThreshold,
	}
}

// tuning is the normalized form of Options used internally.
type tuning struct {
	karatsuba    int
	toom         int
	karatsubaSqr int
	toomSqr      int
	parallel     int
	seq          *tuning // same thresholds with the parallel path disabled
}

func orDefault(v, def, lo int) int {
	if v == 0 {
		v = def
	}
	return max(v, lo)
}

func (o Options) tuning() *tuning {
	t := &tuning{
		karatsuba:    orDefault(o.KaratsubaThreshold, DefaultKaratsubaThreshold, 2),
		toom:         orDefault(o.ToomCookThreshold, DefaultToomCookThreshold, 3),
		karatsubaSqr: orDefault(o.KaratsubaSquareThreshold, DefaultKaratsubaSquareThreshold, 2),
		toomSqr:      orDefault(o.ToomCookSquareThreshold, DefaultToomCookSquareThreshold, 3),
		parallel:     max(o.ParallelThreshold, 0),
	}
	seq := *t
	seq.parallel = 0
	seq.seq = &seq
	t.seq = &seq
	return t
}

var defaultTuning = DefaultOptions().tuning()

// Mul sets z to the product x*y and returns z. It returns an error wrapping
// ErrOverflow, leaving z unchanged, if the product could exceed MaxBits.
func (z *Int) Mul(x, y *Int) (*Int, error) {
	return z.mul(x, y, defaultTuning)
}

// MulWith is like Mul but selects algorithms according to opts.
func (z *Int) MulWith(x, y *Int, opts Options) (*Int, error) {
	return z.mul(x, y, opts.tuning())
}

// Sqr sets z to x*x and returns z.
func (z *Int) Sqr(x *Int) (*Int, error) {
	return z.sqr(x, defaultTuning)
}

// SqrWith is like Sqr but selects algorithms according to opts.
func (z *Int) SqrWith(x *Int, opts Options) (*Int, error) {
	return z.sqr(x, opts.tuning())
}

func (z *Int) mul(x, y *Int, o *tuning) (*Int, error) {
	if err := checkProductBits("mul", x.abs.bitLen(), y.abs.bitLen()); err != nil {
		return nil, err
	}
	if x == y || same(x.abs, y.abs) {
		z.abs = z.abs.sqr(x.abs, o)
		z.neg = false
		return z, nil
	}
	z.mulTuned(x, y, o)
	return z, nil
}

func (z *Int) sqr(x *Int, o *tuning) (*Int, error) {
	n := x.abs.bitLen()
	if err := checkProductBits("sqr", n, n); err != nil {
		return nil, err
	}
	z.sqrTuned(x, o)
	return z, nil
}

// mulTuned sets z = x*y without the overflow check.
func (z *Int) mulTuned(x, y *Int, o *tuning) {
	z.abs = z.abs.mul(x.abs, y.abs, o)
	z.neg = len(z.abs) > 0 && x.neg != y.neg
}

// sqrTuned sets z = x*x without the overflow check.
func (z *Int) sqrTuned(x *Int, o *tuning) {
	z.abs = z.abs.sqr(x.abs, o)
	z.neg = false
}

// mul sets z = x*y, choosing the algorithm by the length of the shorter
// operand.
func (z nat) mul(x, y nat, o *tuning) nat {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.mul(y, x, o)
	case m == 0 || n == 0:
		return z[:0]
	case n == 1:
		return z.mulAddWW(x, y[0], 0)
	}
	// m >= n > 1

	// determine if z can be reused
	if alias(z, x) || alias(z, y) {
		z = nil // z is an alias for x or y - cannot reuse
	}

	if n < o.karatsuba {
		z = z.make(m + n)
		basicMul(z, x, y)
		return z.norm()
	}
	if o.parallel > 0 && n >= o.parallel {
		return z.mulParallel(x, y, o, 0)
	}
	if n >= o.toom {
		return z.mulToom(x, y, o)
	}
	return z.mulKaratsuba(x, y, o)
}

// sqr sets z = x*x, choosing the algorithm by the length of x.
func (z nat) sqr(x nat, o *tuning) nat {
	n := len(x)
	switch {
	case n == 0:
		return z[:0]
	case n == 1:
		d := x[0]
		z = z.make(2)
		z[1], z[0] = mulWW(d, d)
		return z.norm()
	}

	if alias(z, x) {
		z = nil // z is an alias for x - cannot reuse
	}

	if n < o.karatsubaSqr {
		z = z.make(2 * n)
		basicSqr(z, x)
		return z.norm()
	}
	if o.parallel > 0 && n >= o.parallel {
		return z.sqrParallel(x, o, 0)
	}
	if n >= o.toomSqr {
		return z.toom3Sqr(x, o)
	}
	return z.sqrKaratsuba(x, o)
}

// basicMul sets z = x*y using the schoolbook method. z must have length
// len(x)+len(y) and must not alias x or y.
func basicMul(z, x, y nat) {
	z[0 : len(x)+len(y)].clear() // initialize z
	for i, d := range y {
		if d != 0 {
			z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, d)
		}
	}
}

// basicSqr sets z = x*x. The off-diagonal products x[i]*x[j] with j < i are
// accumulated once, doubled with a one-bit shift, then added to the
// diagonal squares. z must have length 2*len(x) and must not alias x.
func basicSqr(z, x nat) {
	n := len(x)
	t := getNat(2 * n) // holds the off-diagonal products
	z[1], z[0] = mulWW(x[0], x[0])
	for i := 1; i < n; i++ {
		d := x[i]
		// z collects the squares x[i] * x[i]
		z[2*i+1], z[2*i] = mulWW(d, d)
		// t collects the products x[i] * x[j] where j < i
		t[2*i] = addMulVVW(t[i:2*i], x[0:i], d)
	}
	t[2*n-1] = shlVU(t[1:2*n-1], t[1:2*n-1], 1) // double the j < i products
	addVV(z, z, t)
	putNat(t)
}
