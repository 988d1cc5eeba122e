package mpint

import (
	"math/big"
	"math/rand"
	"testing"
)

// toBig converts x to a math/big value for comparison.
func toBig(x *Int) *big.Int {
	b := new(big.Int).SetBytes(x.Bytes(BigEndian))
	if x.Sign() < 0 {
		b.Neg(b)
	}
	return b
}

// fromBig converts a math/big value to an Int.
func fromBig(b *big.Int) *Int {
	x := new(Int).SetBytes(b.Bytes(), BigEndian)
	if b.Sign() < 0 {
		x.Neg(x)
	}
	return x
}

// mustInt parses s or fails the test.
func mustInt(t testing.TB, s string) *Int {
	t.Helper()
	x, err := new(Int).SetString(s)
	if err != nil {
		t.Fatalf("SetString(%q): %v", s, err)
	}
	return x
}

// mustBig parses s as a math/big value or fails the test.
func mustBig(t testing.TB, s string) *big.Int {
	t.Helper()
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("big.SetString(%q) failed", s)
	}
	return b
}

// intFromWords builds an Int from little-endian limbs and a sign.
func intFromWords(w []uint32, neg bool) *Int {
	words := make([]Word, len(w))
	for i, v := range w {
		words[i] = Word(v)
	}
	return new(Int).SetWords(words, neg)
}

// randInt returns a random Int of exactly n limbs (0 for n == 0).
func randInt(rng *rand.Rand, n int, neg bool) *Int {
	if n == 0 {
		return new(Int)
	}
	w := make([]Word, n)
	for i := range w {
		w[i] = Word(rng.Uint32())
	}
	w[n-1] |= 1
	return new(Int).SetWords(w, neg)
}

// onesInt returns the n-limb value whose limbs are all 0xFFFFFFFF, which
// maximizes carry propagation.
func onesInt(n int) *Int {
	w := make([]Word, n)
	for i := range w {
		w[i] = _M
	}
	return new(Int).SetWords(w, false)
}

// checkNorm fails the test if x violates the representation invariants.
func checkNorm(t testing.TB, name string, x *Int) {
	t.Helper()
	if n := len(x.abs); n > 0 && x.abs[n-1] == 0 {
		t.Errorf("%s: leading zero limb in %v", name, x.abs)
	}
	if len(x.abs) == 0 && x.neg {
		t.Errorf("%s: negative zero", name)
	}
}

// expectBig fails the test if x differs from want.
func expectBig(t testing.TB, name string, x *Int, want *big.Int) {
	t.Helper()
	checkNorm(t, name, x)
	if got := toBig(x); got.Cmp(want) != 0 {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}
