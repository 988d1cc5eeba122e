package mpint

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	apperrors "github.com/agbru/mpcalc/internal/errors"
)

func TestBitwiseConcrete(t *testing.T) {
	t.Parallel()
	tests := []struct {
		op         string
		x, y, want int64
	}{
		{"and", -11, -6, -16},
		{"and", 12, -6, 8},
		{"and", -1, 0, 0},
		{"or", -11, -6, -1},
		{"or", 12, -6, -2},
		{"xor", -11, -6, 15},
		{"xor", 12, 10, 6},
		{"andnot", -11, -6, 5},
		{"andnot", 12, -6, 4},
		{"andnot", -12, 6, -16},
		{"andnot", 12, 6, 8},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_%s_%d", tt.x, tt.op, tt.y), func(t *testing.T) {
			t.Parallel()
			x, y := NewInt(tt.x), NewInt(tt.y)
			z := new(Int)
			switch tt.op {
			case "and":
				z.And(x, y)
			case "or":
				z.Or(x, y)
			case "xor":
				z.Xor(x, y)
			case "andnot":
				z.AndNot(x, y)
			}
			checkNorm(t, tt.op, z)
			if z.Int64() != tt.want || !z.IsInt64() {
				t.Errorf("%d %s %d = %s, want %d", tt.x, tt.op, tt.y, z, tt.want)
			}
		})
	}
}

func TestBitwiseMatchesBig(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 300; i++ {
		x := randInt(rng, rng.Intn(6), rng.Intn(2) == 0)
		y := randInt(rng, rng.Intn(6), rng.Intn(2) == 0)
		bx, by := toBig(x), toBig(y)

		expectBig(t, "And", new(Int).And(x, y), new(big.Int).And(bx, by))
		expectBig(t, "Or", new(Int).Or(x, y), new(big.Int).Or(bx, by))
		expectBig(t, "Xor", new(Int).Xor(x, y), new(big.Int).Xor(bx, by))
		expectBig(t, "AndNot", new(Int).AndNot(x, y), new(big.Int).AndNot(bx, by))
		expectBig(t, "AndNot reversed", new(Int).AndNot(y, x), new(big.Int).AndNot(by, bx))
		expectBig(t, "Not", new(Int).Not(x), new(big.Int).Not(bx))

		// receiver aliasing an operand
		z := new(Int).Set(x)
		expectBig(t, "z.And(z, y)", z.And(z, y), new(big.Int).And(bx, by))
		z.Set(y)
		expectBig(t, "z.Xor(x, z)", z.Xor(x, z), new(big.Int).Xor(bx, by))
	}
}

func TestNotIsMinusXMinusOne(t *testing.T) {
	t.Parallel()
	for _, v := range []int64{0, 1, -1, 41, -42, 1 << 40, -(1 << 40)} {
		got := new(Int).Not(NewInt(v))
		if got.Int64() != -v-1 {
			t.Errorf("^%d = %s, want %d", v, got, -v-1)
		}
	}
}

func TestShifts(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(8))
	for i := 0; i < 200; i++ {
		x := randInt(rng, rng.Intn(5), rng.Intn(2) == 0)
		n := uint(rng.Intn(200))
		bx := toBig(x)

		l, err := new(Int).Lsh(x, n)
		if err != nil {
			t.Fatal(err)
		}
		expectBig(t, fmt.Sprintf("%s << %d", x, n), l, new(big.Int).Lsh(bx, n))
		expectBig(t, fmt.Sprintf("%s >> %d", x, n), new(Int).Rsh(x, n), new(big.Int).Rsh(bx, n))

		back := new(Int).Rsh(l, n)
		if back.Cmp(x) != 0 {
			t.Errorf("(%s << %d) >> %d = %s", x, n, n, back)
		}
	}
}

func TestRshFloors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		x    int64
		n    uint
		want int64
	}{
		{-1, 1, -1},
		{-1, 1000, -1},
		{-7, 1, -4},
		{-8, 3, -1},
		{-9, 3, -2},
		{7, 1, 3},
		{7, 100, 0},
	}
	for _, tt := range tests {
		if got := new(Int).Rsh(NewInt(tt.x), tt.n); got.Int64() != tt.want {
			t.Errorf("%d >> %d = %s, want %d", tt.x, tt.n, got, tt.want)
		}
	}
}

func TestLshCapacity(t *testing.T) {
	t.Parallel()
	z := NewInt(5)
	if _, err := z.Lsh(NewInt(1), MaxBits); !errors.Is(err, apperrors.ErrCapacityExhausted) {
		t.Fatalf("Lsh(1, MaxBits) error = %v, want ErrCapacityExhausted", err)
	}
	if z.Int64() != 5 {
		t.Errorf("receiver modified to %s", z)
	}
	var ce apperrors.CapacityError
	_, err := z.Lsh(NewInt(-3), MaxBits-1)
	if !errors.As(err, &ce) || ce.RequestedBits != MaxBits+1 || ce.LimitBits != MaxBits {
		t.Errorf("Lsh(-3, MaxBits-1) error = %v", err)
	}
	// Shifting zero never allocates.
	if _, err := z.Lsh(new(Int), MaxBits); err != nil || !z.IsZero() {
		t.Errorf("Lsh(0, MaxBits) = %s, %v", z, err)
	}
}

func TestSingleBitOperations(t *testing.T) {
	t.Parallel()
	values := []*Int{
		NewInt(0),
		NewInt(1),
		NewInt(-1),
		NewInt(-2),
		NewInt(-(1 << 32)),
		mustInt(t, "340282366920938463463374607431768211455"),
		mustInt(t, "-340282366920938463463374607431768211456"),
	}
	for _, x := range values {
		bx := toBig(x)
		for _, i := range []uint{0, 1, 30, 31, 32, 33, 63, 64, 95, 127, 128, 200} {
			name := fmt.Sprintf("%s bit %d", x, i)
			if got, want := x.Bit(i), bx.Bit(int(i)); got != want {
				t.Errorf("%s: Bit = %d, want %d", name, got, want)
			}

			s, err := new(Int).SetBit(x, i)
			if err != nil {
				t.Fatal(err)
			}
			expectBig(t, "SetBit "+name, s, new(big.Int).SetBit(bx, int(i), 1))
			if !s.TestBit(i) {
				t.Errorf("%s: bit clear after SetBit", name)
			}

			c, err := new(Int).ClearBit(x, i)
			if err != nil {
				t.Fatal(err)
			}
			expectBig(t, "ClearBit "+name, c, new(big.Int).SetBit(bx, int(i), 0))
			if c.TestBit(i) {
				t.Errorf("%s: bit set after ClearBit", name)
			}

			f, err := new(Int).FlipBit(x, i)
			if err != nil {
				t.Fatal(err)
			}
			if f.Bit(i) == x.Bit(i) {
				t.Errorf("%s: FlipBit did not change the bit", name)
			}
			if _, err := f.FlipBit(f, i); err != nil {
				t.Fatal(err)
			}
			if f.Cmp(x) != 0 {
				t.Errorf("%s: FlipBit twice = %s", name, f)
			}
			checkNorm(t, "FlipBit "+name, f)
		}
	}
}

func TestFlipBitAcrossLimbBoundary(t *testing.T) {
	t.Parallel()
	x := NewInt(-1)
	for _, i := range []uint{31, 32} {
		f, err := new(Int).FlipBit(x, i)
		if err != nil {
			t.Fatal(err)
		}
		// -1 with bit i cleared is -1 - 2^i
		want := new(big.Int).Sub(big.NewInt(-1), new(big.Int).Lsh(big.NewInt(1), i))
		expectBig(t, fmt.Sprintf("FlipBit(-1, %d)", i), f, want)
		if _, err := f.FlipBit(f, i); err != nil {
			t.Fatal(err)
		}
		if f.Int64() != -1 {
			t.Errorf("FlipBit twice at %d = %s", i, f)
		}
	}
}

func TestBitIndexCapacity(t *testing.T) {
	t.Parallel()
	x := NewInt(3)
	for name, op := range map[string]func() (*Int, error){
		"SetBit":   func() (*Int, error) { return x.SetBit(x, MaxBits) },
		"ClearBit": func() (*Int, error) { return x.ClearBit(x, MaxBits+5) },
		"FlipBit":  func() (*Int, error) { return x.FlipBit(x, MaxBits) },
	} {
		if _, err := op(); !errors.Is(err, apperrors.ErrCapacityExhausted) {
			t.Errorf("%s error = %v, want ErrCapacityExhausted", name, err)
		}
		if x.Int64() != 3 {
			t.Errorf("%s modified receiver: %s", name, x)
		}
	}
	if x.Bit(MaxBits+100) != 0 || new(Int).Not(x).Bit(MaxBits+100) != 1 {
		t.Error("Bit beyond the magnitude does not sign-extend")
	}
}
