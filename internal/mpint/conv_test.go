package mpint

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	apperrors "github.com/agbru/mpcalc/internal/errors"
)

func TestSetStringCanonical(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"+0", "0"},
		{"000", "0"},
		{"+5", "5"},
		{"-000123", "-123"},
		{"999999999", "999999999"},
		{"1000000000", "1000000000"},
		{"4294967296", "4294967296"},
		{"-18446744073709551616", "-18446744073709551616"},
		{"100000000000000000000000000000000000001", "100000000000000000000000000000000000001"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			x := mustInt(t, tt.in)
			checkNorm(t, "SetString", x)
			if got := x.String(); got != tt.want {
				t.Errorf("SetString(%q).String() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetStringInvalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in     string
		offset int
	}{
		{"", 0},
		{"-", 1},
		{"+", 1},
		{"12a", 2},
		{" 1", 0},
		{"1 ", 1},
		{"1_000", 1},
		{"--1", 1},
		{"+-1", 1},
		{"0x10", 1},
		{"1e5", 1},
		{"١٢", 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			t.Parallel()
			z := NewInt(42)
			_, err := z.SetString(tt.in)
			if !errors.Is(err, apperrors.ErrInvalidFormat) {
				t.Fatalf("SetString(%q) error = %v, want ErrInvalidFormat", tt.in, err)
			}
			var pe apperrors.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("SetString(%q) error %v is not a ParseError", tt.in, err)
			}
			if pe.Offset != tt.offset {
				t.Errorf("offset = %d, want %d", pe.Offset, tt.offset)
			}
			if z.Int64() != 42 {
				t.Errorf("receiver modified to %s", z)
			}
		})
	}
}

func TestStringMatchesBig(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(21))
	for i := 0; i < 200; i++ {
		x := randInt(rng, rng.Intn(40), rng.Intn(2) == 0)
		want := toBig(x).String()
		if got := x.String(); got != want {
			t.Fatalf("String() = %s, want %s", got, want)
		}
		back := mustInt(t, want)
		if back.Cmp(x) != 0 {
			t.Fatalf("SetString(String()) = %s, want %s", back, want)
		}
	}
}

func TestStringNil(t *testing.T) {
	t.Parallel()
	var x *Int
	if got := x.String(); got != "<nil>" {
		t.Errorf("nil String() = %q", got)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()
	x := NewInt(-42)
	y := NewInt(42)
	tests := []struct {
		format string
		arg    *Int
		want   string
	}{
		{"%d", x, "-42"},
		{"%s", y, "42"},
		{"%v", x, "-42"},
		{"%+d", y, "+42"},
		{"%+d", x, "-42"},
		{"%6d", y, "    42"},
		{"%-6d|", x, "-42   |"},
		{"%06d", x, "-00042"},
		{"%2d", x, "-42"},
		{"%d", new(Int), "0"},
		{"%x", y, "%!x(mpint.Int=42)"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf(tt.format, tt.arg); got != tt.want {
			t.Errorf("Sprintf(%q, %s) = %q, want %q", tt.format, tt.arg, got, tt.want)
		}
	}
}

func TestTextMarshaling(t *testing.T) {
	t.Parallel()
	type payload struct {
		Value *Int `json:"value"`
	}
	in := payload{Value: mustInt(t, "-123456789012345678901234567890")}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"value":"-123456789012345678901234567890"}`; string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}

	var out payload
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.Value.Cmp(in.Value) != 0 {
		t.Errorf("round trip = %s", out.Value)
	}

	if err := new(Int).UnmarshalText([]byte("12x")); !errors.Is(err, apperrors.ErrInvalidFormat) {
		t.Errorf("UnmarshalText error = %v", err)
	}
}

func TestBytes(t *testing.T) {
	t.Parallel()
	if got := new(Int).SetBytes([]byte{0x01, 0x02}, BigEndian).Int64(); got != 258 {
		t.Errorf("big-endian 01 02 = %d, want 258", got)
	}
	if got := new(Int).SetBytes([]byte{0x01, 0x02}, LittleEndian).Int64(); got != 513 {
		t.Errorf("little-endian 01 02 = %d, want 513", got)
	}
	if got := new(Int).SetBytes([]byte{0, 0, 0, 0, 0, 7}, BigEndian); got.Int64() != 7 || got.Len() != 1 {
		t.Errorf("leading zero bytes = %s with %d limbs", got, got.Len())
	}
	if got := new(Int).SetBytes(nil, BigEndian); !got.IsZero() {
		t.Errorf("empty bytes = %s", got)
	}

	x := mustInt(t, "-1311768467294899696") // -0x1234567890ABCDF0
	if got, want := x.Bytes(BigEndian), []byte{0x12, 0x34, 0x56, 0x78, 0x90, 0xAB, 0xCD, 0xF0}; !bytes.Equal(got, want) {
		t.Errorf("Bytes(BigEndian) = % x, want % x", got, want)
	}
	if got, want := x.Bytes(LittleEndian), []byte{0xF0, 0xCD, 0xAB, 0x90, 0x78, 0x56, 0x34, 0x12}; !bytes.Equal(got, want) {
		t.Errorf("Bytes(LittleEndian) = % x, want % x", got, want)
	}
	if got := new(Int).Bytes(BigEndian); len(got) != 0 {
		t.Errorf("Bytes(0) = % x", got)
	}

	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 100; i++ {
		x := randInt(rng, rng.Intn(10), false)
		for _, order := range []ByteOrder{BigEndian, LittleEndian} {
			if back := new(Int).SetBytes(x.Bytes(order), order); back.Cmp(x) != 0 {
				t.Fatalf("%s round trip of %s = %s", order, x, back)
			}
		}
		if !bytes.Equal(x.Bytes(BigEndian), toBig(x).Bytes()) {
			t.Fatalf("Bytes(%s) differs from math/big", x)
		}
	}
}

func TestSignedBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		x    int64
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x00, 0x80}},
		{255, []byte{0x00, 0xFF}},
		{-1, []byte{0xFF}},
		{-128, []byte{0x80}},
		{-129, []byte{0xFF, 0x7F}},
		{-256, []byte{0xFF, 0x00}},
		{-32768, []byte{0x80, 0x00}},
		{1 << 32, []byte{0x01, 0x00, 0x00, 0x00, 0x00}},
		{-(1 << 31), []byte{0x80, 0x00, 0x00, 0x00}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.x), func(t *testing.T) {
			t.Parallel()
			x := NewInt(tt.x)
			if got := x.SignedBytes(BigEndian); !bytes.Equal(got, tt.want) {
				t.Errorf("SignedBytes(BigEndian) = % x, want % x", got, tt.want)
			}
			le := x.SignedBytes(LittleEndian)
			if !bytes.Equal(le, reversed(tt.want)) {
				t.Errorf("SignedBytes(LittleEndian) = % x", le)
			}
			if back := new(Int).SetSignedBytes(tt.want, BigEndian); back.Int64() != tt.x {
				t.Errorf("SetSignedBytes(% x) = %s", tt.want, back)
			}
			if back := new(Int).SetSignedBytes(le, LittleEndian); back.Int64() != tt.x {
				t.Errorf("SetSignedBytes(% x, LittleEndian) = %s", le, back)
			}
		})
	}

	if got := new(Int).SetSignedBytes([]byte{0xFF, 0xFF, 0xFF}, BigEndian); got.Int64() != -1 {
		t.Errorf("sign-extended -1 = %s", got)
	}
	if got := new(Int).SetSignedBytes(nil, BigEndian); !got.IsZero() {
		t.Errorf("empty signed bytes = %s", got)
	}

	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 100; i++ {
		x := randInt(rng, rng.Intn(8), rng.Intn(2) == 0)
		for _, order := range []ByteOrder{BigEndian, LittleEndian} {
			if back := new(Int).SetSignedBytes(x.SignedBytes(order), order); back.Cmp(x) != 0 {
				t.Fatalf("%s signed round trip of %s = %s", order, x, back)
			}
		}
	}
}

func TestByteOrderString(t *testing.T) {
	t.Parallel()
	if BigEndian.String() != "big-endian" || LittleEndian.String() != "little-endian" {
		t.Error("unexpected byte order names")
	}
	if got := ByteOrder(9).String(); got != "ByteOrder(9)" {
		t.Errorf("ByteOrder(9).String() = %q", got)
	}
}

func BenchmarkString(b *testing.B) {
	x, _ := new(big.Int).SetString("1"+string(bytes.Repeat([]byte("0"), 10000)), 10)
	y := fromBig(x)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = y.String()
	}
}
