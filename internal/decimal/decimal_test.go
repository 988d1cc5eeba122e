package decimal

import (
	"errors"
	"math"
	"testing"

	"github.com/govalues/decimal"

	apperrors "github.com/agbru/mpcalc/internal/errors"
	"github.com/agbru/mpcalc/internal/mpint"
)

func TestToDecimal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		x     int64
		scale int
		want  string
	}{
		{"integer", 12345, 0, "12345"},
		{"cents", 12345, 2, "123.45"},
		{"negative fraction", -5, 3, "-0.005"},
		{"zero keeps scale", 0, 2, "0.00"},
		{"max int64", math.MaxInt64, 0, "9223372036854775807"},
		{"min int64", math.MinInt64, 19, "-0.9223372036854775808"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, err := ToDecimal(mpint.NewInt(tt.x), tt.scale)
			if err != nil {
				t.Fatalf("ToDecimal(%d, %d) error: %v", tt.x, tt.scale, err)
			}
			if got := d.String(); got != tt.want {
				t.Errorf("ToDecimal(%d, %d) = %s, want %s", tt.x, tt.scale, got, tt.want)
			}
			if d.Scale() != tt.scale {
				t.Errorf("scale = %d, want %d", d.Scale(), tt.scale)
			}
		})
	}
}

func TestToDecimalErrors(t *testing.T) {
	t.Parallel()
	big, err := new(mpint.Int).SetString("9223372036854775808")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ToDecimal(big, 0); !errors.Is(err, apperrors.ErrOverflow) {
		t.Errorf("ToDecimal(2^63) error = %v, want ErrOverflow", err)
	}

	var ve apperrors.ValidationError
	for _, scale := range []int{-1, MaxScale + 1} {
		if _, err := ToDecimal(mpint.NewInt(1), scale); !errors.As(err, &ve) || ve.Field != "scale" {
			t.Errorf("ToDecimal(1, %d) error = %v, want scale ValidationError", scale, err)
		}
	}
}

func TestFromDecimal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in        string
		wantCoef  string
		wantScale int
	}{
		{"123.45", "12345", 2},
		{"-0.005", "-5", 3},
		{"0", "0", 0},
		{"9999999999999999999", "9999999999999999999", 0},
		{"-0.0000000000000000001", "-1", 19},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			d, err := decimal.Parse(tt.in)
			if err != nil {
				t.Fatalf("decimal.Parse(%q): %v", tt.in, err)
			}
			coef, scale := FromDecimal(d)
			if coef.String() != tt.wantCoef || scale != tt.wantScale {
				t.Errorf("FromDecimal(%s) = %s, %d; want %s, %d", tt.in, coef, scale, tt.wantCoef, tt.wantScale)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	for _, v := range []int64{0, 1, -1, 42, -987654321, math.MaxInt64, math.MinInt64} {
		for _, scale := range []int{0, 3, MaxScale} {
			d, err := ToDecimal(mpint.NewInt(v), scale)
			if err != nil {
				t.Fatalf("ToDecimal(%d, %d): %v", v, scale, err)
			}
			coef, gotScale := FromDecimal(d)
			if coef.Int64() != v || !coef.IsInt64() || gotScale != scale {
				t.Errorf("round trip of %d at scale %d = %s at scale %d", v, scale, coef, gotScale)
			}
		}
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()
	if s, ok := Format(mpint.NewInt(-250), 2); !ok || s != "-2.50" {
		t.Errorf("Format(-250, 2) = %q, %v", s, ok)
	}
	huge, err := new(mpint.Int).Lsh(mpint.NewInt(1), 100)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := Format(huge, 0); ok {
		t.Error("Format(2^100) should not fit")
	}
}
