package orchestration

import (
	"context"
	"errors"
	"testing"

	"github.com/agbru/mpcalc/internal/config"
	"github.com/agbru/mpcalc/internal/engine"
	apperrors "github.com/agbru/mpcalc/internal/errors"
	"github.com/agbru/mpcalc/internal/mpint"
)

func TestNewRequest(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cfg      config.AppConfig
		wantErr  bool
		field    string
		wantB    bool
		wantBits uint
	}{
		{name: "binary", cfg: config.AppConfig{Op: "mul", A: "12", B: "-3"}, wantB: true},
		{name: "unary ignores b", cfg: config.AppConfig{Op: "sqr", A: "12", B: "junk"}},
		{name: "shift", cfg: config.AppConfig{Op: "lsh", A: "1", B: "100"}, wantBits: 100},
		{name: "bad a", cfg: config.AppConfig{Op: "add", A: "1x", B: "2"}, wantErr: true, field: "a"},
		{name: "bad b", cfg: config.AppConfig{Op: "add", A: "1", B: ""}, wantErr: true, field: "b"},
		{name: "negative shift", cfg: config.AppConfig{Op: "rsh", A: "1", B: "-1"}, wantErr: true, field: "b"},
		{name: "unknown op", cfg: config.AppConfig{Op: "pow", A: "1", B: "2"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req, err := NewRequest(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				if code := apperrors.ExitCodeFor(err); code != apperrors.ExitErrorConfig {
					t.Errorf("exit code %d, want %d", code, apperrors.ExitErrorConfig)
				}
				var ve apperrors.ValidationError
				if tt.field != "" && (!errors.As(err, &ve) || ve.Field != tt.field) {
					t.Errorf("expected validation error on %q, got %v", tt.field, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (req.B != nil) != tt.wantB {
				t.Errorf("B = %v", req.B)
			}
			if req.Shift != tt.wantBits {
				t.Errorf("Shift = %d, want %d", req.Shift, tt.wantBits)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		op, a, b string
		want     string
		wantRem  string
	}{
		{op: "add", a: "7", b: "-10", want: "-3"},
		{op: "sub", a: "7", b: "-10", want: "17"},
		{op: "mul", a: "7", b: "-10", want: "-70"},
		{op: "mul", a: "18446744073709551616", b: "18446744073709551616", want: "340282366920938463463374607431768211456"},
		{op: "sqr", a: "-10", want: "100"},
		{op: "quo", a: "-7", b: "2", want: "-3"},
		{op: "rem", a: "-7", b: "2", want: "-1"},
		{op: "mod", a: "-7", b: "2", want: "1"},
		{op: "divmod", a: "-7", b: "2", want: "-4", wantRem: "1"},
		{op: "and", a: "12", b: "10", want: "8"},
		{op: "or", a: "12", b: "10", want: "14"},
		{op: "xor", a: "12", b: "10", want: "6"},
		{op: "andnot", a: "12", b: "10", want: "4"},
		{op: "and", a: "-1", b: "255", want: "255"},
		{op: "not", a: "12", want: "-13"},
		{op: "lsh", a: "3", b: "4", want: "48"},
		{op: "rsh", a: "-7", b: "1", want: "-4"},
		{op: "gcd", a: "12", b: "18", want: "6"},
	}

	e := engine.NewPure(mpint.DefaultOptions())
	for _, tt := range tests {
		t.Run(tt.op+"/"+tt.a, func(t *testing.T) {
			t.Parallel()
			req, err := NewRequest(config.AppConfig{Op: tt.op, A: tt.a, B: tt.b})
			if err != nil {
				t.Fatalf("NewRequest: %v", err)
			}
			got, rem, err := Evaluate(context.Background(), e, req)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("%s(%s, %s) = %s, want %s", tt.op, tt.a, tt.b, got, tt.want)
			}
			if tt.wantRem == "" {
				if rem != nil {
					t.Errorf("unexpected remainder %s", rem)
				}
			} else if rem == nil || rem.String() != tt.wantRem {
				t.Errorf("remainder = %v, want %s", rem, tt.wantRem)
			}
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	t.Parallel()
	e := engine.BigRef{}
	for _, op := range []string{"quo", "rem", "mod", "divmod"} {
		t.Run(op, func(t *testing.T) {
			t.Parallel()
			req := Request{Op: op, A: mpint.NewInt(1), B: new(mpint.Int)}
			_, _, err := Evaluate(context.Background(), e, req)
			if !errors.Is(err, apperrors.ErrDivisionByZero) {
				t.Errorf("expected division by zero, got %v", err)
			}
		})
	}

	t.Run("lsh overflow", func(t *testing.T) {
		t.Parallel()
		req := Request{Op: "lsh", A: mpint.NewInt(1), Shift: mpint.MaxBits}
		if _, _, err := Evaluate(context.Background(), e, req); !errors.Is(err, apperrors.ErrCapacityExhausted) {
			t.Errorf("expected capacity error, got %v", err)
		}
	})

	t.Run("canceled", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, _, err := Evaluate(ctx, e, Request{Op: "add", A: mpint.NewInt(1), B: mpint.NewInt(1)}); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestUsesEngine(t *testing.T) {
	t.Parallel()
	for _, op := range config.Operations() {
		want := op == "mul" || op == "sqr" || op == "quo" || op == "rem"
		if got := UsesEngine(op); got != want {
			t.Errorf("UsesEngine(%q) = %v", op, got)
		}
	}
}
