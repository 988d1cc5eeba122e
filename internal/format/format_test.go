package format

import (
	"strings"
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d    time.Duration
		want string
	}{
		{-3 * time.Second, "0s"},
		{0, "0s"},
		{640 * time.Nanosecond, "640ns"},
		{750 * time.Microsecond, "750µs"},
		{42 * time.Millisecond, "42ms"},
		{1500 * time.Millisecond, "1.5s"},
		{1500*time.Millisecond + 123456, "1.5s"},
		{2 * time.Minute, "2m0s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.d); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 << 20, "5.0 MiB"},
		{3 << 30, "3.0 GiB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumberString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"-1234567", "-1,234,567"},
		{"123456", "123,456"},
		{"16000000000000000000", "16,000,000,000,000,000,000"},
	}
	for _, tt := range tests {
		if got := FormatNumberString(tt.in); got != tt.want {
			t.Errorf("FormatNumberString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncateDigits(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("1", 10) + strings.Repeat("0", 80) + strings.Repeat("9", 10)
	if got := TruncateDigits(long, 100, 10); got != long {
		t.Errorf("100 digits should not be truncated, got %q", got)
	}
	if got, want := TruncateDigits("-"+long+"7", 100, 10), "-1111111111...9999999997"; got != want {
		t.Errorf("TruncateDigits = %q, want %q", got, want)
	}
	if got := TruncateDigits("12345", 2, 3); got != "12345" {
		t.Errorf("overlapping edges = %q", got)
	}
}
