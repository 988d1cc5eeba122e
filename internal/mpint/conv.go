// This file implements conversions between Int and decimal text and byte
// sequences.

package mpint

import (
	"encoding/binary"
	"fmt"
	"strings"

	apperrors "github.com/agbru/mpcalc/internal/errors"
)

// ByteOrder selects the byte order of byte-sequence conversions.
type ByteOrder int

const (
	// BigEndian puts the most significant byte first.
	BigEndian ByteOrder = iota
	// LittleEndian puts the least significant byte first.
	LittleEndian
)

// String returns the order name.
func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	}
	return fmt.Sprintf("ByteOrder(%d)", int(o))
}

// ─────────────────────────────────────────────────────────────────────────────
// Decimal text
// ─────────────────────────────────────────────────────────────────────────────

// pow10 holds 10^i for 0 <= i <= _D.
var pow10 = [_D + 1]Word{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000}

// maxParseInput bounds the length of rejected input quoted in errors.
const maxParseInput = 32

func parseError(s string, offset int) error {
	if len(s) > maxParseInput {
		s = s[:maxParseInput] + "..."
	}
	return opError("parse", apperrors.ParseError{Input: s, Offset: offset})
}

// SetString sets z to the value of s, interpreted as a base-10 integer with
// an optional leading '+' or '-', and returns z. Leading zeros are allowed.
// On failure z is unchanged and the error wraps ErrInvalidFormat, or
// ErrCapacityExhausted for inputs too long to represent.
func (z *Int) SetString(s string) (*Int, error) {
	digits := s
	neg := false
	if len(digits) > 0 {
		switch digits[0] {
		case '-':
			neg = true
			digits = digits[1:]
		case '+':
			digits = digits[1:]
		}
	}
	start := len(s) - len(digits)
	if len(digits) == 0 {
		return nil, parseError(s, start)
	}
	for i := 0; i < len(digits); i++ {
		if c := digits[i]; c < '0' || c > '9' {
			return nil, parseError(s, start+i)
		}
	}
	// log2(10) < 3.322
	if bits := uint64(len(digits)) * 3322 / 1000; bits > MaxBits {
		return nil, capacityError("parse", bits)
	}

	z.abs = z.abs.setDecimal(digits)
	z.neg = neg && len(z.abs) > 0
	return z, nil
}

// setDecimal sets z to the value of a non-empty string of decimal digits.
// Digits are consumed in chunks of _D, each folded in with a single
// multiply-add.
func (z nat) setDecimal(digits string) nat {
	z = z[:0]
	first := len(digits) % _D
	if first == 0 {
		first = _D
	}
	for i := 0; i < len(digits); {
		n := _D
		if i == 0 {
			n = first
		}
		var chunk Word
		for _, c := range []byte(digits[i : i+n]) {
			chunk = chunk*10 + Word(c-'0')
		}
		z = z.mulAddWW(z, pow10[n], chunk)
		i += n
	}
	return z.norm()
}

// String returns the canonical decimal representation of x: no leading
// zeros, "0" for zero, and a leading '-' for negative values.
func (x *Int) String() string {
	if x == nil {
		return "<nil>"
	}
	return string(x.appendDecimal(nil))
}

func (x *Int) appendDecimal(buf []byte) []byte {
	if len(x.abs) == 0 {
		return append(buf, '0')
	}
	if x.neg {
		buf = append(buf, '-')
	}
	return x.abs.appendDecimal(buf)
}

// appendDecimal appends the decimal digits of a non-zero x to buf by
// repeatedly dividing by 10^_D.
func (x nat) appendDecimal(buf []byte) []byte {
	// upper bound: _D digits per limb-ish chunk; one chunk per 29.9 bits
	chunks := make([]Word, 0, len(x)*_W/29+1)
	q := nat(nil).set(x)
	for len(q) > 0 {
		var r Word
		q, r = q.divW(q, _P)
		chunks = append(chunks, r)
	}
	buf = fmt.Appendf(buf, "%d", chunks[len(chunks)-1])
	for i := len(chunks) - 2; i >= 0; i-- {
		buf = fmt.Appendf(buf, "%09d", chunks[i])
	}
	return buf
}

// Format implements fmt.Formatter. It accepts the verbs 'd', 's' and 'v'
// and honors the '+', '-', '0' flags and the width.
func (x *Int) Format(s fmt.State, ch rune) {
	switch ch {
	case 'd', 's', 'v':
		// ok
	default:
		fmt.Fprintf(s, "%%!%c(mpint.Int=%s)", ch, x.String())
		return
	}

	if x == nil {
		fmt.Fprint(s, "<nil>")
		return
	}

	sign := ""
	switch {
	case x.neg:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	}
	digits := string(x.abs.appendDecimalOrZero(nil))

	pad := 0
	if w, ok := s.Width(); ok {
		pad = max(w-len(sign)-len(digits), 0)
	}
	switch {
	case pad == 0:
		fmt.Fprint(s, sign, digits)
	case s.Flag('-'):
		fmt.Fprint(s, sign, digits, strings.Repeat(" ", pad))
	case s.Flag('0'):
		fmt.Fprint(s, sign, strings.Repeat("0", pad), digits)
	default:
		fmt.Fprint(s, strings.Repeat(" ", pad), sign, digits)
	}
}

func (x nat) appendDecimalOrZero(buf []byte) []byte {
	if len(x) == 0 {
		return append(buf, '0')
	}
	return x.appendDecimal(buf)
}

// MarshalText implements encoding.TextMarshaler.
func (x *Int) MarshalText() ([]byte, error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.appendDecimal(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Int) UnmarshalText(text []byte) error {
	_, err := z.SetString(string(text))
	return err
}

// ─────────────────────────────────────────────────────────────────────────────
// Byte sequences
// ─────────────────────────────────────────────────────────────────────────────

// setBytes interprets buf as a big-endian unsigned integer.
func (z nat) setBytes(buf []byte) nat {
	z = z.make((len(buf) + _S - 1) / _S)

	i := len(buf)
	for k := 0; i >= _S; k++ {
		z[k] = Word(binary.BigEndian.Uint32(buf[i-_S : i]))
		i -= _S
	}
	if i > 0 {
		var d Word
		for s := uint(0); i > 0; s += 8 {
			d |= Word(buf[i-1]) << s
			i--
		}
		z[len(z)-1] = d
	}

	return z.norm()
}

// bytes returns the minimal big-endian encoding of z.
func (z nat) bytes() []byte {
	buf := make([]byte, len(z)*_S)
	for k, d := range z {
		binary.BigEndian.PutUint32(buf[len(buf)-(k+1)*_S:], uint32(d))
	}
	i := 0
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

func reversed(buf []byte) []byte {
	r := make([]byte, len(buf))
	for i, b := range buf {
		r[len(buf)-1-i] = b
	}
	return r
}

func toBigEndian(buf []byte, order ByteOrder) []byte {
	if order == LittleEndian {
		return reversed(buf)
	}
	return buf
}

// SetBytes interprets buf as the magnitude of a non-negative integer in the
// given byte order, sets z to that value and returns z. Offsets and lengths
// are expressed by slicing buf.
func (z *Int) SetBytes(buf []byte, order ByteOrder) *Int {
	z.abs = z.abs.setBytes(toBigEndian(buf, order))
	z.neg = false
	return z
}

// Bytes returns the magnitude |x| in the given byte order, without leading
// (big-endian) or trailing (little-endian) zero bytes. Zero yields an empty
// slice.
func (x *Int) Bytes(order ByteOrder) []byte {
	return toBigEndian(x.abs.bytes(), order)
}

// SetSignedBytes interprets buf as a two's-complement integer in the given
// byte order, sets z to that value and returns z. An empty buf is zero.
func (z *Int) SetSignedBytes(buf []byte, order ByteOrder) *Int {
	be := toBigEndian(buf, order)
	if len(be) == 0 || be[0]&0x80 == 0 {
		z.abs = z.abs.setBytes(be)
		z.neg = false
		return z
	}
	// -v == ^(v-1), so v == ^buf + 1
	inv := make([]byte, len(be))
	for i, b := range be {
		inv[i] = ^b
	}
	t := z.abs.setBytes(inv)
	z.abs = t.add(t, natOne)
	z.neg = true
	return z
}

// SignedBytes returns the shortest two's-complement encoding of x in the
// given byte order. Zero encodes as a single 0x00 byte.
func (x *Int) SignedBytes(order ByteOrder) []byte {
	var mag []byte
	if x.neg {
		mag = nat(nil).sub(x.abs, natOne).bytes() // ^(|x|-1) == x
	} else {
		mag = x.abs.bytes()
	}
	if len(mag) == 0 || mag[0]&0x80 != 0 {
		mag = append([]byte{0}, mag...)
	}
	if x.neg {
		for i := range mag {
			mag[i] = ^mag[i]
		}
	}
	return toBigEndian(mag, order)
}
