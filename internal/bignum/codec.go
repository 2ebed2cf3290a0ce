package bignum

import (
	"fmt"
	"strings"

	apperrors "github.com/agbru/bignum/internal/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Hex Codec
// ─────────────────────────────────────────────────────────────────────────────

// FromHex parses a hexadecimal string: an optional leading '-', an
// optional 0x/0X prefix, then one or more hex digits in either case.
// The digit stream is consumed right to left in 16-character chunks,
// each chunk becoming one 64-bit word. Fails with InvalidHexError on an
// empty digit stream or any non-hex character.
func FromHex(s string) (Int, error) {
	orig := s
	off := 0
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
		off++
	}
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
		off += 2
	}
	if len(s) == 0 {
		return Int{}, apperrors.InvalidHexError{Input: orig, Offset: -1}
	}

	digits := make([]uint64, 0, (len(s)+15)/16)
	for end := len(s); end > 0; end -= 16 {
		start := max(0, end-16)
		var w uint64
		for i := start; i < end; i++ {
			v, ok := hexDigit(s[i])
			if !ok {
				return Int{}, apperrors.InvalidHexError{Input: orig, Offset: off + i}
			}
			w = w<<4 | uint64(v)
		}
		digits = append(digits, w)
	}
	return makeInt(digits, neg), nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Hex renders a in the canonical form: lowercase, no prefix, a '-' for
// negative values, the leading word unpadded and every following word
// zero-padded to 16 digits. Zero renders as "0".
func (a Int) Hex() string {
	if a.IsZero() {
		return "0"
	}
	var sb strings.Builder
	if a.neg {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, "%x", a.digits[len(a.digits)-1])
	for i := len(a.digits) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%016x", a.digits[i])
	}
	return sb.String()
}

// String renders a as its canonical hex form.
func (a Int) String() string { return a.Hex() }

// ─────────────────────────────────────────────────────────────────────────────
// Byte Codec
// ─────────────────────────────────────────────────────────────────────────────

// Bytes returns the magnitude as a big-endian byte slice of length
// ByteLen: no sign byte, no length prefix, and an empty slice for zero.
// The sign is the caller's problem, matching the wire format.
func (a Int) Bytes() []byte {
	n := a.ByteLen()
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = byte(a.digits[i/8] >> (8 * (i % 8)))
	}
	return out
}

// FromBytes builds a non-negative Int from a big-endian byte slice.
// An empty slice decodes to canonical zero.
func FromBytes(b []byte) Int {
	if len(b) == 0 {
		return Zero()
	}
	digits := make([]uint64, (len(b)+7)/8)
	for i, v := range b {
		pos := len(b) - 1 - i
		digits[pos/8] |= uint64(v) << (8 * (pos % 8))
	}
	return makeInt(digits, false)
}

// ─────────────────────────────────────────────────────────────────────────────
// Fixed-Width Conversion
// ─────────────────────────────────────────────────────────────────────────────

// Int64 converts a to a signed 64-bit integer. Fails with OverflowError
// when the magnitude spans more than one word or exceeds the int64 range;
// the magnitude 2^63 is representable exactly once, as the minimum
// negative value.
func (a Int) Int64() (int64, error) {
	if len(a.digits) > 1 {
		return 0, apperrors.OverflowError{Target: "int64"}
	}
	v := a.digits[0]
	if a.neg {
		if v > 1<<63 {
			return 0, apperrors.OverflowError{Target: "int64"}
		}
		return -int64(v), nil
	}
	if v > 1<<63-1 {
		return 0, apperrors.OverflowError{Target: "int64"}
	}
	return int64(v), nil
}
