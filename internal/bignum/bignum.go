package bignum

import "math/bits"

// Int is an arbitrary-precision signed integer. The magnitude lives in
// digits, least-significant 64-bit word first; neg carries the sign.
// The digit vector is never empty, never has a leading (most-significant)
// zero word except for the single-word zero, and zero is never negative.
//
// Ints are immutable: every operation allocates its result and never
// aliases operand storage, so values may be shared across goroutines
// without synchronization.
type Int struct {
	digits []uint64
	neg    bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New returns the Int representing v.
func New(v int64) Int {
	mag := uint64(v)
	if v < 0 {
		mag = -mag
	}
	return Int{digits: []uint64{mag}, neg: v < 0 && mag != 0}
}

// Zero returns the canonical zero value.
func Zero() Int { return Int{digits: []uint64{0}} }

// One returns the Int 1.
func One() Int { return Int{digits: []uint64{1}} }

// Two returns the Int 2.
func Two() Int { return Int{digits: []uint64{2}} }

// makeInt builds an Int from a magnitude and sign, taking ownership of
// digits. It normalizes: leading zero words are trimmed and a zero
// magnitude forces a positive sign.
func makeInt(digits []uint64, neg bool) Int {
	digits = trimMag(digits)
	if len(digits) == 1 && digits[0] == 0 {
		neg = false
	}
	return Int{digits: digits, neg: neg}
}

// trimMag strips leading (most-significant) zero words, keeping at least
// one word.
func trimMag(d []uint64) []uint64 {
	if len(d) == 0 {
		return []uint64{0}
	}
	n := len(d)
	for n > 1 && d[n-1] == 0 {
		n--
	}
	return d[:n]
}

func cloneMag(d []uint64) []uint64 {
	c := make([]uint64, len(d))
	copy(c, d)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicates and Accessors
// ─────────────────────────────────────────────────────────────────────────────

// IsZero reports whether a is zero.
func (a Int) IsZero() bool { return len(a.digits) == 1 && a.digits[0] == 0 }

// IsOne reports whether a is exactly 1.
func (a Int) IsOne() bool { return !a.neg && len(a.digits) == 1 && a.digits[0] == 1 }

// IsNegative reports whether a is strictly below zero.
func (a Int) IsNegative() bool { return a.neg && !a.IsZero() }

// IsEven reports whether a is divisible by two.
func (a Int) IsEven() bool { return a.digits[0]&1 == 0 }

// IsOdd reports whether a is not divisible by two.
func (a Int) IsOdd() bool { return a.digits[0]&1 == 1 }

// Sign returns -1, 0 or +1 according to the sign of a.
func (a Int) Sign() int {
	if a.IsZero() {
		return 0
	}
	if a.neg {
		return -1
	}
	return 1
}

// BitLen returns the length of the magnitude in bits; zero has length 0.
func (a Int) BitLen() int {
	if a.IsZero() {
		return 0
	}
	return (len(a.digits)-1)*64 + bits.Len64(a.digits[len(a.digits)-1])
}

// ByteLen returns the length of the magnitude in bytes, ceil(BitLen/8).
func (a Int) ByteLen() int { return (a.BitLen() + 7) / 8 }

// digitCount returns the number of 64-bit words in the magnitude.
func (a Int) digitCount() int { return len(a.digits) }

// ─────────────────────────────────────────────────────────────────────────────
// Sign Manipulation
// ─────────────────────────────────────────────────────────────────────────────

// Neg returns -a.
func (a Int) Neg() Int {
	return makeInt(cloneMag(a.digits), !a.neg)
}

// Abs returns the non-negative value with the magnitude of a.
func (a Int) Abs() Int {
	return makeInt(cloneMag(a.digits), false)
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

// cmpMag compares two magnitudes, returning -1, 0 or +1. The digit count
// decides first; equal-length magnitudes compare word by word from the
// most-significant end.
func cmpMag(a, b []uint64) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp compares a and b as signed integers, returning -1, 0 or +1.
// A negative value sorts below any non-negative one; among same-sign
// values the magnitude order is flipped when both are negative.
func (a Int) Cmp(b Int) int {
	if a.neg != b.neg {
		if a.neg {
			return -1
		}
		return 1
	}
	c := cmpMag(a.digits, b.digits)
	if a.neg {
		return -c
	}
	return c
}

// Equal reports whether a and b represent the same integer.
func (a Int) Equal(b Int) bool { return a.Cmp(b) == 0 }

// CmpAbs compares the magnitudes of a and b, ignoring signs.
func (a Int) CmpAbs(b Int) int { return cmpMag(a.digits, b.digits) }
