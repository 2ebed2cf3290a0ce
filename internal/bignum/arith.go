package bignum

import "math/bits"

// ─────────────────────────────────────────────────────────────────────────────
// Unsigned Core
// ─────────────────────────────────────────────────────────────────────────────

// addMag returns a+b over magnitudes. The carry is a single bit per word
// position; the result is at most one word longer than the wider operand.
func addMag(a, b []uint64) []uint64 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint64, len(a), len(a)+1)
	var carry uint64
	for i := 0; i < len(b); i++ {
		out[i], carry = bits.Add64(a[i], b[i], carry)
	}
	for i := len(b); i < len(a); i++ {
		out[i], carry = bits.Add64(a[i], 0, carry)
	}
	if carry != 0 {
		out = append(out, carry)
	}
	return out
}

// subMag returns a-b over magnitudes. The caller must guarantee that the
// magnitude of a is at least that of b; the borrow must be zero after the
// last word or the precondition was violated.
func subMag(a, b []uint64) []uint64 {
	out := make([]uint64, len(a))
	var borrow uint64
	for i := 0; i < len(b); i++ {
		out[i], borrow = bits.Sub64(a[i], b[i], borrow)
	}
	for i := len(b); i < len(a); i++ {
		out[i], borrow = bits.Sub64(a[i], 0, borrow)
	}
	return trimMag(out)
}

// mulSchoolbook computes a*b over magnitudes with the O(m*n) row loop.
// Each partial product is a 128-bit value; the row carry keeps
// propagating past the end of the inner loop until it drains.
func mulSchoolbook(a, b []uint64) []uint64 {
	out := make([]uint64, len(a)+len(b))
	for i := 0; i < len(a); i++ {
		if a[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < len(b); j++ {
			hi, lo := bits.Mul64(a[i], b[j])
			var c uint64
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			lo, c = bits.Add64(lo, out[i+j], 0)
			hi += c
			out[i+j] = lo
			carry = hi
		}
		for j := len(b); carry != 0; j++ {
			out[i+j], carry = bits.Add64(out[i+j], carry, 0)
		}
	}
	return trimMag(out)
}

// ─────────────────────────────────────────────────────────────────────────────
// Signed Dispatch
// ─────────────────────────────────────────────────────────────────────────────

// Add returns a+b. Matching signs add the magnitudes and keep the common
// sign; differing signs subtract the smaller magnitude from the larger
// and take the sign of the dominant operand.
func (a Int) Add(b Int) Int {
	if a.neg == b.neg {
		return makeInt(addMag(a.digits, b.digits), a.neg)
	}
	switch cmpMag(a.digits, b.digits) {
	case 0:
		return Zero()
	case 1:
		return makeInt(subMag(a.digits, b.digits), a.neg)
	default:
		return makeInt(subMag(b.digits, a.digits), b.neg)
	}
}

// Sub returns a-b.
func (a Int) Sub(b Int) Int {
	return a.Add(b.Neg())
}

// Mul returns a*b. The magnitude product goes through Karatsuba above the
// configured threshold and the schoolbook loop below it; the result sign
// is the XOR of the operand signs.
func (a Int) Mul(b Int) Int {
	t := CurrentThresholds()
	var mag []uint64
	if max(len(a.digits), len(b.digits)) >= t.Karatsuba {
		mag = mulKaratsuba(a.digits, b.digits, t)
	} else {
		mag = mulSchoolbook(a.digits, b.digits)
	}
	return makeInt(mag, a.neg != b.neg)
}
