package bignum

// ─────────────────────────────────────────────────────────────────────────────
// Shifts
// ─────────────────────────────────────────────────────────────────────────────

// shlMag returns d << k over magnitudes. The shift splits into a word
// part, which prepends zero words, and a bit part, which walks the words
// carrying the displaced high bits forward.
func shlMag(d []uint64, k uint) []uint64 {
	if k == 0 {
		return cloneMag(d)
	}
	wordShift := int(k / 64)
	bitShift := k % 64

	out := make([]uint64, len(d)+wordShift+1)
	if bitShift == 0 {
		copy(out[wordShift:], d)
	} else {
		var carry uint64
		for i := 0; i < len(d); i++ {
			out[i+wordShift] = d[i]<<bitShift | carry
			carry = d[i] >> (64 - bitShift)
		}
		out[len(d)+wordShift] = carry
	}
	return trimMag(out)
}

// shrMag returns d >> k over magnitudes; the shifted-out low bits are
// dropped. Shifting past the top word yields zero.
func shrMag(d []uint64, k uint) []uint64 {
	if k == 0 {
		return cloneMag(d)
	}
	wordShift := int(k / 64)
	bitShift := k % 64

	if wordShift >= len(d) {
		return []uint64{0}
	}
	out := make([]uint64, len(d)-wordShift)
	if bitShift == 0 {
		copy(out, d[wordShift:])
	} else {
		for i := 0; i < len(out); i++ {
			out[i] = d[i+wordShift] >> bitShift
			if i+wordShift+1 < len(d) {
				out[i] |= d[i+wordShift+1] << (64 - bitShift)
			}
		}
	}
	return trimMag(out)
}

// Shl returns a << k. The sign is preserved.
func (a Int) Shl(k uint) Int {
	return makeInt(shlMag(a.digits, k), a.neg)
}

// Shr returns a >> k, shifting the magnitude. The sign is preserved;
// shifting the whole magnitude out yields zero.
func (a Int) Shr(k uint) Int {
	return makeInt(shrMag(a.digits, k), a.neg)
}

// ─────────────────────────────────────────────────────────────────────────────
// Bitwise Combination
// ─────────────────────────────────────────────────────────────────────────────
//
// And, Or and Xor combine the magnitudes padded to the longer operand and
// always return a non-negative result. This is deliberately not
// two's-complement semantics: the operand signs are ignored so that the
// bit patterns are the same on every backend.

func bitwiseMag(a, b []uint64, op func(x, y uint64) uint64) []uint64 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint64, len(a))
	for i := range a {
		var y uint64
		if i < len(b) {
			y = b[i]
		}
		out[i] = op(a[i], y)
	}
	return trimMag(out)
}

// And returns the bitwise AND of the magnitudes of a and b.
func (a Int) And(b Int) Int {
	return makeInt(bitwiseMag(a.digits, b.digits, func(x, y uint64) uint64 { return x & y }), false)
}

// Or returns the bitwise OR of the magnitudes of a and b.
func (a Int) Or(b Int) Int {
	return makeInt(bitwiseMag(a.digits, b.digits, func(x, y uint64) uint64 { return x | y }), false)
}

// Xor returns the bitwise XOR of the magnitudes of a and b.
func (a Int) Xor(b Int) Int {
	return makeInt(bitwiseMag(a.digits, b.digits, func(x, y uint64) uint64 { return x ^ y }), false)
}
