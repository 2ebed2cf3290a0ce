package bignum

import (
	"math/bits"

	apperrors "github.com/agbru/bignum/internal/errors"
)

// MontgomeryContext carries the per-modulus precomputation for Montgomery
// reduction: R = B^k for a k-digit modulus, its inverse mod N, and
// N' = -N^(-1) mod R. The context is immutable once built and may be
// shared across goroutines.
type MontgomeryContext struct {
	n      Int // the modulus
	r      Int // B^k
	rInv   Int // R^(-1) mod n
	nPrime Int // -n^(-1) mod R
	k      int
	n0     uint64 // low word of nPrime, the only word the CIOS loop needs
}

// NewMontgomeryContext derives a reduction context from an odd positive
// modulus. Fails with InvalidModulusError when the modulus is zero, even
// or negative.
func NewMontgomeryContext(n Int) (*MontgomeryContext, error) {
	if n.IsZero() {
		return nil, apperrors.InvalidModulusError{Reason: "modulus is zero"}
	}
	if n.IsNegative() {
		return nil, apperrors.InvalidModulusError{Reason: "modulus must be positive"}
	}
	if n.IsEven() {
		return nil, apperrors.InvalidModulusError{Reason: "Montgomery form requires an odd modulus"}
	}

	k := n.digitCount()
	r := One().Shl(uint(64 * k))

	// R is a power of two and n is odd, so both inverses exist.
	g, s, _ := r.ExtGCD(n)
	if !g.IsOne() {
		return nil, apperrors.InvalidModulusError{Reason: "gcd(R, modulus) != 1"}
	}
	rInv := s
	if rInv.IsNegative() {
		rInv = rInv.Add(n)
	}

	g, s, _ = n.ExtGCD(r)
	if !g.IsOne() {
		return nil, apperrors.InvalidModulusError{Reason: "modulus not invertible mod R"}
	}
	nPrime := s.Neg()
	if nPrime.IsNegative() {
		nPrime = nPrime.Add(r)
	}

	return &MontgomeryContext{
		n:      n,
		r:      r,
		rInv:   rInv,
		nPrime: nPrime,
		k:      k,
		n0:     nPrime.digits[0],
	}, nil
}

// Reduce computes a*R^(-1) mod n with the CIOS scheduling: for each of
// the k low words, a multiple of n chosen to zero that word is added in,
// and the surviving high half of the accumulator is the result. The input
// must be non-negative and below n*R (any product of two reduced values
// qualifies).
func (m *MontgomeryContext) Reduce(a Int) Int {
	width := 2*m.k + 1
	t := acquireWords(width)
	defer releaseWords(t)
	copy(t, a.digits[:min(len(a.digits), 2*m.k)])

	mod := m.n.digits
	for i := 0; i < m.k; i++ {
		// mval * n has its low word equal to -t[i], so the addition
		// clears accumulator word i.
		mval := t[i] * m.n0
		var carry uint64
		for j := 0; j < m.k; j++ {
			hi, lo := bits.Mul64(mval, mod[j])
			var c uint64
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			lo, c = bits.Add64(lo, t[i+j], 0)
			hi += c
			t[i+j] = lo
			carry = hi
		}
		for j := i + m.k; j < width && carry != 0; j++ {
			t[j], carry = bits.Add64(t[j], carry, 0)
		}
	}

	out := makeInt(cloneMag(t[m.k:]), false)
	if out.Cmp(m.n) >= 0 {
		out = out.Sub(m.n)
	}
	return out
}

// Multiply returns a*b*R^(-1) mod n, the Montgomery-form product of two
// Montgomery-form operands.
func (m *MontgomeryContext) Multiply(a, b Int) Int {
	return m.Reduce(a.Mul(b))
}

// ToMontgomery converts a into Montgomery form, a*R mod n.
func (m *MontgomeryContext) ToMontgomery(a Int) Int {
	p, _ := a.Mul(m.r).Mod(m.n)
	return p
}

// FromMontgomery converts a Montgomery-form value back, a*R^(-1) mod n.
func (m *MontgomeryContext) FromMontgomery(a Int) Int {
	return m.Reduce(a)
}
