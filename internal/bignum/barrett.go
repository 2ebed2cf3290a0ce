package bignum

import (
	apperrors "github.com/agbru/bignum/internal/errors"
)

// BarrettContext carries the per-modulus precomputation for Barrett
// reduction: mu = floor(2^(2k) / N) where k is the bit length of N.
// The context is immutable once built and may be shared across
// goroutines.
type BarrettContext struct {
	n  Int
	mu Int
	k  int // bit length of the modulus
}

// NewBarrettContext derives a reduction context from a positive modulus.
// Fails with InvalidModulusError on a zero or negative modulus.
func NewBarrettContext(n Int) (*BarrettContext, error) {
	if n.IsZero() {
		return nil, apperrors.InvalidModulusError{Reason: "modulus is zero"}
	}
	if n.IsNegative() {
		return nil, apperrors.InvalidModulusError{Reason: "modulus must be positive"}
	}
	k := n.BitLen()
	mu, _ := One().Shl(uint(2 * k)).Div(n)
	return &BarrettContext{n: n, mu: mu, k: k}, nil
}

// Reduce returns a mod n for non-negative a. The quotient estimate
// q = ((a >> (k-1)) * mu) >> (k+1) is off by at most two, so the
// correction loop runs a bounded number of times. Inputs already below
// the modulus pass through untouched, and inputs no wider than the
// modulus fall back to a direct division.
func (b *BarrettContext) Reduce(a Int) Int {
	if a.Cmp(b.n) < 0 {
		return a
	}
	if a.BitLen() <= b.k {
		r, _ := a.Mod(b.n)
		return r
	}

	q := a.Shr(uint(b.k - 1)).Mul(b.mu).Shr(uint(b.k + 1))

	// Both remainder candidates are taken mod 2^(k+1) before the final
	// subtraction, then folded back into range.
	m := One().Shl(uint(b.k + 1))
	mask := m.Sub(One())
	r1 := a.And(mask)
	r2 := q.Mul(b.n).And(mask)

	r := r1.Sub(r2)
	if r.IsNegative() {
		r = r.Add(m)
	}
	for r.Cmp(b.n) >= 0 {
		r = r.Sub(b.n)
	}
	return r
}
