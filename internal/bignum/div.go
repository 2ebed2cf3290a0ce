package bignum

import (
	apperrors "github.com/agbru/bignum/internal/errors"
)

// divMag performs binary long division over magnitudes, returning the
// quotient and remainder. The divisor is shifted left until it dominates
// the dividend, then walked back down one bit at a time, subtracting and
// setting the matching quotient bit whenever the running remainder still
// covers it.
func divMag(a, b []uint64) (q, r []uint64) {
	if cmpMag(a, b) < 0 {
		return []uint64{0}, cloneMag(a)
	}

	shift := 0
	t := cloneMag(b)
	for cmpMag(t, a) <= 0 {
		t = shlMag(t, 1)
		shift++
	}
	t = shrMag(t, 1)
	shift--

	q = make([]uint64, shift/64+1)
	r = cloneMag(a)
	for i := shift; i >= 0; i-- {
		if cmpMag(r, t) >= 0 {
			r = subMag(r, t)
			q[i/64] |= 1 << (i % 64)
		}
		t = shrMag(t, 1)
	}
	return trimMag(q), trimMag(r)
}

// DivMod returns the quotient and remainder of a/b in one pass. The
// quotient sign is the XOR of the operand signs; the remainder takes the
// sign of the dividend, so |a%b| < |b| and a = (a/b)*b + a%b hold for all
// sign combinations. Fails when b is zero.
func (a Int) DivMod(b Int) (q, r Int, err error) {
	if b.IsZero() {
		return Int{}, Int{}, apperrors.DivisionByZeroError{Op: "divmod"}
	}
	qm, rm := divMag(a.digits, b.digits)
	return makeInt(qm, a.neg != b.neg), makeInt(rm, a.neg), nil
}

// Div returns a/b truncated toward zero. Fails when b is zero.
func (a Int) Div(b Int) (Int, error) {
	if b.IsZero() {
		return Int{}, apperrors.DivisionByZeroError{Op: "div"}
	}
	qm, _ := divMag(a.digits, b.digits)
	return makeInt(qm, a.neg != b.neg), nil
}

// Mod returns the remainder of a/b, carrying the sign of the dividend.
// Fails when b is zero.
func (a Int) Mod(b Int) (Int, error) {
	if b.IsZero() {
		return Int{}, apperrors.DivisionByZeroError{Op: "mod"}
	}
	_, rm := divMag(a.digits, b.digits)
	return makeInt(rm, a.neg), nil
}
