package bignum

import (
	apperrors "github.com/agbru/bignum/internal/errors"
)

// GCD returns the greatest common divisor of a and b as a non-negative
// value, by the Euclidean recurrence on the magnitudes. GCD(0, 0) is 0.
func (a Int) GCD(b Int) Int {
	x, y := a.Abs(), b.Abs()
	for !y.IsZero() {
		_, r, _ := x.DivMod(y)
		x, y = y, r
	}
	return x
}

// ExtGCD runs the extended Euclidean algorithm and returns (g, s, t) such
// that a*s + b*t = g = gcd(|a|, |b|). The two-row recurrence works on the
// magnitudes; the coefficients are sign-flipped afterwards so the Bezout
// identity holds for the original signed inputs.
func (a Int) ExtGCD(b Int) (g, s, t Int) {
	oldR, r := a.Abs(), b.Abs()
	oldS, curS := One(), Zero()
	oldT, curT := Zero(), One()

	for !r.IsZero() {
		q, _ := oldR.Div(r)
		oldR, r = r, oldR.Sub(q.Mul(r))
		oldS, curS = curS, oldS.Sub(q.Mul(curS))
		oldT, curT = curT, oldT.Sub(q.Mul(curT))
	}

	if a.IsNegative() {
		oldS = oldS.Neg()
	}
	if b.IsNegative() {
		oldT = oldT.Neg()
	}
	return oldR, oldS, oldT
}

// ModInverse returns the multiplicative inverse of a modulo n, normalized
// into [0, |n|). Fails with NotInvertibleError when gcd(a, n) != 1 and
// with InvalidModulusError when n is zero.
func (a Int) ModInverse(n Int) (Int, error) {
	if n.IsZero() {
		return Int{}, apperrors.InvalidModulusError{Reason: "modulus is zero"}
	}
	g, s, _ := a.ExtGCD(n)
	if !g.IsOne() {
		return Int{}, apperrors.NotInvertibleError{}
	}
	inv, _ := s.Mod(n)
	if inv.IsNegative() {
		inv = inv.Add(n.Abs())
	}
	return inv, nil
}
