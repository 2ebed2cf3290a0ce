package bignum

import (
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/metrics"
)

// ModPow returns a^exp mod n, in [0, n). The reduction strategy is chosen
// from the modulus shape: Montgomery (CIOS) for odd moduli of at least
// the Montgomery threshold, Barrett above its threshold otherwise, and a
// plain divide-after-multiply loop for small moduli. All paths produce
// the same value; a failed Montgomery setup silently reroutes.
//
// A negative base is reduced into [0, n) first. The sign of exp is
// ignored: the magnitude of the exponent drives the square-and-multiply
// loop. Fails with InvalidModulusError when n is zero or negative.
func (a Int) ModPow(exp, n Int) (Int, error) {
	if n.IsZero() {
		return Int{}, apperrors.InvalidModulusError{Reason: "modulus is zero"}
	}
	if n.IsNegative() {
		return Int{}, apperrors.InvalidModulusError{Reason: "modulus must be positive"}
	}
	if exp.IsZero() {
		return One(), nil
	}
	if n.IsOne() {
		return Zero(), nil
	}

	base, _ := a.Mod(n)
	if base.IsNegative() {
		base = base.Add(n)
	}

	t := CurrentThresholds()
	if n.digitCount() >= t.Montgomery && n.IsOdd() {
		res, err := modPowMontgomery(base, exp, n)
		if err == nil {
			metrics.ModPowPath.WithLabelValues("montgomery").Inc()
			return res, nil
		}
		metrics.ModPowFallbacks.Inc()
		pkgLogger().Debug("montgomery setup failed, falling back", logging.Err(err))
	}
	return modPowBinary(base, exp, n, t)
}

// modPowMontgomery runs right-to-left binary exponentiation entirely in
// Montgomery form, converting back once at the end.
func modPowMontgomery(base, exp, n Int) (Int, error) {
	mctx, err := NewMontgomeryContext(n)
	if err != nil {
		return Int{}, err
	}

	cur := mctx.ToMontgomery(base)
	acc := mctx.ToMontgomery(One())
	for e := exp; !e.IsZero(); e = e.Shr(1) {
		if e.IsOdd() {
			acc = mctx.Multiply(acc, cur)
		}
		cur = mctx.Multiply(cur, cur)
	}
	return mctx.FromMontgomery(acc), nil
}

// modPowBinary runs binary exponentiation with Barrett reduction above
// its threshold and a plain mod after each multiplication below it.
func modPowBinary(base, exp, n Int, t Thresholds) (Int, error) {
	if n.digitCount() >= t.Barrett {
		if bctx, err := NewBarrettContext(n); err == nil {
			metrics.ModPowPath.WithLabelValues("barrett").Inc()
			acc := One()
			cur := base
			for e := exp; !e.IsZero(); e = e.Shr(1) {
				if e.IsOdd() {
					acc = bctx.Reduce(acc.Mul(cur))
				}
				cur = bctx.Reduce(cur.Mul(cur))
			}
			return acc, nil
		}
	}

	metrics.ModPowPath.WithLabelValues("plain").Inc()
	acc := One()
	cur := base
	for e := exp; !e.IsZero(); e = e.Shr(1) {
		if e.IsOdd() {
			acc, _ = acc.Mul(cur).Mod(n)
		}
		cur, _ = cur.Mul(cur).Mod(n)
	}
	return acc, nil
}
