package bignum

import (
	"context"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/metrics"
)

var tracer = otel.Tracer("github.com/agbru/bignum/internal/bignum")

// ProbablyPrime applies the given number of Miller-Rabin witness rounds
// to n, drawing witnesses from src (nil means crypto/rand.Reader).
// It returns false for any n <= 1, true for 2, false for larger even
// values, and otherwise true iff no round finds a compositeness witness.
// The error probability for a composite n is at most 4^-rounds.
//
// A drawn witness outside [2, n-2] is redrawn a bounded number of times;
// when the budget runs out the round proceeds with witness 2, so the test
// terminates for every input.
func (n Int) ProbablyPrime(src io.Reader, rounds int) bool {
	if n.Cmp(One()) <= 0 {
		return false
	}
	if n.Cmp(Two()) == 0 {
		return true
	}
	if n.IsEven() {
		return false
	}

	// n-1 = d * 2^r with d odd.
	nm1 := n.Sub(One())
	d := nm1
	r := 0
	for d.IsEven() {
		d = d.Shr(1)
		r++
	}

	for i := 0; i < rounds; i++ {
		a := drawWitness(src, n, nm1)
		x, _ := a.ModPow(d, n)
		if x.IsOne() || x.Equal(nm1) {
			continue
		}

		composite := true
		for j := 0; j < r-1; j++ {
			x, _ = x.ModPow(Two(), n)
			if x.Equal(nm1) {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}

// drawWitness returns a random witness in [2, n-2]. Out-of-range draws
// are retried up to maxWitnessRedraws times; witness 2 is the terminal
// fallback (valid for every odd n >= 5; for n = 3, where d = 1, it gives
// x = 2 = n-1 and the round passes).
func drawWitness(src io.Reader, n, nm1 Int) Int {
	bl := n.BitLen() - 1
	for i := 0; i < maxWitnessRedraws; i++ {
		a, err := Random(src, bl)
		if err != nil {
			break
		}
		if a.Cmp(Two()) >= 0 && a.Cmp(nm1) < 0 {
			return a
		}
	}
	return Two()
}

// RandomPrime searches for a probable prime of exactly the given bit
// length, drawing candidates from src (nil means crypto/rand.Reader).
// Candidates get their low and top bits forced so every draw is an odd
// value of full length; a failed candidate is retried once at
// candidate+2 before resampling. The search gives up with
// PrimeSearchError after PrimeAttemptsPerBit*bits candidate pairs, and
// honors ctx cancellation between candidates.
//
// bits 2 and 3 return fixed small primes, since forcing both end bits
// leaves no room to sample.
func RandomPrime(ctx context.Context, src io.Reader, bits int) (Int, error) {
	if bits < 2 {
		return Int{}, apperrors.ValidationError{Field: "bits", Message: "prime bit length must be at least 2"}
	}

	ctx, span := tracer.Start(ctx, "bignum.RandomPrime",
		trace.WithAttributes(attribute.Int("bits", bits)))
	defer span.End()

	switch bits {
	case 2:
		return Two(), nil
	case 3:
		return New(5), nil
	}

	start := time.Now()
	defer func() {
		metrics.PrimeSearchDuration.Observe(time.Since(start).Seconds())
	}()

	mem := metrics.NewMemoryCollector()
	before := mem.Snapshot()

	rounds := CurrentThresholds().MillerRabinRounds
	maxAttempts := PrimeAttemptsPerBit * bits
	for attempts := 0; attempts < maxAttempts; attempts++ {
		if err := ctx.Err(); err != nil {
			return Int{}, err
		}

		candidate, err := Random(src, bits)
		if err != nil {
			return Int{}, apperrors.WrapError(err, "drawing %d-bit candidate", bits)
		}
		candidate = candidate.Or(One())

		if candidate.ProbablyPrime(src, rounds) {
			finishPrimeSearch(span, before, mem, bits, attempts)
			return candidate, nil
		}
		metrics.PrimeCandidates.WithLabelValues("composite").Inc()

		// One incremental retry before burning another full draw. The
		// bump can carry past the requested length when the candidate
		// was all ones; such a value is not a valid result.
		candidate = candidate.Add(Two())
		if candidate.BitLen() == bits && candidate.ProbablyPrime(src, rounds) {
			finishPrimeSearch(span, before, mem, bits, attempts)
			return candidate, nil
		}
		metrics.PrimeCandidates.WithLabelValues("composite").Inc()
	}

	return Int{}, apperrors.PrimeSearchError{Bits: bits, Attempts: 2 * maxAttempts}
}

func finishPrimeSearch(span trace.Span, before metrics.MemorySnapshot, mem *metrics.MemoryCollector, bits, attempts int) {
	metrics.PrimeCandidates.WithLabelValues("prime").Inc()
	span.SetAttributes(attribute.Int("attempts", attempts+1))
	after := mem.Snapshot()
	pkgLogger().Debug("prime found",
		logging.Int("bits", bits),
		logging.Int("attempts", attempts+1),
		logging.Uint64("heap_alloc_before", before.HeapAlloc),
		logging.Uint64("heap_alloc_after", after.HeapAlloc))
}
