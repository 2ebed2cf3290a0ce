package bignum

// ─────────────────────────────────────────────────────────────────────────────
// Algorithm Selection Constants
// ─────────────────────────────────────────────────────────────────────────────
//
// These constants control when the engine switches between algorithm
// variants. The digit-count thresholds were chosen by benchmarking against
// the schoolbook and plain-reduction baselines; the crossover points are
// flat across common 64-bit hardware.

const (
	// DefaultKaratsubaThreshold is the operand size, in 64-bit digits, at
	// which multiplication switches from the schoolbook O(m*n) loop to the
	// recursive Karatsuba split. Below this size the recursion overhead
	// exceeds the saved subproduct.
	DefaultKaratsubaThreshold = 8

	// DefaultMontgomeryThreshold is the modulus size, in digits, at which
	// ModPow switches to Montgomery (CIOS) reduction, provided the modulus
	// is odd. Montgomery form trades two conversions for trial-division-free
	// inner multiplications, which only pays off once the modulus spans a
	// few words.
	DefaultMontgomeryThreshold = 4

	// DefaultBarrettThreshold is the modulus size, in digits, at which
	// ModPow uses Barrett reduction when the Montgomery path is unavailable
	// (even modulus, or failed context construction).
	DefaultBarrettThreshold = 8

	// DefaultParallelThreshold is the operand size, in digits, above which
	// the three Karatsuba subproducts are computed concurrently. Below it,
	// goroutine scheduling costs more than the parallelism recovers.
	DefaultParallelThreshold = 512

	// DefaultMillerRabinRounds is the number of witness rounds used by
	// RandomPrime when testing candidates. 20 rounds bound the error
	// probability at 4^-20 per candidate.
	DefaultMillerRabinRounds = 20

	// PrimeAttemptsPerBit scales the candidate budget of RandomPrime: a
	// search for a b-bit prime gives up after PrimeAttemptsPerBit*b
	// candidate pairs (a fresh draw and its +2 neighbour). By the prime
	// number theorem the expected number of odd
	// candidates is about b*ln(2)/2, so the budget leaves two orders of
	// magnitude of headroom.
	PrimeAttemptsPerBit = 50

	// maxWitnessRedraws bounds the in-round retry loop when a drawn
	// Miller-Rabin witness falls outside [2, n-2]. After the budget is
	// spent the round proceeds with witness 2, which is always in range
	// for the n >= 5 inputs that reach the witness loop.
	maxWitnessRedraws = 128
)
