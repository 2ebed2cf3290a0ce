// This file holds the runtime-adjustable algorithm thresholds and the
// package logger used for dispatch diagnostics.

package bignum

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agbru/bignum/internal/logging"
)

// Thresholds bundles the algorithm crossover points used by Mul, ModPow and
// RandomPrime. All values are digit counts except MillerRabinRounds.
type Thresholds struct {
	// Karatsuba is the operand size at which Mul switches to the
	// recursive split.
	Karatsuba int
	// Montgomery is the modulus size at which ModPow prefers Montgomery
	// reduction for odd moduli.
	Montgomery int
	// Barrett is the modulus size at which ModPow prefers Barrett
	// reduction when Montgomery is unavailable.
	Barrett int
	// Parallel is the operand size above which Karatsuba subproducts run
	// concurrently.
	Parallel int
	// MillerRabinRounds is the witness count used when RandomPrime tests
	// candidates.
	MillerRabinRounds int
}

// DefaultThresholds returns the static defaults from constants.go.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Karatsuba:         DefaultKaratsubaThreshold,
		Montgomery:        DefaultMontgomeryThreshold,
		Barrett:           DefaultBarrettThreshold,
		Parallel:          DefaultParallelThreshold,
		MillerRabinRounds: DefaultMillerRabinRounds,
	}
}

var (
	thresholdMu sync.RWMutex
	thresholds  = DefaultThresholds()

	logMu  sync.RWMutex
	logger logging.Logger = logging.NewZerologAdapter(zerolog.Nop())
)

// SetThresholds installs new crossover points. Non-positive fields are
// replaced by their defaults, so a zero value in any field means "keep the
// static default" rather than "disable the algorithm".
func SetThresholds(t Thresholds) {
	d := DefaultThresholds()
	if t.Karatsuba <= 0 {
		t.Karatsuba = d.Karatsuba
	}
	if t.Montgomery <= 0 {
		t.Montgomery = d.Montgomery
	}
	if t.Barrett <= 0 {
		t.Barrett = d.Barrett
	}
	if t.Parallel <= 0 {
		t.Parallel = d.Parallel
	}
	if t.MillerRabinRounds <= 0 {
		t.MillerRabinRounds = d.MillerRabinRounds
	}

	thresholdMu.Lock()
	thresholds = t
	thresholdMu.Unlock()

	pkgLogger().Debug("thresholds installed",
		logging.Int("karatsuba", t.Karatsuba),
		logging.Int("montgomery", t.Montgomery),
		logging.Int("barrett", t.Barrett),
		logging.Int("parallel", t.Parallel),
		logging.Int("miller_rabin_rounds", t.MillerRabinRounds))
}

// CurrentThresholds returns the active crossover points.
func CurrentThresholds() Thresholds {
	thresholdMu.RLock()
	defer thresholdMu.RUnlock()
	return thresholds
}

// SetLogger configures the logger used for dispatch and prime-search
// diagnostics. The default discards everything; passing nil restores it.
func SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.NewZerologAdapter(zerolog.Nop())
	}
	logMu.Lock()
	logger = l
	logMu.Unlock()
}

func pkgLogger() logging.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return logger
}
