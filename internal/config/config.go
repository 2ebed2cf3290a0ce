// Package config resolves the engine's algorithm thresholds and installs
// them. Importing the package is the bootstrap: its init applies the
// resolved set to the engine, so a process only opts in by importing.
//
// Threshold resolution chain (highest priority first):
//  1. Explicit fields set by the caller on the Thresholds it passes in
//  2. Environment variables (BIGNUM_KARATSUBA_THRESHOLD, etc.)
//  3. Adaptive hardware estimation (this file)
//  4. Static defaults in bignum/constants.go
package config

import (
	"runtime"

	"github.com/agbru/bignum/internal/bignum"
)

func init() {
	Apply()
}

// Apply resolves the full threshold chain and installs the result into
// the engine with bignum.SetThresholds. It returns what was installed.
// Call it again after changing the environment to re-resolve.
func Apply() bignum.Thresholds {
	t := Load()
	bignum.SetThresholds(t)
	return t
}

// Load resolves the full threshold set from the environment and hardware,
// starting from the zero value (everything defaulted).
func Load() bignum.Thresholds {
	return Resolve(bignum.Thresholds{})
}

// Resolve fills the unset (zero) fields of t from environment variables,
// then hardware estimation, then the static defaults. Explicitly set
// fields are preserved.
func Resolve(t bignum.Thresholds) bignum.Thresholds {
	t = applyEnvOverrides(t)
	t = applyAdaptiveThresholds(t)
	return applyStaticDefaults(t)
}

// applyAdaptiveThresholds adjusts thresholds based on hardware
// characteristics when default values are detected. Only the parallelism
// crossover depends on the machine: more cores make the goroutine
// hand-off pay for itself sooner.
func applyAdaptiveThresholds(t bignum.Thresholds) bignum.Thresholds {
	if t.Parallel == 0 {
		t.Parallel = estimateParallelThreshold()
	}
	return t
}

// estimateParallelThreshold provides a heuristic estimate of the optimal
// parallel threshold, in digits, without running benchmarks.
func estimateParallelThreshold() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU == 1:
		return 1 << 30 // no parallelism
	case numCPU <= 2:
		return 2048 // high threshold - goroutine overhead is significant
	case numCPU <= 4:
		return 1024
	case numCPU <= 8:
		return 512 // default
	default:
		return 256 // high core count - aggressive parallelism
	}
}

// applyStaticDefaults replaces any remaining zero field with the engine's
// static default.
func applyStaticDefaults(t bignum.Thresholds) bignum.Thresholds {
	d := bignum.DefaultThresholds()
	if t.Karatsuba == 0 {
		t.Karatsuba = d.Karatsuba
	}
	if t.Montgomery == 0 {
		t.Montgomery = d.Montgomery
	}
	if t.Barrett == 0 {
		t.Barrett = d.Barrett
	}
	if t.Parallel == 0 {
		t.Parallel = d.Parallel
	}
	if t.MillerRabinRounds == 0 {
		t.MillerRabinRounds = d.MillerRabinRounds
	}
	return t
}
