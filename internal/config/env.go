// This file contains environment variable utilities for threshold override.

package config

import (
	"os"
	"strconv"

	"github.com/agbru/bignum/internal/bignum"
)

// EnvPrefix is the prefix shared by all engine environment variables.
const EnvPrefix = "BIGNUM_"

// getEnvInt returns the value of the environment variable with the given
// key (prefixed with EnvPrefix) parsed as int, or the default value if
// not set or invalid.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// envOverride declares a single environment variable override: an env key
// (without the BIGNUM_ prefix) and a function that applies its value.
type envOverride struct {
	envKey string
	apply  func(*bignum.Thresholds, int)
}

// envOverrides is the declarative table of all environment variable
// overrides. Each entry only fires when the matching field is still zero,
// preserving values the caller set explicitly.
var envOverrides = []envOverride{
	{"KARATSUBA_THRESHOLD", func(t *bignum.Thresholds, v int) { t.Karatsuba = v }},
	{"MONTGOMERY_THRESHOLD", func(t *bignum.Thresholds, v int) { t.Montgomery = v }},
	{"BARRETT_THRESHOLD", func(t *bignum.Thresholds, v int) { t.Barrett = v }},
	{"PARALLEL_THRESHOLD", func(t *bignum.Thresholds, v int) { t.Parallel = v }},
	{"MILLER_RABIN_ROUNDS", func(t *bignum.Thresholds, v int) { t.MillerRabinRounds = v }},
}

// applyEnvOverrides fills unset threshold fields from the environment.
// This implements the priority: explicit fields > environment > defaults.
func applyEnvOverrides(t bignum.Thresholds) bignum.Thresholds {
	fields := []struct {
		isSet bool
		o     envOverride
	}{
		{t.Karatsuba != 0, envOverrides[0]},
		{t.Montgomery != 0, envOverrides[1]},
		{t.Barrett != 0, envOverrides[2]},
		{t.Parallel != 0, envOverrides[3]},
		{t.MillerRabinRounds != 0, envOverrides[4]},
	}
	for _, f := range fields {
		if f.isSet {
			continue
		}
		if v := getEnvInt(f.o.envKey, 0); v > 0 {
			f.o.apply(&t, v)
		}
	}
	return t
}
