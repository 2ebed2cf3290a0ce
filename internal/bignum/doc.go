// Package bignum implements arbitrary-precision signed integer arithmetic
// over a base-2^64 digit vector: schoolbook and Karatsuba multiplication,
// binary long division, the extended Euclidean algorithm, modular
// exponentiation accelerated by Montgomery (CIOS) and Barrett reduction,
// and Miller-Rabin probabilistic primality testing with prime generation.
//
// Values are immutable. Every operation returns a freshly allocated Int
// and never aliases its operands, so distinct goroutines may operate on
// shared values without synchronization.
//
// Randomized operations (Random, RandomPrime, ProbablyPrime) draw from an
// injectable io.Reader and default to crypto/rand.Reader. Callers that
// need deterministic behavior (tests, benchmarks) pass their own source.
package bignum
