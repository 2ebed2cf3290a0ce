// Package metrics exposes Prometheus instruments for the big-integer
// engine: modular-exponentiation dispatch counters and prime-search
// statistics, plus point-in-time runtime memory snapshots.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ModPowPath counts ModPow invocations by the reduction strategy that
// actually ran: "montgomery", "barrett" or "plain".
var ModPowPath = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bignum_modpow_total",
	Help: "ModPow invocations by reduction path.",
}, []string{"path"})

// ModPowFallbacks counts Montgomery context constructions that failed
// inside ModPow and were rerouted to another path.
var ModPowFallbacks = promauto.NewCounter(prometheus.CounterOpts{
	Name: "bignum_modpow_fallback_total",
	Help: "Montgomery setups that fell back to Barrett or plain reduction.",
})

// PrimeCandidates counts candidates tested during random prime searches,
// labelled by outcome ("prime" or "composite").
var PrimeCandidates = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bignum_prime_candidates_total",
	Help: "Candidates tested by RandomPrime, by outcome.",
}, []string{"outcome"})

// PrimeSearchDuration observes the wall time of whole RandomPrime calls.
var PrimeSearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "bignum_prime_search_seconds",
	Help:    "Duration of RandomPrime searches.",
	Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
})
