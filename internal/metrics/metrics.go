// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Streak Computation Metrics
	StreakComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streak_computations_total",
			Help: "Total number of streak computations",
		},
		[]string{"mode", "result"}, // mode: daily, weekly; result: success or error kind
	)

	StreakComputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "streak_compute_duration_seconds",
			Help:    "Time spent normalizing and computing streaks",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"mode"},
	)

	StreakDaysProcessed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "streak_days_processed",
			Help:    "Number of calendar days in each normalized sequence",
			Buckets: []float64{0, 365, 730, 1825, 3650, 7300},
		},
	)

	// GitHub Calendar Source Metrics
	GitHubRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "github_requests_total",
			Help: "Total number of GitHub GraphQL requests",
		},
		[]string{"operation", "status"}, // status: HTTP status code or "error"
	)

	GitHubRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "github_request_duration_seconds",
			Help:    "GitHub GraphQL request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation"},
	)

	GitHubTokenRotations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "github_token_rotations_total",
			Help: "Total number of times a rate-limited or rejected token was skipped",
		},
	)

	GitHubRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "github_retries_total",
			Help: "Total number of backoff rounds after every token was exhausted",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "memory", "badger"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry)",
		},
		[]string{"cache_type"},
	)

	StoreGCRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_gc_runs_total",
			Help: "Total number of BadgerDB value log GC passes",
		},
		[]string{"result"}, // "reclaimed", "noop", "error"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordStreakComputation records one normalize+compute pass.
// result is "success" or the error kind.
func RecordStreakComputation(mode, result string, days int, duration time.Duration) {
	StreakComputations.WithLabelValues(mode, result).Inc()
	StreakComputeDuration.WithLabelValues(mode).Observe(duration.Seconds())
	if result == "success" {
		StreakDaysProcessed.Observe(float64(days))
	}
}

// RecordGitHubRequest records one GraphQL round trip
func RecordGitHubRequest(operation, status string, duration time.Duration) {
	GitHubRequestsTotal.WithLabelValues(operation, status).Inc()
	GitHubRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordCacheLookup records a hit or miss for the given cache layer
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
	} else {
		CacheMisses.WithLabelValues(cacheType).Inc()
	}
}

// RecordStoreGC records the outcome of a value log GC pass
func RecordStoreGC(result string) {
	StoreGCRuns.WithLabelValues(result).Inc()
}
