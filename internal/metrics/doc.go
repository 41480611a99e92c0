// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rejected requests (counter)
    Labels: endpoint

Streak Metrics:
  - streak_computations_total: Computations (counter)
    Labels: mode (daily, weekly), result (success or error kind)
  - streak_compute_duration_seconds: Normalize and compute time (histogram)
    Labels: mode
  - streak_days_processed: Days per normalized sequence (histogram)

GitHub Metrics:
  - github_requests_total: GraphQL round trips (counter)
    Labels: operation (contribution_years, calendar), status
  - github_request_duration_seconds: GraphQL latency (histogram)
    Labels: operation
  - github_token_rotations_total: Tokens skipped after 401/403/429 (counter)
  - github_retries_total: Backoff rounds (counter)

Cache Metrics:
  - cache_hits_total, cache_misses_total, cache_evictions_total (counter)
    Labels: cache_type (memory, badger)
  - cache_entries: Current entries (gauge)
    Labels: cache_type
  - store_gc_runs_total: BadgerDB value log GC passes (counter)
    Labels: result (reclaimed, noop, error)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Labels name, result (counter)
  - circuit_breaker_consecutive_failures (gauge)
  - circuit_breaker_state_transitions_total: Labels name, from_state, to_state

# Usage

	start := time.Now()
	metrics.RecordGitHubRequest("calendar", "200", time.Since(start))
	metrics.RecordCacheLookup("memory", true)

Metric updates are lock-free and safe for concurrent use.
*/
package metrics
