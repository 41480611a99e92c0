// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package github

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/streakstats/internal/logging"
	"github.com/tomtom215/streakstats/internal/metrics"
	"github.com/tomtom215/streakstats/internal/streak"
)

// BreakerName labels the GitHub circuit breaker in logs and metrics.
const BreakerName = "github-graphql"

var _ API = (*CircuitBreakerClient)(nil)

// CircuitBreakerConfig tunes the breaker. Zero values take the defaults
// documented on NewCircuitBreakerClient.
type CircuitBreakerConfig struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	MinRequests  uint32
	FailureRatio float64
}

// CircuitBreakerClient wraps an API with the circuit breaker pattern so a
// GitHub outage fails fast instead of tying up request handlers in retries.
//
// Unknown users and caller cancellations are not GitHub's fault and never
// count as failures.
type CircuitBreakerClient struct {
	api  API
	cb   *gobreaker.CircuitBreaker[any]
	name string
}

// NewCircuitBreakerClient wraps api.
// Defaults:
// - Max 3 concurrent requests in half-open state
// - 1 minute measurement window
// - 1 minute timeout before attempting recovery
// - Opens after 60% failure rate with minimum 10 requests
func NewCircuitBreakerClient(api API, cfg CircuitBreakerConfig) *CircuitBreakerClient {
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = 3
	}
	if cfg.Interval == 0 {
		cfg.Interval = time.Minute
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = time.Minute
	}
	if cfg.MinRequests == 0 {
		cfg.MinRequests = 10
	}
	if cfg.FailureRatio == 0 {
		cfg.FailureRatio = 0.6
	}

	metrics.CircuitBreakerState.WithLabelValues(BreakerName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(BreakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        BreakerName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio
			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening GitHub circuit")
			}
			return shouldTrip
		},

		IsSuccessful: isBreakerSuccess,

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] GitHub state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{api: api, cb: cb, name: BreakerName}
}

// isBreakerSuccess reports whether err says nothing about GitHub's health.
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return true
	}
	switch streak.KindOf(err) {
	case streak.KindNotFound, streak.KindInvalidInput:
		return true
	}
	return false
}

// execute wraps an API call with circuit breaker protection
func execute[T any](cbc *CircuitBreakerClient, fn func() (T, error)) (T, error) {
	var zero T

	result, err := cbc.cb.Execute(func() (any, error) {
		return fn()
	})

	if err != nil {
		switch {
		case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] GitHub request rejected")
			return zero, streak.Upstream(MessageUnavailable, err)
		case isBreakerSuccess(err):
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
		default:
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
			counts := cbc.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
		}
		return zero, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)

	typed, ok := result.(T)
	if !ok {
		return zero, errors.New("circuit breaker: unexpected result type")
	}
	return typed, nil
}

type yearsResult struct {
	years     []int
	createdAt time.Time
}

// ContributionYears implements API with circuit breaker protection.
func (cbc *CircuitBreakerClient) ContributionYears(ctx context.Context, user string) ([]int, time.Time, error) {
	res, err := execute(cbc, func() (yearsResult, error) {
		years, createdAt, err := cbc.api.ContributionYears(ctx, user)
		return yearsResult{years: years, createdAt: createdAt}, err
	})
	if err != nil {
		return nil, time.Time{}, err
	}
	return res.years, res.createdAt, nil
}

// YearCalendar implements API with circuit breaker protection.
func (cbc *CircuitBreakerClient) YearCalendar(ctx context.Context, user string, year int) (streak.Graph, error) {
	return execute(cbc, func() (streak.Graph, error) {
		return cbc.api.YearCalendar(ctx, user, year)
	})
}

// State returns the current breaker state.
func (cbc *CircuitBreakerClient) State() gobreaker.State {
	return cbc.cb.State()
}

// IsOpen reports whether requests are currently being rejected. Used by the
// readiness probe.
func (cbc *CircuitBreakerClient) IsOpen() bool {
	return cbc.cb.State() == gobreaker.StateOpen
}

// stateToFloat converts circuit breaker state to the gauge value
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
