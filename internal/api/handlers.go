// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package api

import (
	"time"

	"github.com/tomtom215/streakstats/internal/render"
	"github.com/tomtom215/streakstats/internal/source"
)

// DefaultMaxAge is the HTTP cache lifetime of stats responses.
const DefaultMaxAge = 3 * time.Hour

// BreakerState reports whether the calendar source is refusing requests.
// *github.CircuitBreakerClient satisfies it.
type BreakerState interface {
	IsOpen() bool
}

// HandlerConfig holds the settings the handlers need from the process
// configuration.
type HandlerConfig struct {
	// HasTokens reports whether any GitHub token is configured. Without one,
	// every stats request fails with a configuration error.
	HasTokens bool

	// MaxAge is the Cache-Control max-age of stats responses.
	// Zero uses DefaultMaxAge.
	MaxAge time.Duration
}

// Handler serves the stats, demo and health endpoints.
type Handler struct {
	source    source.Source
	renderer  *render.Renderer
	breaker   BreakerState
	hasTokens bool
	maxAge    time.Duration
	now       func() time.Time
	startTime time.Time
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithBreaker lets the readiness probe report an open circuit breaker.
func WithBreaker(b BreakerState) HandlerOption {
	return func(h *Handler) {
		h.breaker = b
	}
}

// WithClock overrides the clock used for the today cutoff and cache headers.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.now = now
	}
}

// NewHandler creates a Handler reading graphs from src.
// A nil renderer uses render.New().
func NewHandler(src source.Source, renderer *render.Renderer, cfg HandlerConfig, opts ...HandlerOption) *Handler {
	if renderer == nil {
		renderer = render.New()
	}
	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	h := &Handler{
		source:    src,
		renderer:  renderer,
		hasTokens: cfg.HasTokens,
		maxAge:    maxAge,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.startTime = h.now()
	return h
}
