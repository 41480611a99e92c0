// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

// Package app assembles the calendar source stack shared by the server and
// the CLI: GitHub client, circuit breaker, per-year fetcher, memory cache and
// the optional BadgerDB graph store.
package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tomtom215/streakstats/internal/cache"
	"github.com/tomtom215/streakstats/internal/config"
	"github.com/tomtom215/streakstats/internal/github"
	"github.com/tomtom215/streakstats/internal/logging"
	"github.com/tomtom215/streakstats/internal/source"
	"github.com/tomtom215/streakstats/internal/store"
	"github.com/tomtom215/streakstats/internal/streak"
)

// memoryCacheName labels the in-process cache in metrics and supervisor logs.
const memoryCacheName = "memory"

// Stack is the assembled calendar source.
type Stack struct {
	// Source is the cached source handed to handlers and commands.
	Source source.Source
	// Breaker is the GitHub circuit breaker, for readiness checks.
	Breaker *github.CircuitBreakerClient
	// Memory is the in-process graph cache; its Serve method is the janitor.
	Memory *cache.Cache[[]streak.Graph]
	// Store is the persistent graph store, nil when disabled.
	Store *store.GraphStore
}

// Options adjusts Build for non-server callers.
type Options struct {
	// DisableStore skips BadgerDB even when a store path is configured.
	DisableStore bool
	// HTTPClient overrides the GitHub HTTP client.
	HTTPClient *http.Client
}

// Build assembles the stack from cfg. The caller owns Close.
func Build(cfg *config.Config, opts Options) (*Stack, error) {
	client := github.NewClient(github.ClientConfig{
		APIURL:            cfg.GitHub.APIURL,
		Tokens:            cfg.GitHub.Tokens,
		Timeout:           cfg.GitHub.Timeout,
		MaxRetries:        cfg.GitHub.MaxRetries,
		RetryDelay:        cfg.GitHub.RetryDelay,
		RequestsPerSecond: cfg.GitHub.RequestsPerSecond,
		Burst:             cfg.GitHub.Burst,
		HTTPClient:        opts.HTTPClient,
	})
	breaker := github.NewCircuitBreakerClient(client, github.CircuitBreakerConfig{})
	fetcher := github.NewSource(breaker, github.WithMaxConcurrentYears(cfg.GitHub.MaxConcurrentYears))

	memory := cache.New[[]streak.Graph](memoryCacheName, cfg.Cache.MemoryTTL)

	stack := &Stack{Breaker: breaker, Memory: memory}
	var persistent source.Store
	if cfg.Cache.StorePath != "" && !opts.DisableStore {
		st, err := store.Open(store.Config{Path: cfg.Cache.StorePath, TTL: cfg.Cache.StoreTTL})
		if err != nil {
			return nil, fmt.Errorf("graph store: %w", err)
		}
		stack.Store = st
		persistent = st
	}
	stack.Source = source.NewCached(fetcher, memory, persistent)

	logging.Debug().
		Int("tokens", len(cfg.GitHub.Tokens)).
		Bool("store", stack.Store != nil).
		Dur("memory_ttl", cfg.Cache.MemoryTTL).
		Msg("Calendar source assembled")
	return stack, nil
}

// Close releases the graph store.
func (s *Stack) Close() error {
	if s.Store == nil {
		return nil
	}
	if err := s.Store.Close(); err != nil && !errors.Is(err, store.ErrClosed) {
		return err
	}
	return nil
}
