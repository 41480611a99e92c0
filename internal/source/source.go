// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

// Package source defines the calendar source boundary and the caching
// decorator placed in front of it.
package source

import (
	"context"
	"errors"
	"strings"

	"github.com/tomtom215/streakstats/internal/cache"
	"github.com/tomtom215/streakstats/internal/logging"
	"github.com/tomtom215/streakstats/internal/streak"
)

// Source supplies the contribution graphs of a user, one per year, oldest
// first. startingYear of 0 means no lower bound. Failures are *streak.Error
// values of kind NotFound or Upstream.
type Source interface {
	FetchGraphs(ctx context.Context, user string, startingYear int) ([]streak.Graph, error)
}

// Func adapts a function to Source.
type Func func(ctx context.Context, user string, startingYear int) ([]streak.Graph, error)

// FetchGraphs implements Source.
func (f Func) FetchGraphs(ctx context.Context, user string, startingYear int) ([]streak.Graph, error) {
	return f(ctx, user, startingYear)
}

// Store is the persistent layer of Cached. *store.GraphStore satisfies it.
type Store interface {
	Get(ctx context.Context, user string, startingYear int) ([]streak.Graph, error)
	Put(ctx context.Context, user string, startingYear int, graphs []streak.Graph) error
}

// Cached layers an in-memory cache and an optional persistent store in front
// of an upstream Source. Misses fill every layer below the one that answered.
// Errors are never cached, so an unknown user is rechecked on the next request.
type Cached struct {
	upstream Source
	memory   *cache.Cache[[]streak.Graph]
	store    Store
}

// NewCached creates the decorator. memory and store may each be nil.
func NewCached(upstream Source, memory *cache.Cache[[]streak.Graph], store Store) *Cached {
	return &Cached{upstream: upstream, memory: memory, store: store}
}

type cacheKey struct {
	User         string `json:"user"`
	StartingYear int    `json:"starting_year"`
}

// FetchGraphs implements Source.
func (c *Cached) FetchGraphs(ctx context.Context, user string, startingYear int) ([]streak.Graph, error) {
	key := cache.GenerateKey("graphs", cacheKey{User: strings.ToLower(user), StartingYear: startingYear})
	log := logging.Ctx(ctx)

	if c.memory != nil {
		if graphs, ok := c.memory.Get(key); ok {
			return graphs, nil
		}
	}

	if c.store != nil {
		graphs, err := c.store.Get(ctx, user, startingYear)
		switch {
		case err == nil:
			c.recordStoreLookup(true)
			c.remember(key, graphs)
			return graphs, nil
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, streak.Upstream("Request cancelled.", err)
		default:
			c.recordStoreLookup(false)
			if !isStoreMiss(err) {
				log.Warn().Err(err).Str("user", user).Msg("Graph store read failed, falling back to GitHub")
			}
		}
	}

	graphs, err := c.upstream.FetchGraphs(ctx, user, startingYear)
	if err != nil {
		return nil, err
	}

	c.remember(key, graphs)
	if c.store != nil {
		if err := c.store.Put(ctx, user, startingYear, graphs); err != nil {
			log.Warn().Err(err).Str("user", user).Msg("Graph store write failed")
		}
	}
	return graphs, nil
}

func (c *Cached) remember(key string, graphs []streak.Graph) {
	if c.memory != nil {
		c.memory.Set(key, graphs)
	}
}
