// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

/*
Package cache provides a thread-safe, generic in-memory cache with TTL support.

It is the first layer in front of the GitHub calendar source: fetched
contribution graphs are kept for a few minutes so repeated card loads (README
badges are requested on every page view) do not hit the GraphQL API.

# Overview

The cache provides:
  - Thread-safe concurrent access (sync.RWMutex)
  - Per-entry TTL with lazy expiration on Get
  - Optional entry bound (WithMaxEntries) evicting the entry closest to expiry
  - Hit, miss and eviction statistics, mirrored to Prometheus by cache name
  - A Serve loop that sweeps expired entries and runs as a suture service

# Usage Example

	graphs := cache.New[[]streak.Graph]("memory", 10*time.Minute,
	    cache.WithMaxEntries(10000))

	key := cache.GenerateKey("graphs", struct {
	    User string
	    Year int
	}{"octocat", 0})

	if g, ok := graphs.Get(key); ok {
	    return g, nil
	}
	graphs.Set(key, fetched)

# Thread Safety

All methods are safe for concurrent use. Statistics are guarded by their own
mutex so reads of GetStats never block cache writers for long.
*/
package cache
