// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package source

import (
	"errors"

	"github.com/tomtom215/streakstats/internal/metrics"
	"github.com/tomtom215/streakstats/internal/store"
)

// storeCacheType labels the persistent layer in cache metrics.
const storeCacheType = "badger"

func (c *Cached) recordStoreLookup(hit bool) {
	metrics.RecordCacheLookup(storeCacheType, hit)
}

func isStoreMiss(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
