// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

// Package store persists fetched contribution graphs in BadgerDB.
//
// Records are keyed by lower-cased login and starting year and expire through
// Badger's per-entry TTL, so a stale calendar is never served past
// cache.store_ttl. Only raw graphs are stored; computed streaks are always
// recomputed so the today cutoff stays correct.
//
//	s, err := store.Open(store.Config{Path: "/var/lib/streakstats", TTL: 3 * time.Hour})
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	sup.Add(store.NewGCService(s, 10*time.Minute))
package store
