// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

// Package services adapts blocking servers to suture.Service so they can run
// in the supervisor tree. Components that already expose
// Serve(ctx) error and String() (the memory cache, the graph store GC) are
// added to the tree directly.
package services
