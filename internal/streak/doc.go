// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

// Package streak turns GitHub contribution calendars into streak statistics.
//
// The package is pure: it performs no I/O, holds no shared state and never
// mutates its inputs, so every function is safe for concurrent use.
//
// # Pipeline
//
//	graphs (one per year) -> Normalize -> []Day -> Compute       -> Result
//	                                             -> ComputeWeekly -> WeeklyResult
//
// Normalize merges the raw graphs into one ascending sequence. When graphs
// overlap, the graph supplied last wins unless NormalizeOptions.Strict asks
// for conflicting counts to be reported as a DataIntegrity error.
//
// Compute walks the sequence day by day. Weekdays in the excluded set are
// dropped from the timeline entirely, so a Saturday with no commits does not
// end a weekday-only streak. Dates missing from the sequence count as zero
// days.
//
// ComputeWeekly sums each ISO week (Monday start) and applies the same run
// rules to weeks, ignoring weekday exclusions.
//
// # Errors
//
// All failures are *Error values tagged with a Kind. Callers pick HTTP
// status codes with StatusOf and user-facing text with MessageOf:
//
//	res, err := streak.ComputeWithInput(days, strings.Split(q, ","))
//	if err != nil {
//	    http.Error(w, streak.MessageOf(err), streak.StatusOf(err))
//	    return
//	}
package streak
