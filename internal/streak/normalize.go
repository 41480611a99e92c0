// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package streak

import (
	"sort"
	"time"
)

// NormalizeOptions controls how raw graphs are merged.
type NormalizeOptions struct {
	// StartingYear drops dates before January 1 of that year. Zero disables it.
	StartingYear int

	// Strict fails with a DataIntegrity error when two graphs report
	// different counts for the same date. Otherwise the later graph wins.
	Strict bool

	// Today, when set, drops dates after today. Tomorrow is kept only if it
	// already has contributions, which happens when the user's time zone is
	// ahead of the server's.
	Today time.Time
}

// Normalize merges graphs into one ascending, date-unique sequence.
// Graphs are applied in order, so a date present in several graphs takes the
// count from the last one. No data yields an empty sequence and a nil error.
func Normalize(graphs []Graph, opts NormalizeOptions) ([]Day, error) {
	var (
		minDate  time.Time
		today    time.Time
		tomorrow time.Time
	)
	if opts.StartingYear > 0 {
		minDate = time.Date(opts.StartingYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	if !opts.Today.IsZero() {
		today = Midnight(opts.Today)
		tomorrow = today.AddDate(0, 0, 1)
	}

	merged := make(map[int64]Day)
	for i, g := range graphs {
		for key, count := range g {
			date, err := ParseDate(key)
			if err != nil {
				return nil, DataIntegrity("graph %d has malformed date %q", i, key)
			}
			if count < 0 {
				return nil, DataIntegrity("graph %d has negative count %d on %s", i, count, key)
			}
			if !minDate.IsZero() && date.Before(minDate) {
				continue
			}
			if !today.IsZero() && date.After(today) && !(date.Equal(tomorrow) && count > 0) {
				continue
			}

			unix := date.Unix()
			if prev, ok := merged[unix]; ok && opts.Strict && prev.Count != count {
				return nil, DataIntegrity("conflicting counts for %s: %d and %d", key, prev.Count, count)
			}
			merged[unix] = Day{Date: date, Count: count}
		}
	}

	days := make([]Day, 0, len(merged))
	for _, d := range merged {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	return days, nil
}
