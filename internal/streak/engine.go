// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package streak

import (
	"time"
)

// allWeekdays has a bit set for every valid time.Weekday.
const allWeekdays WeekdaySet = 1<<7 - 1

// Valid reports whether s only contains the seven real weekdays.
func (s WeekdaySet) Valid() bool {
	return s&^allWeekdays == 0
}

// Compute derives daily streak statistics from a normalized sequence.
//
// Days whose weekday is in excluded are removed from the timeline: they
// neither extend nor break a run and add nothing to the total. A missing
// calendar date between two entries counts as a zero day unless its weekday
// is excluded. The current streak is the run still open at the last entry,
// and ties for the longest streak go to the earliest run.
//
// days is not modified.
func Compute(days []Day, excluded WeekdaySet) (Result, error) {
	if !excluded.Valid() {
		return Result{}, InvalidInput("excluded days contain an unknown weekday (mask %#x)", uint8(excluded))
	}

	res := Result{ExcludedDays: excluded}
	if len(days) == 0 {
		return res, nil
	}
	res.RangeStart = days[0].Date
	res.RangeEnd = days[len(days)-1].Date

	var (
		run  Run
		prev time.Time
	)
	for i, d := range days {
		if i > 0 && missingQualifyingDay(prev, d.Date, excluded) {
			run = Run{}
		}
		prev = d.Date

		if excluded.Has(d.Date.Weekday()) {
			continue
		}
		res.TotalContributions += d.Count

		if d.Count == 0 {
			run = Run{}
			continue
		}
		if res.FirstContribution.IsZero() {
			res.FirstContribution = d.Date
		}
		if run.Length == 0 {
			run.Start = d.Date
		}
		run.Length++
		run.End = d.Date

		if run.Length > res.LongestStreak.Length {
			res.LongestStreak = run
		}
	}
	res.CurrentStreak = run

	return res, nil
}

// ComputeWithInput parses raw weekday tokens and runs Compute.
func ComputeWithInput(days []Day, excludeTokens []string) (Result, error) {
	excluded, err := ParseWeekdays(excludeTokens)
	if err != nil {
		return Result{}, err
	}
	return Compute(days, excluded)
}

// missingQualifyingDay reports whether a non-excluded date lies strictly
// between prev and next. Seven consecutive dates cover every weekday, so no
// more than seven are inspected.
func missingQualifyingDay(prev, next time.Time, excluded WeekdaySet) bool {
	t := prev.AddDate(0, 0, 1)
	for n := 0; n < 7 && t.Before(next); n++ {
		if !excluded.Has(t.Weekday()) {
			return true
		}
		t = t.AddDate(0, 0, 1)
	}
	return false
}
