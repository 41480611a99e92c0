// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package streak

import "time"

// WeekStart returns the Monday that starts t's ISO week, at midnight UTC.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return Midnight(t).AddDate(0, 0, -offset)
}

// ComputeWeekly buckets a normalized sequence into ISO weeks and derives
// streaks at week granularity. A week counts when its total is above zero.
// A hole of one or more whole weeks between buckets breaks the run.
// Weekday exclusions do not apply here.
func ComputeWeekly(days []Day) WeeklyResult {
	var res WeeklyResult
	for _, d := range days {
		start := WeekStart(d.Date)
		if n := len(res.Weeks); n == 0 || !res.Weeks[n-1].WeekStart.Equal(start) {
			res.Weeks = append(res.Weeks, WeekBucket{WeekStart: start})
		}
		res.Weeks[len(res.Weeks)-1].TotalCount += d.Count
		res.TotalContributions += d.Count
		if d.Count > 0 && res.FirstContribution.IsZero() {
			res.FirstContribution = d.Date
		}
	}

	var run Run
	for i, w := range res.Weeks {
		if i > 0 && w.WeekStart.Sub(res.Weeks[i-1].WeekStart) > 7*24*time.Hour {
			run = Run{}
		}
		if w.TotalCount == 0 {
			run = Run{}
			continue
		}
		if run.Length == 0 {
			run.Start = w.WeekStart
		}
		run.Length++
		run.End = w.WeekStart

		if run.Length > res.LongestStreak.Length {
			res.LongestStreak = run
		}
	}
	res.CurrentStreak = run

	return res
}
