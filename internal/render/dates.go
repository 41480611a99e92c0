// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package render

import "time"

// FormatDate prints t as "Jan 2", adding the year unless it is the year of now.
func FormatDate(t, now time.Time) string {
	if t.Year() == now.Year() {
		return t.Format("Jan 2")
	}
	return t.Format("Jan 2, 2006")
}

// formatRange prints a run's date range. A missing start yields "" and a
// single day prints once. An end at or after present prints "Present".
func (r *Renderer) formatRange(start, end, present time.Time) string {
	if start.IsZero() {
		return ""
	}
	now := r.now()
	from := FormatDate(start, now)
	switch {
	case start.Equal(end):
		return from
	case end.IsZero(), !end.Before(present):
		return from + " - Present"
	default:
		return from + " - " + FormatDate(end, now)
	}
}
