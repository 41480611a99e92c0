// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package streak

import (
	"time"

	"github.com/goccy/go-json"
)

// DateLayout is the calendar date format used by GitHub and in JSON output.
const DateLayout = "2006-01-02"

// Graph is one raw contribution graph as delivered by a calendar source:
// calendar date (DateLayout) to contribution count.
type Graph map[string]int

// Day is one entry of a normalized contribution sequence.
// Date is always midnight UTC.
type Day struct {
	Date  time.Time
	Count int
}

// Run is a streak of consecutive qualifying days or weeks.
// Start and End are zero when Length is 0.
type Run struct {
	Length int
	Start  time.Time
	End    time.Time
}

// IsZero reports whether the run is empty.
func (r Run) IsZero() bool {
	return r.Length == 0
}

type runJSON struct {
	Length int    `json:"length"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
}

// MarshalJSON emits start and end as calendar dates and omits them when absent.
func (r Run) MarshalJSON() ([]byte, error) {
	return json.Marshal(runJSON{
		Length: r.Length,
		Start:  FormatDate(r.Start),
		End:    FormatDate(r.End),
	})
}

// UnmarshalJSON parses the form written by MarshalJSON.
func (r *Run) UnmarshalJSON(data []byte) error {
	var raw runJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	start, err := parseOptionalDate(raw.Start)
	if err != nil {
		return err
	}
	end, err := parseOptionalDate(raw.End)
	if err != nil {
		return err
	}
	*r = Run{Length: raw.Length, Start: start, End: end}
	return nil
}

// Result holds daily streak statistics.
// FirstContribution is the first non-excluded day with a count above zero.
// RangeStart and RangeEnd span the whole input sequence.
type Result struct {
	TotalContributions int
	CurrentStreak      Run
	LongestStreak      Run
	FirstContribution  time.Time
	RangeStart         time.Time
	RangeEnd           time.Time
	ExcludedDays       WeekdaySet
}

type resultJSON struct {
	TotalContributions int        `json:"totalContributions"`
	FirstContribution  string     `json:"firstContribution,omitempty"`
	RangeStart         string     `json:"totalContributionsStart,omitempty"`
	RangeEnd           string     `json:"totalContributionsEnd,omitempty"`
	CurrentStreak      Run        `json:"currentStreak"`
	LongestStreak      Run        `json:"longestStreak"`
	ExcludedDays       WeekdaySet `json:"excludedDays"`
}

// MarshalJSON writes the result with calendar-date fields.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		TotalContributions: r.TotalContributions,
		FirstContribution:  FormatDate(r.FirstContribution),
		RangeStart:         FormatDate(r.RangeStart),
		RangeEnd:           FormatDate(r.RangeEnd),
		CurrentStreak:      r.CurrentStreak,
		LongestStreak:      r.LongestStreak,
		ExcludedDays:       r.ExcludedDays,
	})
}

// WeekBucket is the contribution total of one ISO week.
type WeekBucket struct {
	WeekStart  time.Time
	TotalCount int
}

// MarshalJSON writes the bucket with the week start as a calendar date.
func (b WeekBucket) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		WeekStart  string `json:"weekStart"`
		TotalCount int    `json:"totalCount"`
	}{FormatDate(b.WeekStart), b.TotalCount})
}

// WeeklyResult holds streak statistics at week granularity.
// Run lengths count weeks; Start and End are week starts (Mondays).
type WeeklyResult struct {
	Weeks              []WeekBucket
	TotalContributions int
	CurrentStreak      Run
	LongestStreak      Run
	FirstContribution  time.Time
}

// MarshalJSON writes the weekly result with calendar-date fields.
func (w WeeklyResult) MarshalJSON() ([]byte, error) {
	weeks := w.Weeks
	if weeks == nil {
		weeks = []WeekBucket{}
	}
	return json.Marshal(struct {
		TotalContributions int          `json:"totalContributions"`
		FirstContribution  string       `json:"firstContribution,omitempty"`
		CurrentStreak      Run          `json:"currentStreak"`
		LongestStreak      Run          `json:"longestStreak"`
		Weeks              []WeekBucket `json:"weeks"`
	}{w.TotalContributions, FormatDate(w.FirstContribution), w.CurrentStreak, w.LongestStreak, weeks})
}

// ParseDate parses a calendar date into midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate formats t as a calendar date, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// Midnight truncates t to midnight UTC of its calendar date in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseOptionalDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return ParseDate(s)
}
