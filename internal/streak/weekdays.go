// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package streak

import (
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// WeekdaySet is a set of weekdays, one bit per time.Weekday.
// The zero value is the empty set.
type WeekdaySet uint8

// weekdayNames maps lower-case full names and abbreviations to weekdays.
var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// NewWeekdaySet returns a set containing days.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s = s.With(d)
	}
	return s
}

// With returns s plus d.
func (s WeekdaySet) With(d time.Weekday) WeekdaySet {
	return s | 1<<uint(d)
}

// Has reports whether d is in the set.
func (s WeekdaySet) Has(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

// Len returns the number of weekdays in the set.
func (s WeekdaySet) Len() int {
	n := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Days returns the members in Sunday-first order.
func (s WeekdaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

// Names returns the three-letter names of the members, Sunday first.
func (s WeekdaySet) Names() []string {
	names := make([]string, 0, 7)
	for _, d := range s.Days() {
		names = append(names, d.String()[:3])
	}
	return names
}

// String joins Names with commas.
func (s WeekdaySet) String() string {
	return strings.Join(s.Names(), ",")
}

// MarshalJSON encodes the set as an array of three-letter names.
func (s WeekdaySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

// ParseWeekday parses a single weekday name. Matching is case-insensitive
// and accepts both full names and three-letter abbreviations.
func ParseWeekday(name string) (time.Weekday, error) {
	d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, InvalidInput("%q is not a valid day of the week", name)
	}
	return d, nil
}

// ParseWeekdays builds a WeekdaySet from free-form tokens.
// Blank tokens are ignored; any other unknown name is an InvalidInput error.
func ParseWeekdays(tokens []string) (WeekdaySet, error) {
	var s WeekdaySet
	for _, tok := range tokens {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		d, err := ParseWeekday(tok)
		if err != nil {
			return 0, err
		}
		s = s.With(d)
	}
	return s, nil
}

// ParseWeekdayList splits a comma-separated list and parses it with ParseWeekdays.
func ParseWeekdayList(list string) (WeekdaySet, error) {
	if strings.TrimSpace(list) == "" {
		return 0, nil
	}
	return ParseWeekdays(strings.Split(list, ","))
}
