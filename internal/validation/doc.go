// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

// Package validation provides struct validation using go-playground/validator v10.
//
// A thread-safe singleton validator caches struct metadata and registers the
// custom tags used by the stats endpoint and command:
//
//   - ghuser: a GitHub login of 1 to 39 letters, digits or hyphens
//   - weekdays: a comma-separated list of weekday names (see streak.ParseWeekdayList)
//
// Messages name the field by its param tag, so a query string caller reads
// "starting_year must be at least 2005" rather than a Go field name:
//
//	type StatsRequest struct {
//	    User         string `param:"user" validate:"required,ghuser"`
//	    StartingYear int    `param:"starting_year" validate:"omitempty,gte=2005,lte=9999"`
//	    Mode         string `param:"mode" validate:"oneof=daily weekly"`
//	    ExcludeDays  string `param:"exclude_days" validate:"omitempty,weekdays"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    return verr.ToStreakError() // InvalidInput, HTTP 400
//	}
package validation
