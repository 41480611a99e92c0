// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

// Package cli implements the streak command line tool.
//
// The stats command shares the calendar source stack with the HTTP server,
// so it reads the same configuration (GitHub tokens, API URL, BadgerDB store
// path) from config.yaml and the environment:
//
//	TOKEN=ghp_xxx streak stats octocat --exclude-days sat,sun
//	streak stats octocat --mode weekly --output json
package cli
