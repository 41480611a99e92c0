// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

/*
Package render turns streak results into the two output formats served by the
stats endpoint: an SVG card and a JSON document.

The SVG card has three columns: total contributions, the current streak and
the longest streak, each with its date range. Dates print as "Jan 2" within
the current year and "Jan 2, 2006" otherwise. A range ending today reads
"Present". Weekly results use the same card with week labels.

JSON output is the result object plus a "mode" member:

	{"mode":"daily","totalContributions":2048,"currentStreak":{...},...}

Errors render as a card carrying the message, or as {"error": "..."}.

Templates are embedded and parsed once on first use.
*/
package render
