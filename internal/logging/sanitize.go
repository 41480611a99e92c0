// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package logging

import "strings"

// SanitizeToken masks a token, showing only its first and last 4 characters.
// Example: "ghp_abcdefghijklmnop" -> "ghp_...mnop"
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// SanitizeValue strips control characters and truncates untrusted input
// (query parameters, upstream messages) before it reaches a log line.
func SanitizeValue(s string, maxLen int) string {
	clean := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
	if maxLen > 0 && len(clean) > maxLen {
		return clean[:maxLen] + "..."
	}
	return clean
}
