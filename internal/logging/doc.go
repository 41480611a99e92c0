// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

// Package logging provides centralized zerolog-based structured logging.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("port", 8080).Msg("Server starting")
//	logging.Error().Err(err).Msg("Fetch failed")
//
//	// Request-scoped logging (request_id added automatically)
//	logging.Ctx(r.Context()).Warn().Str("user", user).Msg("Unknown user")
//
// # Configuration
//
// Environment Variables (read by package config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Suture Integration
//
// The supervisor tree logs through slog. NewSlogLogger bridges slog into
// zerolog so supervisor events share the same output and format:
//
//	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger()}
//
// # Sensitive Values
//
// GitHub tokens must never be logged in full; use SanitizeToken. Untrusted
// input such as query parameters goes through SanitizeValue first.
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
