// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

/*
Package config provides layered configuration for the streak stats service.

# Configuration Sources

Sources are merged with Koanf v2 in increasing priority:
  - Built-in defaults (defaultConfig)
  - Optional YAML file: $CONFIG_PATH, ./config.yaml, /etc/streakstats/config.yaml
  - Environment variables (explicit mapping only, see envTransformFunc)

GitHub tokens may come from the file, from GITHUB_TOKENS (comma-separated)
and from TOKEN, TOKEN2 ... TOKEN9. All of them are merged in that order,
without duplicates.

# Environment Variables

GitHub source:
  - TOKEN, TOKEN2..TOKEN9, GITHUB_TOKENS
  - GITHUB_API_URL (default: https://api.github.com)
  - GITHUB_TIMEOUT (default: 30s)
  - GITHUB_MAX_RETRIES (default: 3)
  - GITHUB_RETRY_DELAY (default: 1s)
  - GITHUB_REQUESTS_PER_SECOND (default: 10)
  - GITHUB_BURST (default: 5)
  - GITHUB_MAX_CONCURRENT_YEARS (default: 4)

HTTP server:
  - HTTP_HOST (default: 0.0.0.0)
  - HTTP_PORT (default: 8080)
  - HTTP_TIMEOUT (default: 30s)
  - ENVIRONMENT (default: development)

Caching:
  - CACHE_MAX_AGE (default: 3h)
  - CACHE_MEMORY_TTL (default: 10m)
  - CACHE_STORE_PATH (default: empty, BadgerDB disabled)
  - CACHE_STORE_TTL (default: 3h)
  - CACHE_GC_INTERVAL (default: 10m)

Security:
  - RATE_LIMIT_REQUESTS (default: 60)
  - RATE_LIMIT_WINDOW (default: 1m)
  - DISABLE_RATE_LIMIT (default: false)
  - CORS_ORIGINS (default: *)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if !cfg.HasTokens() {
	    logging.Warn().Msg("No GitHub token configured")
	}
*/
package config
