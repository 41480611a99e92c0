// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package config

import (
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	GitHub   GitHubConfig   `koanf:"github"`
	Server   ServerConfig   `koanf:"server"`
	Cache    CacheConfig    `koanf:"cache"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// GitHubConfig holds settings for the GitHub GraphQL calendar source.
//
// Environment Variables:
//   - TOKEN, TOKEN2 ... TOKEN9: personal access tokens, rotated on rate limits
//   - GITHUB_TOKENS: comma-separated tokens (merged with the numbered ones)
//   - GITHUB_API_URL: API base URL (default: https://api.github.com)
//   - GITHUB_TIMEOUT: per-request timeout (default: 30s)
//   - GITHUB_MAX_RETRIES: retry rounds across all tokens (default: 3)
//   - GITHUB_RETRY_DELAY: initial backoff between rounds (default: 1s)
//   - GITHUB_REQUESTS_PER_SECOND: outbound request rate (default: 10)
//   - GITHUB_BURST: outbound burst size (default: 5)
//   - GITHUB_MAX_CONCURRENT_YEARS: parallel per-year fetches (default: 4)
type GitHubConfig struct {
	Tokens             []string      `koanf:"tokens"`
	APIURL             string        `koanf:"api_url"`
	Timeout            time.Duration `koanf:"timeout"`
	MaxRetries         int           `koanf:"max_retries"`
	RetryDelay         time.Duration `koanf:"retry_delay"`
	RequestsPerSecond  float64       `koanf:"requests_per_second"`
	Burst              int           `koanf:"burst"`
	MaxConcurrentYears int           `koanf:"max_concurrent_years"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// CacheConfig holds HTTP cache headers and contribution graph caching.
//
// Environment Variables:
//   - CACHE_MAX_AGE: advertised HTTP cache window (default: 3h)
//   - CACHE_MEMORY_TTL: in-process graph cache TTL, 0 disables (default: 10m)
//   - CACHE_STORE_PATH: BadgerDB directory, empty disables (default: "")
//   - CACHE_STORE_TTL: BadgerDB entry TTL (default: 3h)
//   - CACHE_GC_INTERVAL: BadgerDB value log GC interval (default: 10m)
type CacheConfig struct {
	MaxAge     time.Duration `koanf:"max_age"`
	MemoryTTL  time.Duration `koanf:"memory_ttl"`
	StorePath  string        `koanf:"store_path"`
	StoreTTL   time.Duration `koanf:"store_ttl"`
	GCInterval time.Duration `koanf:"gc_interval"`
}

// SecurityConfig holds CORS and inbound rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// HasTokens reports whether at least one GitHub token is configured.
func (c *Config) HasTokens() bool {
	return len(c.GitHub.Tokens) > 0
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration from all sources. See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
