// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"bad api url scheme", func(c *Config) { c.GitHub.APIURL = "ftp://github.com" }, "GITHUB_API_URL"},
		{"empty api url", func(c *Config) { c.GitHub.APIURL = "" }, "GITHUB_API_URL"},
		{"enterprise api path allowed", func(c *Config) { c.GitHub.APIURL = "https://ghe.example.com/api" }, ""},
		{"api url with query", func(c *Config) { c.GitHub.APIURL = "https://api.github.com?x=1" }, "GITHUB_API_URL"},
		{"zero timeout", func(c *Config) { c.GitHub.Timeout = 0 }, "GITHUB_TIMEOUT"},
		{"too many retries", func(c *Config) { c.GitHub.MaxRetries = 11 }, "GITHUB_MAX_RETRIES"},
		{"zero rps", func(c *Config) { c.GitHub.RequestsPerSecond = 0 }, "GITHUB_REQUESTS_PER_SECOND"},
		{"zero burst", func(c *Config) { c.GitHub.Burst = 0 }, "GITHUB_BURST"},
		{"zero concurrency", func(c *Config) { c.GitHub.MaxConcurrentYears = 0 }, "GITHUB_MAX_CONCURRENT_YEARS"},
		{"negative max age", func(c *Config) { c.Cache.MaxAge = -time.Second }, "CACHE_MAX_AGE"},
		{"store without ttl", func(c *Config) {
			c.Cache.StorePath = "/data"
			c.Cache.StoreTTL = 0
		}, "CACHE_STORE_TTL"},
		{"store with tiny gc interval", func(c *Config) {
			c.Cache.StorePath = "/data"
			c.Cache.GCInterval = time.Millisecond
		}, "CACHE_GC_INTERVAL"},
		{"rate limit too low", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"bad window", func(c *Config) { c.Security.RateLimitWindow = time.Millisecond }, "RATE_LIMIT_WINDOW"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"no tokens is valid", func(c *Config) { c.GitHub.Tokens = nil }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestConfigHelpers(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if cfg.HasTokens() {
		t.Error("HasTokens() = true for defaults")
	}
	cfg.GitHub.Tokens = []string{"ghp_x"}
	if !cfg.HasTokens() {
		t.Error("HasTokens() = false with a token")
	}

	if cfg.IsProduction() {
		t.Error("IsProduction() = true for development")
	}
	cfg.Server.Environment = "production"
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false for production")
	}
}
