// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package config

import (
	"fmt"
	"time"
)

// Validate checks that configuration values are usable.
// Missing GitHub tokens are not an error here; the stats endpoint reports
// them to callers instead, so health checks still come up.
func (c *Config) Validate() error {
	if err := c.validateGitHub(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateGitHub validates the calendar source settings
func (c *Config) validateGitHub() error {
	if err := validateHTTPURL(c.GitHub.APIURL, "GITHUB_API_URL"); err != nil {
		return err
	}
	if c.GitHub.Timeout <= 0 {
		return fmt.Errorf("GITHUB_TIMEOUT must be positive")
	}
	if c.GitHub.MaxRetries < 0 || c.GitHub.MaxRetries > 10 {
		return fmt.Errorf("GITHUB_MAX_RETRIES must be between 0 and 10")
	}
	if c.GitHub.RetryDelay < 0 {
		return fmt.Errorf("GITHUB_RETRY_DELAY must not be negative")
	}
	if c.GitHub.RequestsPerSecond <= 0 {
		return fmt.Errorf("GITHUB_REQUESTS_PER_SECOND must be positive")
	}
	if c.GitHub.Burst < 1 {
		return fmt.Errorf("GITHUB_BURST must be at least 1")
	}
	if c.GitHub.MaxConcurrentYears < 1 || c.GitHub.MaxConcurrentYears > 32 {
		return fmt.Errorf("GITHUB_MAX_CONCURRENT_YEARS must be between 1 and 32")
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// validateCache validates cache windows
func (c *Config) validateCache() error {
	if c.Cache.MaxAge < 0 {
		return fmt.Errorf("CACHE_MAX_AGE must not be negative")
	}
	if c.Cache.MemoryTTL < 0 {
		return fmt.Errorf("CACHE_MEMORY_TTL must not be negative")
	}
	if c.Cache.StorePath != "" {
		if c.Cache.StoreTTL <= 0 {
			return fmt.Errorf("CACHE_STORE_TTL must be positive when CACHE_STORE_PATH is set")
		}
		if c.Cache.GCInterval < time.Second {
			return fmt.Errorf("CACHE_GC_INTERVAL must be at least 1s when CACHE_STORE_PATH is set")
		}
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitReqs   = 1
	maxRateLimitReqs   = 100000
	minRateLimitWindow = time.Second
	maxRateLimitWindow = 24 * time.Hour
)

// validateRateLimits validates inbound rate limit bounds
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitReqs || c.Security.RateLimitReqs > maxRateLimitReqs {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitReqs, maxRateLimitReqs)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
