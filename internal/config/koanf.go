// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/streakstats/config.yaml",
	"/etc/streakstats/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// maxNumberedTokens bounds the TOKEN, TOKEN2 ... TOKENn scan.
const maxNumberedTokens = 9

// defaultConfig returns a Config struct with all default values.
func defaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			Tokens:             []string{},
			APIURL:             "https://api.github.com",
			Timeout:            30 * time.Second,
			MaxRetries:         3,
			RetryDelay:         time.Second,
			RequestsPerSecond:  10,
			Burst:              5,
			MaxConcurrentYears: 4,
		},
		Server: ServerConfig{
			Port:        8080,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Cache: CacheConfig{
			MaxAge:     3 * time.Hour,
			MemoryTTL:  10 * time.Minute,
			StorePath:  "",
			StoreTTL:   3 * time.Hour,
			GCInterval: 10 * time.Minute,
		},
		Security: SecurityConfig{
			RateLimitReqs:     60,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
//
// Numbered TOKEN variables are appended to github.tokens after the layers
// are merged.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	if err := mergeNumberedTokens(k, os.Getenv); err != nil {
		return nil, fmt.Errorf("failed to merge tokens: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"github.tokens",
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		if err := k.Set(path, splitList(strVal)); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// mergeNumberedTokens appends TOKEN, TOKEN2 ... TOKEN9 to github.tokens,
// skipping blanks and duplicates.
func mergeNumberedTokens(k *koanf.Koanf, getenv func(string) string) error {
	tokens := k.Strings("github.tokens")
	seen := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		seen[t] = true
	}

	for i := 1; i <= maxNumberedTokens; i++ {
		name := "TOKEN"
		if i > 1 {
			name += strconv.Itoa(i)
		}
		t := strings.TrimSpace(getenv(name))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tokens = append(tokens, t)
	}

	return k.Set("github.tokens", tokens)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// envTransformFunc maps environment variable names to koanf config paths.
// Unmapped variables are dropped so the process environment cannot leak
// into the config.
//
// Examples:
//   - GITHUB_API_URL -> github.api_url
//   - HTTP_PORT -> server.port
//   - CACHE_STORE_PATH -> cache.store_path
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// GitHub source
		"github_tokens":               "github.tokens",
		"github_api_url":              "github.api_url",
		"github_timeout":              "github.timeout",
		"github_max_retries":          "github.max_retries",
		"github_retry_delay":          "github.retry_delay",
		"github_requests_per_second":  "github.requests_per_second",
		"github_burst":                "github.burst",
		"github_max_concurrent_years": "github.max_concurrent_years",

		// Server mappings
		"http_port":    "server.port",
		"http_host":    "server.host",
		"http_timeout": "server.timeout",
		"environment":  "server.environment",

		// Cache mappings
		"cache_max_age":     "cache.max_age",
		"cache_memory_ttl":  "cache.memory_ttl",
		"cache_store_path":  "cache.store_path",
		"cache_store_ttl":   "cache.store_ttl",
		"cache_gc_interval": "cache.gc_interval",

		// Security mappings
		"rate_limit_requests": "security.rate_limit_reqs",
		"rate_limit_window":   "security.rate_limit_window",
		"disable_rate_limit":  "security.rate_limit_disabled",
		"cors_origins":        "security.cors_origins",

		// Logging mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return ""
}
