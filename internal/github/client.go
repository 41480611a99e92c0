// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package github

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/streakstats/internal/logging"
	"github.com/tomtom215/streakstats/internal/metrics"
	"github.com/tomtom215/streakstats/internal/streak"
)

// maxErrorBodySize limits the maximum amount of response body read for error reporting
const maxErrorBodySize = 64 * 1024 // 64KB

// maxResponseSize bounds a successful GraphQL response. A full year calendar
// is around 40KB.
const maxResponseSize = 4 << 20

// User-visible messages. They end up on the rendered error card.
const (
	MessageUserNotFound = "Could not find a user with that name."
	MessageUnavailable  = "Failed to retrieve contributions. This is likely a GitHub API issue."
	MessageRateLimited  = "The GitHub API rate limit was reached for every configured token. Please try again later."
	MessageNoTokens     = "Missing token in config. Check Contributing.md for details."
)

// Operation names used as metric labels.
const (
	opContributionYears = "contribution_years"
	opCalendar          = "calendar"
)

// ErrNoTokens is wrapped in the Upstream error returned when the client has
// no token to authenticate with.
var ErrNoTokens = errors.New("no GitHub tokens configured")

// API is the subset of GitHub the calendar source needs.
type API interface {
	// ContributionYears lists the years in which user has contributions,
	// in the order GitHub returns them (newest first), and the account
	// creation time.
	ContributionYears(ctx context.Context, user string) ([]int, time.Time, error)
	// YearCalendar returns the contribution calendar for one calendar year.
	YearCalendar(ctx context.Context, user string, year int) (streak.Graph, error)
}

// ClientConfig holds Client settings, usually taken from config.GitHubConfig.
type ClientConfig struct {
	APIURL            string
	Tokens            []string
	Timeout           time.Duration
	MaxRetries        int
	RetryDelay        time.Duration
	RequestsPerSecond float64
	Burst             int

	// HTTPClient overrides the default client, for tests.
	HTTPClient *http.Client
}

// Client talks to the GitHub GraphQL API.
//
// Requests are paced by a token bucket. When a token is rejected (401/403),
// rate limited (429 or a RATE_LIMITED GraphQL error) the next token is tried.
// Once every token has failed the client backs off exponentially, honouring
// Retry-After, for up to MaxRetries further rounds.
type Client struct {
	endpoint   string
	tokens     []string
	next       atomic.Uint32
	httpClient *http.Client
	limiter    *rate.Limiter
	maxRetries int
	retryDelay time.Duration
}

var _ API = (*Client)(nil)

// NewClient creates a GraphQL client.
func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		endpoint:   strings.TrimRight(cfg.APIURL, "/") + "/graphql",
		tokens:     cfg.Tokens,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, burst),
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}
}

const contributionYearsQuery = `query($login: String!) {
  user(login: $login) {
    createdAt
    contributionsCollection {
      contributionYears
    }
  }
}`

const calendarQuery = `query($login: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $login) {
    contributionsCollection(from: $from, to: $to) {
      contributionCalendar {
        weeks {
          contributionDays {
            date
            contributionCount
          }
        }
      }
    }
  }
}`

type yearsData struct {
	User *struct {
		CreatedAt               time.Time `json:"createdAt"`
		ContributionsCollection struct {
			ContributionYears []int `json:"contributionYears"`
		} `json:"contributionsCollection"`
	} `json:"user"`
}

type calendarData struct {
	User *struct {
		ContributionsCollection struct {
			ContributionCalendar struct {
				Weeks []struct {
					ContributionDays []struct {
						Date              string `json:"date"`
						ContributionCount int    `json:"contributionCount"`
					} `json:"contributionDays"`
				} `json:"weeks"`
			} `json:"contributionCalendar"`
		} `json:"contributionsCollection"`
	} `json:"user"`
}

// ContributionYears implements API.
func (c *Client) ContributionYears(ctx context.Context, user string) ([]int, time.Time, error) {
	var data yearsData
	if err := c.query(ctx, opContributionYears, contributionYearsQuery, map[string]any{"login": user}, &data); err != nil {
		return nil, time.Time{}, err
	}
	if data.User == nil {
		return nil, time.Time{}, streak.NotFound(MessageUserNotFound)
	}
	return data.User.ContributionsCollection.ContributionYears, data.User.CreatedAt, nil
}

// YearCalendar implements API.
func (c *Client) YearCalendar(ctx context.Context, user string, year int) (streak.Graph, error) {
	vars := map[string]any{
		"login": user,
		"from":  fmt.Sprintf("%04d-01-01T00:00:00Z", year),
		"to":    fmt.Sprintf("%04d-12-31T23:59:59Z", year),
	}

	var data calendarData
	if err := c.query(ctx, opCalendar, calendarQuery, vars, &data); err != nil {
		return nil, err
	}
	if data.User == nil {
		return nil, streak.NotFound(MessageUserNotFound)
	}

	graph := make(streak.Graph, 366)
	for _, week := range data.User.ContributionsCollection.ContributionCalendar.Weeks {
		for _, day := range week.ContributionDays {
			graph[day.Date] = day.ContributionCount
		}
	}
	return graph, nil
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// attemptResult classifies one HTTP round trip.
type attemptResult int

const (
	attemptDone        attemptResult = iota // success or final error
	attemptNextToken                        // token rejected or rate limited
	attemptRetryLater                       // transient failure, back off
)

// query runs a GraphQL query, rotating tokens and retrying as described on Client.
func (c *Client) query(ctx context.Context, operation, query string, vars map[string]any, out any) error {
	if len(c.tokens) == 0 {
		return streak.Upstream(MessageNoTokens, ErrNoTokens)
	}

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return streak.Upstream(MessageUnavailable, fmt.Errorf("marshal %s query: %w", operation, err))
	}

	var lastErr error
	rateLimited := false

	for round := 0; round <= c.maxRetries; round++ {
		var retryAfter time.Duration
		start := int(c.next.Load())

		for i := 0; i < len(c.tokens); i++ {
			idx := (start + i) % len(c.tokens)

			result, wait, err := c.attempt(ctx, operation, c.tokens[idx], body, out)
			if result == attemptDone {
				return err
			}
			lastErr = err
			retryAfter = max(retryAfter, wait)

			if result == attemptRetryLater {
				break
			}

			rateLimited = true
			metrics.GitHubTokenRotations.Inc()
			c.next.Store(uint32((idx + 1) % len(c.tokens)))
			logging.Ctx(ctx).Warn().
				Str("token", logging.SanitizeToken(c.tokens[idx])).
				Err(err).
				Msg("GitHub token rejected or rate limited, rotating")
		}

		if round == c.maxRetries {
			break
		}

		delay := c.retryDelay * time.Duration(1<<uint(round))
		if retryAfter > delay {
			delay = retryAfter
		}
		metrics.GitHubRetries.Inc()
		logging.Ctx(ctx).Warn().
			Str("operation", operation).
			Dur("retry_delay", delay).
			Int("attempt", round+1).
			Int("max_retries", c.maxRetries).
			Msg("GitHub request failed, retrying")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return streak.Upstream(MessageUnavailable, ctx.Err())
		}
	}

	if rateLimited {
		return streak.Upstream(MessageRateLimited, lastErr)
	}
	return streak.Upstream(MessageUnavailable, lastErr)
}

// attempt performs one HTTP round trip with a single token.
func (c *Client) attempt(ctx context.Context, operation, token string, body []byte, out any) (attemptResult, time.Duration, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return attemptDone, 0, streak.Upstream(MessageUnavailable, fmt.Errorf("rate limiter: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return attemptDone, 0, streak.Upstream(MessageUnavailable, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Authorization", "bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "streakstats")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordGitHubRequest(operation, "error", time.Since(start))
		if ctx.Err() != nil {
			return attemptDone, 0, streak.Upstream(MessageUnavailable, ctx.Err())
		}
		return attemptRetryLater, 0, fmt.Errorf("%s request failed: %w", operation, err)
	}
	defer resp.Body.Close()
	metrics.RecordGitHubRequest(operation, strconv.Itoa(resp.StatusCode), time.Since(start))

	switch {
	case resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden,
		resp.StatusCode == http.StatusTooManyRequests:
		return attemptNextToken, parseRetryAfter(resp.Header.Get("Retry-After")),
			fmt.Errorf("%s request failed with status %d: %s", operation, resp.StatusCode, readBodyForError(resp.Body))
	case resp.StatusCode >= 500:
		return attemptRetryLater, parseRetryAfter(resp.Header.Get("Retry-After")),
			fmt.Errorf("%s request failed with status %d: %s", operation, resp.StatusCode, readBodyForError(resp.Body))
	case resp.StatusCode != http.StatusOK:
		return attemptDone, 0, streak.Upstream(MessageUnavailable,
			fmt.Errorf("%s request failed with status %d: %s", operation, resp.StatusCode, readBodyForError(resp.Body)))
	}

	var gql graphQLResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&gql); err != nil {
		return attemptDone, 0, streak.Upstream(MessageUnavailable, fmt.Errorf("decode %s response: %w", operation, err))
	}

	if len(gql.Errors) > 0 {
		first := gql.Errors[0]
		switch first.Type {
		case "NOT_FOUND":
			return attemptDone, 0, streak.NotFound(MessageUserNotFound)
		case "RATE_LIMITED":
			return attemptNextToken, 0, fmt.Errorf("%s: %s", operation, first.Message)
		default:
			return attemptDone, 0, streak.Upstream(MessageUnavailable,
				fmt.Errorf("%s returned GraphQL error %s: %s", operation, first.Type, first.Message))
		}
	}

	if err := json.Unmarshal(gql.Data, out); err != nil {
		return attemptDone, 0, streak.Upstream(MessageUnavailable, fmt.Errorf("decode %s data: %w", operation, err))
	}
	return attemptDone, 0, nil
}

// parseRetryAfter reads a Retry-After header given in seconds (RFC 6585) or
// as an HTTP date.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}

// readBodyForError reads the response body for error reporting (max 64KB)
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}
