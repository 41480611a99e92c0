// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

/*
Package github is the calendar source backed by the GitHub GraphQL API.

Three layers stack on each other:

  - Client issues GraphQL queries (contributionYears, contributionCalendar)
    with bearer-token auth, request pacing via golang.org/x/time/rate, token
    rotation on 401/403/429 and RATE_LIMITED, and exponential backoff
    honouring Retry-After.
  - CircuitBreakerClient guards Client with sony/gobreaker so an outage fails
    fast. Unknown users do not trip the breaker.
  - Source turns the per-year API into the FetchGraphs contract, fetching
    year calendars concurrently with a bounded errgroup.

Errors are *streak.Error values: NOT_FOUND becomes KindNotFound with
"Could not find a user with that name.", everything else KindUpstream.

	client := github.NewClient(github.ClientConfig{
	    APIURL: cfg.GitHub.APIURL,
	    Tokens: cfg.GitHub.Tokens,
	})
	src := github.NewSource(github.NewCircuitBreakerClient(client, github.CircuitBreakerConfig{}))
	graphs, err := src.FetchGraphs(ctx, "octocat", 0)
*/
package github
