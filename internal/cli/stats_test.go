// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package cli

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/streakstats/internal/github"
	"github.com/tomtom215/streakstats/internal/source"
	"github.com/tomtom215/streakstats/internal/streak"
)

func TestStatsTable(t *testing.T) {
	calls := useSource(t, staticGraphs(testGraph))

	out, _, err := execute(t, "stats", "octocat")

	require.NoError(t, err)
	assert.Equal(t, []fetchCall{{"octocat", 0}}, *calls)
	assert.Contains(t, out, "octocat (daily)")
	assert.Contains(t, out, "Total Contributions")
	assert.Contains(t, out, "Jan 1 - Present")
	assert.Contains(t, out, "Current Streak")
	assert.Contains(t, out, "Jan 4")
	assert.Contains(t, out, "Longest Streak")
	assert.Contains(t, out, "Jan 1 - Jan 2")
}

func TestStatsExcludeDays(t *testing.T) {
	useSource(t, staticGraphs(testGraph))

	out, _, err := execute(t, "stats", "octocat", "--exclude-days", "wed", "--output", "json")
	require.NoError(t, err)

	var got struct {
		Mode               string   `json:"mode"`
		TotalContributions int      `json:"totalContributions"`
		ExcludedDays       []string `json:"excludedDays"`
		CurrentStreak      struct {
			Length int    `json:"length"`
			Start  string `json:"start"`
			End    string `json:"end"`
		} `json:"currentStreak"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "daily", got.Mode)
	assert.Equal(t, 6, got.TotalContributions)
	assert.Len(t, got.ExcludedDays, 1)
	assert.Equal(t, 3, got.CurrentStreak.Length)
	assert.Equal(t, "2024-01-01", got.CurrentStreak.Start)
	assert.Equal(t, "2024-01-04", got.CurrentStreak.End)
}

func TestStatsExcludeDaysHeading(t *testing.T) {
	useSource(t, staticGraphs(testGraph))

	out, _, err := execute(t, "stats", "octocat", "-x", "sat,sun")

	require.NoError(t, err)
	assert.Contains(t, out, "excluding sat,sun")
}

func TestStatsWeekly(t *testing.T) {
	useSource(t, staticGraphs(testGraph))

	out, _, err := execute(t, "stats", "octocat", "--mode", "Weekly", "-o", "json")
	require.NoError(t, err)

	var got struct {
		Mode          string `json:"mode"`
		CurrentStreak struct {
			Length int `json:"length"`
		} `json:"currentStreak"`
		Weeks []struct {
			WeekStart  string `json:"weekStart"`
			TotalCount int    `json:"totalCount"`
		} `json:"weeks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "weekly", got.Mode)
	assert.Equal(t, 1, got.CurrentStreak.Length)
	require.Len(t, got.Weeks, 1)
	assert.Equal(t, "2024-01-01", got.Weeks[0].WeekStart)
	assert.Equal(t, 6, got.Weeks[0].TotalCount)
}

func TestStatsWeeklyTable(t *testing.T) {
	useSource(t, staticGraphs(testGraph))

	out, _, err := execute(t, "stats", "octocat", "--mode", "weekly")

	require.NoError(t, err)
	assert.Contains(t, out, "octocat (weekly)")
	assert.Contains(t, out, "Week Streak")
	assert.Contains(t, out, "Longest Week Streak")
}

func TestStatsStartingYear(t *testing.T) {
	calls := useSource(t, staticGraphs(streak.Graph{
		"2022-12-31": 5,
		"2023-01-01": 1,
	}))

	out, _, err := execute(t, "stats", "octocat", "--starting-year", "2023", "-o", "json")
	require.NoError(t, err)

	assert.Equal(t, []fetchCall{{"octocat", 2023}}, *calls)
	var got struct {
		TotalContributions int `json:"totalContributions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1, got.TotalContributions)
}

func TestStatsInvalidFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"bad mode", []string{"stats", "octocat", "--mode", "hourly"}, "--mode must be one of: daily, weekly"},
		{"bad output", []string{"stats", "octocat", "-o", "yaml"}, "--output must be one of: table, json"},
		{"bad weekday", []string{"stats", "octocat", "-x", "funday"}, "--exclude-days must be a comma-separated list of days of the week"},
		{"early year", []string{"stats", "octocat", "--starting-year", "1999"}, "--starting-year must be at least 2005"},
		{"bad user", []string{"stats", "not a user!"}, "USER must be a GitHub username"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := useSource(t, staticGraphs(testGraph))

			_, stderr, err := execute(t, tt.args...)

			require.Error(t, err)
			assert.Equal(t, streak.KindInvalidInput, streak.KindOf(err))
			assert.Contains(t, stderr, tt.message)
			assert.Empty(t, *calls)
		})
	}
}

func TestStatsMissingUser(t *testing.T) {
	useSource(t, staticGraphs(testGraph))

	_, stderr, err := execute(t, "stats")

	assert.Error(t, err)
	assert.Contains(t, stderr, "accepts 1 arg(s)")
}

func TestStatsSourceErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"not found", streak.NotFound(github.MessageUserNotFound), github.MessageUserNotFound},
		{"upstream", streak.Upstream(github.MessageUnavailable, context.DeadlineExceeded), github.MessageUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useSource(t, func(context.Context, string, int) ([]streak.Graph, error) {
				return nil, tt.err
			})

			out, stderr, err := execute(t, "stats", "ghost")

			require.ErrorIs(t, err, tt.err)
			assert.Empty(t, out)
			assert.Equal(t, "error: "+tt.message+"\n", stderr)
		})
	}
}

func TestStatsOpenSourceFailure(t *testing.T) {
	useSource(t, staticGraphs())
	openSource = func() (source.Source, func() error, error) {
		return nil, nil, errMissingTokens
	}

	_, stderr, err := execute(t, "stats", "octocat")

	require.ErrorIs(t, err, errMissingTokens)
	assert.Contains(t, stderr, github.MessageNoTokens)
}

func TestStatsEmptyCalendar(t *testing.T) {
	useSource(t, staticGraphs())

	out, _, err := execute(t, "stats", "newcomer")

	require.NoError(t, err)
	assert.Contains(t, out, "Total Contributions")
	assert.Contains(t, out, "0")
}
