// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package github

import (
	"context"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/streakstats/internal/logging"
	"github.com/tomtom215/streakstats/internal/streak"
)

// DefaultMaxConcurrentYears bounds parallel calendar fetches per user.
const DefaultMaxConcurrentYears = 4

// Source fetches every contribution year of a user, one calendar per year.
// It satisfies source.Source.
type Source struct {
	api           API
	maxConcurrent int
	now           func() time.Time
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithMaxConcurrentYears bounds how many year calendars are fetched at once.
func WithMaxConcurrentYears(n int) SourceOption {
	return func(s *Source) {
		if n > 0 {
			s.maxConcurrent = n
		}
	}
}

// WithNow replaces the clock used to decide the current year.
func WithNow(now func() time.Time) SourceOption {
	return func(s *Source) { s.now = now }
}

// NewSource creates a Source on top of api (usually a CircuitBreakerClient).
func NewSource(api API, opts ...SourceOption) *Source {
	s := &Source{
		api:           api,
		maxConcurrent: DefaultMaxConcurrentYears,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchGraphs returns one graph per contribution year, oldest first.
// With startingYear > 0 earlier years are skipped. The current year is
// always fetched for users with any history, because GitHub omits it from
// contributionYears until the first contribution of the year and the current
// streak depends on it.
func (s *Source) FetchGraphs(ctx context.Context, user string, startingYear int) ([]streak.Graph, error) {
	years, createdAt, err := s.api.ContributionYears(ctx, user)
	if err != nil {
		return nil, err
	}

	selected := selectYears(years, startingYear, createdAt, s.now().UTC().Year())
	if len(selected) == 0 {
		return []streak.Graph{}, nil
	}

	graphs := make([]streak.Graph, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for i, year := range selected {
		g.Go(func() error {
			graph, err := s.api.YearCalendar(gctx, user, year)
			if err != nil {
				return err
			}
			graphs[i] = graph
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().
		Str("user", user).
		Ints("years", selected).
		Msg("Fetched contribution calendars")

	return graphs, nil
}

// selectYears filters, completes and sorts the years to fetch.
func selectYears(years []int, startingYear int, createdAt time.Time, currentYear int) []int {
	selected := make([]int, 0, len(years)+1)
	for _, y := range years {
		if y > currentYear+1 {
			continue
		}
		if startingYear > 0 && y < startingYear {
			continue
		}
		selected = append(selected, y)
	}

	hasHistory := len(years) > 0 || (!createdAt.IsZero() && createdAt.Year() <= currentYear)
	if hasHistory && (startingYear == 0 || startingYear <= currentYear) && !slices.Contains(selected, currentYear) {
		selected = append(selected, currentYear)
	}

	slices.Sort(selected)
	return slices.Compact(selected)
}
