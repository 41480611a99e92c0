// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package github

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/streakstats/internal/streak"
)

func fixedNow(year int) func() time.Time {
	return func() time.Time { return time.Date(year, 6, 15, 12, 0, 0, 0, time.UTC) }
}

func TestSource_FetchGraphs_AscendingYears(t *testing.T) {
	api := &stubAPI{
		years: []int{2024, 2022, 2023},
		calendars: map[int]streak.Graph{
			2022: {"2022-05-01": 1},
			2023: {"2023-05-01": 2},
			2024: {"2024-05-01": 3},
		},
	}
	src := NewSource(api, WithNow(fixedNow(2024)), WithMaxConcurrentYears(2))

	graphs, err := src.FetchGraphs(context.Background(), "octocat", 0)
	if err != nil {
		t.Fatalf("FetchGraphs() error = %v", err)
	}
	if len(graphs) != 3 {
		t.Fatalf("got %d graphs, want 3", len(graphs))
	}
	for i, year := range []string{"2022-05-01", "2023-05-01", "2024-05-01"} {
		if _, ok := graphs[i][year]; !ok {
			t.Errorf("graphs[%d] = %v, want key %s", i, graphs[i], year)
		}
	}
}

func TestSource_FetchGraphs_StartingYear(t *testing.T) {
	api := &stubAPI{years: []int{2024, 2023, 2022, 2021}}
	src := NewSource(api, WithNow(fixedNow(2024)))

	if _, err := src.FetchGraphs(context.Background(), "octocat", 2023); err != nil {
		t.Fatal(err)
	}
	got := append([]int(nil), api.calls...)
	if len(got) != 2 {
		t.Errorf("fetched years = %v, want 2023 and 2024", got)
	}
}

func TestSource_FetchGraphs_PropagatesErrors(t *testing.T) {
	notFound := &stubAPI{yearsErr: streak.NotFound(MessageUserNotFound)}
	if _, err := NewSource(notFound).FetchGraphs(context.Background(), "nobody", 0); !errors.Is(err, streak.ErrNotFound) {
		t.Errorf("error = %v, want NotFound", err)
	}

	failing := &stubAPI{
		years:  []int{2023, 2024},
		calErr: map[int]error{2023: streak.Upstream(MessageUnavailable, errors.New("timeout"))},
	}
	graphs, err := NewSource(failing, WithNow(fixedNow(2024))).FetchGraphs(context.Background(), "octocat", 0)
	if !errors.Is(err, streak.ErrUpstream) {
		t.Errorf("error = %v, want Upstream", err)
	}
	if graphs != nil {
		t.Error("no partial results on error")
	}
}

func TestSource_FetchGraphs_NoHistory(t *testing.T) {
	api := &stubAPI{}
	graphs, err := NewSource(api, WithNow(fixedNow(2024))).FetchGraphs(context.Background(), "ghost", 0)
	if err != nil {
		t.Fatal(err)
	}
	if graphs == nil || len(graphs) != 0 {
		t.Errorf("graphs = %v, want empty non-nil slice", graphs)
	}
}

func TestSelectYears(t *testing.T) {
	created := time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		years    []int
		starting int
		created  time.Time
		want     []int
	}{
		{"sorted and current year added", []int{2022, 2020}, 0, created, []int{2020, 2022, 2024}},
		{"current already present", []int{2024, 2023}, 0, created, []int{2023, 2024}},
		{"starting year filters", []int{2024, 2021, 2019}, 2021, created, []int{2021, 2024}},
		{"starting year in future", []int{2024}, 2030, created, []int{}},
		{"new account without contributions", nil, 0, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), []int{2024}},
		{"no account data", nil, 0, time.Time{}, []int{}},
		{"future years dropped", []int{2030, 2024}, 0, created, []int{2024}},
		{"duplicates removed", []int{2023, 2023}, 0, created, []int{2023, 2024}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selectYears(tt.years, tt.starting, tt.created, 2024)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("selectYears() = %v, want %v", got, tt.want)
			}
		})
	}
}
