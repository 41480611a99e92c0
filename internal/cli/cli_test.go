// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/tomtom215/streakstats/internal/source"
	"github.com/tomtom215/streakstats/internal/streak"
)

var testNow = time.Date(2024, time.January, 4, 15, 0, 0, 0, time.UTC)

// testGraph covers Mon Jan 1 to Thu Jan 4 2024 with a gap on Wednesday.
var testGraph = streak.Graph{
	"2024-01-01": 1,
	"2024-01-02": 2,
	"2024-01-03": 0,
	"2024-01-04": 3,
}

type fetchCall struct {
	user         string
	startingYear int
}

// useSource swaps the calendar source and clock for the duration of t.
func useSource(t *testing.T, fetch source.Func) *[]fetchCall {
	t.Helper()
	calls := &[]fetchCall{}
	origOpen, origNow, origNoColor := openSource, nowFunc, color.NoColor
	openSource = func() (source.Source, func() error, error) {
		return source.Func(func(ctx context.Context, user string, startingYear int) ([]streak.Graph, error) {
			*calls = append(*calls, fetchCall{user, startingYear})
			return fetch(ctx, user, startingYear)
		}), func() error { return nil }, nil
	}
	nowFunc = func() time.Time { return testNow }
	color.NoColor = true
	t.Cleanup(func() {
		openSource, nowFunc, color.NoColor = origOpen, origNow, origNoColor
	})
	return calls
}

func staticGraphs(graphs ...streak.Graph) source.Func {
	return func(context.Context, string, int) ([]streak.Graph, error) {
		return graphs, nil
	}
}

// execute runs the root command with args. Flag values are reset first
// because the command tree is package-level and keeps state across runs.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	for _, cmd := range rootCmd.Commands() {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}
