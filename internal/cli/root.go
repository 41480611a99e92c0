// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/streakstats/internal/app"
	"github.com/tomtom215/streakstats/internal/config"
	"github.com/tomtom215/streakstats/internal/github"
	"github.com/tomtom215/streakstats/internal/logging"
	"github.com/tomtom215/streakstats/internal/source"
	"github.com/tomtom215/streakstats/internal/streak"
)

var rootCmd = &cobra.Command{
	Use:           "streak",
	Short:         "GitHub contribution streak statistics",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var errMissingTokens = &streak.Error{Kind: streak.KindUnknown, Message: github.MessageNoTokens}

// nowFunc and openSource are replaced in tests.
var (
	nowFunc    = time.Now
	openSource = openConfiguredSource
)

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx, which cancels GitHub fetches.
func ExecuteContext(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), Error("error: "+errorMessage(err)))
	}
	return err
}

// errorMessage prefers the user-facing message of a streak error. Other
// errors (flag parsing, configuration) are printed as they are.
func errorMessage(err error) string {
	var se *streak.Error
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}

// openConfiguredSource loads configuration and assembles the calendar
// source. The BadgerDB store is shared with the server when a path is set,
// so repeated runs reuse cached graphs.
func openConfiguredSource() (source.Source, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: "console",
		Caller: cfg.Logging.Caller,
		Output: os.Stderr,
	})
	if !cfg.HasTokens() {
		return nil, nil, errMissingTokens
	}

	stack, err := app.Build(cfg, app.Options{})
	if err != nil {
		return nil, nil, err
	}
	return stack.Source, stack.Close, nil
}
