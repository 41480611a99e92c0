// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tomtom215/streakstats/internal/render"
	"github.com/tomtom215/streakstats/internal/streak"
	"github.com/tomtom215/streakstats/internal/validation"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// statsOptions holds the validated stats flags.
type statsOptions struct {
	User         string `param:"USER" validate:"required,ghuser"`
	StartingYear int    `param:"--starting-year" validate:"omitempty,gte=2005,lte=9999"`
	Mode         string `param:"--mode" validate:"oneof=daily weekly"`
	ExcludeDays  string `param:"--exclude-days" validate:"omitempty,weekdays"`
	Output       string `param:"--output" validate:"oneof=table json"`
}

var statsCmd = LeafCommand{
	Use:   "stats USER",
	Short: "Show contribution streaks for a GitHub user",
	Long: "Fetch the contribution calendar of USER from GitHub and print the " +
		"total contributions, the current streak and the longest streak.",
	Example: "  streak stats octocat\n" +
		"  streak stats octocat --exclude-days sat,sun\n" +
		"  streak stats octocat --mode weekly --output json",
	Args: cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "mode", Shorthand: "m", Default: render.ModeDaily, Usage: "streak granularity: daily or weekly"},
		{Name: "exclude-days", Shorthand: "x", Usage: "comma-separated weekdays that neither extend nor break a daily streak"},
		{Name: "output", Shorthand: "o", Default: outputTable, Usage: "output format: table or json"},
	},
	IntFlags: []IntFlag{
		{Name: "starting-year", Usage: "ignore contributions before this year"},
	},
	RunE: runStats,
}.Build()

func runStats(cmd *cobra.Command, args []string) error {
	opts, err := parseStatsFlags(cmd, args[0])
	if err != nil {
		return err
	}

	src, closeSource, err := openSource()
	if err != nil {
		return err
	}
	defer func() { _ = closeSource() }()

	graphs, err := src.FetchGraphs(cmd.Context(), opts.User, opts.StartingYear)
	if err != nil {
		return err
	}
	now := nowFunc()
	days, err := streak.Normalize(graphs, streak.NormalizeOptions{StartingYear: opts.StartingYear, Today: now})
	if err != nil {
		return err
	}

	renderer := render.New(render.WithNow(nowFunc))
	out := cmd.OutOrStdout()

	if opts.Mode == render.ModeWeekly {
		res := streak.ComputeWeekly(days)
		if opts.Output == outputJSON {
			return renderer.Weekly(out, render.FormatJSON, res)
		}
		return printSummary(out, opts, renderer.WeeklySummary(res))
	}

	excluded, err := streak.ParseWeekdayList(opts.ExcludeDays)
	if err != nil {
		return err
	}
	res, err := streak.Compute(days, excluded)
	if err != nil {
		return err
	}
	if opts.Output == outputJSON {
		return renderer.Stats(out, render.FormatJSON, res)
	}
	return printSummary(out, opts, renderer.DailySummary(res))
}

func parseStatsFlags(cmd *cobra.Command, user string) (statsOptions, error) {
	flags := cmd.Flags()
	mode, _ := flags.GetString("mode")
	exclude, _ := flags.GetString("exclude-days")
	output, _ := flags.GetString("output")
	year, _ := flags.GetInt("starting-year")

	opts := statsOptions{
		User:         user,
		StartingYear: year,
		Mode:         strings.ToLower(strings.TrimSpace(mode)),
		ExcludeDays:  exclude,
		Output:       strings.ToLower(strings.TrimSpace(output)),
	}
	if verr := validation.ValidateStruct(&opts); verr != nil {
		return opts, verr.ToStreakError()
	}
	return opts, nil
}

func printSummary(w io.Writer, opts statsOptions, summary render.Summary) error {
	heading := Primary(opts.User) + " " + Silent("("+opts.Mode+")")
	if opts.Mode == render.ModeDaily && opts.ExcludeDays != "" {
		heading += " " + Info("excluding "+opts.ExcludeDays)
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Statistic", "Value", "Range"})
	for _, s := range summary.Rows() {
		tbl.AppendRow(table.Row{s.Label, s.Value, s.Range})
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", heading, tbl.Render())
	return err
}
