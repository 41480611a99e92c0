// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"

	"github.com/tomtom215/streakstats/internal/streak"
)

// Format selects the output representation.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatJSON Format = "json"
)

// ParseFormat parses the "type" query parameter. Empty means SVG.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatSVG:
		return FormatSVG, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return FormatSVG, streak.InvalidInput("Unsupported output type %q. Use svg or json.", s)
	}
}

// ContentType returns the Content-Type header value for f.
func (f Format) ContentType() string {
	if f == FormatJSON {
		return "application/json"
	}
	return "image/svg+xml; charset=utf-8"
}

// Mode names reported in JSON output.
const (
	ModeDaily  = "daily"
	ModeWeekly = "weekly"
)

//go:embed templates/*.svg.tmpl
var templateFS embed.FS

var (
	templates     *template.Template
	templatesOnce sync.Once
	errTemplates  error
)

func getTemplates() (*template.Template, error) {
	templatesOnce.Do(func() {
		var parseErr error
		templates, parseErr = template.ParseFS(templateFS, "templates/*.svg.tmpl")
		if parseErr != nil {
			errTemplates = fmt.Errorf("parsing card templates: %w", parseErr)
		}
	})
	return templates, errTemplates
}

// Renderer writes streak statistics as SVG cards or JSON documents.
type Renderer struct {
	now func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithNow overrides the clock used to decide "Present" and whether a date
// needs its year printed.
func WithNow(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Stat is one column of a card: a figure, its caption and its date range.
type Stat struct {
	Value string
	Label string
	Range string
}

// Summary is the three-column view shared by the card and the CLI table.
type Summary struct {
	Total   Stat
	Current Stat
	Longest Stat
}

// Rows returns the columns in display order.
func (s Summary) Rows() []Stat {
	return []Stat{s.Total, s.Current, s.Longest}
}

// Stats writes daily statistics.
func (r *Renderer) Stats(w io.Writer, f Format, res streak.Result) error {
	if f == FormatJSON {
		return writeJSON(w, ModeDaily, res)
	}
	return r.card(w, r.DailySummary(res))
}

// DailySummary formats daily statistics for display.
func (r *Renderer) DailySummary(res streak.Result) Summary {
	today := streak.Midnight(r.now())
	return Summary{
		Total: Stat{
			Value: humanize.Comma(int64(res.TotalContributions)),
			Label: "Total Contributions",
			Range: r.formatRange(res.FirstContribution, res.RangeEnd, today),
		},
		Current: Stat{
			Value: humanize.Comma(int64(res.CurrentStreak.Length)),
			Label: "Current Streak",
			Range: r.formatRange(res.CurrentStreak.Start, res.CurrentStreak.End, today),
		},
		Longest: Stat{
			Value: humanize.Comma(int64(res.LongestStreak.Length)),
			Label: "Longest Streak",
			Range: r.formatRange(res.LongestStreak.Start, res.LongestStreak.End, today),
		},
	}
}

// Weekly writes week-granularity statistics.
func (r *Renderer) Weekly(w io.Writer, f Format, res streak.WeeklyResult) error {
	if f == FormatJSON {
		return writeJSON(w, ModeWeekly, res)
	}
	return r.card(w, r.WeeklySummary(res))
}

// WeeklySummary formats weekly statistics for display. Streak ranges run
// from the first to the last week start; the current week reads as "Present".
func (r *Renderer) WeeklySummary(res streak.WeeklyResult) Summary {
	thisWeek := streak.WeekStart(r.now())
	var lastWeek time.Time
	if n := len(res.Weeks); n > 0 {
		lastWeek = res.Weeks[n-1].WeekStart
	}
	return Summary{
		Total: Stat{
			Value: humanize.Comma(int64(res.TotalContributions)),
			Label: "Total Contributions",
			Range: r.formatRange(res.FirstContribution, lastWeek, thisWeek),
		},
		Current: Stat{
			Value: humanize.Comma(int64(res.CurrentStreak.Length)),
			Label: "Week Streak",
			Range: r.formatRange(res.CurrentStreak.Start, res.CurrentStreak.End, thisWeek),
		},
		Longest: Stat{
			Value: humanize.Comma(int64(res.LongestStreak.Length)),
			Label: "Longest Week Streak",
			Range: r.formatRange(res.LongestStreak.Start, res.LongestStreak.End, thisWeek),
		},
	}
}

// Error writes an error message. JSON errors are {"error": message}.
func (r *Renderer) Error(w io.Writer, f Format, message string) error {
	if f == FormatJSON {
		return json.NewEncoder(w).Encode(map[string]string{"error": message})
	}
	return execute(w, "error", struct{ Message string }{message})
}

func (r *Renderer) card(w io.Writer, data Summary) error {
	return execute(w, "card", data)
}

// execute renders into a buffer first so a failed template never leaves a
// partial document on w.
func execute(w io.Writer, name string, data any) error {
	tmpl, err := getTemplates()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("executing template %s: %w", name, err)
	}
	_, err = buf.WriteTo(w)
	return err
}

// writeJSON encodes v and adds a "mode" member to the resulting object.
func writeJSON(w io.Writer, mode string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding stats: %w", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("encoding stats: %w", err)
	}
	modeJSON, err := json.Marshal(mode)
	if err != nil {
		return err
	}
	doc["mode"] = modeJSON
	return json.NewEncoder(w).Encode(doc)
}
