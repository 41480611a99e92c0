// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"sync"

	"github.com/tomtom215/streakstats/internal/logging"
)

// DemoPath is where requests without a user are redirected.
const DemoPath = "/demo/"

//go:embed templates/demo.html.tmpl
var demoFS embed.FS

var (
	demoTemplate     *template.Template
	demoTemplateOnce sync.Once
	errDemoTemplate  error
)

func getDemoTemplate() (*template.Template, error) {
	demoTemplateOnce.Do(func() {
		demoTemplate, errDemoTemplate = template.ParseFS(demoFS, "templates/demo.html.tmpl")
	})
	return demoTemplate, errDemoTemplate
}

type demoData struct {
	User         string
	Mode         string
	StartingYear string
	ExcludeDays  string
	CardURL      string
}

// Demo serves a page with a card preview and a form that builds card URLs.
// The form echoes the query string, so /demo/?user=octocat previews that user.
func (h *Handler) Demo(w http.ResponseWriter, r *http.Request) {
	tmpl, err := getDemoTemplate()
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to parse demo template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	query := r.URL.Query()
	data := demoData{
		User:         sanitizeUser(query.Get("user")),
		Mode:         query.Get("mode"),
		StartingYear: query.Get("starting_year"),
		ExcludeDays:  query.Get("exclude_days"),
	}
	if data.User == "" {
		data.User = "DenverCoder1"
	}
	if data.Mode != "weekly" {
		data.Mode = "daily"
	}
	data.CardURL = cardURL(data)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to execute demo template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")
	writeBody(w, r, http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func cardURL(d demoData) string {
	q := url.Values{}
	q.Set("user", d.User)
	if d.Mode == "weekly" {
		q.Set("mode", "weekly")
	}
	if d.StartingYear != "" {
		q.Set("starting_year", d.StartingYear)
	}
	if d.ExcludeDays != "" && d.Mode != "weekly" {
		q.Set("exclude_days", d.ExcludeDays)
	}
	return "/?" + q.Encode()
}
