// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package api

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/streakstats/internal/github"
	"github.com/tomtom215/streakstats/internal/logging"
	"github.com/tomtom215/streakstats/internal/metrics"
	"github.com/tomtom215/streakstats/internal/render"
	"github.com/tomtom215/streakstats/internal/streak"
	"github.com/tomtom215/streakstats/internal/validation"
)

// StatsRequest is the validated form of the stats query string.
type StatsRequest struct {
	User         string `param:"user" validate:"required,ghuser"`
	StartingYear int    `param:"starting_year" validate:"omitempty,gte=2005,lte=9999"`
	Mode         string `param:"mode" validate:"oneof=daily weekly"`
	ExcludeDays  string `param:"exclude_days" validate:"omitempty,weekdays"`
}

// Stats renders the contribution streak card for ?user=.
//
// Query parameters:
//   - user: GitHub login; characters other than letters, digits and hyphens are dropped
//   - starting_year: ignore contributions before this year
//   - mode: "weekly" for week streaks, anything else for daily streaks
//   - exclude_days: comma-separated weekdays that neither extend nor break a streak
//   - type: "svg" (default) or "json"
//
// Without a user the request is redirected to the demo page.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	setCacheHeaders(w, h.now(), h.maxAge)

	query := r.URL.Query()
	if !query.Has("user") {
		http.Redirect(w, r, DemoPath, http.StatusFound)
		return
	}

	format, err := render.ParseFormat(query.Get("type"))
	if err != nil {
		h.respondStatsError(w, r, format, err)
		return
	}

	if !h.hasTokens {
		h.respondStatsError(w, r, format, errMissingTokens)
		return
	}

	req, err := parseStatsRequest(query.Get("user"), query.Get("starting_year"), query.Get("mode"), query.Get("exclude_days"))
	if err != nil {
		h.respondStatsError(w, r, format, err)
		return
	}

	ctx := logging.ContextWithLogger(r.Context(), logging.Ctx(r.Context()).With().
		Str("user", req.User).
		Str("mode", req.Mode).
		Logger())
	r = r.WithContext(ctx)

	graphs, err := h.source.FetchGraphs(ctx, req.User, req.StartingYear)
	if err != nil {
		h.respondStatsError(w, r, format, err)
		return
	}

	days, err := streak.Normalize(graphs, streak.NormalizeOptions{
		StartingYear: req.StartingYear,
		Today:        h.now(),
	})
	if err != nil {
		h.respondStatsError(w, r, format, err)
		return
	}

	var buf bytes.Buffer
	start := time.Now()
	if req.Mode == render.ModeWeekly {
		res := streak.ComputeWeekly(days)
		metrics.RecordStreakComputation(req.Mode, "success", len(days), time.Since(start))
		err = h.renderer.Weekly(&buf, format, res)
	} else {
		excluded, perr := streak.ParseWeekdayList(req.ExcludeDays)
		if perr != nil {
			h.respondStatsError(w, r, format, perr)
			return
		}
		res, cerr := streak.Compute(days, excluded)
		if cerr != nil {
			metrics.RecordStreakComputation(req.Mode, "error", len(days), time.Since(start))
			h.respondStatsError(w, r, format, cerr)
			return
		}
		metrics.RecordStreakComputation(req.Mode, "success", len(days), time.Since(start))
		err = h.renderer.Stats(&buf, format, res)
	}
	if err != nil {
		h.respondStatsError(w, r, format, err)
		return
	}

	writeBody(w, r, http.StatusOK, format.ContentType(), buf.Bytes())
}

// parseStatsRequest builds and validates a StatsRequest from raw query values.
func parseStatsRequest(user, startingYear, mode, excludeDays string) (StatsRequest, error) {
	req := StatsRequest{
		User:        sanitizeUser(user),
		Mode:        render.ModeDaily,
		ExcludeDays: excludeDays,
	}
	if mode == render.ModeWeekly {
		req.Mode = render.ModeWeekly
	}
	if s := strings.TrimSpace(startingYear); s != "" {
		year, err := strconv.Atoi(s)
		if err != nil {
			return req, streak.InvalidInput("starting_year must be a year, got %q", logging.SanitizeValue(s, 16))
		}
		req.StartingYear = year
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		return req, verr.ToStreakError()
	}
	return req, nil
}

// sanitizeUser keeps only the characters allowed in a GitHub login.
func sanitizeUser(user string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return -1
		}
	}, user)
}

// errMissingTokens is answered with 500 because it is a server misconfiguration.
var errMissingTokens = &streak.Error{Kind: streak.KindUnknown, Message: github.MessageNoTokens}

// respondStatsError logs err and renders it in the requested format.
// Server-side failures are logged at error level with the full chain.
func (h *Handler) respondStatsError(w http.ResponseWriter, r *http.Request, format render.Format, err error) {
	status := streak.StatusOf(err)
	message := streak.MessageOf(err)

	log := logging.Ctx(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Str("kind", streak.KindOf(err).String()).Msg("Stats request failed")
	} else {
		log.Info().Int("status", status).Str("kind", streak.KindOf(err).String()).Str("message", message).Msg("Stats request rejected")
	}

	var buf bytes.Buffer
	if rerr := h.renderer.Error(&buf, format, message); rerr != nil {
		log.Error().Err(rerr).Msg("Failed to render error")
		http.Error(w, message, status)
		return
	}
	writeBody(w, r, status, format.ContentType(), buf.Bytes())
}
