// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/streakstats/internal/logging"
)

// response is the JSON envelope of the health endpoints.
type response struct {
	Status   string   `json:"status"`
	Data     any      `json:"data,omitempty"`
	Metadata metadata `json:"metadata"`
}

type metadata struct {
	Timestamp time.Time `json:"timestamp"`
}

// setCacheHeaders marks the response cacheable for maxAge from now.
func setCacheHeaders(w http.ResponseWriter, now time.Time, maxAge time.Duration) {
	now = now.UTC()
	w.Header().Set("Expires", now.Add(maxAge).Format(http.TimeFormat))
	w.Header().Set("Last-Modified", now.Format(http.TimeFormat))
	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(maxAge.Seconds())))
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, r *http.Request, status int, resp *response) {
	data, err := json.Marshal(resp)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeBody(w, r, status, "application/json", data)
}

// writeBody writes a complete response body.
func writeBody(w http.ResponseWriter, r *http.Request, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write response")
	}
}
