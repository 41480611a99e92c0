// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/streakstats/internal/metrics"
)

// unmatchedRoute labels requests no route matched so that scanners probing
// random paths do not create new label values.
const unmatchedRoute = "unmatched"

// PrometheusMetrics records request counts, latency and in-flight requests.
// The endpoint label is the Chi route pattern, not the raw path.
func PrometheusMetrics(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next(ww, r)

		metrics.RecordAPIRequest(r.Method, routeLabel(r), statusLabel(ww.Status()), time.Since(start))
	}
}

// statusLabel reports 200 for handlers that never wrote anything, which is
// what net/http sends for them.
func statusLabel(status int) string {
	if status == 0 {
		status = http.StatusOK
	}
	return strconv.Itoa(status)
}

// RouteLabel returns the matched Chi route pattern with mount wildcards and
// doubled slashes collapsed. Unlike chi's RoutePattern it keeps a trailing
// slash, so "/demo" and "/demo/" are separate series. It must be called
// after routing.
func RouteLabel(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || len(rctx.RoutePatterns) == 0 {
		return unmatchedRoute
	}
	pattern := strings.Join(rctx.RoutePatterns, "")
	for strings.Contains(pattern, "/*/") {
		pattern = strings.ReplaceAll(pattern, "/*/", "/")
	}
	for strings.Contains(pattern, "//") {
		pattern = strings.ReplaceAll(pattern, "//", "/")
	}
	return pattern
}
