// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

/*
Package middleware provides HTTP middleware components for the streak stats server.

Key Components:

  - RequestID: UUID-based request tracking, stored in the logging context
  - PrometheusMetrics: request count, latency and in-flight instrumentation
  - Compression: gzip for SVG, JSON and HTML responses

All middleware use the http.HandlerFunc form and are adapted to Chi's
func(http.Handler) http.Handler by the api package:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.Compression))

Compression Details:

The compression decision is made when the handler writes its header, so the
Content-Type chosen by the handler is known. Redirects, 204/304 responses,
HEAD requests and clients sending gzip;q=0 are never compressed. Every
response carries Vary: Accept-Encoding because card responses are cached by
CDNs for hours.

Metrics Labels:

PrometheusMetrics labels requests with the Chi route pattern ("/", "/demo/")
rather than the raw URL path, keeping label cardinality bounded.

Thread Safety:

All middleware components are safe for concurrent use. Gzip writers are
pooled per request.

See Also:

  - internal/api: HTTP handlers wrapped by middleware
  - internal/metrics: Prometheus metrics definitions
*/
package middleware
