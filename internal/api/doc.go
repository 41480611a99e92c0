// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

/*
Package api provides the HTTP layer of the streak stats service.

Routes:

	GET /              stats card (SVG or JSON), see Handler.Stats
	GET /demo/         demo page with a card preview and URL builder
	GET /health/live   liveness probe
	GET /health/ready  readiness probe (token configured, breaker closed)
	GET /metrics       Prometheus metrics

Global middleware, in order: request ID with logging context, real IP,
panic recovery and CORS. The stats and demo routes add httprate rate
limiting, security headers, Prometheus request metrics and gzip compression.

Stats responses always carry cache headers (Cache-Control public with a
three hour max-age by default, Expires and Last-Modified), including error
responses, so that image proxies such as GitHub's camo do not hammer the
service for broken embeds.

Errors from the core and the calendar source are *streak.Error values. Their
Kind selects the status code (400, 404, 502 or 500) and their Message is
rendered as an error card or as {"error": "..."}.

Usage:

	handler := api.NewHandler(cachedSource, render.New(), api.HandlerConfig{
	    HasTokens: cfg.HasTokens(),
	    MaxAge:    cfg.Cache.MaxAge,
	}, api.WithBreaker(breaker))
	mw := api.NewChiMiddlewareFromConfig(cfg.Security.CORSOrigins,
	    cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow, cfg.Security.RateLimitDisabled)
	srv := &http.Server{Handler: api.NewRouter(handler, mw).SetupChi()}
*/
package api
