// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package middleware

import (
	"net/http"

	"github.com/tomtom215/streakstats/internal/logging"
)

// RequestIDHeader is read from upstream proxies and echoed back to clients.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength bounds IDs accepted from upstream proxies.
const maxRequestIDLength = 64

// RequestID middleware assigns a unique ID to each request and stores it in
// the response header and the logging context. An ID supplied by an upstream
// proxy is kept after sanitization; otherwise a UUID v4 is generated.
func RequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := incomingRequestID(r)
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}

		w.Header().Set(RequestIDHeader, requestID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		next(w, r.WithContext(ctx))
	}
}

func incomingRequestID(r *http.Request) string {
	raw := r.Header.Get(RequestIDHeader)
	if raw == "" || len(raw) > maxRequestIDLength {
		return ""
	}
	return logging.SanitizeValue(raw, maxRequestIDLength)
}
