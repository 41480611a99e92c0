// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package api

import (
	"net/http"
)

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK as long as the process can serve HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &response{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": h.now().Sub(h.startTime).Seconds(),
		},
		Metadata: metadata{Timestamp: h.now()},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 200 OK only if a GitHub token is configured and the circuit
// breaker in front of GitHub is not open; 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	breakerOpen := h.breaker != nil && h.breaker.IsOpen()
	ready := h.hasTokens && !breakerOpen

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, r, statusCode, &response{
		Status: status,
		Data: map[string]interface{}{
			"tokens_configured": h.hasTokens,
			"breaker_open":      breakerOpen,
			"ready_to_serve":    ready,
			"uptime":            h.now().Sub(h.startTime).Seconds(),
		},
		Metadata: metadata{Timestamp: h.now()},
	})
}
