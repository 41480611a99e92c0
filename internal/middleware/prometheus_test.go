// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/streakstats/internal/metrics"
)

func chiWrap(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

func TestPrometheusMetrics_RoutePatternLabel(t *testing.T) {
	r := chi.NewRouter()
	r.Use(chiWrap(PrometheusMetrics))
	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/health/live", "200"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live?verbose=1", nil))

	if got := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/health/live", "200")); got != before+1 {
		t.Errorf("api_requests_total{/health/live} = %v, want %v", got, before+1)
	}
}

func TestPrometheusMetrics_TrailingSlashSeparateSeries(t *testing.T) {
	r := chi.NewRouter()
	r.Use(chiWrap(PrometheusMetrics))
	r.Get("/demo", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/demo/", http.StatusMovedPermanently)
	})
	r.Get("/demo/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	redirectBefore := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/demo", "301"))
	pageBefore := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/demo/", "200"))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/demo", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/demo/?user=octocat", nil))

	if got := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/demo", "301")); got != redirectBefore+1 {
		t.Errorf("api_requests_total{/demo,301} = %v, want %v", got, redirectBefore+1)
	}
	if got := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/demo/", "200")); got != pageBefore+1 {
		t.Errorf("api_requests_total{/demo/,200} = %v, want %v", got, pageBefore+1)
	}
	if got := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/demo", "200")); got != 0 {
		t.Errorf("api_requests_total{/demo,200} = %v, want 0", got)
	}
}

func TestRouteLabel(t *testing.T) {
	var got string
	capture := func(w http.ResponseWriter, r *http.Request) { got = RouteLabel(r) }

	sub := chi.NewRouter()
	sub.Get("/users/{user}", capture)
	sub.Get("/", capture)

	r := chi.NewRouter()
	r.Get("/", capture)
	r.Mount("/api", sub)

	tests := map[string]string{
		"/":                  "/",
		"/api/users/octocat": "/api/users/{user}",
		"/api/":              "/api/",
	}
	for path, want := range tests {
		got = ""
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
		if got != want {
			t.Errorf("RouteLabel(%s) = %q, want %q", path, got, want)
		}
	}

	if l := RouteLabel(httptest.NewRequest(http.MethodGet, "/", nil)); l != unmatchedRoute {
		t.Errorf("RouteLabel without router = %q, want %q", l, unmatchedRoute)
	}
}

func TestPrometheusMetrics_UnmatchedRoute(t *testing.T) {
	r := chi.NewRouter()
	r.Use(chiWrap(PrometheusMetrics))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {})

	before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", unmatchedRoute, "404"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/wp-admin/setup.php", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", unmatchedRoute, "404")); got != before+1 {
		t.Errorf("api_requests_total{unmatched} = %v, want %v", got, before+1)
	}
}

func TestPrometheusMetrics_WithoutRouter(t *testing.T) {
	handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", unmatchedRoute, "502"))
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", unmatchedRoute, "502")); got != before+1 {
		t.Errorf("api_requests_total = %v, want %v", got, before+1)
	}
}

func TestPrometheusMetrics_ImplicitStatus(t *testing.T) {
	handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {})

	before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("HEAD", unmatchedRoute, "200"))
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodHead, "/", nil))

	if got := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("HEAD", unmatchedRoute, "200")); got != before+1 {
		t.Errorf("api_requests_total = %v, want %v", got, before+1)
	}
}

func TestStatusLabel(t *testing.T) {
	t.Parallel()

	tests := map[int]string{0: "200", 200: "200", 301: "301", 404: "404", 503: "503"}
	for in, want := range tests {
		if got := statusLabel(in); got != want {
			t.Errorf("statusLabel(%d) = %q, want %q", in, got, want)
		}
	}
}

func BenchmarkPrometheusMetrics(b *testing.B) {
	handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		handler(httptest.NewRecorder(), req)
	}
}
