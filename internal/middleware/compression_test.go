// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sampleCard = `<svg xmlns="http://www.w3.org/2000/svg" width="495" height="195"></svg>`

func svgHandler(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, sampleCard)
	}
}

func TestCompression_SVGWithGzipAccept(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?user=octocat", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")
	rec := httptest.NewRecorder()

	Compression(svgHandler(http.StatusOK))(rec, req)

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", rec.Header().Get("Content-Encoding"))
	}
	if rec.Header().Get("Vary") != "Accept-Encoding" {
		t.Errorf("Vary = %q, want Accept-Encoding", rec.Header().Get("Vary"))
	}

	reader, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("Failed to create gzip reader: %v", err)
	}
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("Failed to read decompressed data: %v", err)
	}
	if string(decompressed) != sampleCard {
		t.Errorf("decompressed body = %q", decompressed)
	}
}

func TestCompression_WithoutGzipAccept(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	Compression(svgHandler(http.StatusOK))(rec, req)

	if rec.Header().Get("Content-Encoding") != "" {
		t.Errorf("unexpected Content-Encoding %q", rec.Header().Get("Content-Encoding"))
	}
	if rec.Body.String() != sampleCard {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestCompression_GzipRefused(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip;q=0, identity")
	rec := httptest.NewRecorder()

	Compression(svgHandler(http.StatusOK))(rec, req)

	if rec.Header().Get("Content-Encoding") != "" {
		t.Errorf("gzip;q=0 must disable compression, got %q", rec.Header().Get("Content-Encoding"))
	}
}

func TestCompression_SkipsRedirects(t *testing.T) {
	handler := Compression(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "demo/", http.StatusFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if rec.Header().Get("Content-Encoding") != "" {
		t.Error("redirects must not be compressed")
	}
}

func TestCompression_SkipsUnknownTypes(t *testing.T) {
	handler := Compression(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Header().Get("Content-Encoding") != "" {
		t.Error("image/png must not be compressed")
	}
}

func TestCompression_HeadRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodHead, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	Compression(svgHandler(http.StatusOK))(rec, req)

	if rec.Header().Get("Content-Encoding") != "" {
		t.Error("HEAD responses must not be compressed")
	}
}

func TestCompression_ImplicitHeader(t *testing.T) {
	handler := Compression(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"error":"`+strings.Repeat("x", 10)+`"}`)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler(rec, req)

	// DetectContentType sniffs text/plain for JSON bodies
	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Errorf("Content-Encoding = %q, want gzip", rec.Header().Get("Content-Encoding"))
	}
}

func TestAcceptsGzip(t *testing.T) {
	tests := map[string]bool{
		"":                   false,
		"gzip":               true,
		"GZIP":               true,
		"deflate, gzip":      true,
		"gzip;q=0.5":         true,
		"gzip; q=0":          false,
		"gzip;q=0.000":       false,
		"br":                 false,
		"x-gzip":             false,
		"identity, gzip;q=1": true,
	}
	for header, want := range tests {
		if got := acceptsGzip(header); got != want {
			t.Errorf("acceptsGzip(%q) = %v, want %v", header, got, want)
		}
	}
}
