// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package store

import (
	"context"
	"errors"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/streakstats/internal/streak"
)

func createTestStore(t *testing.T, ttl time.Duration) *GraphStore {
	t.Helper()

	dir, err := os.MkdirTemp("", "streakstats-store-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	s, err := Open(Config{Path: dir, TTL: ttl})
	if err != nil {
		os.RemoveAll(dir)
		t.Fatalf("Open() error = %v", err)
	}

	t.Cleanup(func() {
		s.Close()
		os.RemoveAll(dir)
	})
	return s
}

func sampleGraphs() []streak.Graph {
	return []streak.Graph{
		{"2023-12-30": 1, "2023-12-31": 0},
		{"2024-01-01": 4, "2024-01-02": 2},
	}
}

func TestOpen_Validation(t *testing.T) {
	if _, err := Open(Config{Path: t.TempDir()}); err == nil {
		t.Error("expected error for zero TTL")
	}
	if _, err := Open(Config{TTL: time.Hour}); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestGraphStore_PutGet(t *testing.T) {
	s := createTestStore(t, time.Hour)
	ctx := context.Background()

	if err := s.Put(ctx, "Octocat", 2023, sampleGraphs()); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := s.Get(ctx, "octocat", 2023)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !reflect.DeepEqual(got, sampleGraphs()) {
		t.Errorf("Get() = %v, want %v", got, sampleGraphs())
	}

	if _, err := s.Get(ctx, "octocat", 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() other year error = %v, want ErrNotFound", err)
	}

	count, err := s.Count(ctx)
	if err != nil || count != 1 {
		t.Errorf("Count() = %d, %v; want 1", count, err)
	}
}

func TestGraphStore_Expiry(t *testing.T) {
	// Badger TTLs have one-second resolution.
	s := createTestStore(t, time.Second)
	ctx := context.Background()

	if err := s.Put(ctx, "octocat", 0, sampleGraphs()); err != nil {
		t.Fatal(err)
	}
	time.Sleep(2100 * time.Millisecond)

	if _, err := s.Get(ctx, "octocat", 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after TTL error = %v, want ErrNotFound", err)
	}
}

func TestGraphStore_Delete(t *testing.T) {
	s := createTestStore(t, time.Hour)
	ctx := context.Background()

	if err := s.Put(ctx, "octocat", 0, sampleGraphs()); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, "OCTOCAT", 0); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(ctx, "octocat", 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete error = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "nobody", 0); err != nil {
		t.Errorf("Delete() missing key error = %v", err)
	}
}

func TestGraphStore_EmptyGraphs(t *testing.T) {
	s := createTestStore(t, time.Hour)
	ctx := context.Background()

	if err := s.Put(ctx, "newuser", 0, []streak.Graph{}); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(ctx, "newuser", 0)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Get() = %v, want empty", got)
	}
}

func TestGraphStore_Closed(t *testing.T) {
	s := createTestStore(t, time.Hour)
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	ctx := context.Background()
	if _, err := s.Get(ctx, "octocat", 0); !errors.Is(err, ErrClosed) {
		t.Errorf("Get() error = %v, want ErrClosed", err)
	}
	if err := s.Put(ctx, "octocat", 0, nil); !errors.Is(err, ErrClosed) {
		t.Errorf("Put() error = %v, want ErrClosed", err)
	}
	if _, err := s.RunGC(); !errors.Is(err, ErrClosed) {
		t.Errorf("RunGC() error = %v, want ErrClosed", err)
	}
}

func TestGraphStore_CancelledContext(t *testing.T) {
	s := createTestStore(t, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Get(ctx, "octocat", 0); !errors.Is(err, context.Canceled) {
		t.Errorf("Get() error = %v, want context.Canceled", err)
	}
}

func TestGraphStore_InMemory(t *testing.T) {
	s, err := Open(Config{InMemory: true, TTL: time.Hour})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if err := s.Put(ctx, "octocat", 0, sampleGraphs()); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(ctx, "octocat", 0); err != nil {
		t.Errorf("Get() error = %v", err)
	}
	if reclaimed, err := s.RunGC(); err != nil || reclaimed {
		t.Errorf("RunGC() in memory = %v, %v; want false, nil", reclaimed, err)
	}
}

func TestKey(t *testing.T) {
	if string(Key("OctoCat", 2020)) != "graphs:octocat:2020" {
		t.Errorf("Key() = %s", Key("OctoCat", 2020))
	}
}

type fakeGC struct {
	calls int
	err   error
}

func (f *fakeGC) RunGC() (bool, error) {
	f.calls++
	return f.calls%2 == 0, f.err
}

func TestGCService_Serve(t *testing.T) {
	fake := &fakeGC{}
	svc := &GCService{store: fake, interval: 5 * time.Millisecond}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want deadline exceeded", err)
	}
	if fake.calls == 0 {
		t.Error("expected at least one GC run")
	}
	if svc.String() != "graph-store-gc" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestGCService_StopsOnClosedStore(t *testing.T) {
	svc := &GCService{store: &fakeGC{err: ErrClosed}, interval: time.Millisecond}

	err := svc.Serve(context.Background())
	if !errors.Is(err, suture.ErrDoNotRestart) || !errors.Is(err, ErrClosed) {
		t.Errorf("Serve() = %v, want ErrDoNotRestart wrapping ErrClosed", err)
	}
}

func TestGCService_ToleratesGCErrors(t *testing.T) {
	fake := &fakeGC{err: errors.New("disk hiccup")}
	svc := &GCService{store: fake, interval: 2 * time.Millisecond}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want deadline exceeded", err)
	}
	if fake.calls < 2 {
		t.Errorf("GC should keep running after errors, calls = %d", fake.calls)
	}
}
