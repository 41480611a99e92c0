// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package supervisor

import (
	"context"
	"log/slog"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"

	"github.com/tomtom215/streakstats/internal/logging"
)

// Layer selects the child supervisor a service runs under.
type Layer int

const (
	// LayerData holds the memory cache janitor and graph store GC.
	LayerData Layer = iota
	// LayerAPI holds the HTTP server.
	LayerAPI

	layerCount
)

func (l Layer) String() string {
	switch l {
	case LayerData:
		return "data-layer"
	case LayerAPI:
		return "api-layer"
	default:
		return "unknown-layer"
	}
}

// Config tunes restart behaviour. Zero values take suture's defaults:
// threshold 5, decay 30s, backoff 15s, shutdown timeout 10s.
type Config struct {
	// Logger receives supervisor events. Nil means the zerolog bridge.
	Logger *slog.Logger

	FailureThreshold float64
	FailureDecay     float64
	FailureBackoff   time.Duration
	ShutdownTimeout  time.Duration
}

func (c Config) spec() suture.Spec {
	return suture.Spec{
		FailureThreshold: c.FailureThreshold,
		FailureDecay:     c.FailureDecay,
		FailureBackoff:   c.FailureBackoff,
		Timeout:          c.ShutdownTimeout,
	}
}

// Tree is the server's supervisor: a root with one child per Layer. A
// graph store that keeps failing GC backs off inside the data layer while
// the API layer keeps serving.
type Tree struct {
	root   *suture.Supervisor
	layers [layerCount]*suture.Supervisor
}

// New builds the tree. Services are added with Add before or after Serve.
func New(cfg Config) *Tree {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewSlogLogger()
	}

	rootSpec := cfg.spec()
	rootSpec.EventHook = (&sutureslog.Handler{Logger: logger}).MustHook()

	t := &Tree{root: suture.New(logging.ServiceName, rootSpec)}
	for l := range t.layers {
		// Children inherit the root's EventHook when added.
		t.layers[l] = suture.New(Layer(l).String(), cfg.spec())
		t.root.Add(t.layers[l])
	}
	return t
}

// Add runs svc under layer.
func (t *Tree) Add(layer Layer, svc suture.Service) suture.ServiceToken {
	return t.layers[layer].Add(svc)
}

// Serve runs the tree until ctx is canceled.
func (t *Tree) Serve(ctx context.Context) error {
	return t.root.Serve(ctx)
}

// ServeBackground runs the tree in a goroutine. The channel yields the
// result of Serve and is then closed.
func (t *Tree) ServeBackground(ctx context.Context) <-chan error {
	return t.root.ServeBackground(ctx)
}

// UnstoppedServiceReport lists services that outlived the shutdown timeout.
func (t *Tree) UnstoppedServiceReport() ([]suture.UnstoppedService, error) {
	return t.root.UnstoppedServiceReport()
}
