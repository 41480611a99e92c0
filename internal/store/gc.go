// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/streakstats/internal/logging"
	"github.com/tomtom215/streakstats/internal/metrics"
)

// gcRunner is the part of GraphStore the GC service needs.
type gcRunner interface {
	RunGC() (bool, error)
}

// GCService runs value log GC on a fixed interval. It implements
// suture.Service and belongs in the data layer of the supervisor tree.
type GCService struct {
	store    gcRunner
	interval time.Duration
}

// NewGCService creates a GC service for the given store.
func NewGCService(s *GraphStore, interval time.Duration) *GCService {
	return &GCService{store: s, interval: interval}
}

// Serve runs until ctx is cancelled. GC errors are logged and counted but do
// not stop the service; a closed store stops it for good.
func (g *GCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := g.runOnce(); err != nil {
				return err
			}
		}
	}
}

func (g *GCService) runOnce() error {
	start := time.Now()
	reclaimed, err := g.store.RunGC()
	switch {
	case errors.Is(err, ErrClosed):
		metrics.RecordStoreGC("error")
		return fmt.Errorf("%w: %w", suture.ErrDoNotRestart, err)
	case err != nil:
		metrics.RecordStoreGC("error")
		logging.Warn().Err(err).Msg("Graph store GC failed")
	case reclaimed:
		metrics.RecordStoreGC("reclaimed")
		logging.Debug().Dur("duration", time.Since(start)).Msg("Graph store GC reclaimed space")
	default:
		metrics.RecordStoreGC("noop")
	}
	return nil
}

// String names the service in supervisor logs.
func (g *GCService) String() string {
	return "graph-store-gc"
}
