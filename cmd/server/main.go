// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/streakstats/internal/api"
	"github.com/tomtom215/streakstats/internal/app"
	"github.com/tomtom215/streakstats/internal/config"
	"github.com/tomtom215/streakstats/internal/logging"
	"github.com/tomtom215/streakstats/internal/render"
	"github.com/tomtom215/streakstats/internal/store"
	"github.com/tomtom215/streakstats/internal/supervisor"
	"github.com/tomtom215/streakstats/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("github_api", cfg.GitHub.APIURL).
		Int("tokens", len(cfg.GitHub.Tokens)).
		Bool("graph_store", cfg.Cache.StorePath != "").
		Msg("Starting streak stats server")
	if !cfg.HasTokens() {
		logging.Warn().Msg("No GitHub token configured; stats requests will fail until TOKEN is set")
	}

	stack, err := app.Build(cfg, app.Options{})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build calendar source")
	}
	defer func() {
		if err := stack.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing graph store")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree := supervisor.New(supervisor.Config{ShutdownTimeout: 10 * time.Second})

	tree.Add(supervisor.LayerData, stack.Memory)
	if stack.Store != nil {
		tree.Add(supervisor.LayerData, store.NewGCService(stack.Store, cfg.Cache.GCInterval))
	}

	handler := api.NewHandler(stack.Source, render.New(), api.HandlerConfig{
		HasTokens: cfg.HasTokens(),
		MaxAge:    cfg.Cache.MaxAge,
	}, api.WithBreaker(stack.Breaker))
	mw := api.NewChiMiddlewareFromConfig(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           api.NewRouter(handler, mw).SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + cfg.GitHub.Timeout,
		IdleTimeout:       2 * time.Minute,
	}
	tree.Add(supervisor.LayerAPI, services.NewHTTPServerService(server, 10*time.Second))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Server stopped")
}
