// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

/*
Package supervisor runs the long-lived services of the streak stats server
under a suture v4 supervisor tree.

	root ("streakstats")
	├── LayerData ("data-layer")
	│   ├── cache-cleanup-memory   (memory cache janitor)
	│   └── graph-store-gc         (BadgerDB value log GC, if CACHE_STORE_PATH is set)
	└── LayerAPI ("api-layer")
	    └── http-server

Crashed services are restarted with suture's backoff. A service that returns
an error wrapping suture.ErrDoNotRestart (the GC after the store closed) is
left stopped. Supervisor events are logged through sutureslog, which feeds
the zerolog logger via logging.NewSlogLogger.

Usage:

	tree := supervisor.New(supervisor.Config{})
	tree.Add(supervisor.LayerData, memoryCache)
	tree.Add(supervisor.LayerAPI, services.NewHTTPServerService(server, 10*time.Second))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped")
	}
*/
package supervisor
