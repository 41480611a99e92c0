// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

/*
Command server runs the streak stats HTTP service.

It serves GitHub contribution streak cards at "/?user=NAME" as SVG (embeddable
in a README) or JSON (type=json), a demo page at /demo/, Kubernetes-style
health probes and Prometheus metrics.

# Architecture

	root ("streakstats")
	├── supervisor.LayerData ("data-layer")
	│   ├── cache-cleanup-memory
	│   └── graph-store-gc (when CACHE_STORE_PATH is set)
	└── supervisor.LayerAPI ("api-layer")
	    └── http-server

Requests flow through the calendar source stack:

	handler -> memory cache -> BadgerDB graph store -> circuit breaker -> GitHub GraphQL

Fetched graphs are cached; computed statistics are not.

# Configuration

Configuration is loaded with Koanf v2 from defaults, an optional YAML file and
environment variables. At least one GitHub token is required to serve stats:

	TOKEN=ghp_xxx ./server

See package config for every variable.

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server drains
within 10 seconds, the graph store is closed, and services that failed to
stop are reported.
*/
package main
