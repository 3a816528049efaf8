// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

/*
Package supervisor runs CineRec's long-lived services under a suture v4 tree.

	RootSupervisor ("cinerec")
	├── ModelSupervisor ("model-layer")
	│   └── RefreshService         periodic user-item matrix rebuild
	├── MessagingSupervisor ("messaging-layer")
	│   └── EventRouterService     rating event consumer (if events.enabled)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer restarts independently: a crashing event consumer does not take
the HTTP server down, and queries keep rebuilding the collaborative model
lazily while the refresh service is backing off.

Supervisor events (restarts, backoff, timeouts) are logged through
sutureslog on top of the zerolog slog adapter.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddModelService(services.NewRefreshService(engine, interval, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logger))
	return tree.Serve(ctx)
*/
package supervisor
