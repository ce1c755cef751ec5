// Chartroom - Music Performance Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartroom

/*
Package supervisor runs Chartroom's long-lived services under a suture v4
supervisor tree.

The tree has two layers below the root:

	chartroom
	├── data-layer   pool statistics sampling
	└── api-layer    HTTP server

A service that returns an error is restarted with suture's failure
threshold and backoff; a crash in one layer does not stop the other.
Supervisor events are logged through sutureslog, whose slog output is routed
into zerolog by logging.NewSlogLogger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewDBStatsService(db.Conn(), 15*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx) // blocks until ctx is canceled
*/
package supervisor
