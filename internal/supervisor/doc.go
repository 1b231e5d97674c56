// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package supervisor provides Suture-based process supervision for CineMatch.

The tree has two layers under a root supervisor:

	cinematch (root)
	├── data-layer   badger metadata cache GC (when the cache is on disk)
	└── api-layer    HTTP server

A failing service is restarted with exponential backoff without touching its
siblings. Failure threshold, decay and backoff follow suture's defaults and
can be overridden with TreeConfig.

Suture events are logged through log/slog via sutureslog; pass
logging.NewSlogLogger() so they land in the zerolog output.

Example:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(srv, addr, 10*time.Second))
	err = tree.Serve(ctx) // blocks until ctx is canceled

Service adapters live in the services subpackage.
*/
package supervisor
