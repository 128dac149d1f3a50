// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package services provides suture.Service wrappers for Cinematch components.

Each wrapper translates a component lifecycle into suture's context-aware
Serve(ctx) error and identifies itself through fmt.Stringer so supervisor
events name the service.

HTTPServerService runs the chi router behind *http.Server and drains it
with a bounded Shutdown when the supervisor stops.

CacheJanitorService sweeps expired similar-movie results from the
recommendation service on a ticker. The matrix is immutable, so the sweep
only bounds memory; it never changes query results.

	tree.AddQueryService(services.NewCacheJanitorService(svc, cfg.Recommend.CacheTTL, logger))
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.Addr(), cfg.Server.ShutdownTimeout, logger))
*/
package services
