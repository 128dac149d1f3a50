// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package supervisor provides process supervision for Cinematch using suture v4.

The tree has two layers under a root supervisor:

	cinematch
	├── query-layer
	│   └── CacheJanitorService
	└── api-layer
	    └── HTTPServerService

Crashed services restart with suture's backoff; failures are counted per
layer. Cancelling the context passed to Serve stops every service, each
bounded by TreeConfig.ShutdownTimeout. Supervisor events are written
through sutureslog into the zerolog global logger:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddQueryService(services.NewCacheJanitorService(svc, cfg.Recommend.CacheTTL, logger))
	tree.AddAPIService(services.NewHTTPServerService(srv, addr, cfg.Server.ShutdownTimeout, logger))
	err = tree.Serve(ctx)

Service wrappers live in the services subpackage.
*/
package supervisor
