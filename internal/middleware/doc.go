// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package middleware provides HTTP middleware shared by the API router.

All middleware uses the func(http.Handler) http.Handler shape so it plugs
straight into chi's r.Use.

Key Components:

  - RequestID: UUID request IDs, echoed in X-Request-ID and stored in the
    context together with a correlation ID for logging.Ctx
  - AccessLog: one debug line per request with route, status and latency
  - PrometheusMetrics: request count, latency histogram and in-flight gauge,
    labelled by chi route pattern

Typical stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
