// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package api provides the HTTP interface to the recommendation service.

Routing uses the Chi router with go-chi/cors for CORS, go-chi/httprate for
per-IP rate limiting and the internal middleware package for request IDs,
access logging and Prometheus instrumentation. Every JSON body uses the
models.APIResponse envelope and is encoded with goccy/go-json.

Endpoints:

	GET /api/v1/health/live                         liveness probe
	GET /api/v1/health/ready                        503 until the matrix is loaded
	GET /api/v1/recommendations/similar?movie=&n=   similar movies
	GET /api/v1/movies/popular?n=                   ranked by rating count
	GET /api/v1/movies/top-rated?n=&min_ratings=    ranked by mean rating
	GET /api/v1/movies                              every title with count and mean
	GET /api/v1/movies/titles                       every title, ascending
	GET /api/v1/stats                               dataset summary
	GET /metrics                                    Prometheus exposition

Error responses:

  - 400 VALIDATION_ERROR: missing movie, non-integer or out-of-range n
  - 404 MOVIE_NOT_FOUND: the title is not in the rating matrix
  - 429 RATE_LIMIT_EXCEEDED: per-IP budget exhausted
  - 503 NOT_READY / QUERY_FAILED: no matrix, or the query timed out

An unknown movie is never reported as an empty recommendation list.
*/
package api
