// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package metrics provides Prometheus metrics for Cinematch.

Collectors are registered with promauto on the default registry and are
updated through the Record* helpers:

  - Dataset size gauges and load duration/errors (set at startup)
  - Query duration, outcome counts and result sizes per operation
  - Similar-movie cache hits, misses, evictions and size
  - API request counts, latency and in-flight requests

Metrics are exposed at /metrics in Prometheus text format:

	curl http://localhost:8000/metrics
*/
package metrics
