// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package config provides centralized configuration management for Cinematch.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file (config.yaml, or the path in CONFIG_PATH), then environment
variables. Only mapped environment variables are read.

# Environment Variables

Data sources:
  - RATINGS_PATH: ratings file, one "user_id item_id rating timestamp" per line
  - TITLES_PATH: item_id to title file
  - TITLES_DELIMITER: field separator of TITLES_PATH (default: ",")

Recommendation core:
  - RECOMMEND_MIN_OVERLAP: minimum co-raters per candidate (default: 100)
  - RECOMMEND_DEFAULT_SIMILAR: default n for similar-movie queries (default: 10)
  - RECOMMEND_DEFAULT_POPULAR: default n for popularity queries (default: 20)
  - RECOMMEND_MAX_RESULTS: upper bound on n (default: 100)
  - RECOMMEND_TOP_RATED_MIN_RATINGS: rating floor for top-rated (default: 50)
  - RECOMMEND_WORKERS: scoring goroutines, 0 = NumCPU (default: 4)
  - RECOMMEND_CACHE_ENABLED, RECOMMEND_CACHE_TTL: query memoisation (default: true, 10m)

HTTP server:
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:8000)
  - HTTP_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
  - CORS_ORIGINS: comma-separated list (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
