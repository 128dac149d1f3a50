// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package main is the entry point for the Cinematch HTTP server.

Startup order:

 1. Configuration: koanf v2 with defaults, an optional YAML file and
    environment variables, validated with go-playground/validator
 2. Logging: zerolog global logger configured from the logging section
 3. Data: the ratings and titles files are parsed and the rating matrix is
    built; a malformed record or unreadable file exits the process
 4. Query facade: recommend.Service with the optional similar-movie cache
 5. HTTP: chi router with CORS, rate limiting and Prometheus metrics
 6. Supervision: suture tree running the cache janitor and HTTP server

SIGINT or SIGTERM cancels the root context; the HTTP server drains within
server.shutdown_timeout before the process exits.

Example:

	RATINGS_PATH=data/u.data \
	TITLES_PATH=data/Movie_Id_Titles \
	HTTP_PORT=8080 \
	./cinematch-server
*/
package main
