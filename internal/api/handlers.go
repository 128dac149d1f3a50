// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"time"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response writing and parameter parsing
//   - handlers_health.go: liveness and readiness probes
//   - handlers_recommend.go: recommendation, ranking and catalogue endpoints
type Handler struct {
	svc          *recommend.Service
	version      string
	queryTimeout time.Duration
	startTime    time.Time
}

// defaultQueryTimeout bounds a similar-movie query when none is configured.
const defaultQueryTimeout = 10 * time.Second

// NewHandler creates a handler over a loaded recommendation service.
// A nil service is allowed; every data endpoint then answers 503 and the
// readiness probe reports not ready.
//
// Example:
//
//	handler := api.NewHandler(svc, version, cfg.Server.Timeout)
//	router := api.NewRouter(handler, cfg.Server)
//	srv := &http.Server{Handler: router.SetupChi()}
func NewHandler(svc *recommend.Service, version string, queryTimeout time.Duration) *Handler {
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}
	return &Handler{
		svc:          svc,
		version:      version,
		queryTimeout: queryTimeout,
		startTime:    time.Now(),
	}
}
