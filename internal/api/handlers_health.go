// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinematch/internal/models"
)

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK whenever the process can serve HTTP.
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Process is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, models.HealthStatus{
		Status:   "alive",
		Version:  h.version,
		Uptime:   time.Since(h.startTime).Seconds(),
		MatrixUp: h.svc != nil,
	}, time.Time{})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 200 OK only once the rating matrix is built.
//
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Rating matrix loaded"
// @Failure 503 {object} models.APIResponse "Rating matrix not loaded"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.svc == nil {
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status: "not_ready",
			Data: models.HealthStatus{
				Status:  "not_ready",
				Version: h.version,
				Uptime:  time.Since(h.startTime).Seconds(),
			},
			Metadata: newMetadata(r, time.Time{}),
		})
		return
	}

	stats := h.svc.Stats()
	respondSuccess(w, r, models.HealthStatus{
		Status:    "ready",
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Seconds(),
		MatrixUp:  true,
		Titles:    stats.UniqueTitles,
		Ratings:   stats.TotalRatings,
		CacheHits: h.svc.CacheHitRate(),
	}, time.Time{})
}
