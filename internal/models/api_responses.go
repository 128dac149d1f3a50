// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
// It provides consistent structure for both successful and error responses.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"movie": "Star Wars (1977)", "recommendations": [...]},
//	  "metadata": {
//	    "timestamp": "2026-03-01T12:00:00Z",
//	    "query_time_ms": 12,
//	    "request_id": "6f1c..."
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "MOVIE_NOT_FOUND",
//	    "message": "movie not found: Nonexistent Movie 9999"
//	  },
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// Fields:
//   - Timestamp: Server time when response was generated (RFC3339 format)
//   - QueryTimeMS: Query execution time in milliseconds
//   - RequestID: Correlates the response with server logs
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid query parameters
//   - MOVIE_NOT_FOUND: The requested title is not in the rating matrix
//   - QUERY_FAILED: The query could not complete (e.g. client cancelled)
//   - NOT_READY: The rating matrix has not been loaded
//   - RATE_LIMIT_EXCEEDED: Too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is returned by the liveness and readiness endpoints.
type HealthStatus struct {
	Status    string  `json:"status"`
	Version   string  `json:"version,omitempty"`
	Uptime    float64 `json:"uptime_seconds"`
	MatrixUp  bool    `json:"matrix_loaded"`
	Titles    int     `json:"titles,omitempty"`
	Ratings   int     `json:"ratings,omitempty"`
	CacheHits float64 `json:"cache_hit_rate,omitempty"`
}

// MovieList wraps a ranked or browsed list of movies.
type MovieList struct {
	Count  int         `json:"count"`
	Movies interface{} `json:"movies"`
}

// TitleList wraps the sorted list of known titles.
type TitleList struct {
	Count  int      `json:"count"`
	Titles []string `json:"titles"`
}
