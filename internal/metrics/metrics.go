// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Dataset Metrics (set once after the matrix is built)
	DatasetRatings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinematch_dataset_ratings",
			Help: "Number of rating records in the loaded dataset",
		},
	)

	DatasetUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinematch_dataset_users",
			Help: "Number of distinct users in the rating matrix",
		},
	)

	DatasetTitles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinematch_dataset_titles",
			Help: "Number of title columns in the rating matrix",
		},
	)

	DatasetUnknownItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinematch_dataset_unknown_items",
			Help: "Number of rated item ids without a title",
		},
	)

	LoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinematch_load_duration_seconds",
			Help:    "Time to load the source files and build the rating matrix",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	LoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinematch_load_errors_total",
			Help: "Total number of failed dataset loads",
		},
		[]string{"error_type"}, // "malformed", "io"
	)

	// Query Metrics
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinematch_query_duration_seconds",
			Help:    "Duration of recommendation queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // "similar", "popular", "top_rated"
	)

	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinematch_queries_total",
			Help: "Total number of recommendation queries by outcome",
		},
		[]string{"operation", "outcome"}, // outcome: "ok", "not_found", "error"
	)

	QueryResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinematch_query_results",
			Help:    "Number of items returned per query",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
		},
		[]string{"operation"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinematch_cache_hits_total",
			Help: "Total number of similar-movie cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinematch_cache_misses_total",
			Help: "Total number of similar-movie cache misses",
		},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinematch_cache_entries",
			Help: "Current number of cached similar-movie results",
		},
	)

	CacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinematch_cache_evictions_total",
			Help: "Total number of expired cache entries removed by the janitor",
		},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinematch_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinematch_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinematch_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)
)

// Query outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// RecordDataset publishes the size of the loaded dataset.
func RecordDataset(ratings, users, titles, unknownItems int) {
	DatasetRatings.Set(float64(ratings))
	DatasetUsers.Set(float64(users))
	DatasetTitles.Set(float64(titles))
	DatasetUnknownItems.Set(float64(unknownItems))
}

// RecordLoad records a dataset load. malformed reports whether err was a
// data-quality failure rather than an I/O failure.
func RecordLoad(duration time.Duration, err error, malformed bool) {
	LoadDuration.Observe(duration.Seconds())
	if err == nil {
		return
	}
	errorType := "io"
	if malformed {
		errorType = "malformed"
	}
	LoadErrors.WithLabelValues(errorType).Inc()
}

// RecordQuery records a recommendation query.
func RecordQuery(operation, outcome string, results int, duration time.Duration) {
	QueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	QueriesTotal.WithLabelValues(operation, outcome).Inc()
	if outcome == OutcomeOK {
		QueryResults.WithLabelValues(operation).Observe(float64(results))
	}
}

// RecordCacheLookup records a similar-movie cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
}

// RecordCacheCleanup records a janitor pass.
func RecordCacheCleanup(removed, remaining int) {
	CacheEvictions.Add(float64(removed))
	CacheEntries.Set(float64(remaining))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// OutcomeFor maps a query error to an outcome label.
func OutcomeFor(err error, notFound error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case notFound != nil && errors.Is(err, notFound):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}
