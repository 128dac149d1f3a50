// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// Query error codes carried in results.
const (
	CodeMovieNotFound = "MOVIE_NOT_FOUND"
	CodeQueryFailed   = "QUERY_FAILED"
)

// Metric operation labels.
const (
	opSimilar  = "similar"
	opPopular  = "popular"
	opTopRated = "top_rated"
)

// Options configures a Service.
type Options struct {
	MinOverlap         int
	Workers            int
	DefaultSimilar     int
	DefaultPopular     int
	MaxResults         int
	TopRatedMinRatings int

	CacheEnabled  bool
	CacheTTL      time.Duration
	CacheCapacity int

	Logger zerolog.Logger
}

// DefaultOptions mirrors the built-in configuration defaults.
func DefaultOptions() Options {
	return Options{
		MinOverlap:         DefaultMinOverlap,
		Workers:            4,
		DefaultSimilar:     10,
		DefaultPopular:     20,
		MaxResults:         100,
		TopRatedMinRatings: DefaultTopRatedMinRatings,
		CacheEnabled:       true,
		CacheTTL:           10 * time.Minute,
		CacheCapacity:      cache.DefaultCapacity,
		Logger:             logging.Logger(),
	}
}

// OptionsFromConfig converts the recommend section of the application config.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func OptionsFromConfig(cfg config.RecommendConfig, logger zerolog.Logger) Options {
	return Options{
		MinOverlap:         cfg.MinOverlap,
		Workers:            cfg.Workers,
		DefaultSimilar:     cfg.DefaultSimilar,
		DefaultPopular:     cfg.DefaultPopular,
		MaxResults:         cfg.MaxResults,
		TopRatedMinRatings: cfg.TopRatedMinRatings,
		CacheEnabled:       cfg.CacheEnabled,
		CacheTTL:           cfg.CacheTTL,
		CacheCapacity:      cache.DefaultCapacity,
		Logger:             logger,
	}
}

// QueryError is the structured failure carried inside a result.
type QueryError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RecommendResult is the outcome of Service.Recommend. Exactly one of
// Items (possibly empty) and Error is meaningful: an empty Items with a
// nil Error means the movie exists but no candidate passed the filters.
type RecommendResult struct {
	Movie string         `json:"movie"`
	Items []SimilarMovie `json:"recommendations"`
	Error *QueryError    `json:"error,omitempty"`

	err error
}

// Err returns the underlying error, matching ErrUnknownMovie for unknown titles.
func (r RecommendResult) Err() error { return r.err }

// NotFound reports whether the query title was not a known movie.
func (r RecommendResult) NotFound() bool {
	return r.Error != nil && r.Error.Code == CodeMovieNotFound
}

// PopularResult is the outcome of Service.Popular and Service.TopRated.
type PopularResult struct {
	Items []PopularMovie `json:"movies"`
}

// Service is the query facade over a built Matrix. It holds no mutable
// state other than the optional result cache.
type Service struct {
	matrix *Matrix
	opts   Options
	cache  *cache.Cache[[]SimilarMovie]
	qlog   *logging.QueryLogger
}

// NewService creates a Service over m. Zero-valued counts in opts fall
// back to DefaultOptions.
func NewService(m *Matrix, opts Options) *Service {
	def := DefaultOptions()
	if opts.DefaultSimilar <= 0 {
		opts.DefaultSimilar = def.DefaultSimilar
	}
	if opts.DefaultPopular <= 0 {
		opts.DefaultPopular = def.DefaultPopular
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = def.MaxResults
	}

	s := &Service{
		matrix: m,
		opts:   opts,
		qlog:   logging.NewQueryLoggerWithLogger(opts.Logger),
	}
	if opts.CacheEnabled {
		s.cache = cache.New[[]SimilarMovie](opts.CacheCapacity, opts.CacheTTL)
	}
	return s
}

// Matrix returns the matrix the service queries.
func (s *Service) Matrix() *Matrix { return s.matrix }

// clampN maps n <= 0 to def and caps n at MaxResults.
func (s *Service) clampN(n, def int) int {
	if n <= 0 {
		n = def
	}
	return min(n, s.opts.MaxResults)
}

type similarKey struct {
	Title      string `json:"title"`
	N          int    `json:"n"`
	MinOverlap int    `json:"min_overlap"`
}

// Recommend returns up to n movies whose ratings correlate with title's.
// An unknown title yields a result with Error.Code MOVIE_NOT_FOUND.
func (s *Service) Recommend(ctx context.Context, title string, n int) RecommendResult {
	start := time.Now()
	n = s.clampN(n, s.opts.DefaultSimilar)
	res := RecommendResult{Movie: title}

	var key string
	if s.cache != nil {
		key = cache.GenerateKey(opSimilar, similarKey{Title: title, N: n, MinOverlap: s.opts.MinOverlap})
		if items, ok := s.cache.Get(key); ok {
			metrics.RecordCacheLookup(true)
			res.Items = append([]SimilarMovie{}, items...)
			metrics.RecordQuery(opSimilar, metrics.OutcomeOK, len(res.Items), time.Since(start))
			s.qlog.LogSimilar(ctx, title, n, len(res.Items), true, time.Since(start))
			return res
		}
		metrics.RecordCacheLookup(false)
	}

	items, err := SimilarTo(ctx, s.matrix, title, n, SimilarityOptions{
		MinOverlap: s.opts.MinOverlap,
		Workers:    s.opts.Workers,
	})
	metrics.RecordQuery(opSimilar, metrics.OutcomeFor(err, ErrUnknownMovie), len(items), time.Since(start))

	if err != nil {
		res.err = err
		if errors.Is(err, ErrUnknownMovie) {
			s.qlog.LogUnknownMovie(ctx, title)
			res.Error = &QueryError{Code: CodeMovieNotFound, Message: fmt.Sprintf("movie not found: %s", title)}
			return res
		}
		logging.Ctx(ctx).Error().Err(err).Str("movie", title).Msg("Similar-movie query failed")
		res.Error = &QueryError{Code: CodeQueryFailed, Message: err.Error()}
		return res
	}

	if s.cache != nil {
		s.cache.Set(key, items)
	}
	res.Items = append([]SimilarMovie{}, items...)
	s.qlog.LogSimilar(ctx, title, n, len(items), false, time.Since(start))
	return res
}

// Popular returns up to n movies by rating count.
func (s *Service) Popular(ctx context.Context, n int) PopularResult {
	start := time.Now()
	n = s.clampN(n, s.opts.DefaultPopular)

	items := MostPopular(s.matrix, n)

	metrics.RecordQuery(opPopular, metrics.OutcomeOK, len(items), time.Since(start))
	s.qlog.LogRanking(ctx, opPopular, n, len(items), time.Since(start))
	return PopularResult{Items: items}
}

// TopRated returns up to n movies by mean rating among those with at least
// minRatings ratings. A negative minRatings uses the configured floor.
func (s *Service) TopRated(ctx context.Context, n, minRatings int) PopularResult {
	start := time.Now()
	n = s.clampN(n, s.opts.DefaultPopular)
	if minRatings < 0 {
		minRatings = s.opts.TopRatedMinRatings
	}

	items := TopRated(s.matrix, n, minRatings)

	metrics.RecordQuery(opTopRated, metrics.OutcomeOK, len(items), time.Since(start))
	s.qlog.LogRanking(ctx, opTopRated, n, len(items), time.Since(start))
	return PopularResult{Items: items}
}

// Titles returns every known title, ascending.
func (s *Service) Titles() []string {
	return s.matrix.Titles()
}

// Browse returns every title with its count and mean, ascending by title.
func (s *Service) Browse() []PopularMovie {
	return Browse(s.matrix)
}

// Stats returns the dataset summary.
func (s *Service) Stats() DatasetStats {
	return s.matrix.Stats()
}

// CacheHitRate returns the similar-movie cache hit rate as a percentage.
func (s *Service) CacheHitRate() float64 {
	if s.cache == nil {
		return 0
	}
	return s.cache.HitRate()
}

// CleanupCache drops expired cached results. It reports how many entries
// were removed and how many remain; both are zero when caching is off.
func (s *Service) CleanupCache() (removed, remaining int) {
	if s.cache == nil {
		return 0, 0
	}
	removed = s.cache.Cleanup()
	remaining = s.cache.Len()
	metrics.RecordCacheCleanup(removed, remaining)
	return removed, remaining
}
