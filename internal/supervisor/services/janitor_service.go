// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// defaultJanitorInterval is used when no positive interval is configured.
const defaultJanitorInterval = 5 * time.Minute

// CacheCleaner drops expired cache entries. *recommend.Service satisfies it.
type CacheCleaner interface {
	CleanupCache() (removed, remaining int)
}

// CacheJanitorService periodically evicts expired similar-movie results.
type CacheJanitorService struct {
	cleaner  CacheCleaner
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheJanitorService creates a janitor sweeping cleaner every interval.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheJanitorService(cleaner CacheCleaner, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	if interval <= 0 {
		interval = defaultJanitorInterval
	}
	return &CacheJanitorService{
		cleaner:  cleaner,
		interval: interval,
		logger:   logger.With().Str("service", "cache-janitor").Logger(),
		name:     "cache-janitor",
	}
}

// Serve implements suture.Service. It returns ctx.Err() once cancelled.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	s.logger.Debug().Dur("interval", s.interval).Msg("cache janitor starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *CacheJanitorService) sweep() {
	removed, remaining := s.cleaner.CleanupCache()
	if removed == 0 {
		return
	}
	s.logger.Debug().
		Int("removed", removed).
		Int("remaining", remaining).
		Msg("expired cache entries evicted")
}

// String implements fmt.Stringer; suture uses it in event logs.
func (s *CacheJanitorService) String() string {
	return s.name
}
