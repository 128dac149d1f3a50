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
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// Sources locates the two input files.
type Sources struct {
	RatingsPath string
	TitlesPath  string

	// TitlesDelimiter separates item_id and title (0 = ',').
	TitlesDelimiter rune
}

// SourcesFromConfig converts the data section of the application config.
func SourcesFromConfig(cfg config.DataConfig) Sources {
	src := Sources{
		RatingsPath: cfg.RatingsPath,
		TitlesPath:  cfg.TitlesPath,
	}
	if r := []rune(cfg.TitlesDelimiter); len(r) == 1 {
		src.TitlesDelimiter = r[0]
	}
	return src
}

// Load reads both sources and builds the rating matrix. It is the single
// initialization entry point: any error means no matrix exists and the
// caller must not start serving.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Load(ctx context.Context, src Sources, logger zerolog.Logger) (*Matrix, error) {
	logger = logger.With().Str("component", "loader").Logger()
	start := time.Now()

	delim := src.TitlesDelimiter
	if delim == 0 {
		delim = ','
	}

	var (
		ratings []Rating
		titles  Titles
	)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	var g errgroup.Group
	g.Go(func() error {
		var err error
		ratings, err = LoadRatingsFile(src.RatingsPath)
		return err
	})
	g.Go(func() error {
		var err error
		titles, err = LoadMoviesFile(src.TitlesPath, delim)
		return err
	})

	if err := g.Wait(); err != nil {
		metrics.RecordLoad(time.Since(start), err, errors.Is(err, ErrMalformedRecord))
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	logger.Debug().
		Int("ratings", len(ratings)).
		Int("titles", len(titles)).
		Dur("elapsed", time.Since(start)).
		Msg("Sources parsed")

	m, err := Build(ratings, titles)
	if err != nil {
		metrics.RecordLoad(time.Since(start), err, true)
		return nil, fmt.Errorf("build rating matrix: %w", err)
	}

	elapsed := time.Since(start)
	metrics.RecordLoad(elapsed, nil, false)

	stats := m.Stats()
	metrics.RecordDataset(stats.TotalRatings, stats.UniqueUsers, stats.UniqueTitles, stats.UnknownItems)

	event := logger.Info()
	if stats.UnknownItems > 0 {
		event = logger.Warn()
	}
	event.
		Int("ratings", stats.TotalRatings).
		Int("users", stats.UniqueUsers).
		Int("titles", stats.UniqueTitles).
		Int("unknown_items", stats.UnknownItems).
		Int("colliding_titles", stats.CollidingTitles).
		Dur("elapsed", elapsed).
		Msg("Rating matrix built")

	return m, nil
}
