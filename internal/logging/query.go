// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package logging

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// QueryLogger logs recommendation queries with a fixed field set so that
// similar-movie and ranking queries can be filtered on "op".
type QueryLogger struct {
	logger zerolog.Logger
}

// NewQueryLogger creates a QueryLogger on the global logger.
func NewQueryLogger() *QueryLogger {
	return &QueryLogger{logger: WithComponent("query")}
}

// NewQueryLoggerWithLogger creates a QueryLogger on a specific logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewQueryLoggerWithLogger(logger zerolog.Logger) *QueryLogger {
	return &QueryLogger{logger: logger.With().Str("component", "query").Logger()}
}

// withContext attaches correlation and request IDs carried by ctx.
func (l *QueryLogger) withContext(ctx context.Context) zerolog.Logger {
	logCtx := l.logger.With()
	if id := CorrelationIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("correlation_id", id)
	}
	if id := RequestIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("request_id", id)
	}
	return logCtx.Logger()
}

// LogSimilar records a served similar-movie query.
func (l *QueryLogger) LogSimilar(ctx context.Context, title string, n, returned int, cached bool, elapsed time.Duration) {
	logger := l.withContext(ctx)
	logger.Debug().
		Str("op", "similar").
		Str("movie", title).
		Int("n", n).
		Int("returned", returned).
		Bool("cached", cached).
		Dur("elapsed", elapsed).
		Msg("Similar movies computed")
}

// LogUnknownMovie records a similar-movie query for a title that is not in the matrix.
func (l *QueryLogger) LogUnknownMovie(ctx context.Context, title string) {
	logger := l.withContext(ctx)
	logger.Info().
		Str("op", "similar").
		Str("movie", title).
		Msg("Movie not found")
}

// LogRanking records a popularity or top-rated query.
func (l *QueryLogger) LogRanking(ctx context.Context, op string, n, returned int, elapsed time.Duration) {
	logger := l.withContext(ctx)
	logger.Debug().
		Str("op", op).
		Int("n", n).
		Int("returned", returned).
		Dur("elapsed", elapsed).
		Msg("Ranking served")
}
