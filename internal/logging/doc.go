// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package logging provides centralized zerolog-based structured logging for Cinematch.
//
// The package provides:
//   - A global zerolog logger configured once via Init
//   - JSON output for production, console output for development
//   - Context-aware logging with correlation and request ID propagation
//   - An slog adapter so the Suture supervisor logs through zerolog
//   - QueryLogger for recommendation query events
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("ratings", n).Msg("Ratings loaded")
//	logging.Ctx(ctx).Warn().Str("movie", title).Msg("Movie not found")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - true, false (default: false)
//
// Always terminate log chains with .Msg() or .Send(); an unterminated
// event is never written.
package logging
