// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
type Config struct {
	Data      DataConfig      `koanf:"data"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DataConfig locates the two flat-file sources the rating matrix is built from.
type DataConfig struct {
	// RatingsPath is the whitespace-delimited ratings file
	// (user_id item_id rating timestamp per line).
	RatingsPath string `koanf:"ratings_path"`

	// TitlesPath is the item_id -> title file.
	TitlesPath string `koanf:"titles_path"`

	// TitlesDelimiter is the single-character field separator of TitlesPath.
	// Default: ","
	TitlesDelimiter string `koanf:"titles_delimiter"`
}

// RecommendConfig holds query defaults for the recommendation core.
type RecommendConfig struct {
	// MinOverlap is the minimum co-rater count a candidate needs to be scored.
	MinOverlap int `koanf:"min_overlap"`

	// DefaultSimilar is used when a similar-movie query omits n.
	DefaultSimilar int `koanf:"default_similar"`

	// DefaultPopular is used when a popularity query omits n.
	DefaultPopular int `koanf:"default_popular"`

	// MaxResults caps n for every query.
	MaxResults int `koanf:"max_results"`

	// TopRatedMinRatings is the rating-count floor for the top-rated ranking.
	TopRatedMinRatings int `koanf:"top_rated_min_ratings"`

	// Workers bounds the goroutines used to score candidates (0 = NumCPU).
	Workers int `koanf:"workers"`

	CacheEnabled bool          `koanf:"cache_enabled"`
	CacheTTL     time.Duration `koanf:"cache_ttl"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port              int           `koanf:"port"`
	Host              string        `koanf:"host"`
	Timeout           time.Duration `koanf:"timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
