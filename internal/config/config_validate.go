// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"time"
)

// Rate limit bounds accepted by validateRateLimits.
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateData(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateData validates the data source paths
func (c *Config) validateData() error {
	if c.Data.RatingsPath == "" {
		return fmt.Errorf("RATINGS_PATH is required")
	}
	if c.Data.TitlesPath == "" {
		return fmt.Errorf("TITLES_PATH is required")
	}
	if len([]rune(c.Data.TitlesDelimiter)) != 1 {
		return fmt.Errorf("TITLES_DELIMITER must be a single character, got %q", c.Data.TitlesDelimiter)
	}
	return nil
}

// validateRecommend validates the recommendation query defaults
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.MinOverlap < 0 {
		return fmt.Errorf("RECOMMEND_MIN_OVERLAP must be >= 0, got %d", r.MinOverlap)
	}
	if r.MaxResults < 1 {
		return fmt.Errorf("RECOMMEND_MAX_RESULTS must be >= 1, got %d", r.MaxResults)
	}
	if r.DefaultSimilar < 1 || r.DefaultSimilar > r.MaxResults {
		return fmt.Errorf("RECOMMEND_DEFAULT_SIMILAR must be between 1 and %d", r.MaxResults)
	}
	if r.DefaultPopular < 1 || r.DefaultPopular > r.MaxResults {
		return fmt.Errorf("RECOMMEND_DEFAULT_POPULAR must be between 1 and %d", r.MaxResults)
	}
	if r.TopRatedMinRatings < 0 {
		return fmt.Errorf("RECOMMEND_TOP_RATED_MIN_RATINGS must be >= 0, got %d", r.TopRatedMinRatings)
	}
	if r.Workers < 0 {
		return fmt.Errorf("RECOMMEND_WORKERS must be >= 0, got %d", r.Workers)
	}
	if r.CacheEnabled && r.CacheTTL <= 0 {
		return fmt.Errorf("RECOMMEND_CACHE_TTL must be positive when caching is enabled")
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return c.validateRateLimits()
}

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Server.RateLimitDisabled {
		return nil
	}
	if c.Server.RateLimitReqs < minRateLimitRequests || c.Server.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Server.RateLimitWindow < minRateLimitWindow || c.Server.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
