// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Data.RatingsPath != "data/u.data" {
		t.Errorf("Data.RatingsPath = %q, want data/u.data", cfg.Data.RatingsPath)
	}
	if cfg.Data.TitlesDelimiter != "," {
		t.Errorf("Data.TitlesDelimiter = %q, want ,", cfg.Data.TitlesDelimiter)
	}
	if cfg.Recommend.MinOverlap != 100 {
		t.Errorf("Recommend.MinOverlap = %d, want 100", cfg.Recommend.MinOverlap)
	}
	if cfg.Recommend.DefaultSimilar != 10 {
		t.Errorf("Recommend.DefaultSimilar = %d, want 10", cfg.Recommend.DefaultSimilar)
	}
	if cfg.Recommend.DefaultPopular != 20 {
		t.Errorf("Recommend.DefaultPopular = %d, want 20", cfg.Recommend.DefaultPopular)
	}
	if cfg.Recommend.TopRatedMinRatings != 50 {
		t.Errorf("Recommend.TopRatedMinRatings = %d, want 50", cfg.Recommend.TopRatedMinRatings)
	}
	if cfg.Recommend.CacheTTL != 10*time.Minute {
		t.Errorf("Recommend.CacheTTL = %v, want 10m", cfg.Recommend.CacheTTL)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

// TestEnvTransformFunc verifies environment variable to koanf path mapping
func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"RATINGS_PATH", "data.ratings_path"},
		{"TITLES_PATH", "data.titles_path"},
		{"RECOMMEND_MIN_OVERLAP", "recommend.min_overlap"},
		{"RECOMMEND_CACHE_TTL", "recommend.cache_ttl"},
		{"HTTP_PORT", "server.port"},
		{"CORS_ORIGINS", "server.cors_origins"},
		{"DISABLE_RATE_LIMIT", "server.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"log_format", "logging.format"},

		// Unknown (should return empty)
		{"RANDOM_VAR", ""},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := envTransformFunc(tt.input)
			if result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// TestFindConfigFile verifies config file discovery
func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	defer func() {
		if err := os.Chdir(origDir); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	}()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	t.Run("no config file exists", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		if err := os.WriteFile("config.yaml", []byte("logging:\n  level: debug\n"), 0o644); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		defer os.Remove("config.yaml")

		t.Setenv(ConfigPathEnvVar, "")
		if result := findConfigFile(); result != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", result)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		customPath := filepath.Join(tmpDir, "custom.yaml")
		if err := os.WriteFile(customPath, []byte("logging:\n  level: debug\n"), 0o644); err != nil {
			t.Fatalf("Failed to create custom config file: %v", err)
		}
		defer os.Remove(customPath)

		t.Setenv(ConfigPathEnvVar, customPath)
		if result := findConfigFile(); result != customPath {
			t.Errorf("findConfigFile() = %q, want %q", result, customPath)
		}
	})

	t.Run("CONFIG_PATH env var with non-existent file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})
}

// TestLoadWithKoanfEnvVars tests loading configuration from environment variables
func TestLoadWithKoanfEnvVars(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
	t.Setenv("RATINGS_PATH", "/srv/ratings.tsv")
	t.Setenv("RECOMMEND_MIN_OVERLAP", "25")
	t.Setenv("RECOMMEND_CACHE_TTL", "90s")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Data.RatingsPath != "/srv/ratings.tsv" {
		t.Errorf("Data.RatingsPath = %q, want /srv/ratings.tsv", cfg.Data.RatingsPath)
	}
	if cfg.Recommend.MinOverlap != 25 {
		t.Errorf("Recommend.MinOverlap = %d, want 25", cfg.Recommend.MinOverlap)
	}
	if cfg.Recommend.CacheTTL != 90*time.Second {
		t.Errorf("Recommend.CacheTTL = %v, want 90s", cfg.Recommend.CacheTTL)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Server.CORSOrigins = %v, want two trimmed origins", cfg.Server.CORSOrigins)
	}

	// Untouched values keep their defaults
	if cfg.Recommend.DefaultSimilar != 10 {
		t.Errorf("Recommend.DefaultSimilar = %d, want 10", cfg.Recommend.DefaultSimilar)
	}
}

// TestLoadWithKoanfConfigFile tests loading from a YAML config file and env precedence
func TestLoadWithKoanfConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
data:
  ratings_path: /data/ml-100k/u.data
  titles_path: /data/ml-100k/titles.csv
recommend:
  min_overlap: 50
  default_similar: 5
server:
  port: 8080
logging:
  format: console
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Data.RatingsPath != "/data/ml-100k/u.data" {
		t.Errorf("Data.RatingsPath = %q, want /data/ml-100k/u.data", cfg.Data.RatingsPath)
	}
	if cfg.Recommend.MinOverlap != 50 {
		t.Errorf("Recommend.MinOverlap = %d, want 50", cfg.Recommend.MinOverlap)
	}
	if cfg.Recommend.DefaultSimilar != 5 {
		t.Errorf("Recommend.DefaultSimilar = %d, want 5", cfg.Recommend.DefaultSimilar)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
	// env overrides file
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env overrides file)", cfg.Server.Port)
	}
}

// TestLoadWithKoanfValidation tests that invalid configurations are rejected
func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"invalid port", map[string]string{"HTTP_PORT": "70000"}, "HTTP_PORT"},
		{"invalid log level", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL"},
		{"negative min overlap", map[string]string{"RECOMMEND_MIN_OVERLAP": "-1"}, "RECOMMEND_MIN_OVERLAP"},
		{"default above max", map[string]string{"RECOMMEND_DEFAULT_SIMILAR": "500"}, "RECOMMEND_DEFAULT_SIMILAR"},
		{"empty ratings path", map[string]string{"RATINGS_PATH": ""}, "RATINGS_PATH"},
		{"bad delimiter", map[string]string{"TITLES_DELIMITER": "||"}, "TITLES_DELIMITER"},
		{"bad rate limit", map[string]string{"RATE_LIMIT_REQUESTS": "0"}, "RATE_LIMIT_REQUESTS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatal("LoadWithKoanf() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestRateLimitDisabledSkipsBounds(t *testing.T) {
	cfg := defaultConfig()
	cfg.Server.RateLimitDisabled = true
	cfg.Server.RateLimitReqs = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with rate limiting disabled = %v, want nil", err)
	}
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8000}
	if got := s.Addr(); got != "127.0.0.1:8000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:8000", got)
	}
}
