// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML file
//  3. Environment Variables: Override any mapped setting
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Metadata  MetadataConfig  `koanf:"metadata"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// CatalogConfig locates the vector store artifact loaded at startup.
//
// Environment Variables:
//   - CATALOG_PATH: artifact path
//   - CATALOG_FORMAT: auto, json, sqlite, duckdb, parquet
//   - MODEL_PATH: optional lexical model; enables free-text queries
type CatalogConfig struct {
	Path      string `koanf:"path"`
	Format    string `koanf:"format"`
	ModelPath string `koanf:"model_path"`
}

// RecommendConfig tunes the similarity lookup.
type RecommendConfig struct {
	// DefaultK is the number of results when a request omits k.
	DefaultK int `koanf:"default_k"`

	// MaxK is the largest k a request may ask for.
	MaxK int `koanf:"max_k"`

	// DiversityLambda is the default MMR diversity strength in [0, 1].
	// Zero keeps results in pure similarity order.
	DiversityLambda float64 `koanf:"diversity_lambda"`

	// CandidatePool is how many ranked candidates the reranker considers.
	CandidatePool int `koanf:"candidate_pool"`
}

// MetadataConfig configures the TMDB enrichment client.
//
// Enrichment is best effort. With Enabled=false or an empty Token every
// lookup yields a placeholder and no network traffic is generated.
type MetadataConfig struct {
	Enabled      bool   `koanf:"enabled"`
	BaseURL      string `koanf:"base_url"`
	ImageBaseURL string `koanf:"image_base_url"`
	Token        string `koanf:"token"`
	Language     string `koanf:"language"`

	// Timeout bounds every upstream HTTP request.
	Timeout time.Duration `koanf:"timeout"`

	// RateLimit is the sustained request rate per second; RateBurst the bucket size.
	RateLimit float64 `koanf:"rate_limit"`
	RateBurst int     `koanf:"rate_burst"`

	// MaxConcurrency bounds parallel lookups when enriching a result list.
	MaxConcurrency int `koanf:"max_concurrency"`

	// CacheSize and CacheTTL size the in-memory LRU.
	CacheSize int           `koanf:"cache_size"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`

	// CacheDir enables the persistent BadgerDB tier when non-empty.
	CacheDir string `koanf:"cache_dir"`
}

// Active reports whether enrichment will contact the upstream.
func (m *MetadataConfig) Active() bool {
	return m.Enabled && m.Token != ""
}

// SecurityConfig holds rate limiting and CORS settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration from defaults, the discovered config file and the
// environment. See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf("")
}
