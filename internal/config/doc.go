// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package config provides centralized configuration management for CineMatch.

# Configuration Sources

Configuration is layered with Koanf v2, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, then config.yaml, config.yml,
    /etc/cinematch/config.yaml, /etc/cinematch/config.yml
 3. Environment variables, through an explicit name mapping

Unmapped environment variables are ignored so unrelated process environment
never leaks into configuration.

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8501)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development, staging or production (default: development)

Catalog:
  - CATALOG_PATH: Vector store artifact (default: data/movies.json)
  - CATALOG_FORMAT: auto, json, sqlite, duckdb, parquet (default: auto)
  - MODEL_PATH: Optional lexical model artifact

Recommendations:
  - RECOMMEND_DEFAULT_K: Results when k is omitted (default: 15)
  - RECOMMEND_MAX_K: Largest accepted k (default: 100)
  - RECOMMEND_DIVERSITY: Default MMR diversity in [0, 1] (default: 0)
  - RECOMMEND_CANDIDATE_POOL: Candidates handed to the reranker (default: 50)

Metadata (TMDB):
  - TMDB_ENABLED, TMDB_BASE_URL, TMDB_IMAGE_BASE_URL, TMDB_TOKEN, TMDB_LANGUAGE
  - TMDB_TIMEOUT, TMDB_RATE_LIMIT, TMDB_RATE_BURST, TMDB_MAX_CONCURRENCY
  - TMDB_CACHE_SIZE, TMDB_CACHE_TTL, TMDB_CACHE_DIR

Security:
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - CORS_ORIGINS: Comma-separated list (default: *)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage Example

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

# Thread Safety

Config is immutable after Load and safe for concurrent reads.
*/
package config
