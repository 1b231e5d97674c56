// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package main is the entry point for the CineMatch HTTP server.

CineMatch answers "movies like this one" from a precomputed catalog of movie
vectors. The catalog is loaded once at startup and never changes while the
process runs; a malformed or missing artifact stops the server before it
listens.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("cinematch")
	├── DataSupervisor ("data-layer")
	│   └── Metadata cache GC (only with TMDB_CACHE_DIR)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Catalog: vector store artifact (JSON, SQLite, DuckDB or Parquet)
 4. Engine: cosine similarity with optional MMR reranking
 5. Enricher: TMDB metadata with an in-memory LRU and optional BadgerDB tier
 6. Supervisor Tree and HTTP Server

# Configuration

Priority: Environment variables > Config file > Defaults

	HTTP_PORT=8501               # HTTP server port
	CATALOG_PATH=data/movies.json
	CATALOG_FORMAT=auto          # auto, json, sqlite, duckdb, parquet
	MODEL_PATH=                  # lexical model for free-text queries
	RECOMMEND_DEFAULT_K=15
	RECOMMEND_MAX_K=100
	TMDB_TOKEN=<read token>      # enables poster and metadata enrichment
	TMDB_CACHE_DIR=              # persistent metadata cache
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests, then the metadata cache is closed.

# Example Usage

	export CATALOG_PATH=/data/movies.db
	export TMDB_TOKEN=your-tmdb-token
	./cinematch-server
*/
package main
