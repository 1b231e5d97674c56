// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package vectorstore loads the static catalog artifact the recommender serves from.

# Formats

  - json: {"dimension": D, "movies": [...], "vectorizer": {...}} decoded with goccy/go-json
  - sqlite: table movies(position, id, title, overview, vector BLOB) via modernc.org/sqlite
  - duckdb: the same table in a DuckDB database file, vector as DOUBLE[]
  - parquet: the same columns in a Parquet file, read through DuckDB's read_parquet

Vectors in SQLite are stored as little-endian float64 BLOBs without a length
prefix. Rows are always read in position order so catalog order, and therefore
tie-breaking between equal scores, is identical across formats.

# Failure Semantics

Every load error wraps catalog.ErrMalformedArtifact. The artifact is loaded once at
startup and a failure is fatal; there is no partial catalog.
*/
package vectorstore
