// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// CineMatch API serves content-based movie recommendations from a
// precomputed catalog of movie vectors.
//
// @title CineMatch API
// @version 1.0
// @description Content-based movie recommendations over a precomputed vector catalog
// @description
// @description ## Features
// @description
// @description - **Similar movies**: cosine similarity against a catalog title, with optional MMR diversity
// @description - **Free-text queries**: lexical vectorization when the catalog carries a model
// @description - **Metadata**: TMDB posters and details, cached in memory and optionally on disk
// @description
// @description ## Rate Limiting
// @description
// @description Every endpoint except health is rate limited per client IP.
// @description
// @description ## Error Responses
// @description
// @description Errors use the standard envelope with success=false and an error object
// @description carrying code, message and request_id.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/cinematch/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8501
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health and lookup counters
//
// @tag.name Movies
// @tag.description Catalog browsing and movie metadata
//
// @tag.name Recommendations
// @tag.description Similarity rankings and TMDB recommendations
package main
