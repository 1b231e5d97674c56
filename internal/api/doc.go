// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package api provides the HTTP JSON API for CineMatch.

Routes are served by a chi router. Every response uses the same envelope:

	{
	  "success": true,
	  "data": {...},
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 2}
	}

Errors set success to false and carry error.code, error.message and
optionally error.details.

Endpoints:

  - GET  /api/v1/health
  - GET  /api/v1/movies?q=&limit=50&offset=0
  - GET  /api/v1/movies/featured?limit=10&enrich=true
  - GET  /api/v1/movies/metadata?title=
  - GET  /api/v1/recommendations/similar?title=&k=&diversity=&enrich=
  - POST /api/v1/recommendations/text
  - GET  /api/v1/recommendations/external?title=&limit=
  - GET  /metrics
  - GET  /swagger/*

Lookups run first. Enrichment runs afterwards and only adds metadata, so a
TMDB outage never fails a recommendation. Scores that are -Inf (zero-norm
vectors) are serialized as null.

Middleware stack, outermost first: request ID, real IP, access log, panic
recovery, CORS, gzip. The /api/v1 routes add Prometheus instrumentation and,
except for health, per-IP rate limiting.
*/
package api
