// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package metadata enriches recommendation results with posters and details
from The Movie Database (TMDB).

Enrichment is strictly best effort. Enricher.Enrich never returns an error:
any failure (collaborator disabled, missing token, timeout, non-2xx status,
undecodable body, no search results, open circuit, cancelled rate limiter
wait) yields a placeholder with Placeholder=true and an empty poster URL. A
recommendation response is therefore never failed by enrichment.

# Layers

Requests pass through, outermost first:

 1. Cache: in-memory TTL LRU, optionally backed by a BadgerDB tier
 2. Rate limiter: golang.org/x/time/rate token bucket
 3. Circuit breaker: sony/gobreaker, opening after sustained failures
 4. HTTP client with a per-request timeout

Failures are never cached. Successful lookups and successful "no results"
answers are.

# TMDB Endpoints

  - GET {base}/search/movie?query=<title>
  - GET {base}/movie/{id}
  - GET {base}/movie/{id}/recommendations

Every request carries "Accept: application/json" and
"Authorization: Bearer <token>". Poster URLs are {image_base}{poster_path}.
*/
package metadata
