// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metadata

import (
	"context"
	"errors"
	"fmt"
)

// ErrRateLimited is returned when waiting for the rate limiter fails,
// usually because the caller's context ended first.
var ErrRateLimited = errors.New("metadata: rate limiter wait cancelled")

// Metadata is the enrichment attached to one movie title.
type Metadata struct {
	Title       string   `json:"title"`
	TMDBID      int      `json:"tmdb_id,omitempty"`
	Overview    string   `json:"overview,omitempty"`
	ReleaseDate string   `json:"release_date,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	VoteCount   int      `json:"vote_count,omitempty"`
	Runtime     int      `json:"runtime,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Tagline     string   `json:"tagline,omitempty"`
	PosterURL   string   `json:"poster_url"`

	// Placeholder is true when no upstream data backs this value.
	Placeholder bool `json:"placeholder"`
}

// MovieResult is one entry of a TMDB search or recommendations page.
type MovieResult struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	ReleaseDate   string  `json:"release_date"`
	PosterPath    string  `json:"poster_path"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	Popularity    float64 `json:"popularity"`
}

// Genre is a TMDB genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieDetails is the TMDB /movie/{id} payload.
type MovieDetails struct {
	MovieResult
	Runtime int     `json:"runtime"`
	Genres  []Genre `json:"genres"`
	Tagline string  `json:"tagline"`
	IMDBID  string  `json:"imdb_id"`
}

type pagedResults struct {
	Page         int           `json:"page"`
	Results      []MovieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// Provider is the upstream movie database. Client talks HTTP; ResilientClient
// wraps any Provider with rate limiting and a circuit breaker.
type Provider interface {
	SearchMovie(ctx context.Context, query string) ([]MovieResult, error)
	GetMovie(ctx context.Context, id int) (*MovieDetails, error)
	Recommendations(ctx context.Context, id int) ([]MovieResult, error)
}

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	Endpoint string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("tmdb %s returned status %d", e.Endpoint, e.Code)
	}
	return fmt.Sprintf("tmdb %s returned status %d: %s", e.Endpoint, e.Code, e.Body)
}

// clientSide reports whether the upstream rejected the request itself rather
// than failing. Those answers do not count against the circuit breaker.
func (e *StatusError) clientSide() bool {
	return e.Code >= 400 && e.Code < 500 && e.Code != 429
}
