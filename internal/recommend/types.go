// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"
	"time"

	"github.com/tomtom215/cinematch/internal/catalog"
)

// Match is a catalog index paired with its similarity to the query.
type Match struct {
	// Index is the position of the entry in the catalog.
	Index int

	// Score is the cosine similarity, or -Inf for a degenerate pair.
	Score float64

	// Degenerate is true when the query or entry vector has zero norm.
	Degenerate bool
}

// ScoredItem is a recommended movie with its score and rank.
type ScoredItem struct {
	// Rank is the 1-based position in the result.
	Rank int `json:"rank"`

	// ID is the catalog identifier.
	ID string `json:"id"`

	// Title is the catalog title.
	Title string `json:"title"`

	// Overview is the catalog description, if the artifact has one.
	Overview string `json:"overview,omitempty"`

	// Score is the cosine similarity to the query. It is -Inf for degenerate
	// vectors, so callers serializing to JSON must handle non-finite values.
	Score float64 `json:"-"`

	// Degenerate marks items whose score could not be computed.
	Degenerate bool `json:"degenerate,omitempty"`
}

// QueryKind distinguishes how the query vector was produced.
type QueryKind string

const (
	// QueryTitle ranks against the vector of an existing catalog entry.
	QueryTitle QueryKind = "title"
	// QueryText ranks against a vector built from free text.
	QueryText QueryKind = "text"
)

// Request asks for movies similar to a catalog title.
type Request struct {
	// Title is matched case-insensitively after trimming whitespace.
	Title string `json:"title" validate:"required,notblank,max=500"`

	// K is the number of results. K <= 0 yields an empty result.
	K int `json:"k" validate:"min=0,max=1000"`

	// Diversity in (0, 1] enables reranking; 0 uses the engine default.
	Diversity float64 `json:"diversity" validate:"min=0,max=1"`

	// RequestID is propagated to logs.
	RequestID string `json:"request_id,omitempty"`
}

// TextRequest asks for movies whose description resembles free text.
type TextRequest struct {
	Text      string `json:"text" validate:"required,notblank,max=10000"`
	K         int    `json:"k" validate:"min=0,max=1000"`
	RequestID string `json:"request_id,omitempty"`
}

// Response is the result of a lookup.
type Response struct {
	// Query is the resolved catalog title, or the raw text for text queries.
	Query string `json:"query"`

	// Items are ordered by descending score.
	Items []ScoredItem `json:"items"`

	// Metadata describes how the response was produced.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes a lookup.
type ResponseMetadata struct {
	RequestID   string    `json:"request_id,omitempty"`
	Kind        QueryKind `json:"kind"`
	K           int       `json:"k"`
	CatalogSize int       `json:"catalog_size"`
	Degenerate  int       `json:"degenerate"`
	Reranker    string    `json:"reranker,omitempty"`
	LatencyMS   int64     `json:"latency_ms"`
	Timestamp   time.Time `json:"timestamp"`
}

// Vectorizer turns free text into a vector in the catalog's space.
// Implementations must be deterministic and safe for concurrent use.
type Vectorizer interface {
	// Transform returns the vector for text.
	Transform(text string) []float64

	// Dimension returns the length of every vector Transform produces.
	Dimension() int
}

// Reranker reorders a ranked candidate pool and returns at most k matches.
type Reranker interface {
	// Name returns the reranker identifier.
	Name() string

	// Rerank selects k matches from items. lambda in [0, 1] trades relevance
	// (1.0) against diversity (0.0).
	Rerank(ctx context.Context, cat *catalog.Catalog, items []Match, k int, lambda float64) []Match
}

// Stats are cumulative engine counters.
type Stats struct {
	Requests  int64 `json:"requests"`
	NotFound  int64 `json:"not_found"`
	Errors    int64 `json:"errors"`
	Reranked  int64 `json:"reranked"`
	Catalog   int   `json:"catalog_size"`
	Dimension int   `json:"dimension"`
}
