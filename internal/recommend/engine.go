// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// ErrNoVectorizer is returned by SimilarToText when no lexical model is loaded.
var ErrNoVectorizer = errors.New("no text vectorizer loaded")

// Engine answers similarity lookups against one immutable catalog.
// It is safe for concurrent use.
type Engine struct {
	config     *Config
	logger     zerolog.Logger
	catalog    *catalog.Catalog
	vectorizer Vectorizer
	reranker   Reranker

	requestCount  atomic.Int64
	notFoundCount atomic.Int64
	errorCount    atomic.Int64
	rerankCount   atomic.Int64
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithVectorizer enables free-text queries.
func WithVectorizer(v Vectorizer) Option {
	return func(e *Engine) {
		e.vectorizer = v
	}
}

// WithReranker sets the diversity reranker.
func WithReranker(r Reranker) Option {
	return func(e *Engine) {
		e.reranker = r
	}
}

// NewEngine creates a recommendation engine over cat.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat *catalog.Catalog, cfg *Config, logger zerolog.Logger, opts ...Option) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config:  cfg,
		logger:  logger.With().Str("component", "recommend").Logger(),
		catalog: cat,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.vectorizer != nil && cat.Len() > 0 && e.vectorizer.Dimension() != cat.Dimension() {
		return nil, fmt.Errorf("%w: vectorizer dimension %d does not match catalog dimension %d",
			catalog.ErrMalformedArtifact, e.vectorizer.Dimension(), cat.Dimension())
	}

	metrics.SetCatalog(cat.Len(), cat.Dimension())

	e.logger.Info().
		Int("entries", cat.Len()).
		Int("dimension", cat.Dimension()).
		Bool("vectorizer", e.vectorizer != nil).
		Bool("reranker", e.reranker != nil).
		Msg("recommendation engine ready")

	return e, nil
}

// Catalog returns the catalog the engine ranks against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return *e.config
}

// HasVectorizer reports whether free-text queries are available.
func (e *Engine) HasVectorizer() bool {
	return e.vectorizer != nil
}

// Similar returns movies similar to the catalog entry named by req.Title.
// The entry itself is excluded by index. Unknown titles return catalog.ErrNotFound,
// except in an empty catalog, where every title yields an empty result.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Similar(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req = e.prepareRequest(req)
	logger := e.createRequestLogger(req.RequestID, QueryTitle, req.K)

	// Nothing can match in an empty catalog, so there is nothing to resolve.
	if e.catalog.Len() == 0 {
		resp := e.buildResponse(strings.TrimSpace(req.Title), QueryTitle, req.RequestID, req.K, []Match{}, "", start)
		metrics.RecordLookup(string(QueryTitle), "ok", time.Since(start), 0)
		logger.Debug().Str("title", resp.Query).Msg("empty catalog, nothing to rank")
		return resp, nil
	}

	idx, err := e.catalog.Lookup(req.Title)
	if err != nil {
		e.notFoundCount.Add(1)
		metrics.RecordLookup(string(QueryTitle), "not_found", time.Since(start), 0)
		logger.Debug().Str("title", req.Title).Msg("title not in catalog")
		return nil, err
	}

	diversity := req.Diversity
	if diversity == 0 {
		diversity = e.config.Diversity
	}

	matches, reranker, err := e.rank(ctx, e.catalog.Vector(idx), idx, req.K, diversity)
	if err != nil {
		e.errorCount.Add(1)
		metrics.RecordLookup(string(QueryTitle), "error", time.Since(start), 0)
		return nil, fmt.Errorf("rank %q: %w", req.Title, err)
	}

	resp := e.buildResponse(e.catalog.Entry(idx).Title, QueryTitle, req.RequestID, req.K, matches, reranker, start)
	metrics.RecordLookup(string(QueryTitle), "ok", time.Since(start), resp.Metadata.Degenerate)

	logger.Debug().
		Str("title", resp.Query).
		Int("returned", len(resp.Items)).
		Int("degenerate", resp.Metadata.Degenerate).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// SimilarToText returns movies whose vectors are closest to the vectorized text.
// Nothing is excluded because the query is not a catalog entry.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) SimilarToText(ctx context.Context, req TextRequest) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if e.vectorizer == nil {
		e.errorCount.Add(1)
		metrics.RecordLookup(string(QueryText), "error", time.Since(start), 0)
		return nil, ErrNoVectorizer
	}
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	logger := e.createRequestLogger(req.RequestID, QueryText, req.K)

	query := e.vectorizer.Transform(req.Text)
	matches, _, err := e.rank(ctx, query, NoExclude, req.K, 0)
	if err != nil {
		e.errorCount.Add(1)
		metrics.RecordLookup(string(QueryText), "error", time.Since(start), 0)
		return nil, fmt.Errorf("rank text query: %w", err)
	}

	resp := e.buildResponse(req.Text, QueryText, req.RequestID, req.K, matches, "", start)
	metrics.RecordLookup(string(QueryText), "ok", time.Since(start), resp.Metadata.Degenerate)

	logger.Debug().
		Int("returned", len(resp.Items)).
		Int("degenerate", resp.Metadata.Degenerate).
		Msg("text recommendation complete")

	return resp, nil
}

// Stats returns cumulative counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Requests:  e.requestCount.Load(),
		NotFound:  e.notFoundCount.Load(),
		Errors:    e.errorCount.Load(),
		Reranked:  e.rerankCount.Load(),
		Catalog:   e.catalog.Len(),
		Dimension: e.catalog.Dimension(),
	}
}

// prepareRequest generates a request ID if needed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	if req.Diversity < 0 {
		req.Diversity = 0
	}
	if req.Diversity > 1 {
		req.Diversity = 1
	}
	return req
}

// createRequestLogger creates a logger with request context.
func (e *Engine) createRequestLogger(requestID string, kind QueryKind, k int) zerolog.Logger {
	return e.logger.With().
		Str("request_id", requestID).
		Str("kind", string(kind)).
		Int("k", k).
		Logger()
}

// rank runs the plain lookup and, when diversity is requested and a reranker is
// registered, reranks a larger candidate pool down to k.
func (e *Engine) rank(ctx context.Context, query []float64, exclude, k int, diversity float64) ([]Match, string, error) {
	if diversity <= 0 || e.reranker == nil || k <= 0 {
		matches, err := Rank(e.catalog, query, exclude, k)
		return matches, "", err
	}

	pool := e.config.CandidatePool
	if pool < k {
		pool = k
	}

	candidates, err := Rank(e.catalog, query, exclude, pool)
	if err != nil {
		return nil, "", err
	}

	e.rerankCount.Add(1)
	return e.reranker.Rerank(ctx, e.catalog, candidates, k, 1-diversity), e.reranker.Name(), nil
}

// buildResponse converts matches into the response shape.
func (e *Engine) buildResponse(query string, kind QueryKind, requestID string, k int, matches []Match, reranker string, start time.Time) *Response {
	items := make([]ScoredItem, len(matches))
	degenerate := 0
	for i, m := range matches {
		entry := e.catalog.Entry(m.Index)
		items[i] = ScoredItem{
			Rank:       i + 1,
			ID:         entry.ID,
			Title:      entry.Title,
			Overview:   entry.Overview,
			Score:      m.Score,
			Degenerate: m.Degenerate,
		}
		if m.Degenerate {
			degenerate++
		}
	}

	return &Response{
		Query: query,
		Items: items,
		Metadata: ResponseMetadata{
			RequestID:   requestID,
			Kind:        kind,
			K:           k,
			CatalogSize: e.catalog.Len(),
			Degenerate:  degenerate,
			Reranker:    reranker,
			LatencyMS:   time.Since(start).Milliseconds(),
			Timestamp:   time.Now(),
		},
	}
}
