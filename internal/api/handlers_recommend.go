// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metadata"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// maxTextBodyBytes caps the text endpoint body; the text itself is limited
// by validation.
const maxTextBodyBytes = 64 << 10

// RecommendationItem is one ranked movie.
type RecommendationItem struct {
	Rank     int    `json:"rank"`
	ID       string `json:"id"`
	Title    string `json:"title"`
	Overview string `json:"overview,omitempty"`

	// Score is null when the similarity is undefined (zero-norm vector).
	Score      *float64           `json:"score"`
	Degenerate bool               `json:"degenerate,omitempty"`
	Metadata   *metadata.Metadata `json:"metadata,omitempty"`
}

// RecommendationData is the payload of the similar and text endpoints.
type RecommendationData struct {
	Query    string                     `json:"query"`
	Items    []RecommendationItem       `json:"items"`
	Lookup   recommend.ResponseMetadata `json:"lookup"`
	Enriched bool                       `json:"enriched"`
}

// SimilarMovies handles GET /api/v1/recommendations/similar?title=&k=&diversity=&enrich=
//
// @Summary Recommend movies similar to a title
// @Description Ranks catalog movies by cosine similarity to the query title, optionally reranked for diversity
// @Tags Recommendations
// @Produce json
// @Param title query string true "Query title (exact, case-insensitive, or fuzzy match)"
// @Param k query int false "Number of results; omitted returns every other movie"
// @Param diversity query number false "MMR diversity weight (0-1)" default(0)
// @Param enrich query bool false "Attach TMDB metadata" default(false)
// @Success 200 {object} APIResponse{data=RecommendationData} "Ranked recommendations"
// @Failure 400 {object} APIResponse "Invalid parameters"
// @Failure 404 {object} APIResponse "Title not found"
// @Router /recommendations/similar [get]
func (h *Handler) SimilarMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	cfg := h.engine.Config()

	k, err := queryInt(r, "k", cfg.DefaultK)
	if err != nil {
		rejectParam(rw, err)
		return
	}
	diversity, err := queryFloat(r, "diversity", 0)
	if err != nil {
		rejectParam(rw, err)
		return
	}
	enrich, err := queryBool(r, "enrich", false)
	if err != nil {
		rejectParam(rw, err)
		return
	}

	req := recommend.Request{
		Title:     r.URL.Query().Get("title"),
		K:         k,
		Diversity: diversity,
		RequestID: logging.RequestIDFromContext(r.Context()),
	}
	if !validateRequest(rw, &req) || !checkMaxK(rw, req.K, cfg.MaxK) {
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	resp, err := h.engine.Similar(ctx, req)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			rw.NotFound(fmt.Sprintf("Movie %q not found in catalog", req.Title))
			return
		}
		rw.InternalError("Failed to compute recommendations", err)
		return
	}

	rw.Success(h.recommendationData(ctx, resp, enrich))
}

// TextRecommendations handles POST /api/v1/recommendations/text
// with body {"text": "...", "k": 15}.
//
// @Summary Recommend movies for free text
// @Description Vectorizes the text with the catalog's lexical model and ranks the catalog against it
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param enrich query bool false "Attach TMDB metadata" default(false)
// @Param body body textBody true "Query text and result count"
// @Success 200 {object} APIResponse{data=RecommendationData} "Ranked recommendations"
// @Failure 400 {object} APIResponse "Invalid body"
// @Failure 503 {object} APIResponse "No lexical model loaded"
// @Router /recommendations/text [post]
func (h *Handler) TextRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	cfg := h.engine.Config()

	enrich, err := queryBool(r, "enrich", false)
	if err != nil {
		rejectParam(rw, err)
		return
	}

	var body textBody
	r.Body = http.MaxBytesReader(w, r.Body, maxTextBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		rw.Error(http.StatusBadRequest, ErrCodeBadRequest, "Request body must be a JSON object with a text field")
		return
	}

	req := recommend.TextRequest{
		Text:      body.Text,
		K:         cfg.DefaultK,
		RequestID: logging.RequestIDFromContext(r.Context()),
	}
	if body.K != nil {
		req.K = *body.K
	}
	if !validateRequest(rw, &req) || !checkMaxK(rw, req.K, cfg.MaxK) {
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	resp, err := h.engine.SimilarToText(ctx, req)
	if err != nil {
		if errors.Is(err, recommend.ErrNoVectorizer) {
			rw.ServiceUnavailable("Text search is unavailable: no lexical model loaded")
			return
		}
		rw.InternalError("Failed to compute recommendations", err)
		return
	}

	rw.Success(h.recommendationData(ctx, resp, enrich))
}

// ExternalRecommendations handles GET /api/v1/recommendations/external?title=&limit=
// It proxies TMDB's own recommendations. Failures are reported through the
// placeholder flag, never as an error status.
//
// @Summary Proxy TMDB recommendations
// @Tags Recommendations
// @Produce json
// @Param title query string true "Movie title"
// @Param limit query int false "Number of results (1-50)" default(10)
// @Success 200 {object} APIResponse{data=metadata.ExternalResult} "External recommendations or placeholder"
// @Failure 400 {object} APIResponse "Invalid parameters"
// @Router /recommendations/external [get]
func (h *Handler) ExternalRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, err := queryInt(r, "limit", defaultExternalLimit)
	if err != nil {
		rejectParam(rw, err)
		return
	}

	req := ExternalRequest{Title: r.URL.Query().Get("title"), Limit: limit}
	if !validateRequest(rw, &req) {
		return
	}

	title := req.Title
	if idx, err := h.engine.Catalog().Lookup(title); err == nil {
		title = h.engine.Catalog().Entry(idx).Title
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	rw.Success(h.enricher.External(ctx, title, req.Limit))
}

// recommendationData converts an engine response, enriching it when asked.
// Enrichment runs after the lookup has succeeded and cannot fail it.
func (h *Handler) recommendationData(ctx context.Context, resp *recommend.Response, enrich bool) RecommendationData {
	items := make([]RecommendationItem, len(resp.Items))
	titles := make([]string, len(resp.Items))
	for i, it := range resp.Items {
		items[i] = RecommendationItem{
			Rank:       it.Rank,
			ID:         it.ID,
			Title:      it.Title,
			Overview:   it.Overview,
			Score:      finiteScore(it.Score),
			Degenerate: it.Degenerate,
		}
		titles[i] = it.Title
	}

	if enrich && len(items) > 0 {
		for i, md := range h.enricher.EnrichMany(ctx, titles) {
			items[i].Metadata = &md
		}
	}

	return RecommendationData{
		Query:    resp.Query,
		Items:    items,
		Lookup:   resp.Metadata,
		Enriched: enrich,
	}
}

// checkMaxK rejects k above the configured maximum.
func checkMaxK(rw *ResponseWriter, k, maxK int) bool {
	if k <= maxK {
		return true
	}
	rw.ValidationError(fmt.Sprintf("k must be at most %d", maxK), map[string]any{
		"field": "k",
		"tag":   "max",
		"value": k,
	})
	return false
}

// finiteScore maps non-finite scores to nil so they encode as JSON null.
func finiteScore(score float64) *float64 {
	if math.IsInf(score, 0) || math.IsNaN(score) {
		return nil
	}
	return &score
}
