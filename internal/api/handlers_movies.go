// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/metadata"
)

// MovieItem is a catalog entry as returned by the movie endpoints.
type MovieItem struct {
	ID       string             `json:"id"`
	Title    string             `json:"title"`
	Overview string             `json:"overview,omitempty"`
	Metadata *metadata.Metadata `json:"metadata,omitempty"`
}

// ListMovies handles GET /api/v1/movies?q=&limit=&offset=
// Titles are filtered by case-insensitive substring and paginated in catalog order.
//
// @Summary List catalog titles
// @Description Case-insensitive substring filter over titles, paginated in catalog order
// @Tags Movies
// @Produce json
// @Param q query string false "Title substring"
// @Param limit query int false "Page size (1-500)" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} APIResponse{data=[]MovieItem} "Matching titles"
// @Failure 400 {object} APIResponse "Invalid parameters"
// @Router /movies [get]
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, err := queryInt(r, "limit", defaultMoviesLimit)
	if err != nil {
		rejectParam(rw, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		rejectParam(rw, err)
		return
	}

	req := MoviesRequest{
		Query:  r.URL.Query().Get("q"),
		Limit:  limit,
		Offset: offset,
	}
	if !validateRequest(rw, &req) {
		return
	}

	cat := h.engine.Catalog()
	matches := cat.Search(req.Query)
	total := len(matches)

	start := min(req.Offset, total)
	end := min(start+req.Limit, total)

	items := make([]MovieItem, 0, end-start)
	for _, idx := range matches[start:end] {
		entry := cat.Entry(idx)
		items = append(items, MovieItem{ID: entry.ID, Title: entry.Title})
	}

	rw.SuccessWithPagination(items, &PaginationMeta{
		Total:   total,
		Count:   len(items),
		Offset:  req.Offset,
		Limit:   req.Limit,
		HasMore: end < total,
	})
}

// FeaturedMovies handles GET /api/v1/movies/featured?limit=&enrich=
// It returns the first catalog entries, enriched by default.
//
// @Summary List featured movies
// @Tags Movies
// @Produce json
// @Param limit query int false "Number of movies (1-100)" default(10)
// @Param enrich query bool false "Attach TMDB metadata" default(true)
// @Success 200 {object} APIResponse{data=[]MovieItem} "Featured movies"
// @Failure 400 {object} APIResponse "Invalid parameters"
// @Router /movies/featured [get]
func (h *Handler) FeaturedMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, err := queryInt(r, "limit", defaultFeaturedLimit)
	if err != nil {
		rejectParam(rw, err)
		return
	}
	enrich, err := queryBool(r, "enrich", true)
	if err != nil {
		rejectParam(rw, err)
		return
	}

	req := FeaturedRequest{Limit: limit, Enrich: enrich}
	if !validateRequest(rw, &req) {
		return
	}

	cat := h.engine.Catalog()
	n := min(req.Limit, cat.Len())
	items := make([]MovieItem, n)
	titles := make([]string, n)
	for i := 0; i < n; i++ {
		entry := cat.Entry(i)
		items[i] = MovieItem{ID: entry.ID, Title: entry.Title, Overview: entry.Overview}
		titles[i] = entry.Title
	}

	if req.Enrich && n > 0 {
		ctx, cancel := h.withTimeout(r.Context())
		defer cancel()
		for i, md := range h.enricher.EnrichMany(ctx, titles) {
			items[i].Metadata = &md
		}
	}

	rw.Success(items)
}

// MovieMetadata handles GET /api/v1/movies/metadata?title=
// The title must be in the catalog. Enrichment failures yield a placeholder.
//
// @Summary Get movie metadata
// @Tags Movies
// @Produce json
// @Param title query string true "Catalog title"
// @Success 200 {object} APIResponse{data=metadata.Metadata} "Metadata or placeholder"
// @Failure 400 {object} APIResponse "Missing title"
// @Failure 404 {object} APIResponse "Title not in catalog"
// @Router /movies/metadata [get]
func (h *Handler) MovieMetadata(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := TitleRequest{Title: r.URL.Query().Get("title")}
	if !validateRequest(rw, &req) {
		return
	}

	cat := h.engine.Catalog()
	idx, err := cat.Lookup(req.Title)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			rw.NotFound(fmt.Sprintf("Movie %q not found in catalog", req.Title))
			return
		}
		rw.InternalError("Failed to resolve title", err)
		return
	}

	entry := cat.Entry(idx)
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()
	md := h.enricher.Enrich(ctx, entry.Title)

	rw.Success(MovieItem{
		ID:       entry.ID,
		Title:    entry.Title,
		Overview: entry.Overview,
		Metadata: &md,
	})
}
