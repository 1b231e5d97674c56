// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// HealthStatus reports what the server has loaded.
type HealthStatus struct {
	Status      string          `json:"status"`
	CatalogSize int             `json:"catalog_size"`
	Dimension   int             `json:"dimension"`
	Vectorizer  bool            `json:"vectorizer"`
	Metadata    bool            `json:"metadata"`
	Stats       recommend.Stats `json:"stats"`
}

// Health handles GET /api/v1/health.
// The catalog is loaded before the server starts, so a running server is healthy.
//
// @Summary Get server health
// @Description Reports catalog size, vector dimension, loaded optional components, and lookup counters
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus} "Health status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	cat := h.engine.Catalog()
	NewResponseWriter(w, r).Success(HealthStatus{
		Status:      "ok",
		CatalogSize: cat.Len(),
		Dimension:   cat.Dimension(),
		Vectorizer:  h.engine.HasVectorizer(),
		Metadata:    h.enricher.Enabled(),
		Stats:       h.engine.Stats(),
	})
}
