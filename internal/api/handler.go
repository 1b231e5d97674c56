// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"time"

	"github.com/tomtom215/cinematch/internal/metadata"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// DefaultLookupTimeout bounds a single handler when the server timeout is unset.
const DefaultLookupTimeout = 10 * time.Second

// Enricher attaches best-effort metadata to titles. *metadata.Enricher
// implements it; none of its methods may fail.
type Enricher interface {
	Enabled() bool
	Enrich(ctx context.Context, title string) metadata.Metadata
	EnrichMany(ctx context.Context, titles []string) []metadata.Metadata
	External(ctx context.Context, title string, limit int) metadata.ExternalResult
}

// Handler serves the CineMatch endpoints. It holds no mutable state beyond
// what the engine and enricher guard themselves.
type Handler struct {
	engine   *recommend.Engine
	enricher Enricher
	timeout  time.Duration
}

// NewHandler creates a handler. enricher must not be nil; pass an Enricher
// built from a disabled config to serve placeholders only.
func NewHandler(engine *recommend.Engine, enricher Enricher, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	return &Handler{
		engine:   engine,
		enricher: enricher,
		timeout:  timeout,
	}
}

func (h *Handler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, h.timeout)
}
