// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/metadata"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/recommend/reranking"
)

// testEntries: Alpha and Gamma are identical, Beta is orthogonal, Zero is degenerate.
func testEntries() []catalog.Entry {
	return []catalog.Entry{
		{ID: "1", Title: "Alpha", Overview: "first film", Vector: []float64{1, 0}},
		{ID: "2", Title: "Beta", Overview: "second film", Vector: []float64{0, 1}},
		{ID: "3", Title: "Gamma", Vector: []float64{1, 0}},
		{ID: "4", Title: "Zero", Vector: []float64{0, 0}},
	}
}

type fixedVectorizer []float64

func (v fixedVectorizer) Transform(string) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

func (v fixedVectorizer) Dimension() int { return len(v) }

// stubEnricher returns deterministic metadata without any upstream.
type stubEnricher struct {
	enabled bool
	calls   atomic.Int32
}

func (s *stubEnricher) Enabled() bool { return s.enabled }

func (s *stubEnricher) Enrich(_ context.Context, title string) metadata.Metadata {
	s.calls.Add(1)
	return metadata.Metadata{Title: title, PosterURL: "https://img.test/" + title + ".jpg"}
}

func (s *stubEnricher) EnrichMany(ctx context.Context, titles []string) []metadata.Metadata {
	out := make([]metadata.Metadata, len(titles))
	for i, t := range titles {
		out[i] = s.Enrich(ctx, t)
	}
	return out
}

func (s *stubEnricher) External(_ context.Context, title string, limit int) metadata.ExternalResult {
	items := []metadata.Metadata{{Title: "Upstream One"}, {Title: "Upstream Two"}, {Title: "Upstream Three"}}
	if limit < len(items) {
		items = items[:limit]
	}
	return metadata.ExternalResult{Source: metadata.Metadata{Title: title, TMDBID: 42}, Items: items}
}

type serverOptions struct {
	// entries replaces testEntries when non-nil; an empty slice builds an empty catalog.
	entries    []catalog.Entry
	vectorizer recommend.Vectorizer
	enricher   Enricher
	middleware *ChiMiddlewareConfig
}

func newTestServer(t *testing.T, opts serverOptions) http.Handler {
	t.Helper()

	entries := opts.entries
	if entries == nil {
		entries = testEntries()
	}
	cat, err := catalog.New(entries)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}

	engineOpts := []recommend.Option{recommend.WithReranker(reranking.NewMMR())}
	if opts.vectorizer != nil {
		engineOpts = append(engineOpts, recommend.WithVectorizer(opts.vectorizer))
	}
	engine, err := recommend.NewEngine(cat, recommend.DefaultConfig(), zerolog.Nop(), engineOpts...)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	enricher := opts.enricher
	if enricher == nil {
		enricher = &stubEnricher{enabled: true}
	}

	mwCfg := opts.middleware
	if mwCfg == nil {
		mwCfg = DefaultChiMiddlewareConfig()
		mwCfg.RateLimitDisabled = true
	}

	return NewRouter(NewHandler(engine, enricher, 0), NewChiMiddleware(mwCfg)).SetupChi()
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("invalid JSON response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, v any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

func wantError(t *testing.T, rec *httptest.ResponseRecorder, env envelope, status int, code string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	if env.Success {
		t.Error("success = true on an error response")
	}
	if env.Error == nil || env.Error.Code != code {
		t.Fatalf("error = %+v, want code %s", env.Error, code)
	}
}
