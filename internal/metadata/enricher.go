// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metadata

import (
	"context"
	"errors"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// Cache tiers reported to metrics.
const (
	tierMemory     = "memory"
	tierPersistent = "persistent"
)

// Enricher attaches TMDB metadata to catalog titles. It is safe for
// concurrent use and never returns an error to its callers.
type Enricher struct {
	provider       Provider // nil when enrichment is inactive
	imageBaseURL   string
	language       string
	maxConcurrency int

	catalog    *catalog.Catalog
	memory     *cache.LRU[Metadata]
	persistent *cache.Persistent
}

// Option configures an Enricher.
type Option func(*Enricher)

// WithCatalog supplies catalog overviews used when TMDB has none.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(e *Enricher) { e.catalog = cat }
}

// WithPersistentCache adds a BadgerDB tier below the in-memory cache.
// The caller keeps ownership and closes it.
func WithPersistentCache(p *cache.Persistent) Option {
	return func(e *Enricher) { e.persistent = p }
}

// WithProvider replaces the upstream built from configuration.
func WithProvider(p Provider) Option {
	return func(e *Enricher) { e.provider = p }
}

// NewEnricher builds an Enricher. When cfg is inactive (disabled or no token)
// and no provider is supplied, every lookup yields a placeholder.
func NewEnricher(cfg *config.MetadataConfig, opts ...Option) *Enricher {
	e := &Enricher{
		imageBaseURL:   strings.TrimSuffix(cfg.ImageBaseURL, "/"),
		language:       cfg.Language,
		maxConcurrency: cfg.MaxConcurrency,
		memory:         cache.NewLRU[Metadata](cfg.CacheSize, cfg.CacheTTL),
	}
	if e.maxConcurrency <= 0 {
		e.maxConcurrency = 1
	}

	if cfg.Active() {
		limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
		e.provider = NewResilientClient(NewClient(cfg), limiter, DefaultBreakerSettings())
	}

	for _, opt := range opts {
		opt(e)
	}

	logging.Info().
		Bool("active", e.provider != nil).
		Bool("persistent_cache", e.persistent != nil).
		Int("max_concurrency", e.maxConcurrency).
		Msg("Metadata enricher configured")

	return e
}

// Enabled reports whether lookups can reach an upstream.
func (e *Enricher) Enabled() bool {
	return e.provider != nil
}

// Enrich returns metadata for title, or a placeholder on any failure.
func (e *Enricher) Enrich(ctx context.Context, title string) Metadata {
	title = strings.TrimSpace(title)
	if e.provider == nil || title == "" {
		metrics.RecordMetadataRequest("disabled")
		return e.placeholder(title)
	}

	key := e.cacheKey(title)
	if md, ok := e.lookupCache(ctx, key); ok {
		metrics.RecordMetadataRequest("cached")
		return e.withFallback(title, md)
	}

	md, err := e.fetch(ctx, title)
	if err != nil {
		result := failureResult(err)
		metrics.RecordMetadataRequest(result)
		level := zerolog.WarnLevel
		if result == "rejected" {
			level = zerolog.DebugLevel // an open circuit would otherwise log every request
		}
		logging.Ctx(ctx).WithLevel(level).Err(err).Str("component", "metadata").Str("title", title).Str("result", result).Msg("Metadata lookup failed")
		return e.placeholder(title)
	}

	e.storeCache(ctx, key, md)
	if md.Placeholder {
		metrics.RecordMetadataRequest("not_found")
	} else {
		metrics.RecordMetadataRequest("success")
	}
	return e.withFallback(title, md)
}

// EnrichMany enriches titles with bounded parallelism. The result has the
// same length and order as titles.
func (e *Enricher) EnrichMany(ctx context.Context, titles []string) []Metadata {
	out := make([]Metadata, len(titles))

	var g errgroup.Group
	g.SetLimit(e.maxConcurrency)
	for i, title := range titles {
		g.Go(func() error {
			out[i] = e.Enrich(ctx, title)
			return nil
		})
	}
	_ = g.Wait() // Enrich never fails

	return out
}

// ExternalResult is TMDB's own recommendation list for a title.
type ExternalResult struct {
	Source      Metadata   `json:"source"`
	Items       []Metadata `json:"items"`
	Placeholder bool       `json:"placeholder"`
}

// External resolves title on TMDB and returns up to limit of TMDB's
// recommendations for it. limit <= 0 returns everything TMDB sent. On any
// failure Items is empty and Placeholder is true.
func (e *Enricher) External(ctx context.Context, title string, limit int) ExternalResult {
	source := e.Enrich(ctx, title)
	if source.Placeholder || source.TMDBID == 0 {
		return ExternalResult{Source: source, Items: []Metadata{}, Placeholder: true}
	}

	results, err := e.provider.Recommendations(ctx, source.TMDBID)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("component", "metadata").Int("tmdb_id", source.TMDBID).Msg("TMDB recommendations failed")
		metrics.RecordMetadataRequest(failureResult(err))
		return ExternalResult{Source: source, Items: []Metadata{}, Placeholder: true}
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	items := make([]Metadata, 0, len(results))
	for i := range results {
		items = append(items, e.fromResult(&results[i]))
	}
	return ExternalResult{Source: source, Items: items}
}

func (e *Enricher) fetch(ctx context.Context, title string) (Metadata, error) {
	results, err := e.provider.SearchMovie(ctx, title)
	if err != nil {
		return Metadata{}, err
	}
	if len(results) == 0 {
		return Metadata{Title: title, Placeholder: true}, nil
	}

	best := &results[0]
	md := e.fromResult(best)

	// Details are a nicety; the search hit alone is a valid answer.
	details, err := e.provider.GetMovie(ctx, best.ID)
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("component", "metadata").Int("tmdb_id", best.ID).Msg("Movie details unavailable")
		return md, nil
	}
	md.Runtime = details.Runtime
	md.Tagline = details.Tagline
	for _, g := range details.Genres {
		md.Genres = append(md.Genres, g.Name)
	}
	if md.Overview == "" {
		md.Overview = details.Overview
	}
	return md, nil
}

func (e *Enricher) fromResult(r *MovieResult) Metadata {
	md := Metadata{
		Title:       r.Title,
		TMDBID:      r.ID,
		Overview:    r.Overview,
		ReleaseDate: r.ReleaseDate,
		Rating:      r.VoteAverage,
		VoteCount:   r.VoteCount,
	}
	if r.PosterPath != "" {
		md.PosterURL = e.imageBaseURL + r.PosterPath
	}
	return md
}

func (e *Enricher) placeholder(title string) Metadata {
	return e.withFallback(title, Metadata{Title: title, Placeholder: true})
}

// withFallback fills a missing overview from the catalog.
func (e *Enricher) withFallback(title string, md Metadata) Metadata {
	if md.Title == "" {
		md.Title = title
	}
	if md.Overview != "" || e.catalog == nil {
		return md
	}
	if idx, err := e.catalog.Lookup(title); err == nil {
		md.Overview = e.catalog.Entry(idx).Overview
	}
	return md
}

func (e *Enricher) cacheKey(title string) string {
	return "tmdb:" + e.language + ":" + catalog.NormalizeTitle(title)
}

func (e *Enricher) lookupCache(ctx context.Context, key string) (Metadata, bool) {
	if md, ok := e.memory.Get(key); ok {
		metrics.RecordMetadataCache(tierMemory)
		return md, true
	}

	if e.persistent != nil {
		data, ok, err := e.persistent.Get(key)
		if err != nil {
			logging.Ctx(ctx).Debug().Err(err).Str("component", "metadata").Msg("Persistent cache read failed")
		}
		if ok {
			var md Metadata
			if err := json.Unmarshal(data, &md); err == nil {
				e.memory.Set(key, md)
				metrics.RecordMetadataCache(tierPersistent)
				return md, true
			}
			_ = e.persistent.Delete(key)
		}
	}

	metrics.RecordMetadataCache("")
	return Metadata{}, false
}

func (e *Enricher) storeCache(ctx context.Context, key string, md Metadata) {
	e.memory.Set(key, md)
	if e.persistent == nil {
		return
	}
	data, err := json.Marshal(md)
	if err != nil {
		return
	}
	if err := e.persistent.Set(key, data); err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("component", "metadata").Msg("Persistent cache write failed")
	}
}

// failureResult classifies an upstream error for metrics.
func failureResult(err error) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "rejected"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "timeout"
	default:
		return "error"
	}
}
