// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package bootstrap assembles the components shared by the server and the CLI:
// the catalog artifact, the recommendation engine and the metadata enricher.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metadata"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/recommend/reranking"
	"github.com/tomtom215/cinematch/internal/vectorstore"
)

// Components holds everything built from one configuration.
type Components struct {
	Artifact *vectorstore.Artifact
	Engine   *recommend.Engine
	Enricher *metadata.Enricher

	// Cache is the persistent metadata tier, nil when metadata.cache_dir is empty.
	Cache *cache.Persistent
}

// Build loads the artifact and wires the engine and enricher. Artifact errors
// wrap catalog.ErrMalformedArtifact and are meant to stop the process.
func Build(ctx context.Context, cfg *config.Config) (*Components, error) {
	art, err := LoadArtifact(ctx, cfg)
	if err != nil {
		return nil, err
	}

	engine, err := NewEngine(cfg, art)
	if err != nil {
		return nil, err
	}

	enricher, persistent, err := NewEnricher(cfg, art)
	if err != nil {
		return nil, err
	}

	return &Components{
		Artifact: art,
		Engine:   engine,
		Enricher: enricher,
		Cache:    persistent,
	}, nil
}

// Close releases the persistent cache, if any.
func (c *Components) Close() error {
	if c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}

// LoadArtifact reads the configured catalog and optional lexical model.
func LoadArtifact(ctx context.Context, cfg *config.Config) (*vectorstore.Artifact, error) {
	art, err := vectorstore.Load(ctx, vectorstore.Options{
		Path:      cfg.Catalog.Path,
		Format:    cfg.Catalog.Format,
		ModelPath: cfg.Catalog.ModelPath,
	})
	if err != nil {
		return nil, fmt.Errorf("load catalog %q: %w", cfg.Catalog.Path, err)
	}
	return art, nil
}

// EngineConfig maps the recommend config section onto the engine config.
func EngineConfig(cfg *config.Config) *recommend.Config {
	return &recommend.Config{
		DefaultK:      cfg.Recommend.DefaultK,
		MaxK:          cfg.Recommend.MaxK,
		Diversity:     cfg.Recommend.DiversityLambda,
		CandidatePool: cfg.Recommend.CandidatePool,
	}
}

// NewEngine builds the engine over art with the MMR reranker registered.
// The lexical model is attached only when the artifact has one.
func NewEngine(cfg *config.Config, art *vectorstore.Artifact) (*recommend.Engine, error) {
	opts := []recommend.Option{recommend.WithReranker(reranking.NewMMR())}
	// A nil *lexical.Model must not become a non-nil Vectorizer interface.
	if art.Vectorizer != nil {
		opts = append(opts, recommend.WithVectorizer(art.Vectorizer))
	}

	engine, err := recommend.NewEngine(art.Catalog, EngineConfig(cfg), logging.Logger(), opts...)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}
	return engine, nil
}

// NewEnricher builds the metadata enricher, opening the BadgerDB tier when a
// cache directory is configured. The caller owns the returned cache.
//
// A cache that fails to open is logged and skipped; enrichment is optional
// and must not block startup.
func NewEnricher(cfg *config.Config, art *vectorstore.Artifact) (*metadata.Enricher, *cache.Persistent, error) {
	if art == nil || art.Catalog == nil {
		return nil, nil, errors.New("artifact is required")
	}

	opts := []metadata.Option{metadata.WithCatalog(art.Catalog)}

	var persistent *cache.Persistent
	if dir := cfg.Metadata.CacheDir; dir != "" && cfg.Metadata.Active() {
		p, err := cache.OpenPersistent(dir, cfg.Metadata.CacheTTL)
		if err != nil {
			logging.Warn().Err(err).Str("dir", dir).Msg("Persistent metadata cache unavailable, using memory only")
		} else {
			persistent = p
			opts = append(opts, metadata.WithPersistentCache(p))
		}
	}

	return metadata.NewEnricher(&cfg.Metadata, opts...), persistent, nil
}
