// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/cinematch/docs" // Import generated swagger docs
	"github.com/tomtom215/cinematch/internal/api"
	"github.com/tomtom215/cinematch/internal/bootstrap"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/supervisor"
	"github.com/tomtom215/cinematch/internal/supervisor/services"
)

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("catalog", cfg.Catalog.Path).
		Str("format", cfg.Catalog.Format).
		Bool("metadata", cfg.Metadata.Active()).
		Msg("Starting CineMatch with supervisor tree")

	// An unreadable catalog is fatal: serving from a partial catalog would
	// silently return wrong neighbors.
	components, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load catalog")
	}
	defer func() {
		if err := components.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing metadata cache")
		}
	}()

	logging.Info().
		Int("movies", components.Artifact.Catalog.Len()).
		Int("dimension", components.Artifact.Catalog.Dimension()).
		Bool("text_queries", components.Engine.HasVectorizer()).
		Msg("Catalog loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridges zerolog to slog for sutureslog
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	server := newHTTPServer(cfg, components)
	addServices(tree, server, components)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// newHTTPServer builds the API server. Request handling is bounded by the
// configured timeout; the write deadline leaves room for enrichment.
func newHTTPServer(cfg *config.Config, c *bootstrap.Components) *http.Server {
	handler := api.NewHandler(c.Engine, c.Enricher, cfg.Server.Timeout)
	mw := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security))
	router := api.NewRouter(handler, mw)

	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       idleTimeout,
	}
}

// addServices registers the HTTP server in the API layer and, when a
// persistent metadata cache is open, its garbage collector in the data layer.
func addServices(tree *supervisor.SupervisorTree, server *http.Server, c *bootstrap.Components) {
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, services.DefaultShutdownTimeout))

	if c.Cache != nil {
		tree.AddDataService(services.NewCacheGCService(c.Cache, services.DefaultGCInterval, services.DefaultGCDiscardRatio))
		logging.Info().Dur("interval", services.DefaultGCInterval).Msg("Metadata cache GC scheduled")
	}
}
