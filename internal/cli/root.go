// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package cli implements the cinematch command line tool. Every command loads
// the catalog through the same configuration layers as the server, then
// answers one query and exits.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinematch/internal/bootstrap"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
)

// app carries the parsed global flags and the loaded configuration for one
// invocation.
type app struct {
	configPath  string
	catalogPath string
	modelPath   string
	verbose     bool

	cfg *config.Config
}

// NewRootCommand builds the cinematch command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "cinematch",
		Short:         "cinematch - movie similarity recommendations from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file (default: discovered config.yaml)")
	flags.StringVar(&a.catalogPath, "catalog", "", "catalog artifact, overrides catalog.path")
	flags.StringVar(&a.modelPath, "model", "", "lexical model, overrides catalog.model_path")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newSimilarCommand(a),
		newSearchCommand(a),
		newTitlesCommand(a),
		newConvertCommand(a),
	)
	return root
}

// loadConfig merges flags over koanf values and routes logs to stderr so
// stdout only carries results.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.LoadWithKoanf(a.configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if a.catalogPath != "" {
		cfg.Catalog.Path = a.catalogPath
		cfg.Catalog.Format = "auto"
	}
	if a.modelPath != "" {
		cfg.Catalog.ModelPath = a.modelPath
	}

	level := "warn"
	if a.verbose {
		level = "debug"
	}
	logging.Init(logging.Config{
		Level:  level,
		Format: "console",
		Output: cmd.ErrOrStderr(),
	})

	a.cfg = cfg
	return nil
}

// components loads the catalog and wires the engine. The caller closes the
// result.
func (a *app) components(ctx context.Context) (*bootstrap.Components, error) {
	if a.cfg == nil {
		return nil, errors.New("configuration not loaded")
	}
	return bootstrap.Build(ctx, a.cfg)
}

// checkK applies the same bounds as the HTTP API.
func (a *app) checkK(k int) error {
	if k < 0 || k > a.cfg.Recommend.MaxK {
		return fmt.Errorf("-k must be between 0 and %d, got %d", a.cfg.Recommend.MaxK, k)
	}
	return nil
}

func closeComponents(c *bootstrap.Components) {
	if err := c.Close(); err != nil {
		logging.Warn().Err(err).Msg("Error closing metadata cache")
	}
}
