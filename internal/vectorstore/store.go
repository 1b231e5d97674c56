// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package vectorstore

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/lexical"
	"github.com/tomtom215/cinematch/internal/logging"
)

// Supported artifact formats.
const (
	FormatAuto    = "auto"
	FormatJSON    = "json"
	FormatSQLite  = "sqlite"
	FormatDuckDB  = "duckdb"
	FormatParquet = "parquet"
)

// Formats lists every accepted format name.
var Formats = []string{FormatAuto, FormatJSON, FormatSQLite, FormatDuckDB, FormatParquet}

// Artifact is a loaded vector store.
type Artifact struct {
	// Catalog is the immutable movie catalog.
	Catalog *catalog.Catalog

	// Vectorizer is the lexical model, or nil when the artifact has none.
	Vectorizer *lexical.Model

	// Format is the resolved format the catalog was read from.
	Format string
}

// Options select the artifact to load.
type Options struct {
	// Path is the catalog artifact.
	Path string

	// Format is one of Formats. Empty or "auto" detects by extension.
	Format string

	// ModelPath optionally points at a separate lexical model artifact. It
	// overrides a vectorizer embedded in a JSON catalog.
	ModelPath string
}

// DetectFormat maps a file extension to a format.
func DetectFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	case ".duckdb", ".ddb":
		return FormatDuckDB, nil
	case ".parquet":
		return FormatParquet, nil
	default:
		return "", fmt.Errorf("%w: cannot detect format of %q", catalog.ErrMalformedArtifact, path)
	}
}

// Load reads the catalog, and the lexical model if one is configured or embedded.
// When catalog entries lack vectors but a model is available, their vectors are
// computed from their overviews.
func Load(ctx context.Context, opts Options) (*Artifact, error) {
	format := strings.ToLower(opts.Format)
	if format == "" || format == FormatAuto {
		detected, err := DetectFormat(opts.Path)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	var (
		raw      []catalog.Entry
		embedded *lexical.Model
		err      error
	)

	switch format {
	case FormatJSON:
		var doc *jsonArtifact
		doc, err = readJSON(opts.Path)
		if err == nil {
			raw = doc.Movies
			if doc.Vectorizer != nil {
				embedded, err = lexical.New(doc.Vectorizer)
			}
			if err == nil && doc.Dimension > 0 {
				err = checkDeclaredDimension(raw, doc.Dimension)
			}
		}
	case FormatSQLite:
		raw, err = readSQLite(ctx, opts.Path)
	case FormatDuckDB:
		raw, err = readDuckDB(ctx, opts.Path)
	case FormatParquet:
		raw, err = readParquet(ctx, opts.Path)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", catalog.ErrMalformedArtifact, opts.Format)
	}
	if err != nil {
		return nil, err
	}

	model := embedded
	if opts.ModelPath != "" {
		model, err = lexical.Load(opts.ModelPath)
		if err != nil {
			return nil, err
		}
	}

	if model != nil {
		if err := fillVectors(raw, model); err != nil {
			return nil, err
		}
	}

	cat, err := catalog.New(raw)
	if err != nil {
		return nil, err
	}

	logging.Info().
		Str("path", opts.Path).
		Str("format", format).
		Int("entries", cat.Len()).
		Int("dimension", cat.Dimension()).
		Bool("vectorizer", model != nil).
		Msg("Catalog artifact loaded")

	return &Artifact{Catalog: cat, Vectorizer: model, Format: format}, nil
}

// fillVectors computes missing vectors from overviews.
func fillVectors(entries []catalog.Entry, model *lexical.Model) error {
	for i := range entries {
		if len(entries[i].Vector) > 0 {
			continue
		}
		if strings.TrimSpace(entries[i].Overview) == "" {
			return fmt.Errorf("%w: entry %d (%q) has neither vector nor overview",
				catalog.ErrMalformedArtifact, i, entries[i].Title)
		}
		entries[i].Vector = model.Transform(entries[i].Overview)
	}
	return nil
}

func checkDeclaredDimension(entries []catalog.Entry, dimension int) error {
	for i := range entries {
		if n := len(entries[i].Vector); n > 0 && n != dimension {
			return fmt.Errorf("%w: entry %d (%q) has dimension %d, artifact declares %d",
				catalog.ErrMalformedArtifact, i, entries[i].Title, n, dimension)
		}
	}
	return nil
}

// Write stores cat in the given format. The lexical model is only persisted by
// the JSON format; other formats carry vectors alone.
func Write(ctx context.Context, path, format string, cat *catalog.Catalog, model *lexical.Model) error {
	format = strings.ToLower(format)
	if format == "" || format == FormatAuto {
		detected, err := DetectFormat(path)
		if err != nil {
			return err
		}
		format = detected
	}

	switch format {
	case FormatJSON:
		return WriteJSON(path, cat, model)
	case FormatSQLite:
		return WriteSQLite(ctx, path, cat)
	case FormatDuckDB:
		return WriteDuckDB(ctx, path, cat)
	case FormatParquet:
		return WriteParquet(ctx, path, cat)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
