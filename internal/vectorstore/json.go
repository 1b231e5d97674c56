// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package vectorstore

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/lexical"
)

// jsonArtifact is the JSON catalog layout.
type jsonArtifact struct {
	Dimension  int             `json:"dimension,omitempty"`
	Movies     []catalog.Entry `json:"movies"`
	Vectorizer *lexical.Spec   `json:"vectorizer,omitempty"`
}

func readJSON(path string) (*jsonArtifact, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", catalog.ErrMalformedArtifact, path, err)
	}
	defer func() { _ = f.Close() }()

	var doc jsonArtifact
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", catalog.ErrMalformedArtifact, path, err)
	}
	return &doc, nil
}

// WriteJSON writes a catalog, and optionally a lexical model, as a JSON artifact.
func WriteJSON(path string, cat *catalog.Catalog, model *lexical.Model) error {
	doc := jsonArtifact{
		Dimension: cat.Dimension(),
		Movies:    cat.Entries(),
	}
	if model != nil {
		doc.Vectorizer = model.Spec()
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // artifacts are not secret
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
