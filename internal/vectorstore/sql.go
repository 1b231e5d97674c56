// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package vectorstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomtom215/cinematch/internal/catalog"
)

// vectorScanner converts a driver-specific vector column into float64s.
type vectorScanner func(src any) ([]float64, error)

// readRows runs query and scans (id, title, overview, vector) rows in order.
func readRows(ctx context.Context, db *sql.DB, query string, scanVector vectorScanner) ([]catalog.Entry, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query catalog: %v", catalog.ErrMalformedArtifact, err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]catalog.Entry, 0)
	for rows.Next() {
		var (
			id, title string
			overview  sql.NullString
			raw       any
		)
		if err := rows.Scan(&id, &title, &overview, &raw); err != nil {
			return nil, fmt.Errorf("%w: scan row %d: %v", catalog.ErrMalformedArtifact, len(entries), err)
		}

		var vec []float64
		if raw != nil {
			vec, err = scanVector(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d (%q): %v", catalog.ErrMalformedArtifact, len(entries), title, err)
			}
		}

		entries = append(entries, catalog.Entry{
			ID:       id,
			Title:    title,
			Overview: overview.String,
			Vector:   vec,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate catalog: %v", catalog.ErrMalformedArtifact, err)
	}

	return entries, nil
}
