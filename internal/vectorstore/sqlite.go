// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package vectorstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver

	"github.com/tomtom215/cinematch/internal/catalog"
)

const sqliteSchema = `CREATE TABLE movies (
	position INTEGER PRIMARY KEY,
	id       TEXT NOT NULL,
	title    TEXT NOT NULL,
	overview TEXT,
	vector   BLOB
)`

const sqliteSelect = `SELECT id, title, overview, vector FROM movies ORDER BY position`

func readSQLite(ctx context.Context, path string) ([]catalog.Entry, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %v", catalog.ErrMalformedArtifact, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite %s: %v", catalog.ErrMalformedArtifact, path, err)
	}
	defer func() { _ = db.Close() }()

	return readRows(ctx, db, sqliteSelect, scanBlobVector)
}

func scanBlobVector(src any) ([]float64, error) {
	b, ok := src.([]byte)
	if !ok {
		return nil, fmt.Errorf("vector column has type %T, want BLOB", src)
	}
	return DecodeVector(b)
}

// WriteSQLite writes cat to a new SQLite artifact at path. An existing file is replaced.
func WriteSQLite(ctx context.Context, path string, cat *catalog.Catalog) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove existing %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite %s: %w", path, err)
	}
	defer func() { _ = db.Close() }()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO movies (position, id, title, overview, vector) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := 0; i < cat.Len(); i++ {
		e := cat.Entry(i)
		if _, err := stmt.ExecContext(ctx, i, e.ID, e.Title, e.Overview, EncodeVector(e.Vector)); err != nil {
			return fmt.Errorf("insert %q: %w", e.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
