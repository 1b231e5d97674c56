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
	"strconv"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/cinematch/internal/catalog"
)

// Extension autoloading is disabled so loading never reaches the network.
const duckdbNoAutoload = "autoinstall_known_extensions=false&autoload_known_extensions=false"

const duckdbSchema = `CREATE TABLE movies (
	position INTEGER PRIMARY KEY,
	id       VARCHAR NOT NULL,
	title    VARCHAR NOT NULL,
	overview VARCHAR,
	vector   DOUBLE[]
)`

func openDuckDB(dsn string) (*sql.DB, error) {
	conn, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, err
	}
	conn.SetMaxOpenConns(1)
	return conn, nil
}

func readDuckDB(ctx context.Context, path string) ([]catalog.Entry, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %v", catalog.ErrMalformedArtifact, err)
	}

	db, err := openDuckDB(path + "?access_mode=read_only&" + duckdbNoAutoload)
	if err != nil {
		return nil, fmt.Errorf("%w: open duckdb %s: %v", catalog.ErrMalformedArtifact, path, err)
	}
	defer func() { _ = db.Close() }()

	return readRows(ctx, db, `SELECT id, title, overview, vector FROM movies ORDER BY position`, scanListVector)
}

func readParquet(ctx context.Context, path string) ([]catalog.Entry, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %v", catalog.ErrMalformedArtifact, err)
	}

	db, err := openDuckDB(":memory:?" + duckdbNoAutoload)
	if err != nil {
		return nil, fmt.Errorf("%w: open duckdb: %v", catalog.ErrMalformedArtifact, err)
	}
	defer func() { _ = db.Close() }()

	query := fmt.Sprintf(`SELECT CAST(id AS VARCHAR), title, overview, vector FROM read_parquet(%s) ORDER BY position`,
		quoteLiteral(path))
	return readRows(ctx, db, query, scanListVector)
}

// scanListVector accepts a DuckDB LIST of numbers, or a float64 BLOB.
func scanListVector(src any) ([]float64, error) {
	switch v := src.(type) {
	case []any:
		out := make([]float64, len(v))
		for i, x := range v {
			switch n := x.(type) {
			case float64:
				out[i] = n
			case float32:
				out[i] = float64(n)
			case int32:
				out[i] = float64(n)
			case int64:
				out[i] = float64(n)
			default:
				return nil, fmt.Errorf("vector element %d has type %T", i, x)
			}
		}
		return out, nil
	case []byte:
		return DecodeVector(v)
	default:
		return nil, fmt.Errorf("vector column has type %T, want LIST", src)
	}
}

// WriteDuckDB writes cat to a new DuckDB database file at path.
func WriteDuckDB(ctx context.Context, path string, cat *catalog.Catalog) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove existing %s: %w", path, err)
	}

	db, err := openDuckDB(path + "?" + duckdbNoAutoload)
	if err != nil {
		return fmt.Errorf("open duckdb %s: %w", path, err)
	}
	defer func() { _ = db.Close() }()

	return insertDuckDB(ctx, db, cat)
}

// WriteParquet writes cat to a Parquet file at path through an in-memory DuckDB.
func WriteParquet(ctx context.Context, path string, cat *catalog.Catalog) error {
	db, err := openDuckDB(":memory:?" + duckdbNoAutoload)
	if err != nil {
		return fmt.Errorf("open duckdb: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := insertDuckDB(ctx, db, cat); err != nil {
		return err
	}

	copyStmt := fmt.Sprintf(`COPY (SELECT * FROM movies ORDER BY position) TO %s (FORMAT PARQUET)`, quoteLiteral(path))
	if _, err := db.ExecContext(ctx, copyStmt); err != nil {
		return fmt.Errorf("export parquet %s: %w", path, err)
	}
	return nil
}

func insertDuckDB(ctx context.Context, db *sql.DB, cat *catalog.Catalog) error {
	if _, err := db.ExecContext(ctx, duckdbSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO movies (position, id, title, overview, vector) VALUES (?, ?, ?, ?, CAST(? AS DOUBLE[]))`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := 0; i < cat.Len(); i++ {
		e := cat.Entry(i)
		if _, err := stmt.ExecContext(ctx, i, e.ID, e.Title, e.Overview, listLiteral(e.Vector)); err != nil {
			return fmt.Errorf("insert %q: %w", e.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// listLiteral renders vec as a DuckDB list string. 'g' with -1 precision round-trips float64 exactly.
func listLiteral(vec []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range vec {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(']')
	return b.String()
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
