// Package sqlite implements the document store on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/legalytics/legalytics/pkg/legalytics/internalerr"
	"github.com/legalytics/legalytics/pkg/legalytics/store"
)

// sqliteStore implements store.Store using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite database with WAL mode
// enabled and the schema initialized.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL for better concurrency between ingest and analysis.
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS documents (
	id TEXT PRIMARY KEY,
	title TEXT,
	source TEXT,
	content TEXT NOT NULL,
	ingested_at TEXT NOT NULL
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// PutDocument inserts or replaces a document by ID.
func (s *sqliteStore) PutDocument(ctx context.Context, d store.Document) error {
	if d.ID == "" {
		return fmt.Errorf("put document: %w: empty id", internalerr.ErrInvalidInput)
	}
	ingested := d.IngestedAt
	if ingested.IsZero() {
		ingested = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, title, source, content, ingested_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			source = excluded.source,
			content = excluded.content,
			ingested_at = excluded.ingested_at`,
		d.ID, d.Title, d.Source, d.Content, ingested.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("put document %s: %w", d.ID, err)
	}
	return nil
}

// GetDocument resolves a document by ID. A missing ID reports
// internalerr.ErrNotFound.
func (s *sqliteStore) GetDocument(ctx context.Context, id string) (store.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, source, content, ingested_at
		FROM documents WHERE id = ?`, id)

	var d store.Document
	var ingested string
	if err := row.Scan(&d.ID, &d.Title, &d.Source, &d.Content, &ingested); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.Document{}, fmt.Errorf("document %s: %w", id, internalerr.ErrNotFound)
		}
		return store.Document{}, fmt.Errorf("get document %s: %w", id, err)
	}
	if t, err := time.Parse(time.RFC3339Nano, ingested); err == nil {
		d.IngestedAt = t
	}
	return d, nil
}

// ListDocuments returns documents ordered by ingestion time, newest
// first. A non-positive limit means no limit.
func (s *sqliteStore) ListDocuments(ctx context.Context, limit int) ([]store.Document, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, source, content, ingested_at
		FROM documents ORDER BY ingested_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []store.Document
	for rows.Next() {
		var d store.Document
		var ingested string
		if err := rows.Scan(&d.ID, &d.Title, &d.Source, &d.Content, &ingested); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, ingested); err == nil {
			d.IngestedAt = t
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
