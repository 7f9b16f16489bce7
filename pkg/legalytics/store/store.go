// Package store defines how raw documents are resolved by identifier.
// The engine itself never touches storage; these implementations are the
// loader collaborator the invocation boundary depends on.
package store

import (
	"context"
	"time"
)

// Document is a raw document as ingested. Content is immutable once
// stored; the engine receives it by value.
type Document struct {
	ID         string
	Title      string
	Source     string
	Content    string
	IngestedAt time.Time
}

// Store persists and resolves documents by opaque identifier.
type Store interface {
	Close() error

	PutDocument(ctx context.Context, d Document) error
	GetDocument(ctx context.Context, id string) (Document, error)
	ListDocuments(ctx context.Context, limit int) ([]Document, error)
}
