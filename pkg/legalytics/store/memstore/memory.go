// Package memstore is an in-memory store.Store for tests.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/legalytics/legalytics/pkg/legalytics/internalerr"
	"github.com/legalytics/legalytics/pkg/legalytics/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu   sync.RWMutex
	docs map[string]store.Document
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{docs: make(map[string]store.Document)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// PutDocument inserts or replaces a document by ID.
func (s *Store) PutDocument(ctx context.Context, d store.Document) error {
	if d.ID == "" {
		return fmt.Errorf("put document: %w: empty id", internalerr.ErrInvalidInput)
	}
	if d.IngestedAt.IsZero() {
		d.IngestedAt = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[d.ID] = d
	return nil
}

// GetDocument implements store.Store.
func (s *Store) GetDocument(ctx context.Context, id string) (store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.docs[id]
	if !ok {
		return store.Document{}, fmt.Errorf("document %s: %w", id, internalerr.ErrNotFound)
	}
	return d, nil
}

// ListDocuments implements store.Store.
func (s *Store) ListDocuments(ctx context.Context, limit int) ([]store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]store.Document, 0, len(s.docs))
	for _, d := range s.docs {
		docs = append(docs, d)
	}
	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].IngestedAt.Equal(docs[j].IngestedAt) {
			return docs[i].IngestedAt.After(docs[j].IngestedAt)
		}
		return docs[i].ID < docs[j].ID
	})
	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}
