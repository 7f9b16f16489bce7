package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/legalytics/legalytics/pkg/legalytics/internalerr"
	"github.com/legalytics/legalytics/pkg/legalytics/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutAndGetDocument(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	doc := store.Document{
		ID:      "pp-82-2012",
		Title:   "PP 82/2012",
		Source:  "pp-82-2012.txt",
		Content: "Setiap orang dilarang menyebarkan informasi tanpa izin.",
	}
	if err := s.PutDocument(ctx, doc); err != nil {
		t.Fatalf("PutDocument failed: %v", err)
	}

	got, err := s.GetDocument(ctx, "pp-82-2012")
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if got.Content != doc.Content {
		t.Errorf("content round-trip mismatch: %q", got.Content)
	}
	if got.Title != doc.Title || got.Source != doc.Source {
		t.Errorf("metadata round-trip mismatch: %+v", got)
	}
	if got.IngestedAt.IsZero() {
		t.Error("ingestion time should be set and parsed back")
	}
}

func TestGetMissingDocument(t *testing.T) {
	s := openTestStore(t)
	_, err := s.GetDocument(context.Background(), "absent")
	if !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestUpsertReplacesContent(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	s.PutDocument(ctx, store.Document{ID: "d1", Content: "lama"})
	if err := s.PutDocument(ctx, store.Document{ID: "d1", Content: "baru"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	got, err := s.GetDocument(ctx, "d1")
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if got.Content != "baru" {
		t.Errorf("content = %q, want the replacement", got.Content)
	}

	docs, err := s.ListDocuments(ctx, 0)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("got %d documents, want 1", len(docs))
	}
}

func TestPutRejectsEmptyID(t *testing.T) {
	s := openTestStore(t)
	err := s.PutDocument(context.Background(), store.Document{Content: "x"})
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestListDocumentsLimit(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	for _, id := range []string{"a", "b", "c"} {
		if err := s.PutDocument(ctx, store.Document{ID: id, Content: id}); err != nil {
			t.Fatalf("PutDocument(%s) failed: %v", id, err)
		}
	}

	docs, err := s.ListDocuments(ctx, 2)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("got %d documents, want 2", len(docs))
	}
}
