// Command legalytics-ingest loads documents into the store so the
// analyzer can resolve them by identifier.
//
// Usage:
//
//	legalytics-ingest -db documents.db peraturan.txt putusan.html
//	legalytics-ingest -db documents.db -jsonl batch.jsonl
//
// Documents without an identifier are assigned a ULID.
package main

import (
	"context"
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/oklog/ulid/v2"

	"github.com/legalytics/legalytics/internal/docsrc"
	"github.com/legalytics/legalytics/pkg/legalytics/store"
	"github.com/legalytics/legalytics/pkg/legalytics/store/sqlite"
)

func main() {
	var (
		dbPath = flag.String("db", "documents.db", "Path to the document database")
		jsonl  = flag.String("jsonl", "", "Ingest a JSONL batch instead of individual files")
		id     = flag.String("id", "", "Document identifier (single-file ingest only)")
		title  = flag.String("title", "", "Document title (single-file ingest only)")
	)
	flag.Parse()

	if *jsonl == "" && flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: legalytics-ingest [-db path] [-id id] <file>... | legalytics-ingest -jsonl batch.jsonl")
		os.Exit(2)
	}
	if *id != "" && flag.NArg() > 1 {
		log.Fatal("-id only applies when ingesting a single file")
	}

	ctx := context.Background()
	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer st.Close()

	var docs []docsrc.RawDoc
	if *jsonl != "" {
		docs, err = docsrc.LoadJSONL(*jsonl)
		if err != nil {
			log.Fatalf("load batch: %v", err)
		}
	} else {
		for _, path := range flag.Args() {
			d, err := docsrc.LoadFile(path)
			if err != nil {
				log.Fatalf("load %s: %v", path, err)
			}
			docs = append(docs, d)
		}
		if *id != "" {
			docs[0].ID = *id
		}
		if *title != "" {
			docs[0].Title = *title
		}
	}

	entropy := ulid.Monotonic(rand.Reader, 0)
	for _, d := range docs {
		if d.ID == "" {
			d.ID = ulid.MustNew(ulid.Now(), entropy).String()
		}
		doc := store.Document{
			ID:      d.ID,
			Title:   d.Title,
			Source:  d.Source,
			Content: d.Content,
		}
		if err := st.PutDocument(ctx, doc); err != nil {
			log.Fatalf("store %s: %v", d.ID, err)
		}
		fmt.Println(d.ID)
	}
}
