package docsrc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestExtractTextStripsMarkup(t *testing.T) {
	text, err := ExtractText(`<html><head><style>body{color:red}</style>
<script>var x = 1;</script></head>
<body><h1>Peraturan Menteri</h1><p>Dilarang membuang limbah.</p></body></html>`)
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if !strings.Contains(text, "Peraturan Menteri") || !strings.Contains(text, "Dilarang membuang limbah.") {
		t.Errorf("visible text missing from %q", text)
	}
	if strings.Contains(text, "color:red") || strings.Contains(text, "var x") {
		t.Errorf("style/script content leaked into %q", text)
	}
}

func TestLoadFilePlainText(t *testing.T) {
	path := writeFile(t, "uu-2013.txt", "Denda sebesar Rp10.000.000.")

	doc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if doc.Content != "Denda sebesar Rp10.000.000." {
		t.Errorf("content = %q", doc.Content)
	}
	if doc.Title != "uu-2013" {
		t.Errorf("title = %q, want extension stripped", doc.Title)
	}
	if doc.Source != path {
		t.Errorf("source = %q, want %q", doc.Source, path)
	}
}

func TestLoadFileHTML(t *testing.T) {
	path := writeFile(t, "pasal.html", "<p>Dilarang <b>merokok</b> di area ini.</p>")

	doc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if strings.Contains(doc.Content, "<") {
		t.Errorf("tags survived: %q", doc.Content)
	}
	if !strings.Contains(doc.Content, "merokok") {
		t.Errorf("text lost: %q", doc.Content)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadJSONLSkipsMalformedLines(t *testing.T) {
	path := writeFile(t, "batch.jsonl", strings.Join([]string{
		`{"id":"a","title":"Satu","content":"Pasal 1."}`,
		`{broken`,
		``,
		`{"id":"b","title":"Dua","content":"Pasal 2.","source":"archive"}`,
	}, "\n"))

	docs, err := LoadJSONL(path)
	if err != nil {
		t.Fatalf("LoadJSONL failed: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2", len(docs))
	}
	if docs[0].ID != "a" || docs[1].ID != "b" {
		t.Errorf("ids = %q, %q", docs[0].ID, docs[1].ID)
	}
	if docs[0].Source != path {
		t.Errorf("missing source should default to the file path, got %q", docs[0].Source)
	}
	if docs[1].Source != "archive" {
		t.Errorf("explicit source overwritten: %q", docs[1].Source)
	}
}

func TestLoadJSONLNoValidDocuments(t *testing.T) {
	path := writeFile(t, "bad.jsonl", "not json\nalso not json")
	if _, err := LoadJSONL(path); err == nil {
		t.Fatal("expected error when no line parses")
	}
}
