// Package docsrc loads raw documents from local files for ingestion:
// plain text, HTML (tags stripped), and JSONL batches.
package docsrc

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// RawDoc is a document as read from disk, before normalization.
type RawDoc struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Source  string `json:"source"`
	Content string `json:"content"`
}

// LoadFile reads one document. ".html"/".htm" files are reduced to their
// visible text; anything else is taken verbatim.
func LoadFile(path string) (RawDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RawDoc{}, fmt.Errorf("read file %s: %w", path, err)
	}

	content := string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		content, err = ExtractText(content)
		if err != nil {
			return RawDoc{}, fmt.Errorf("parse html %s: %w", path, err)
		}
	}

	name := filepath.Base(path)
	return RawDoc{
		Title:   strings.TrimSuffix(name, filepath.Ext(name)),
		Source:  path,
		Content: content,
	}, nil
}

// LoadJSONL loads documents from a JSONL file, one JSON object per line.
// Malformed lines are skipped with a warning rather than failing the
// batch.
func LoadJSONL(path string) ([]RawDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var docs []RawDoc
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var d RawDoc
		if err := json.Unmarshal([]byte(line), &d); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		if d.Source == "" {
			d.Source = path
		}
		docs = append(docs, d)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no valid documents found in %s", path)
	}
	return docs, nil
}

// ExtractText reduces an HTML document to its visible text, skipping
// script and style subtrees.
func ExtractText(s string) (string, error) {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(b.String()), nil
}
