// Package retrieval loads regulatory reference documents and serves
// relevance-scored passages for a query. Scoring is deterministic lexical
// overlap; the searcher carries an explicit lifecycle and is injected into
// whatever orchestrates the pipeline.
package retrieval

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Document is one loaded regulatory text.
type Document struct {
	Source string // file name, used as the passage source tag
	Text   string
}

// LoadDocuments reads every plain-text file in dir. A missing directory is
// not an error: it returns no documents, matching an unconfigured install.
func LoadDocuments(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading docs dir: %w", err)
	}

	var docs []Document
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		if !strings.HasSuffix(name, ".txt") && !strings.HasSuffix(name, ".md") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		docs = append(docs, Document{Source: e.Name(), Text: string(data)})
	}
	return docs, nil
}
