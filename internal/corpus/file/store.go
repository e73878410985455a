// Package file loads the paper corpus from a JSON file on disk.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/litmatch/litmatch/internal/domain"
)

// Store reads paper records from a JSON array on disk. It holds nothing in
// memory between loads; the caller owns the returned corpus.
type Store struct {
	path string
}

// New creates a file-backed corpus store.
func New(path string) *Store {
	return &Store{path: path}
}

// paperRecord mirrors the on-disk JSON shape.
type paperRecord struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url,omitempty"`
}

// Load reads the full corpus. File order is preserved: it defines the
// ranking tie-break. A missing, unreadable, or empty file is a corpus
// availability failure.
func (s *Store) Load(_ context.Context) ([]domain.Paper, error) {
	data, err := os.ReadFile(filepath.Clean(s.path))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrCorpusUnavailable, s.path, err)
	}

	var records []paperRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", domain.ErrCorpusUnavailable, s.path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s contains no papers", domain.ErrCorpusUnavailable, s.path)
	}

	papers := make([]domain.Paper, len(records))
	for i, r := range records {
		papers[i] = domain.Paper{ID: r.ID, Title: r.Title, Text: r.Text, URL: r.URL}
	}
	return papers, nil
}

// Ping checks that the corpus file is accessible.
func (s *Store) Ping(_ context.Context) error {
	if _, err := os.Stat(s.path); err != nil {
		return fmt.Errorf("%w: stat %s: %w", domain.ErrCorpusUnavailable, s.path, err)
	}
	return nil
}
