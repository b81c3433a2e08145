// Package roster keeps the in-memory player snapshot loaded from a roster
// source and refreshed on an interval.
package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"football-player-service/internal/domain/players"
	"football-player-service/internal/normalize"
)

// Source supplies the full roster for a snapshot load.
type Source interface {
	FetchAll(ctx context.Context) ([]players.Record, error)
	Name() string
}

// FileSource loads the roster from a JSON file: an array of player records.
// Useful for local development and tests, and as the fallback when no
// database is configured.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string { return "file" }

// FetchAll reads and decodes the roster file. Records missing a normalized
// name get one derived from their display name, preserving the store
// invariant.
func (s *FileSource) FetchAll(_ context.Context) ([]players.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}

	var records []players.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode roster file %s: %w", s.path, err)
	}

	for i := range records {
		if records[i].NormalizedName == "" {
			records[i].NormalizedName = normalize.Name(records[i].Name)
		}
	}
	return records, nil
}

// StoreSource adapts a database-backed store into a Source.
type StoreSource struct {
	fetch func(ctx context.Context) ([]players.Record, error)
	name  string
}

// NewStoreSource wraps a store's FetchAll with a source name for logs.
func NewStoreSource(name string, fetch func(ctx context.Context) ([]players.Record, error)) *StoreSource {
	return &StoreSource{fetch: fetch, name: name}
}

func (s *StoreSource) Name() string { return s.name }

func (s *StoreSource) FetchAll(ctx context.Context) ([]players.Record, error) {
	return s.fetch(ctx)
}
