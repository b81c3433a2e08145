// Package store holds the roster stores the matcher retrieves candidates
// from: an in-memory snapshot for serving and a Postgres-backed source.
package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"football-player-service/internal/domain/players"
)

// MemoryStore keeps a thread-safe roster snapshot in memory. Records are
// held sorted by normalized name so prefix scans return a stable order.
type MemoryStore struct {
	mu     sync.RWMutex
	byID   map[int64]players.Record
	sorted []players.Record
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[int64]players.Record),
	}
}

// SetPlayers replaces the current roster with a new snapshot.
func (s *MemoryStore) SetPlayers(records []players.Record) {
	sorted := make([]players.Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].NormalizedName != sorted[j].NormalizedName {
			return sorted[i].NormalizedName < sorted[j].NormalizedName
		}
		return sorted[i].ID < sorted[j].ID
	})

	byID := make(map[int64]players.Record, len(sorted))
	for _, p := range sorted {
		byID[p.ID] = p
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = byID
	s.sorted = sorted
}

// ListPlayers returns a copy of the current roster.
func (s *MemoryStore) ListPlayers() []players.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]players.Record, len(s.sorted))
	copy(out, s.sorted)
	return out
}

// GetPlayer retrieves a player by ID.
func (s *MemoryStore) GetPlayer(id int64) (players.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	return p, ok
}

// Count returns the number of players in the snapshot.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sorted)
}

// FetchExact returns all records whose normalized name equals key.
func (s *MemoryStore) FetchExact(_ context.Context, key string) ([]players.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []players.Record
	for _, p := range s.rangeWithPrefix(key) {
		if p.NormalizedName == key {
			out = append(out, p)
		}
	}
	return out, nil
}

// FetchPrefix returns up to limit records whose normalized name starts
// with key, in normalized-name order.
func (s *MemoryStore) FetchPrefix(_ context.Context, key string, limit int) ([]players.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := s.rangeWithPrefix(key)
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	out := make([]players.Record, len(matched))
	copy(out, matched)
	return out, nil
}

// FetchBroad is the bounded scan behind the fuzzy tier. For the in-memory
// snapshot it is the same prefix walk as FetchPrefix; the caller passes a
// short prefix to widen the net.
func (s *MemoryStore) FetchBroad(ctx context.Context, key string, limit int) ([]players.Record, error) {
	return s.FetchPrefix(ctx, key, limit)
}

// rangeWithPrefix returns the contiguous sorted run sharing the prefix.
// Callers must hold at least a read lock; the returned slice aliases the
// snapshot and must be copied before release.
func (s *MemoryStore) rangeWithPrefix(prefix string) []players.Record {
	lo := sort.Search(len(s.sorted), func(i int) bool {
		return s.sorted[i].NormalizedName >= prefix
	})
	hi := lo
	for hi < len(s.sorted) && strings.HasPrefix(s.sorted[hi].NormalizedName, prefix) {
		hi++
	}
	return s.sorted[lo:hi]
}
