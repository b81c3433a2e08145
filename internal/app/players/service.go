// Package players exposes the application-level player lookup operations
// backed by a snapshot store and the matching cascade.
package players

import (
	"context"
	"log/slog"
	"time"

	domain "football-player-service/internal/domain/players"
	"football-player-service/internal/logging"
	"football-player-service/internal/match"
	"football-player-service/internal/metrics"
)

// Store defines the contract for retrieving and replacing players.
type Store interface {
	ListPlayers() []domain.Record
	GetPlayer(id int64) (domain.Record, bool)
	SetPlayers([]domain.Record)
	Count() int
}

// Lookuper resolves a query against the roster.
type Lookuper interface {
	Match(ctx context.Context, query string) match.Result
	MatchWithHints(ctx context.Context, query, nationality, position string) match.Result
}

// Service coordinates player lookups using a Store and a matcher.
type Service struct {
	store   Store
	matcher Lookuper
	metrics *metrics.Recorder
	logger  *slog.Logger
}

// NewService constructs a Service with the provided dependencies.
func NewService(store Store, matcher Lookuper, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{store: store, matcher: matcher, metrics: recorder, logger: logger}
}

// Lookup resolves a free-text player query.
func (s *Service) Lookup(ctx context.Context, query string) match.Result {
	start := time.Now()
	result := s.matcher.Match(ctx, query)
	s.recordLookup(query, result, time.Since(start))
	return result
}

// LookupWithHints resolves a query narrowed by optional nationality and
// position hints.
func (s *Service) LookupWithHints(ctx context.Context, query, nationality, position string) match.Result {
	start := time.Now()
	result := s.matcher.MatchWithHints(ctx, query, nationality, position)
	s.recordLookup(query, result, time.Since(start))
	return result
}

func (s *Service) recordLookup(query string, result match.Result, elapsed time.Duration) {
	if s.metrics != nil {
		s.metrics.RecordMatch(string(result.Status), elapsed)
	}
	logging.Info(s.logger, "player lookup",
		logging.FieldQuery, query,
		logging.FieldStatus, string(result.Status),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
}

// Players returns the current set of players.
func (s *Service) Players() []domain.Record {
	return s.store.ListPlayers()
}

// PlayerByID returns a single player if present.
func (s *Service) PlayerByID(id int64) (domain.Record, bool) {
	return s.store.GetPlayer(id)
}

// ReplacePlayers swaps the roster with a new snapshot.
func (s *Service) ReplacePlayers(items []domain.Record) {
	s.store.SetPlayers(items)
}

// Count reports the number of players in the roster.
func (s *Service) Count() int {
	return s.store.Count()
}
