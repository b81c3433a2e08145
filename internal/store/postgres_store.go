package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"football-player-service/internal/domain/players"
)

const playerColumns = "id, wikidata_id, name, normalized_name, first_name, last_name, nationality, position"

// PostgresStore serves candidate retrieval straight from the players table.
// It satisfies the same contract as MemoryStore and additionally exposes
// FetchAll for roster refreshes and Stats for the stats endpoint.
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres opens a connection pool against the given DSN and verifies
// it with a ping. maxConns <= 0 selects a default pool size.
func OpenPostgres(dsn string, maxConns int) (*PostgresStore, error) {
	if maxConns <= 0 {
		maxConns = 20
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns / 2)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// NewPostgresStore wraps an existing database handle.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// Ping verifies connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// FetchExact returns all records whose normalized name equals key.
func (s *PostgresStore) FetchExact(ctx context.Context, key string) ([]players.Record, error) {
	query := "SELECT " + playerColumns + " FROM players WHERE normalized_name = $1"
	return s.queryPlayers(ctx, query, key)
}

// FetchPrefix returns up to limit records whose normalized name starts
// with key, in normalized-name order.
func (s *PostgresStore) FetchPrefix(ctx context.Context, key string, limit int) ([]players.Record, error) {
	query := "SELECT " + playerColumns + " FROM players WHERE normalized_name LIKE $1 ORDER BY normalized_name, id LIMIT $2"
	return s.queryPlayers(ctx, query, key+"%", limit)
}

// FetchBroad is the short-prefix scan behind the fuzzy tier.
func (s *PostgresStore) FetchBroad(ctx context.Context, key string, limit int) ([]players.Record, error) {
	return s.FetchPrefix(ctx, key, limit)
}

// FetchAll streams the entire roster, for loading the in-memory snapshot.
func (s *PostgresStore) FetchAll(ctx context.Context) ([]players.Record, error) {
	query := "SELECT " + playerColumns + " FROM players ORDER BY normalized_name, id"
	return s.queryPlayers(ctx, query)
}

func (s *PostgresStore) queryPlayers(ctx context.Context, query string, args ...any) ([]players.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	var out []players.Record
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate players: %w", err)
	}
	return out, nil
}

func scanPlayer(rows *sql.Rows) (players.Record, error) {
	var p players.Record
	var wikidataID, firstName, lastName, nationality, position sql.NullString
	if err := rows.Scan(&p.ID, &wikidataID, &p.Name, &p.NormalizedName,
		&firstName, &lastName, &nationality, &position); err != nil {
		return players.Record{}, fmt.Errorf("scan player: %w", err)
	}
	p.WikidataID = wikidataID.String
	p.FirstName = firstName.String
	p.LastName = lastName.String
	p.Nationality = nationality.String
	p.Position = position.String
	return p, nil
}

// NameCount is one bucket of the roster stats grouping.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RosterStats summarizes the stored roster.
type RosterStats struct {
	TotalPlayers     int         `json:"totalPlayers"`
	TopNationalities []NameCount `json:"topNationalities"`
	TopPositions     []NameCount `json:"topPositions"`
}

// Stats reports roster totals and the most common nationalities and
// positions.
func (s *PostgresStore) Stats(ctx context.Context) (RosterStats, error) {
	var stats RosterStats

	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM players").Scan(&stats.TotalPlayers); err != nil {
		return RosterStats{}, fmt.Errorf("count players: %w", err)
	}

	var err error
	stats.TopNationalities, err = s.topCounts(ctx, "nationality")
	if err != nil {
		return RosterStats{}, err
	}
	stats.TopPositions, err = s.topCounts(ctx, "position")
	if err != nil {
		return RosterStats{}, err
	}
	return stats, nil
}

func (s *PostgresStore) topCounts(ctx context.Context, column string) ([]NameCount, error) {
	// column is one of two fixed identifiers; never user input.
	query := fmt.Sprintf(
		"SELECT %s, COUNT(*) FROM players WHERE %s IS NOT NULL GROUP BY %s ORDER BY COUNT(*) DESC, %s LIMIT 10",
		column, column, column, column)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("group by %s: %w", column, err)
	}
	defer rows.Close()

	var out []NameCount
	for rows.Next() {
		var nc NameCount
		if err := rows.Scan(&nc.Name, &nc.Count); err != nil {
			return nil, fmt.Errorf("scan %s count: %w", column, err)
		}
		out = append(out, nc)
	}
	return out, rows.Err()
}
