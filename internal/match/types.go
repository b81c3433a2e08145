// Package match resolves free-text player name queries against a roster
// store through an exact -> prefix -> fuzzy cascade, ending in exactly one
// categorical outcome. It never suggests names the caller did not type.
package match

import (
	"context"

	"football-player-service/internal/domain/players"
	"football-player-service/internal/fuzzy"
)

// Status is the terminal outcome of a match attempt.
type Status string

const (
	StatusExactMatch   Status = "exact_match"
	StatusFuzzyMatch   Status = "fuzzy_match"
	StatusAmbiguous    Status = "ambiguous"
	StatusNotFound     Status = "not_found"
	StatusNeedFullName Status = "need_full_name"
)

// CandidateSource is the retrieval contract the matcher consumes. Keys are
// normalized names. Implementations should fail closed: on storage trouble
// the matcher treats an error as an empty candidate set and the cascade
// continues.
type CandidateSource interface {
	FetchExact(ctx context.Context, key string) ([]players.Record, error)
	FetchPrefix(ctx context.Context, key string, limit int) ([]players.Record, error)
	FetchBroad(ctx context.Context, key string, limit int) ([]players.Record, error)
}

// Candidate pairs a roster record with how well it matched the query. Score
// exists only for ranking candidates against each other.
type Candidate struct {
	Player players.Record `json:"player"`
	Match  fuzzy.Result   `json:"match"`
	Score  float64        `json:"score"`
}

// Result is the terminal output of one match invocation. Candidates is
// populated only for StatusAmbiguous; Player only for the two match
// statuses. The not-found and need-full-name paths deliberately carry no
// detail about which candidates were considered.
type Result struct {
	Status     Status          `json:"status"`
	Player     *players.Record `json:"player,omitempty"`
	Candidates []Candidate     `json:"candidates,omitempty"`
	Message    string          `json:"message"`
}

// User-facing messages. Kept categorical on purpose: they never name a
// candidate or reveal which check failed.
const (
	msgEmptyQuery   = "Please enter a player name."
	msgNeedFullName = "Please enter the player's first and last name."
	msgFound        = "Player found!"
	msgNotFound     = "Player not found. Check the spelling and try again."
	msgNoHintMatch  = "No players match those criteria."
)
