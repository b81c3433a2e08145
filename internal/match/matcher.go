package match

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"football-player-service/internal/domain/players"
	"football-player-service/internal/fuzzy"
	"football-player-service/internal/logging"
	"football-player-service/internal/normalize"
)

const (
	defaultPrefixLimit = 20
	defaultBroadLimit  = 100

	// Broad retrieval scans by a short shared prefix to bound the fuzzy
	// tier's candidate set.
	broadPrefixLen = 3

	// Candidates that matched with zero edits rank above every fuzzy hit.
	exactScoreBonus = 0.5
)

// MononymFunc decides whether a player is known by a single name. The
// default is the Record heuristic; pluggable so a stored roster flag can
// replace it without touching the cascade.
type MononymFunc func(players.Record) bool

// Matcher resolves queries against a CandidateSource. It holds no per-query
// state; a single Matcher is safe for concurrent use.
type Matcher struct {
	source      CandidateSource
	logger      *slog.Logger
	isMononym   MononymFunc
	prefixLimit int
	broadLimit  int
}

// New constructs a Matcher with default limits and the derived mononym
// heuristic. logger may be nil.
func New(source CandidateSource, logger *slog.Logger) *Matcher {
	return &Matcher{
		source:      source,
		logger:      logger,
		isMononym:   players.Record.IsMononym,
		prefixLimit: defaultPrefixLimit,
		broadLimit:  defaultBroadLimit,
	}
}

// SetMononymFunc replaces the mononym heuristic.
func (m *Matcher) SetMononymFunc(fn MononymFunc) {
	if fn != nil {
		m.isMononym = fn
	}
}

// Match resolves a raw query to one of the five terminal statuses. It never
// returns an error: malformed input and retrieval failures both surface as
// categorical outcomes.
func (m *Matcher) Match(ctx context.Context, query string) Result {
	key := normalize.Name(query)
	if key == "" {
		return Result{Status: StatusNotFound, Message: msgEmptyQuery}
	}
	isSingleName := !strings.Contains(key, " ")

	// Exact tier.
	exact := dedupe(m.fetch("exact", func() ([]players.Record, error) {
		return m.source.FetchExact(ctx, key)
	}))
	switch {
	case len(exact) == 1:
		return m.resolveSingle(exact[0], isSingleName, StatusExactMatch)
	case len(exact) > 1:
		candidates := make([]Candidate, 0, len(exact))
		for _, p := range exact {
			candidates = append(candidates, Candidate{Player: p, Match: fuzzy.Exact(), Score: 1.0})
		}
		return ambiguous(candidates, fmt.Sprintf("Found %d players with this name. Please be more specific.", len(candidates)))
	}

	// Prefix tier.
	prefix := dedupe(m.fetch("prefix", func() ([]players.Record, error) {
		return m.source.FetchPrefix(ctx, key, m.prefixLimit)
	}))
	switch {
	case len(prefix) == 1:
		return m.resolveSingle(prefix[0], isSingleName, StatusExactMatch)
	case len(prefix) > 1:
		if candidates := scoreCandidates(key, prefix); len(candidates) > 0 {
			return ambiguous(candidates, fmt.Sprintf("Found %d players with similar names. Please be more specific.", len(candidates)))
		}
	}

	// Fuzzy tier.
	broad := dedupe(m.fetch("broad", func() ([]players.Record, error) {
		return m.source.FetchBroad(ctx, broadKey(key), m.broadLimit)
	}))
	matches := scoreCandidates(key, broad)
	switch len(matches) {
	case 0:
		return Result{Status: StatusNotFound, Message: msgNotFound}
	case 1:
		return m.resolveSingle(matches[0].Player, isSingleName, StatusFuzzyMatch)
	default:
		return ambiguous(matches, fmt.Sprintf("Found %d players with similar names. Please be more specific.", len(matches)))
	}
}

// MatchWithHints reruns Match and, when the result is ambiguous, narrows
// the candidates by substring containment of the normalized hints in the
// players' nationality and position.
func (m *Matcher) MatchWithHints(ctx context.Context, query, nationality, position string) Result {
	result := m.Match(ctx, query)
	if result.Status != StatusAmbiguous {
		return result
	}

	filtered := result.Candidates
	if nationality != "" {
		filtered = filterCandidates(filtered, nationality, func(p players.Record) string { return p.Nationality })
	}
	if position != "" {
		filtered = filterCandidates(filtered, position, func(p players.Record) string { return p.Position })
	}

	switch len(filtered) {
	case 0:
		return Result{Status: StatusNotFound, Message: msgNoHintMatch}
	case 1:
		// The original top candidate's distance decides whether the hint
		// resolved an exact or a fuzzy ambiguity.
		status := StatusFuzzyMatch
		if result.Candidates[0].Match.EditDistance == 0 {
			status = StatusExactMatch
		}
		player := filtered[0].Player
		return Result{Status: status, Player: &player, Message: msgFound}
	default:
		return Result{
			Status:     StatusAmbiguous,
			Candidates: filtered,
			Message:    fmt.Sprintf("Still found %d matching players. Please be more specific.", len(filtered)),
		}
	}
}

// fetch runs one retrieval tier, translating errors into empty sets. The
// store's troubles are logged but never leak into the match result.
func (m *Matcher) fetch(tier string, fn func() ([]players.Record, error)) []players.Record {
	records, err := fn()
	if err != nil {
		logging.Warn(m.logger, "candidate retrieval failed", "tier", tier, "error", err)
		return nil
	}
	return records
}

// resolveSingle applies the mononym policy to an otherwise unambiguous hit.
// A single-token query may only resolve to a player known by one name;
// anyone else requires the full name, and the response does not say which
// player was withheld.
func (m *Matcher) resolveSingle(p players.Record, isSingleName bool, status Status) Result {
	if isSingleName && !m.isMononym(p) {
		return Result{Status: StatusNeedFullName, Message: msgNeedFullName}
	}
	return Result{Status: status, Player: &p, Message: msgFound}
}

func ambiguous(candidates []Candidate, message string) Result {
	return Result{Status: StatusAmbiguous, Candidates: candidates, Message: message}
}

// scoreCandidates runs the name-aware fuzzy scorer over a candidate set and
// returns the matches in a deterministic order: score descending, then
// shorter normalized name, then name. The secondary keys only stabilize
// ties; score alone decides rank.
func scoreCandidates(key string, records []players.Record) []Candidate {
	matches := make([]Candidate, 0, len(records))
	for _, p := range records {
		result := fuzzy.MatchName(key, p.NormalizedName)
		if !result.IsMatch {
			continue
		}
		score := result.Confidence
		if result.EditDistance == 0 {
			score += exactScoreBonus
		}
		matches = append(matches, Candidate{Player: p, Match: result, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		li, lj := len(matches[i].Player.NormalizedName), len(matches[j].Player.NormalizedName)
		if li != lj {
			return li < lj
		}
		return matches[i].Player.Name < matches[j].Player.Name
	})

	return matches
}

// dedupe collapses records sharing (name, nationality), keeping the first
// occurrence. Upstream merges occasionally produce duplicate rows.
func dedupe(records []players.Record) []players.Record {
	seen := make(map[string]struct{}, len(records))
	unique := records[:0:0]
	for _, p := range records {
		key := p.DedupeKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, p)
	}
	return unique
}

func filterCandidates(candidates []Candidate, hint string, field func(players.Record) string) []Candidate {
	normHint := normalize.Name(hint)
	if normHint == "" {
		return candidates
	}
	kept := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		value := field(c.Player)
		if value == "" {
			continue
		}
		if strings.Contains(normalize.Name(value), normHint) {
			kept = append(kept, c)
		}
	}
	return kept
}

// broadKey returns the short shared prefix used by the fuzzy tier's
// bounded scan.
func broadKey(key string) string {
	runes := []rune(key)
	if len(runes) <= broadPrefixLen {
		return key
	}
	return string(runes[:broadPrefixLen])
}
