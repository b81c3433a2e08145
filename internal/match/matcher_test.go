package match

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"football-player-service/internal/domain/players"
)

type stubSource struct {
	records []players.Record
	err     error

	exactCalls  int
	prefixCalls int
	broadCalls  int
}

func (s *stubSource) FetchExact(_ context.Context, key string) ([]players.Record, error) {
	s.exactCalls++
	if s.err != nil {
		return nil, s.err
	}
	var out []players.Record
	for _, p := range s.records {
		if p.NormalizedName == key {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubSource) FetchPrefix(_ context.Context, key string, limit int) ([]players.Record, error) {
	s.prefixCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.scan(key, limit), nil
}

func (s *stubSource) FetchBroad(_ context.Context, key string, limit int) ([]players.Record, error) {
	s.broadCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.scan(key, limit), nil
}

func (s *stubSource) scan(prefix string, limit int) []players.Record {
	var out []players.Record
	for _, p := range s.records {
		if strings.HasPrefix(p.NormalizedName, prefix) {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func testRoster() []players.Record {
	return []players.Record{
		{ID: 1, Name: "Cristiano Ronaldo", NormalizedName: "cristiano ronaldo", FirstName: "Cristiano", LastName: "Ronaldo", Nationality: "Portugal", Position: "Forward"},
		{ID: 2, Name: "Lionel Messi", NormalizedName: "lionel messi", FirstName: "Lionel", LastName: "Messi", Nationality: "Argentina", Position: "Forward"},
		{ID: 3, Name: "Ronaldinho", NormalizedName: "ronaldinho", LastName: "Ronaldinho", Nationality: "Brazil", Position: "Midfielder"},
	}
}

func newTestMatcher(records []players.Record) *Matcher {
	return New(&stubSource{records: records}, nil)
}

func TestMatchExactFullName(t *testing.T) {
	m := newTestMatcher(testRoster())

	got := m.Match(context.Background(), "Cristiano Ronaldo")
	if got.Status != StatusExactMatch {
		t.Fatalf("Status = %s, want %s (%+v)", got.Status, StatusExactMatch, got)
	}
	if got.Player == nil || got.Player.Name != "Cristiano Ronaldo" {
		t.Fatalf("unexpected player: %+v", got.Player)
	}
}

func TestMatchNormalizesDiacriticsAndCase(t *testing.T) {
	m := newTestMatcher(testRoster())

	got := m.Match(context.Background(), "  CRISTIANO   RONALDO ")
	if got.Status != StatusExactMatch {
		t.Fatalf("Status = %s, want %s", got.Status, StatusExactMatch)
	}
}

func TestMatchSingleTypoResolvesFuzzy(t *testing.T) {
	m := newTestMatcher(testRoster())

	got := m.Match(context.Background(), "Cristano Ronaldo")
	if got.Status != StatusFuzzyMatch {
		t.Fatalf("Status = %s, want %s (%+v)", got.Status, StatusFuzzyMatch, got)
	}
	if got.Player == nil || got.Player.ID != 1 {
		t.Fatalf("expected Cristiano Ronaldo, got %+v", got.Player)
	}
}

func TestMatchMononymExact(t *testing.T) {
	m := newTestMatcher(testRoster())

	got := m.Match(context.Background(), "Ronaldinho")
	if got.Status != StatusExactMatch {
		t.Fatalf("Status = %s, want %s", got.Status, StatusExactMatch)
	}
	if got.Player == nil || got.Player.Name != "Ronaldinho" {
		t.Fatalf("unexpected player: %+v", got.Player)
	}
}

func TestMatchSurnameAloneNeverResolvesSilently(t *testing.T) {
	m := newTestMatcher(testRoster())

	got := m.Match(context.Background(), "Messi")
	if got.Status != StatusNotFound && got.Status != StatusNeedFullName {
		t.Fatalf("Status = %s, want %s or %s", got.Status, StatusNotFound, StatusNeedFullName)
	}
	if got.Player != nil {
		t.Fatalf("surname-only query must not resolve a player, got %+v", got.Player)
	}
}

func TestMatchSingleNameNonMononymNeedsFullName(t *testing.T) {
	m := newTestMatcher(testRoster())

	// Unique prefix hit on a two-part name.
	got := m.Match(context.Background(), "Lionel")
	if got.Status != StatusNeedFullName {
		t.Fatalf("Status = %s, want %s (%+v)", got.Status, StatusNeedFullName, got)
	}
	if got.Player != nil || len(got.Candidates) != 0 {
		t.Fatal("need-full-name result must not carry player details")
	}
}

func TestMatchUnknownName(t *testing.T) {
	m := newTestMatcher(testRoster())

	got := m.Match(context.Background(), "XYZ")
	if got.Status != StatusNotFound {
		t.Fatalf("Status = %s, want %s", got.Status, StatusNotFound)
	}
}

func TestMatchEmptyAndBlankQueries(t *testing.T) {
	src := &stubSource{records: testRoster()}
	m := New(src, nil)

	for _, q := range []string{"", "   ", "\t\n"} {
		got := m.Match(context.Background(), q)
		if got.Status != StatusNotFound {
			t.Fatalf("Match(%q).Status = %s, want %s", q, got.Status, StatusNotFound)
		}
		if got.Message != msgEmptyQuery {
			t.Fatalf("Match(%q).Message = %q, want %q", q, got.Message, msgEmptyQuery)
		}
	}
	if src.exactCalls != 0 {
		t.Fatalf("blank queries must not hit the store, got %d calls", src.exactCalls)
	}
}

func TestMatchAmbiguousSharedName(t *testing.T) {
	roster := []players.Record{
		{ID: 10, Name: "Danilo", NormalizedName: "danilo", LastName: "Danilo", Nationality: "Brazil", Position: "Defender"},
		{ID: 11, Name: "Danilo", NormalizedName: "danilo", LastName: "Danilo", Nationality: "Portugal", Position: "Midfielder"},
	}
	m := newTestMatcher(roster)

	got := m.Match(context.Background(), "Danilo")
	if got.Status != StatusAmbiguous {
		t.Fatalf("Status = %s, want %s", got.Status, StatusAmbiguous)
	}
	if len(got.Candidates) != 2 {
		t.Fatalf("len(Candidates) = %d, want 2", len(got.Candidates))
	}

	wantPlayers := []players.Record{roster[0], roster[1]}
	gotPlayers := []players.Record{got.Candidates[0].Player, got.Candidates[1].Player}
	if diff := cmp.Diff(wantPlayers, gotPlayers); diff != "" {
		t.Fatalf("candidate players mismatch (-want +got):\n%s", diff)
	}
	for _, c := range got.Candidates {
		if c.Score != 1.0 || c.Match.EditDistance != 0 {
			t.Fatalf("exact-tier candidate should carry an exact result, got %+v", c)
		}
	}
}

func TestMatchDeduplicatesUpstreamRows(t *testing.T) {
	dup := players.Record{ID: 3, Name: "Ronaldinho", NormalizedName: "ronaldinho", LastName: "Ronaldinho", Nationality: "Brazil"}
	roster := append(testRoster(), dup)
	m := newTestMatcher(roster)

	got := m.Match(context.Background(), "Ronaldinho")
	if got.Status != StatusExactMatch {
		t.Fatalf("Status = %s, want %s: duplicate rows must collapse before counting", got.Status, StatusExactMatch)
	}
}

func TestMatchFailsClosedOnStoreErrors(t *testing.T) {
	src := &stubSource{records: testRoster(), err: errors.New("connection refused")}
	m := New(src, nil)

	got := m.Match(context.Background(), "Cristiano Ronaldo")
	if got.Status != StatusNotFound {
		t.Fatalf("Status = %s, want %s on retrieval failure", got.Status, StatusNotFound)
	}
	if src.exactCalls != 1 || src.prefixCalls != 1 || src.broadCalls != 1 {
		t.Fatalf("expected all tiers attempted, got exact=%d prefix=%d broad=%d",
			src.exactCalls, src.prefixCalls, src.broadCalls)
	}
}

func TestMatchAmbiguityShortCircuitsLaterTiers(t *testing.T) {
	roster := []players.Record{
		{ID: 10, Name: "Danilo", NormalizedName: "danilo", LastName: "Danilo", Nationality: "Brazil"},
		{ID: 11, Name: "Danilo", NormalizedName: "danilo", LastName: "Danilo", Nationality: "Portugal"},
	}
	src := &stubSource{records: roster}
	m := New(src, nil)

	if got := m.Match(context.Background(), "Danilo"); got.Status != StatusAmbiguous {
		t.Fatalf("Status = %s, want %s", got.Status, StatusAmbiguous)
	}
	if src.prefixCalls != 0 || src.broadCalls != 0 {
		t.Fatalf("ambiguity must short-circuit, got prefix=%d broad=%d", src.prefixCalls, src.broadCalls)
	}
}

func TestMatchCandidateOrderDeterministic(t *testing.T) {
	roster := []players.Record{
		{ID: 20, Name: "Roberto Firmino", NormalizedName: "roberto firmino", FirstName: "Roberto", LastName: "Firmino", Nationality: "Brazil"},
		{ID: 21, Name: "Roberto Carlos", NormalizedName: "roberto carlos", FirstName: "Roberto", LastName: "Carlos", Nationality: "Brazil"},
	}
	m := newTestMatcher(roster)

	first := m.Match(context.Background(), "Roberto")
	for i := 0; i < 5; i++ {
		again := m.Match(context.Background(), "Roberto")
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("match result not deterministic (-first +again):\n%s", diff)
		}
	}
}

func TestMatchWithHintsResolvesAmbiguity(t *testing.T) {
	roster := []players.Record{
		{ID: 10, Name: "Danilo", NormalizedName: "danilo", LastName: "Danilo", Nationality: "Brazil", Position: "Defender"},
		{ID: 11, Name: "Danilo", NormalizedName: "danilo", LastName: "Danilo", Nationality: "Portugal", Position: "Midfielder"},
	}
	m := newTestMatcher(roster)

	got := m.MatchWithHints(context.Background(), "Danilo", "Brazil", "")
	if got.Status != StatusExactMatch {
		t.Fatalf("Status = %s, want %s (%+v)", got.Status, StatusExactMatch, got)
	}
	if got.Player == nil || got.Player.ID != 10 {
		t.Fatalf("expected the Brazilian Danilo, got %+v", got.Player)
	}
}

func TestMatchWithHintsPositionFilter(t *testing.T) {
	roster := []players.Record{
		{ID: 10, Name: "Danilo", NormalizedName: "danilo", LastName: "Danilo", Nationality: "Brazil", Position: "Defender"},
		{ID: 11, Name: "Danilo", NormalizedName: "danilo", LastName: "Danilo", Nationality: "Portugal", Position: "Midfielder"},
	}
	m := newTestMatcher(roster)

	got := m.MatchWithHints(context.Background(), "Danilo", "", "midfielder")
	if got.Status != StatusExactMatch {
		t.Fatalf("Status = %s, want %s (%+v)", got.Status, StatusExactMatch, got)
	}
	if got.Player == nil || got.Player.ID != 11 {
		t.Fatalf("expected the Portuguese Danilo, got %+v", got.Player)
	}
}

func TestMatchWithHintsNoSurvivors(t *testing.T) {
	roster := []players.Record{
		{ID: 10, Name: "Danilo", NormalizedName: "danilo", LastName: "Danilo", Nationality: "Brazil"},
		{ID: 11, Name: "Danilo", NormalizedName: "danilo", LastName: "Danilo", Nationality: "Portugal"},
	}
	m := newTestMatcher(roster)

	got := m.MatchWithHints(context.Background(), "Danilo", "Germany", "")
	if got.Status != StatusNotFound {
		t.Fatalf("Status = %s, want %s", got.Status, StatusNotFound)
	}
	if got.Message != msgNoHintMatch {
		t.Fatalf("Message = %q, want %q", got.Message, msgNoHintMatch)
	}
}

func TestMatchWithHintsStillAmbiguous(t *testing.T) {
	// Distinct nationalities keep both records past dedupe; a position
	// hint both share leaves the ambiguity unresolved.
	roster := []players.Record{
		{ID: 10, Name: "Danilo", NormalizedName: "danilo", LastName: "Danilo", Nationality: "Brazil", Position: "Defender"},
		{ID: 11, Name: "Danilo", NormalizedName: "danilo", LastName: "Danilo", Nationality: "Portugal", Position: "Defender"},
	}
	m := newTestMatcher(roster)

	got := m.MatchWithHints(context.Background(), "Danilo", "", "Defender")
	if got.Status != StatusAmbiguous {
		t.Fatalf("Status = %s, want %s", got.Status, StatusAmbiguous)
	}
	if len(got.Candidates) != 2 {
		t.Fatalf("len(Candidates) = %d, want 2", len(got.Candidates))
	}
}

func TestMatchWithHintsPassThroughWhenNotAmbiguous(t *testing.T) {
	m := newTestMatcher(testRoster())

	got := m.MatchWithHints(context.Background(), "Cristiano Ronaldo", "Spain", "Goalkeeper")
	if got.Status != StatusExactMatch {
		t.Fatalf("Status = %s, want %s: hints only apply to ambiguity", got.Status, StatusExactMatch)
	}
}

func TestSetMononymFuncPluggable(t *testing.T) {
	m := newTestMatcher(testRoster())
	m.SetMononymFunc(func(players.Record) bool { return true })

	// With every player treated as a mononym, a unique prefix hit on a
	// single-token query resolves instead of demanding the full name.
	got := m.Match(context.Background(), "Lionel")
	if got.Status != StatusExactMatch {
		t.Fatalf("Status = %s, want %s with permissive mononym policy", got.Status, StatusExactMatch)
	}
}
