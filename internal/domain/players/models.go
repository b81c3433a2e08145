package players

// Record is the roster shape the matcher works against. Optional fields
// (FirstName, LastName, Nationality, Position) use "" as absent, matching
// the nullable columns in the players table.
type Record struct {
	ID             int64  `json:"id"`
	WikidataID     string `json:"wikidataId,omitempty"`
	Name           string `json:"name"`
	NormalizedName string `json:"normalizedName"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Nationality    string `json:"nationality,omitempty"`
	Position       string `json:"position,omitempty"`
}

// IsMononym reports whether the player is known by a single name
// (e.g. "Ronaldinho"). Derived heuristic: no first name stored but a last
// name present. TODO: replace with a stored is_mononym column once the
// roster schema carries one.
func (r Record) IsMononym() bool {
	return r.FirstName == "" && r.LastName != ""
}

// DedupeKey identifies a player for duplicate collapsing. Upstream data
// merges can produce multiple rows for the same person; rows sharing name
// and nationality are treated as one player.
func (r Record) DedupeKey() string {
	return r.Name + "\x00" + r.Nationality
}
