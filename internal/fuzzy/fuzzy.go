package fuzzy

import (
	"strings"
	"unicode/utf8"

	"football-player-service/internal/phonetics"
)

// Reasons recorded on a Result, naming the condition that decided it.
const (
	ReasonExact           = "exact_match"
	ReasonEditDistance    = "edit_distance"
	ReasonPhonetic        = "phonetic"
	ReasonEditAndPhonetic = "edit_and_phonetic"
	ReasonNoMatch         = "no_match"
)

// Lengths must be within 20% of each other before phonetic agreement alone
// is trusted; stops "ronaldo" riding its Soundex code onto "ronaldinho".
const phoneticLengthRatio = 0.8

// Result describes one query/target comparison. Immutable value; produced
// per comparison.
type Result struct {
	IsMatch       bool    `json:"isMatch"`
	Confidence    float64 `json:"confidence"`
	EditDistance  int     `json:"editDistance"`
	PhoneticMatch bool    `json:"phoneticMatch"`
	Reason        string  `json:"reason"`
}

// Exact is the Result for a query that equals its target.
func Exact() Result {
	return Result{
		IsMatch:       true,
		Confidence:    1.0,
		EditDistance:  0,
		PhoneticMatch: true,
		Reason:        ReasonExact,
	}
}

// Match reports whether query is close enough to target to count as the
// same name. Both inputs are expected to be normalized already. Edit
// distance within a length-scaled threshold matches outright; phonetic
// agreement (Soundex or Metaphone) extends the threshold by one, but only
// when the two lengths are comparable.
func Match(query, target string) Result {
	if query == target {
		return Exact()
	}

	dist := Levenshtein(query, target)

	minLen := utf8.RuneCountInString(query)
	maxLen := utf8.RuneCountInString(target)
	if minLen > maxLen {
		minLen, maxLen = maxLen, minLen
	}
	threshold := EditThreshold(minLen)

	phonetic := phoneticAgreement(query, target)
	isEditMatch := dist > 0 && dist <= threshold

	confidence := 0.0
	if maxLen > 0 {
		confidence = 1.0 - float64(dist)/float64(maxLen)
		if confidence < 0 {
			confidence = 0
		}
	}

	phoneticsReliable := maxLen > 0 && float64(minLen)/float64(maxLen) >= phoneticLengthRatio
	isMatch := isEditMatch || (phonetic && phoneticsReliable && dist <= threshold+1)

	return Result{
		IsMatch:       isMatch,
		Confidence:    confidence,
		EditDistance:  dist,
		PhoneticMatch: phonetic,
		Reason:        reason(isMatch, isEditMatch, phonetic),
	}
}

// MatchName matches multi-part names part by part. With equal part counts,
// each part is compared positionally and the summed distance must stay
// within the summed per-part thresholds, or within one extra edit when
// every part agrees phonetically. Unequal part counts fall back to
// whole-string Match. Conservative policy by choice: a garbled part cannot
// borrow slack from an exact one beyond the shared total.
func MatchName(query, target string) Result {
	queryParts := strings.Fields(query)
	targetParts := strings.Fields(target)

	if len(queryParts) != len(targetParts) {
		return Match(query, target)
	}

	totalDist := 0
	allPhonetic := true
	for i, qp := range queryParts {
		part := Match(qp, targetParts[i])
		totalDist += part.EditDistance
		allPhonetic = allPhonetic && part.PhoneticMatch
	}

	totalThreshold := 0
	for _, tp := range targetParts {
		totalThreshold += EditThreshold(utf8.RuneCountInString(tp))
	}

	isEditMatch := totalDist <= totalThreshold
	isMatch := isEditMatch || (allPhonetic && totalDist <= totalThreshold+1)

	maxLen := utf8.RuneCountInString(query)
	if l := utf8.RuneCountInString(target); l > maxLen {
		maxLen = l
	}
	confidence := 0.0
	if maxLen > 0 {
		confidence = 1.0 - float64(totalDist)/float64(maxLen)
		if confidence < 0 {
			confidence = 0
		}
	}

	return Result{
		IsMatch:       isMatch,
		Confidence:    confidence,
		EditDistance:  totalDist,
		PhoneticMatch: allPhonetic,
		Reason:        reason(isMatch, isEditMatch, allPhonetic),
	}
}

func phoneticAgreement(query, target string) bool {
	qs, ts := phonetics.Soundex(query), phonetics.Soundex(target)
	if qs != "" && qs == ts {
		return true
	}
	qm, tm := phonetics.Metaphone(query), phonetics.Metaphone(target)
	return qm != "" && qm == tm
}

func reason(isMatch, isEditMatch, phonetic bool) string {
	if !isMatch {
		return ReasonNoMatch
	}
	switch {
	case isEditMatch && phonetic:
		return ReasonEditAndPhonetic
	case isEditMatch:
		return ReasonEditDistance
	default:
		return ReasonPhonetic
	}
}
