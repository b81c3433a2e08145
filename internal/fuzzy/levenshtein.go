// Package fuzzy scores how close a query string is to a roster name,
// combining Levenshtein distance with phonetic agreement.
package fuzzy

// Levenshtein returns the minimum number of single-character insertions,
// deletions, and substitutions needed to turn a into b. Rune-based, so
// multibyte characters count as single edits. Symmetric; zero iff equal.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Two-row DP over the shorter string.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// EditThreshold returns the edit distance tolerated for a name of the given
// length. Short names must match exactly or they absorb unrelated short
// names; tolerance grows with length.
//
//	<=4 characters: 0
//	5-8 characters: 1
//	>=9 characters: 2
func EditThreshold(length int) int {
	switch {
	case length <= 4:
		return 0
	case length <= 8:
		return 1
	default:
		return 2
	}
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
