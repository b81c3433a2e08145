package phonetics

import "strings"

func isVowel(r rune) bool {
	switch r {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// Metaphone returns a simplified Metaphone key for a name. It covers the
// common English spelling variants (soft C/G, CH, PH, SH, X, Z, silent
// vowels past the first position) rather than the full Metaphone rule set;
// it is deterministic and collapses sound-alike spellings such as
// "Philips"/"Filips". Empty input yields "".
func Metaphone(name string) string {
	runes := []rune(strings.ToUpper(name))
	var b strings.Builder

	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		var next rune
		if i+1 < len(runes) {
			next = runes[i+1]
		}

		// Collapse duplicate adjacent letters; a CC pair still codes.
		if ch == next && ch != 'C' {
			continue
		}

		switch {
		case ch == 'C':
			switch {
			case next == 'E' || next == 'I' || next == 'Y':
				b.WriteByte('S')
			case next == 'H':
				b.WriteByte('X')
				i++
			default:
				b.WriteByte('K')
			}
		case ch == 'G':
			if next == 'E' || next == 'I' || next == 'Y' {
				b.WriteByte('J')
			} else {
				b.WriteByte('K')
			}
		case ch == 'P' && next == 'H':
			b.WriteByte('F')
			i++
		case ch == 'Q':
			b.WriteByte('K')
		case ch == 'S' && next == 'H':
			b.WriteByte('X')
			i++
		case ch == 'X':
			b.WriteString("KS")
		case ch == 'Z':
			b.WriteByte('S')
		case ch == 'W', ch == 'Y':
			if isVowel(next) {
				b.WriteRune(ch)
			}
		case isVowel(ch):
			if i == 0 {
				b.WriteRune(ch)
			}
		case ch >= 'A' && ch <= 'Z':
			b.WriteRune(ch)
		}
	}

	return b.String()
}
