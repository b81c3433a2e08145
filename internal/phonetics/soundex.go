// Package phonetics provides the phonetic keys (Soundex and a simplified
// Metaphone) used as the tolerant, sound-alike signal in fuzzy matching.
package phonetics

import "strings"

// A soundex code is one letter followed by three digits.
const soundexLen = 4

// Digit per letter, indexed A-Z. Vowels and H/W/Y map to '0' (non-coding).
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
const soundexTable = "01230120022455012623010202"

func soundexCode(letter byte) byte {
	return soundexTable[letter-'A']
}

// Soundex returns the Soundex code for a name: the first letter followed by
// the digit groups of subsequent letters, with consecutive letters of the
// same group collapsed. Names that sound alike share a code, e.g.
// Soundex("Robert") == Soundex("Rupert") == "R163". Empty or non-alphabetic
// input yields "".
func Soundex(name string) string {
	letters := make([]byte, 0, len(name))
	for _, r := range strings.ToUpper(name) {
		if r >= 'A' && r <= 'Z' {
			letters = append(letters, byte(r))
		}
	}
	if len(letters) == 0 {
		return ""
	}

	code := make([]byte, 1, soundexLen)
	code[0] = letters[0]
	prev := soundexCode(letters[0])

	for _, l := range letters[1:] {
		c := soundexCode(l)
		if c != '0' && c != prev {
			code = append(code, c)
			if len(code) == soundexLen {
				break
			}
		}
		// Non-coding letters do not break a run of same-group letters.
		if c != '0' {
			prev = c
		}
	}

	for len(code) < soundexLen {
		code = append(code, '0')
	}
	return string(code)
}
