package fuzzy

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "messi", 5},
		{"messi", "", 5},
		{"messi", "messi", 0},
		{"messi", "mesi", 1},
		{"ronaldo", "ronalod", 2},
		{"kitten", "sitting", 3},
		{"messi", "ronaldo", 7},
		{"ronaldo", "ronaldinho", 3},
		{"müller", "muller", 1},
	}

	for _, tt := range tests {
		if got := Levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLevenshteinSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"neymar", "neymar jr"},
		{"de bruyne", "de bruine"},
		{"", "xavi"},
		{"iniesta", "xavi"},
	}
	for _, p := range pairs {
		if Levenshtein(p[0], p[1]) != Levenshtein(p[1], p[0]) {
			t.Errorf("Levenshtein(%q, %q) not symmetric", p[0], p[1])
		}
	}
}

func TestLevenshteinIdentityIsZero(t *testing.T) {
	for _, s := range []string{"", "a", "zlatan ibrahimovic", "kevin de bruyne"} {
		if got := Levenshtein(s, s); got != 0 {
			t.Errorf("Levenshtein(%q, %q) = %d, want 0", s, s, got)
		}
	}
}

func TestEditThreshold(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{0, 0},
		{1, 0},
		{4, 0},
		{5, 1},
		{8, 1},
		{9, 2},
		{20, 2},
	}

	for _, tt := range tests {
		if got := EditThreshold(tt.length); got != tt.want {
			t.Errorf("EditThreshold(%d) = %d, want %d", tt.length, got, tt.want)
		}
	}
}

func TestEditThresholdMonotonic(t *testing.T) {
	prev := EditThreshold(0)
	for l := 1; l <= 32; l++ {
		curr := EditThreshold(l)
		if curr < prev {
			t.Fatalf("EditThreshold not monotonic at %d: %d < %d", l, curr, prev)
		}
		prev = curr
	}
}
