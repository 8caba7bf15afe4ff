package classify

// Fuzzy matching bounds. A word only fuzzy-matches a keyword when the word is
// at least fuzzyMinLen runes and the edit distance is exactly fuzzyDistance.
// Loosening either bound changes classification for short words (e.g. "of"
// vs "off"), so both are deliberate precision guards.
const (
	fuzzyMinLen   = 5
	fuzzyDistance = 1
)

// fuzzyEqual reports whether word matches keyword under the bounded
// edit-distance policy.
func fuzzyEqual(word, keyword string) bool {
	if len([]rune(word)) < fuzzyMinLen {
		return false
	}
	return levenshtein(word, keyword) == fuzzyDistance
}

// levenshtein computes the edit distance between two strings using a
// two-row dynamic program.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

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
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
