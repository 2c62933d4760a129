package match

import (
	"sort"
	"strings"
)

// Levenshtein computes the Levenshtein distance (edit distance) between two strings.
// The distance is the minimum number of single-rune edits (insertions, deletions,
// or substitutions) required to transform one string into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// LevenshteinNormalized computes a normalized similarity score between 0 and 1.
// 1.0 means identical strings, 0.0 means completely different.
// The score is: 1 - (distance / max(len(a), len(b))).
func LevenshteinNormalized(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 && lb == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(max(la, lb))
}

// Suggestion thresholds for missing columns.
const (
	DefaultMinSuggestionScore = 0.4
	DefaultMaxSuggestions     = 3
)

type scoredHeader struct {
	text  string
	score float64
}

// Suggest ranks candidate header texts by similarity to the rule keywords
// and returns the best ones above DefaultMinSuggestionScore.
func Suggest(rule Rule, candidates []string) []string {
	target := compact(strings.Join(rule.Keywords(), ""))
	if target == "" {
		return nil
	}

	seen := make(map[string]bool, len(candidates))

	var scored []scoredHeader

	for _, c := range candidates {
		text := strings.Join(strings.Fields(c), " ")
		if text == "" || seen[text] {
			continue
		}

		seen[text] = true

		score := LevenshteinNormalized(compact(text), target)
		if score >= DefaultMinSuggestionScore {
			scored = append(scored, scoredHeader{text: text, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}

		return scored[i].text < scored[j].text
	})

	out := make([]string, 0, DefaultMaxSuggestions)
	for i := 0; i < len(scored) && i < DefaultMaxSuggestions; i++ {
		out = append(out, scored[i].text)
	}

	return out
}
