package validate

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// SuggestSimilar returns the candidate closest to unknown by case-insensitive
// edit distance, if it is within max(2, len(unknown)/3). The first candidate
// wins ties.
func SuggestSimilar(unknown string, candidates []string) (string, bool) {
	lower := strings.ToLower(unknown)
	maxDistance := max(2, len(unknown)/3)

	best, bestDistance := "", -1
	for _, candidate := range candidates {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(candidate))
		if d > maxDistance {
			continue
		}
		if bestDistance < 0 || d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	return best, bestDistance >= 0
}

// suggestRuleName suggests from the rule alias table. Canonical ids keep
// their case; aliases are shown in lowercase.
func suggestRuleName(unknown string, candidates []string) (string, bool) {
	s, ok := SuggestSimilar(unknown, candidates)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(s, "MD") {
		return s, true
	}
	return strings.ToLower(s), true
}
