package input

import "github.com/agnivade/levenshtein"

// minFuzzyLength is the shortest typed code considered for typo correction.
// Shorter codes are single keys and must match a binding exactly.
const minFuzzyLength = 3

// closestWord returns the candidate nearest to in by edit distance, if it is
// within the allowance for that candidate's length. Two different candidates
// at the same best distance are ambiguous and match nothing.
func closestWord(in string, candidates []string) (string, bool) {
	if len(in) < minFuzzyLength {
		return "", false
	}

	best := ""
	bestDist := -1
	ambiguous := false
	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(in, c)
		if dist > levenshteinLimit(len(c)) {
			continue
		}
		switch {
		case bestDist < 0 || dist < bestDist:
			best, bestDist, ambiguous = c, dist, false
		case dist == bestDist && bindings[c] != bindings[best]:
			ambiguous = true
		}
	}

	if bestDist < 0 || ambiguous {
		return "", false
	}
	return best, true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
