package machine

import (
	"fmt"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how different a suggestion may be from the input.
const maxSuggestDistance = 2

// Suggest returns the candidate closest to target, if any is close enough.
func Suggest(target string, candidates []string) (string, bool) {
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(target, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, best != ""
}

func hint(target string, candidates []string) string {
	if s, ok := Suggest(target, candidates); ok {
		return fmt.Sprintf(" (did you mean %q?)", s)
	}
	return ""
}
