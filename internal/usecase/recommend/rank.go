package recommend

import (
	"sort"

	"github.com/kailas-cloud/assessrec/internal/domain/assessment"
)

const (
	// maxResults caps every recommendation list.
	maxResults = 10
	// minResults is the size below which the floor re-admits candidates.
	minResults = 5
)

// Scored is an assessment with its score for the current request.
type Scored struct {
	Assessment assessment.Assessment
	Score      int
}

// sortByScore orders items by descending score; equal scores keep their order.
func sortByScore(items []Scored) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
}

// rank sorts scored in place and returns the first maxResults entries
// (candidates) and the subset of those with a positive score (top).
func rank(scored []Scored) (candidates, top []Scored) {
	sortByScore(scored)

	candidates = scored[:min(maxResults, len(scored))]

	top = make([]Scored, 0, len(candidates))
	for _, s := range candidates {
		if s.Score > 0 {
			top = append(top, s)
		}
	}
	return candidates, top
}

// applyFloor replaces a list shorter than minResults with the leading
// candidates, zero scores included, when at least minResults candidates exist.
func applyFloor(final, candidates []Scored) ([]Scored, bool) {
	if len(final) >= minResults || len(candidates) < minResults {
		return final, false
	}
	return candidates[:min(maxResults, len(candidates))], true
}
