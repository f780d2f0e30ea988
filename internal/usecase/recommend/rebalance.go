package recommend

import (
	"github.com/kailas-cloud/assessrec/internal/domain/query"
)

const (
	// rebalanceMinCandidates is the smallest top list worth rebalancing.
	rebalanceMinCandidates = 6
	// perDomainLimit is how many entries each domain contributes.
	perDomainLimit = 5
)

var (
	technicalTokens = map[string]struct{}{
		"java": {}, "python": {}, "sql": {}, "javascript": {}, "coding": {}, "technical": {},
	}
	behavioralTokens = map[string]struct{}{
		"collaborate": {}, "personality": {}, "behavior": {}, "team": {}, "communication": {},
	}
)

// spansDomains reports whether the query names both a technical and a
// behavioral concern.
func spansDomains(q query.Query) bool {
	return q.HasAnyToken(technicalTokens) && q.HasAnyToken(behavioralTokens)
}

// rebalance mixes knowledge and behavior assessments for multi-domain queries.
// An assessment labelled with both domains is taken by both partitions.
func rebalance(q query.Query, top []Scored) ([]Scored, bool) {
	if !spansDomains(q) || len(top) < rebalanceMinCandidates {
		return top, false
	}

	var knowledge, behavior []Scored
	for _, s := range top {
		if s.Assessment.HasTestTypeLabel("knowledge", "skill") {
			knowledge = append(knowledge, s)
		}
		if s.Assessment.HasTestTypeLabel("personality", "behavior") {
			behavior = append(behavior, s)
		}
	}

	merged := make([]Scored, 0, 2*perDomainLimit)
	merged = append(merged, knowledge[:min(perDomainLimit, len(knowledge))]...)
	merged = append(merged, behavior[:min(perDomainLimit, len(behavior))]...)

	sortByScore(merged)
	return merged[:min(maxResults, len(merged))], true
}
