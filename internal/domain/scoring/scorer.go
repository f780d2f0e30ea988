// Package scoring computes lexical relevance of an assessment to a query.
package scoring

import (
	"strings"

	"github.com/kailas-cloud/assessrec/internal/domain/assessment"
	"github.com/kailas-cloud/assessrec/internal/domain/query"
)

// Breakdown is the per-component contribution to a score.
type Breakdown struct {
	Phrase int
	Tokens int
	Boosts map[string]int
}

// Total returns the sum of all components.
func (b Breakdown) Total() int {
	total := b.Phrase + b.Tokens
	for _, p := range b.Boosts {
		total += p
	}
	return total
}

// Score returns the non-negative relevance of a to q.
func Score(a *assessment.Assessment, q query.Query) int {
	return Explain(a, q).Total()
}

// Explain scores a against q and reports where the points came from.
func Explain(a *assessment.Assessment, q query.Query) Breakdown {
	name := strings.ToLower(a.Name)
	desc := strings.ToLower(a.Description)
	testTypes := strings.ToLower(strings.Join(a.TestTypes, " "))

	var b Breakdown

	if strings.Contains(name, q.Lower()) {
		b.Phrase += phraseInName
	}
	if strings.Contains(desc, q.Lower()) {
		b.Phrase += phraseInDescription
	}

	for _, tok := range q.Tokens() {
		if strings.Contains(name, tok) {
			b.Tokens += tokenInName
		}
		if strings.Contains(desc, tok) {
			b.Tokens += tokenInDescription
		}
		if strings.Contains(testTypes, tok) {
			b.Tokens += tokenInTestTypes
		}
	}

	for _, rule := range boostRules {
		for _, kw := range rule.keywords {
			if !q.Contains(kw) || !rule.matches(kw, name, desc, testTypes) {
				continue
			}
			if b.Boosts == nil {
				b.Boosts = make(map[string]int, len(boostRules))
			}
			b.Boosts[rule.name] += rule.points
		}
	}

	return b
}

func (r *boostRule) matches(keyword, name, desc, testTypes string) bool {
	switch r.target {
	case keywordInText:
		return strings.Contains(name, keyword) || strings.Contains(desc, keyword)
	case labelInTestTypes:
		for _, n := range r.needles {
			if strings.Contains(testTypes, n) {
				return true
			}
		}
	}
	return false
}
