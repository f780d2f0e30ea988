// Package query normalizes free-text hiring queries for lexical matching.
package query

import (
	"strings"

	"github.com/kailas-cloud/assessrec/internal/domain"
)

// minTokenLen is the shortest token kept; shorter words are noise.
const minTokenLen = 3

// Query is a normalized free-text query.
type Query struct {
	lower  string
	tokens []string
}

// Parse trims and lowercases raw and splits it into tokens.
// Returns domain.ErrEmptyQuery when nothing remains after trimming.
func Parse(raw string) (Query, error) {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return Query{}, domain.ErrEmptyQuery
	}

	fields := strings.Fields(lower)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= minTokenLen {
			tokens = append(tokens, f)
		}
	}

	return Query{lower: lower, tokens: tokens}, nil
}

// Lower returns the trimmed, lowercased query.
func (q Query) Lower() string { return q.lower }

// Tokens returns the query words longer than two characters, in query order.
func (q Query) Tokens() []string { return q.tokens }

// Contains reports whether s occurs anywhere in the lowercased query.
func (q Query) Contains(s string) bool { return strings.Contains(q.lower, s) }

// HasAnyToken reports whether any token equals one of the given words.
func (q Query) HasAnyToken(words map[string]struct{}) bool {
	for _, t := range q.tokens {
		if _, ok := words[t]; ok {
			return true
		}
	}
	return false
}
