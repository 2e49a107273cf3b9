// Package textmatch provides the tokenization and similarity primitives
// shared by search suggestions and similar-item recommendations.
package textmatch

import (
	"regexp"
	"strings"
)

// TokenSet is a deduplicated bag of lowercase word tokens.
type TokenSet map[string]struct{}

var nonWordRe = regexp.MustCompile(`[^\w\s]+`)

// Normalize turns raw text into a comparable token set: lowercase, strip
// punctuation, split on whitespace, collapse duplicates. Empty input yields
// an empty set.
func Normalize(text string) TokenSet {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), "")
	fields := strings.Fields(cleaned)

	set := make(TokenSet, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func (s TokenSet) Len() int {
	return len(s)
}

func (s TokenSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Tokens returns the members in unspecified order. Callers that need a
// stable order must sort.
func (s TokenSet) Tokens() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	return out
}
