// Package ranking orders catalog candidates by text relevance. It backs both
// the search-bar suggestion flow and the similar-item recommendation flow.
package ranking

import (
	"sort"
	"strings"

	"catalog-assistant-be/pkg/textmatch"
)

const (
	// DefaultTopK caps every ranked result set.
	DefaultTopK = 5

	defaultNameWeight        = 0.7
	defaultDescriptionWeight = 0.3
)

// Candidate is an entity with text fields eligible for matching.
type Candidate struct {
	ID          string
	Name        string
	Description string
}

// Scored is a candidate with its relevance score in [0,1] and 1-based rank.
type Scored struct {
	Candidate Candidate
	Score     float64
	Rank      int
}

// Engine scores and ranks candidate pools in memory. Pools are catalog-sized
// (tens to low hundreds), so everything is synchronous.
type Engine struct {
	topK       int
	nameWeight float64
	descWeight float64
}

func NewEngine() *Engine {
	return &Engine{
		topK:       DefaultTopK,
		nameWeight: defaultNameWeight,
		descWeight: defaultDescriptionWeight,
	}
}

// Suggest ranks the pool against a raw query by Jaccard similarity over the
// name field. Zero-score candidates are dropped. Callers are responsible for
// suppressing degenerate short queries before calling.
func (e *Engine) Suggest(query string, pool []Candidate) []Scored {
	queryTokens := textmatch.Normalize(query)
	if queryTokens.Len() == 0 {
		return nil
	}

	scored := make([]Scored, 0, len(pool))
	for _, c := range pool {
		score := textmatch.Jaccard(queryTokens, textmatch.Normalize(c.Name))
		if score == 0 {
			continue
		}
		scored = append(scored, Scored{Candidate: c, Score: score})
	}
	return e.finalize(scored)
}

// SubstringSuggest is the lower-cost containment variant for short queries:
// a candidate matches when its name contains the query, case-insensitive.
// Matches score 1 at a name-length penalty so shorter names rank first,
// preserving the descending-by-relevance contract.
func (e *Engine) SubstringSuggest(query string, pool []Candidate) []Scored {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}

	scored := make([]Scored, 0, len(pool))
	for _, c := range pool {
		name := strings.ToLower(c.Name)
		if !strings.Contains(name, needle) {
			continue
		}
		scored = append(scored, Scored{
			Candidate: c,
			Score:     float64(len(needle)) / float64(len(name)),
		})
	}
	return e.finalize(scored)
}

// SimilarItems ranks every other candidate in the pool against ref using a
// composite score over name and description. The reference itself is never
// part of the result.
func (e *Engine) SimilarItems(ref Candidate, pool []Candidate) []Scored {
	refName := textmatch.Normalize(ref.Name)
	refDesc := textmatch.Normalize(ref.Description)

	scored := make([]Scored, 0, len(pool))
	for _, c := range pool {
		if c.ID == ref.ID {
			continue
		}
		score := textmatch.CompositeScore([]textmatch.WeightedField{
			{A: refName, B: textmatch.Normalize(c.Name), Weight: e.nameWeight},
			{A: refDesc, B: textmatch.Normalize(c.Description), Weight: e.descWeight},
		})
		if score == 0 {
			continue
		}
		scored = append(scored, Scored{Candidate: c, Score: score})
	}
	return e.finalize(scored)
}

// finalize sorts descending by score (stable, so ties keep input order),
// truncates to top-K only after sorting, and assigns ranks.
func (e *Engine) finalize(scored []Scored) []Scored {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > e.topK {
		scored = scored[:e.topK]
	}
	for i := range scored {
		scored[i].Rank = i + 1
	}
	return scored
}
