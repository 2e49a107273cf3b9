package textmatch

// Jaccard computes |A ∩ B| / |A ∪ B| over two token sets.
// Returns 0 when both sets are empty (empty union) to avoid division by zero.
// Symmetric, and 1 for any non-empty set compared with itself.
func Jaccard(a, b TokenSet) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	// Iterate the smaller set for the intersection
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}

	intersection := 0
	for token := range small {
		if large.Contains(token) {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// WeightedField pairs two token sets with the weight their similarity
// contributes to a composite score.
type WeightedField struct {
	A      TokenSet
	B      TokenSet
	Weight float64
}

// CompositeScore computes a weighted sum of per-field Jaccard similarities.
// Weights are expected to sum to 1 so the result stays within [0,1].
// Empty fields contribute 0, not an error.
func CompositeScore(fields []WeightedField) float64 {
	score := 0.0
	for _, f := range fields {
		score += f.Weight * Jaccard(f.A, f.B)
	}
	return score
}
