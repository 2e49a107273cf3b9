package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("lowercases and strips punctuation", func(t *testing.T) {
		set := Normalize("Laptop Pro 15, (refurbished)!")
		assert.Equal(t, 4, set.Len())
		assert.True(t, set.Contains("laptop"))
		assert.True(t, set.Contains("pro"))
		assert.True(t, set.Contains("15"))
		assert.True(t, set.Contains("refurbished"))
	})

	t.Run("collapses duplicates", func(t *testing.T) {
		set := Normalize("lamp lamp LAMP")
		assert.Equal(t, 1, set.Len())
	})

	t.Run("empty input yields empty set", func(t *testing.T) {
		assert.Equal(t, 0, Normalize("").Len())
		assert.Equal(t, 0, Normalize("   ").Len())
		assert.Equal(t, 0, Normalize("!!! ... ---").Len())
	})
}

func TestJaccard(t *testing.T) {
	t.Run("self similarity is 1", func(t *testing.T) {
		a := Normalize("wireless ergonomic mouse")
		assert.Equal(t, 1.0, Jaccard(a, a))
	})

	t.Run("symmetry", func(t *testing.T) {
		a := Normalize("powerful laptop for professionals")
		b := Normalize("laptop stand")
		assert.Equal(t, Jaccard(a, b), Jaccard(b, a))
	})

	t.Run("disjoint sets score 0", func(t *testing.T) {
		assert.Equal(t, 0.0, Jaccard(Normalize("desk lamp"), Normalize("phone case")))
	})

	t.Run("both empty scores 0 not NaN", func(t *testing.T) {
		assert.Equal(t, 0.0, Jaccard(Normalize(""), Normalize("")))
	})

	t.Run("known overlap", func(t *testing.T) {
		// {laptop} vs {laptop,pro,15} -> 1/3
		got := Jaccard(Normalize("laptop"), Normalize("Laptop Pro 15"))
		assert.InDelta(t, 1.0/3.0, got, 1e-9)
	})

	t.Run("range stays within [0,1]", func(t *testing.T) {
		pairs := [][2]string{
			{"a b c", "a b c d e"},
			{"x", ""},
			{"red shoes", "red running shoes"},
		}
		for _, p := range pairs {
			got := Jaccard(Normalize(p[0]), Normalize(p[1]))
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		}
	})
}

func TestCompositeScore(t *testing.T) {
	t.Run("weighted sum stays bounded", func(t *testing.T) {
		name := Normalize("laptop pro")
		desc := Normalize("powerful laptop")
		got := CompositeScore([]WeightedField{
			{A: name, B: name, Weight: 0.7},
			{A: desc, B: desc, Weight: 0.3},
		})
		assert.InDelta(t, 1.0, got, 1e-9)
	})

	t.Run("empty fields contribute zero", func(t *testing.T) {
		got := CompositeScore([]WeightedField{
			{A: Normalize("laptop"), B: Normalize("laptop"), Weight: 0.7},
			{A: Normalize(""), B: Normalize("anything"), Weight: 0.3},
		})
		assert.InDelta(t, 0.7, got, 1e-9)
	})
}
