package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuplicateInts(t *testing.T) {
	assert.Empty(t, DuplicateInts(nil))
	assert.Empty(t, DuplicateInts([]int{1, 2, 3}))
	assert.Equal(t, []int{2}, DuplicateInts([]int{1, 2, 2, 3}))
	assert.Equal(t, []int{5, 1}, DuplicateInts([]int{5, 1, 5, 1, 5}))
}

func TestIntersectInts(t *testing.T) {
	assert.Empty(t, IntersectInts([]int{1, 2}, []int{3, 4}))
	assert.Equal(t, []int{2, 3}, IntersectInts([]int{1, 2, 3}, []int{3, 2, 9}))
	assert.Equal(t, []int{7}, IntersectInts([]int{7, 7}, []int{7}))
}

func TestNormalizeWeights(t *testing.T) {
	t.Run("preserves ratios", func(t *testing.T) {
		normalized, ok := NormalizeWeights([]float64{0.2, 0.2, 0.1})
		assert.True(t, ok)
		assert.InDelta(t, 0.4, normalized[0], 1e-9)
		assert.InDelta(t, 0.4, normalized[1], 1e-9)
		assert.InDelta(t, 0.2, normalized[2], 1e-9)
	})

	t.Run("sums to one", func(t *testing.T) {
		normalized, ok := NormalizeWeights([]float64{0.3, 0.9, 1.0, 0.05})
		assert.True(t, ok)
		sum := 0.0
		for _, w := range normalized {
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("already normalized is a fixpoint", func(t *testing.T) {
		normalized, ok := NormalizeWeights([]float64{0.25, 0.75})
		assert.True(t, ok)
		assert.InDelta(t, 0.25, normalized[0], 1e-9)
		assert.InDelta(t, 0.75, normalized[1], 1e-9)
	})

	t.Run("all zero is untouched", func(t *testing.T) {
		weights := []float64{0, 0, 0}
		normalized, ok := NormalizeWeights(weights)
		assert.False(t, ok)
		assert.Equal(t, weights, normalized)
	})

	t.Run("empty is untouched", func(t *testing.T) {
		normalized, ok := NormalizeWeights(nil)
		assert.False(t, ok)
		assert.Empty(t, normalized)
	})
}
