package util

import (
	"github.com/samber/lo"
)

// DuplicateInts returns every value appearing more than once in ids,
// deduplicated, in first-seen order.
func DuplicateInts(ids []int) []int {
	seen := make(map[int]int, len(ids))
	duplicates := []int{}
	for _, id := range ids {
		seen[id]++
		if seen[id] == 2 {
			duplicates = append(duplicates, id)
		}
	}
	return duplicates
}

// IntersectInts returns the values present in both a and b, deduplicated,
// in a's order.
func IntersectInts(a, b []int) []int {
	return lo.Intersect(lo.Uniq(a), lo.Uniq(b))
}

// NormalizeWeights rescales weights so they sum to 1 while preserving their
// ratios. When the sum is zero (empty or all-zero input) the input is
// returned untouched and ok is false: an all-zero table has no meaningful
// ratios to preserve, and rescaling would divide by zero.
func NormalizeWeights(weights []float64) (normalized []float64, ok bool) {
	sum := lo.Sum(weights)
	if sum <= 0 {
		return weights, false
	}

	normalized = make([]float64, len(weights))
	for i, w := range weights {
		normalized[i] = w / sum
	}
	return normalized, true
}
