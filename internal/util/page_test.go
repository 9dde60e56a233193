package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage(t *testing.T) {
	t.Run("short page", func(t *testing.T) {
		page, hasMore := Page([]int{1, 2}, 5)
		assert.Equal(t, []int{1, 2}, page)
		assert.False(t, hasMore)
	})

	t.Run("exactly full page", func(t *testing.T) {
		page, hasMore := Page([]int{1, 2, 3}, 3)
		assert.Equal(t, []int{1, 2, 3}, page)
		assert.False(t, hasMore)
	})

	t.Run("extra row trimmed", func(t *testing.T) {
		page, hasMore := Page([]int{1, 2, 3, 4}, 3)
		assert.Equal(t, []int{1, 2, 3}, page)
		assert.True(t, hasMore)
	})

	t.Run("zero limit keeps all", func(t *testing.T) {
		page, hasMore := Page([]int{1, 2, 3}, 0)
		assert.Equal(t, []int{1, 2, 3}, page)
		assert.False(t, hasMore)
	})
}
