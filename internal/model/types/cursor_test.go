package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor(t *testing.T) {
	t.Run("zero cursor walks forward from the edge", func(t *testing.T) {
		c := Cursor{Limit: 10}
		assert.False(t, c.Backward())
		assert.Equal(t, 0, c.Start())
	})

	t.Run("next walks forward", func(t *testing.T) {
		c := Cursor{NextID: 40, Limit: 10}
		assert.False(t, c.Backward())
		assert.Equal(t, 40, c.Start())
	})

	t.Run("prev walks backward", func(t *testing.T) {
		c := Cursor{PrevID: 20, Limit: 10}
		assert.True(t, c.Backward())
		assert.Equal(t, 20, c.Start())
	})

	t.Run("prev wins over next", func(t *testing.T) {
		c := Cursor{PrevID: 20, NextID: 40, Limit: 10}
		assert.True(t, c.Backward())
		assert.Equal(t, 20, c.Start())
	})
}
