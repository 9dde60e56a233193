package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mistveil/backoffice-next/internal/model/types"
)

func cursorFor(t *testing.T, query string) (types.Cursor, error) {
	t.Helper()

	var (
		cursor types.Cursor
		curErr error
	)
	app := fiber.New()
	app.Get("/", func(ctx *fiber.Ctx) error {
		cursor, curErr = queryCursor(ctx)
		return nil
	})

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/?"+query, nil))
	require.NoError(t, err)
	return cursor, curErr
}

func TestQueryCursor(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cursor, err := cursorFor(t, "")
		require.NoError(t, err)
		assert.Equal(t, types.Cursor{Limit: defaultPageSize}, cursor)
	})

	t.Run("forward", func(t *testing.T) {
		cursor, err := cursorFor(t, "next_id=30&limit=10")
		require.NoError(t, err)
		assert.Equal(t, types.Cursor{NextID: 30, Limit: 10}, cursor)
		assert.False(t, cursor.Backward())
	})

	t.Run("backward", func(t *testing.T) {
		cursor, err := cursorFor(t, "prev_id=30&limit=10")
		require.NoError(t, err)
		assert.True(t, cursor.Backward())
		assert.Equal(t, 30, cursor.Start())
	})

	t.Run("prev_id wins when both are given", func(t *testing.T) {
		cursor, err := cursorFor(t, "prev_id=20&next_id=40")
		require.NoError(t, err)
		assert.True(t, cursor.Backward())
		assert.Equal(t, 20, cursor.Start())
	})

	t.Run("limit over the cap", func(t *testing.T) {
		_, err := cursorFor(t, "limit=1000")
		assert.Error(t, err)
	})

	t.Run("negative ids", func(t *testing.T) {
		_, err := cursorFor(t, "next_id=-5")
		assert.Error(t, err)
	})
}

func TestParamInt(t *testing.T) {
	get := func(t *testing.T, path string) (int, error) {
		t.Helper()

		var (
			value  int
			parErr error
		)
		app := fiber.New()
		app.Get("/items/:itemId", func(ctx *fiber.Ctx) error {
			value, parErr = paramInt(ctx, "itemId")
			return nil
		})
		_, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		return value, parErr
	}

	value, err := get(t, "/items/42")
	require.NoError(t, err)
	assert.Equal(t, 42, value)

	_, err = get(t, "/items/abc")
	assert.Error(t, err)

	_, err = get(t, "/items/0")
	assert.Error(t, err)
}
