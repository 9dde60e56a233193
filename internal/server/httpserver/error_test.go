package httpserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mistveil/backoffice-next/internal/pkg/mverr"
)

func errorTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/notfound", func(ctx *fiber.Ctx) error {
		return mverr.ErrNotFound.Msg("item 13 is not in pool 7")
	})
	app.Get("/conflict", func(ctx *fiber.Ctx) error {
		return mverr.ErrConflict
	})
	app.Get("/violations", func(ctx *fiber.Ctx) error {
		return mverr.NewInvalidViolations([]string{"probability out of range"})
	})
	app.Get("/plain", func(ctx *fiber.Ctx) error {
		return io.ErrUnexpectedEOF
	})
	return app
}

func decodeErrorBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestErrorHandler(t *testing.T) {
	app := errorTestApp()

	t.Run("backoffice error with message override", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/notfound", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decodeErrorBody(t, resp)
		assert.Equal(t, mverr.CodeNotFound, body["code"])
		assert.Equal(t, "item 13 is not in pool 7", body["message"])
	})

	t.Run("conflict sentinel", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/conflict", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		body := decodeErrorBody(t, resp)
		assert.Equal(t, mverr.CodeConflict, body["code"])
	})

	t.Run("violations land in the body", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/violations", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeErrorBody(t, resp)
		assert.Equal(t, mverr.CodeInvalidRequest, body["code"])
		assert.Contains(t, body, "violations")
	})

	t.Run("unknown errors map to internal", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/plain", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		body := decodeErrorBody(t, resp)
		assert.Equal(t, mverr.CodeInternalError, body["code"])
	})

	t.Run("route misses keep fiber's status", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decodeErrorBody(t, resp)
		assert.Equal(t, "UNKNOWN_ERROR", body["code"])
	})
}
