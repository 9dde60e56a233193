package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/mistveil/backoffice-next/internal/app/appconfig"
	"github.com/mistveil/backoffice-next/internal/model/types"
	"github.com/mistveil/backoffice-next/internal/pkg/middlewares"
	"github.com/mistveil/backoffice-next/internal/pkg/mverr"
)

// AuthRequired carries the bearer-token middleware guarding every
// backoffice route except login.
type AuthRequired struct {
	Handler fiber.Handler
}

func NewAuthRequired(conf *appconfig.Config) AuthRequired {
	return AuthRequired{Handler: middlewares.Auth(conf.JWTSecret)}
}

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

func paramInt(ctx *fiber.Ctx, name string) (int, error) {
	value, err := strconv.Atoi(ctx.Params(name))
	if err != nil || value <= 0 {
		return 0, mverr.ErrInvalidReq.Msg("invalid or missing %s", name)
	}
	return value, nil
}

// queryCursor reads the prev_id/next_id/limit query params of a paged
// listing. When both ids are given prev_id wins (Cursor walks backward).
func queryCursor(ctx *fiber.Ctx) (types.Cursor, error) {
	cursor := types.Cursor{
		PrevID: ctx.QueryInt("prev_id"),
		NextID: ctx.QueryInt("next_id"),
		Limit:  ctx.QueryInt("limit", defaultPageSize),
	}
	if cursor.PrevID < 0 || cursor.NextID < 0 {
		return types.Cursor{}, mverr.ErrInvalidReq.Msg("prev_id and next_id must be positive ids")
	}
	if cursor.Limit <= 0 || cursor.Limit > maxPageSize {
		return types.Cursor{}, mverr.ErrInvalidReq.Msg("limit must be within [1, %d]", maxPageSize)
	}
	return cursor, nil
}
