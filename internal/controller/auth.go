package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/mistveil/backoffice-next/internal/model/types"
	"github.com/mistveil/backoffice-next/internal/pkg/flog"
	"github.com/mistveil/backoffice-next/internal/server/svr"
	"github.com/mistveil/backoffice-next/internal/service"
	"github.com/mistveil/backoffice-next/internal/util/rekuest"
)

type Auth struct {
	fx.In

	AccountService *service.Account
}

func RegisterAuth(bo *svr.BO, c Auth) {
	bo.Post("/auth/login", c.Login)
}

func (c *Auth) Login(ctx *fiber.Ctx) error {
	var request types.LoginRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	token, err := c.AccountService.Login(ctx.UserContext(), &request)
	if err != nil {
		return err
	}

	flog.InfoFrom(ctx).
		Str("evt.name", "auth.login").
		Str("username", request.Username).
		Msg("user logged in")
	return ctx.JSON(token)
}
