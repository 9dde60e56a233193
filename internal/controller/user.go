package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/mistveil/backoffice-next/internal/server/svr"
	"github.com/mistveil/backoffice-next/internal/service"
)

type User struct {
	fx.In

	AccountService *service.Account
}

func RegisterUser(bo *svr.BO, c User, auth AuthRequired) {
	bo.Get("/users", auth.Handler, c.GetUsers)
	bo.Get("/users/:userId", auth.Handler, c.GetUser)
}

func (c *User) GetUsers(ctx *fiber.Ctx) error {
	users, err := c.AccountService.GetUsers(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(users)
}

func (c *User) GetUser(ctx *fiber.Ctx) error {
	userID, err := paramInt(ctx, "userId")
	if err != nil {
		return err
	}
	user, err := c.AccountService.GetUserByID(ctx.UserContext(), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(user)
}
