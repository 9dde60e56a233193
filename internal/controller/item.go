package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/mistveil/backoffice-next/internal/model/types"
	"github.com/mistveil/backoffice-next/internal/server/svr"
	"github.com/mistveil/backoffice-next/internal/service"
	"github.com/mistveil/backoffice-next/internal/util/rekuest"
)

type Item struct {
	fx.In

	ItemService *service.Item
}

func RegisterItem(bo *svr.BO, c Item, auth AuthRequired) {
	bo.Get("/items", auth.Handler, c.GetItems)
	bo.Get("/items/:itemId", auth.Handler, c.GetItem)
	bo.Post("/items", auth.Handler, c.CreateItem)
	bo.Put("/items/:itemId", auth.Handler, c.UpdateItem)
	bo.Delete("/items/:itemId", auth.Handler, c.DeleteItem)
}

func (c *Item) GetItems(ctx *fiber.Ctx) error {
	items, err := c.ItemService.GetItems(ctx.UserContext(), ctx.Query("type"))
	if err != nil {
		return err
	}
	return ctx.JSON(items)
}

func (c *Item) GetItem(ctx *fiber.Ctx) error {
	itemID, err := paramInt(ctx, "itemId")
	if err != nil {
		return err
	}
	item, err := c.ItemService.GetItemByID(ctx.UserContext(), itemID)
	if err != nil {
		return err
	}
	return ctx.JSON(item)
}

func (c *Item) CreateItem(ctx *fiber.Ctx) error {
	var request types.CreateItemRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	item, err := c.ItemService.CreateItem(ctx.UserContext(), &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(item)
}

func (c *Item) UpdateItem(ctx *fiber.Ctx) error {
	itemID, err := paramInt(ctx, "itemId")
	if err != nil {
		return err
	}
	var request types.UpdateItemRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	item, err := c.ItemService.UpdateItem(ctx.UserContext(), itemID, &request)
	if err != nil {
		return err
	}
	return ctx.JSON(item)
}

func (c *Item) DeleteItem(ctx *fiber.Ctx) error {
	itemID, err := paramInt(ctx, "itemId")
	if err != nil {
		return err
	}
	if err := c.ItemService.DeleteItem(ctx.UserContext(), itemID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
