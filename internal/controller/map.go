package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/mistveil/backoffice-next/internal/model/types"
	"github.com/mistveil/backoffice-next/internal/server/svr"
	"github.com/mistveil/backoffice-next/internal/service"
	"github.com/mistveil/backoffice-next/internal/util/rekuest"
)

type Map struct {
	fx.In

	MapService *service.Map
}

func RegisterMap(bo *svr.BO, c Map, auth AuthRequired) {
	bo.Get("/maps", auth.Handler, c.GetMaps)
	bo.Get("/maps/:mapId", auth.Handler, c.GetMapDetail)
	bo.Post("/maps", auth.Handler, c.CreateMaps)
	bo.Patch("/maps/:mapId", auth.Handler, c.UpdateMap)
	bo.Delete("/maps/:mapId", auth.Handler, c.DeleteMap)

	bo.Patch("/maps/:mapId/connections", auth.Handler, c.UpdateConnections)

	bo.Post("/maps/:mapId/events", auth.Handler, c.AddMapEvent)
	bo.Patch("/maps/:mapId/events", auth.Handler, c.BatchUpdateMapEvents)
	bo.Put("/maps/:mapId/events/:eventId", auth.Handler, c.UpdateMapEvent)
	bo.Delete("/maps/:mapId/events/:eventId", auth.Handler, c.RemoveMapEvent)
}

func (c *Map) GetMaps(ctx *fiber.Ctx) error {
	cursor, err := queryCursor(ctx)
	if err != nil {
		return err
	}
	list, err := c.MapService.GetMaps(ctx.UserContext(), cursor)
	if err != nil {
		return err
	}
	return ctx.JSON(list)
}

func (c *Map) GetMapDetail(ctx *fiber.Ctx) error {
	mapID, err := paramInt(ctx, "mapId")
	if err != nil {
		return err
	}
	detail, err := c.MapService.GetMapDetail(ctx.UserContext(), mapID)
	if err != nil {
		return err
	}
	return ctx.JSON(detail)
}

func (c *Map) CreateMaps(ctx *fiber.Ctx) error {
	var request types.CreateMapsRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	maps, err := c.MapService.CreateMaps(ctx.UserContext(), &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(maps)
}

func (c *Map) UpdateMap(ctx *fiber.Ctx) error {
	mapID, err := paramInt(ctx, "mapId")
	if err != nil {
		return err
	}
	var request types.UpdateMapRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	m, err := c.MapService.UpdateMap(ctx.UserContext(), mapID, &request)
	if err != nil {
		return err
	}
	return ctx.JSON(m)
}

func (c *Map) DeleteMap(ctx *fiber.Ctx) error {
	mapID, err := paramInt(ctx, "mapId")
	if err != nil {
		return err
	}
	if err := c.MapService.DeleteMap(ctx.UserContext(), mapID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Map) UpdateConnections(ctx *fiber.Ctx) error {
	mapID, err := paramInt(ctx, "mapId")
	if err != nil {
		return err
	}
	var request types.UpdateConnectionsRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	if err := c.MapService.UpdateConnections(ctx.UserContext(), mapID, &request); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *Map) BatchUpdateMapEvents(ctx *fiber.Ctx) error {
	mapID, err := paramInt(ctx, "mapId")
	if err != nil {
		return err
	}
	var request types.BatchEventsRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	events, err := c.MapService.BatchUpdateMapEvents(ctx.UserContext(), mapID, &request)
	if err != nil {
		return err
	}
	return ctx.JSON(events)
}

func (c *Map) AddMapEvent(ctx *fiber.Ctx) error {
	mapID, err := paramInt(ctx, "mapId")
	if err != nil {
		return err
	}
	var request types.AddEventAssociationRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	if err := c.MapService.AddMapEvent(ctx.UserContext(), mapID, &request); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusCreated)
}

func (c *Map) UpdateMapEvent(ctx *fiber.Ctx) error {
	mapID, err := paramInt(ctx, "mapId")
	if err != nil {
		return err
	}
	eventID, err := paramInt(ctx, "eventId")
	if err != nil {
		return err
	}
	var request types.UpdateProbabilityRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	if err := c.MapService.UpdateMapEvent(ctx.UserContext(), mapID, eventID, request.Probability); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *Map) RemoveMapEvent(ctx *fiber.Ctx) error {
	mapID, err := paramInt(ctx, "mapId")
	if err != nil {
		return err
	}
	eventID, err := paramInt(ctx, "eventId")
	if err != nil {
		return err
	}
	if err := c.MapService.RemoveMapEvent(ctx.UserContext(), mapID, eventID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
