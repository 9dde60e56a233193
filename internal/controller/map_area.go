package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/mistveil/backoffice-next/internal/model/types"
	"github.com/mistveil/backoffice-next/internal/server/svr"
	"github.com/mistveil/backoffice-next/internal/service"
	"github.com/mistveil/backoffice-next/internal/util/rekuest"
)

type MapArea struct {
	fx.In

	MapAreaService *service.MapArea
}

func RegisterMapArea(bo *svr.BO, c MapArea, auth AuthRequired) {
	bo.Get("/maps/:mapId/areas", auth.Handler, c.GetAreas)
	bo.Post("/maps/:mapId/areas", auth.Handler, c.CreateArea)
	bo.Get("/maps/:mapId/areas/:areaId", auth.Handler, c.GetAreaDetail)
	bo.Patch("/maps/:mapId/areas/:areaId", auth.Handler, c.UpdateArea)
	bo.Delete("/maps/:mapId/areas/:areaId", auth.Handler, c.DeleteArea)

	bo.Post("/maps/:mapId/areas/:areaId/events", auth.Handler, c.AddAreaEvent)
	bo.Patch("/maps/:mapId/areas/:areaId/events", auth.Handler, c.BatchUpdateAreaEvents)
	bo.Put("/maps/:mapId/areas/:areaId/events/:eventId", auth.Handler, c.UpdateAreaEvent)
	bo.Delete("/maps/:mapId/areas/:areaId/events/:eventId", auth.Handler, c.RemoveAreaEvent)
}

func (c *MapArea) GetAreas(ctx *fiber.Ctx) error {
	mapID, err := paramInt(ctx, "mapId")
	if err != nil {
		return err
	}
	areas, err := c.MapAreaService.GetAreasByMapID(ctx.UserContext(), mapID)
	if err != nil {
		return err
	}
	return ctx.JSON(areas)
}

func (c *MapArea) CreateArea(ctx *fiber.Ctx) error {
	mapID, err := paramInt(ctx, "mapId")
	if err != nil {
		return err
	}
	var request types.CreateMapAreaRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	area, err := c.MapAreaService.CreateArea(ctx.UserContext(), mapID, &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(area)
}

func (c *MapArea) GetAreaDetail(ctx *fiber.Ctx) error {
	mapID, areaID, err := paramAreaPath(ctx)
	if err != nil {
		return err
	}
	detail, err := c.MapAreaService.GetAreaDetail(ctx.UserContext(), mapID, areaID)
	if err != nil {
		return err
	}
	return ctx.JSON(detail)
}

func (c *MapArea) UpdateArea(ctx *fiber.Ctx) error {
	mapID, areaID, err := paramAreaPath(ctx)
	if err != nil {
		return err
	}
	var request types.UpdateMapAreaRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	area, err := c.MapAreaService.UpdateArea(ctx.UserContext(), mapID, areaID, &request)
	if err != nil {
		return err
	}
	return ctx.JSON(area)
}

func (c *MapArea) DeleteArea(ctx *fiber.Ctx) error {
	mapID, areaID, err := paramAreaPath(ctx)
	if err != nil {
		return err
	}
	if err := c.MapAreaService.DeleteArea(ctx.UserContext(), mapID, areaID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *MapArea) BatchUpdateAreaEvents(ctx *fiber.Ctx) error {
	mapID, areaID, err := paramAreaPath(ctx)
	if err != nil {
		return err
	}
	var request types.BatchEventsRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	events, err := c.MapAreaService.BatchUpdateAreaEvents(ctx.UserContext(), mapID, areaID, &request)
	if err != nil {
		return err
	}
	return ctx.JSON(events)
}

func (c *MapArea) AddAreaEvent(ctx *fiber.Ctx) error {
	mapID, areaID, err := paramAreaPath(ctx)
	if err != nil {
		return err
	}
	var request types.AddEventAssociationRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	if err := c.MapAreaService.AddAreaEvent(ctx.UserContext(), mapID, areaID, &request); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusCreated)
}

func (c *MapArea) UpdateAreaEvent(ctx *fiber.Ctx) error {
	mapID, areaID, err := paramAreaPath(ctx)
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
	if err := c.MapAreaService.UpdateAreaEvent(ctx.UserContext(), mapID, areaID, eventID, request.Probability); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *MapArea) RemoveAreaEvent(ctx *fiber.Ctx) error {
	mapID, areaID, err := paramAreaPath(ctx)
	if err != nil {
		return err
	}
	eventID, err := paramInt(ctx, "eventId")
	if err != nil {
		return err
	}
	if err := c.MapAreaService.RemoveAreaEvent(ctx.UserContext(), mapID, areaID, eventID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func paramAreaPath(ctx *fiber.Ctx) (mapID, areaID int, err error) {
	if mapID, err = paramInt(ctx, "mapId"); err != nil {
		return 0, 0, err
	}
	if areaID, err = paramInt(ctx, "areaId"); err != nil {
		return 0, 0, err
	}
	return mapID, areaID, nil
}
