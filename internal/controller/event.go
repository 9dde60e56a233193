package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/mistveil/backoffice-next/internal/model/types"
	"github.com/mistveil/backoffice-next/internal/server/svr"
	"github.com/mistveil/backoffice-next/internal/service"
	"github.com/mistveil/backoffice-next/internal/util/rekuest"
)

type Event struct {
	fx.In

	EventService *service.Event
}

func RegisterEvent(bo *svr.BO, c Event, auth AuthRequired) {
	bo.Get("/events", auth.Handler, c.GetEvents)
	bo.Get("/events/:eventId", auth.Handler, c.GetEventDetail)
	bo.Post("/events", auth.Handler, c.CreateEvent)
	bo.Put("/events/:eventId", auth.Handler, c.UpdateEvent)
	bo.Delete("/events/:eventId", auth.Handler, c.DeleteEvent)

	bo.Post("/events/:eventId/results", auth.Handler, c.CreateEventResult)
	bo.Get("/event-results/:resultId", auth.Handler, c.GetEventResultDetail)
	bo.Put("/event-results/:resultId", auth.Handler, c.UpdateEventResult)
	bo.Delete("/event-results/:resultId", auth.Handler, c.DeleteEventResult)

	bo.Post("/event-results/:resultId/rewards", auth.Handler, c.AddResultReward)
	bo.Patch("/event-results/:resultId/rewards", auth.Handler, c.BatchUpdateResultRewards)
	bo.Put("/event-results/:resultId/rewards/:itemId", auth.Handler, c.UpdateResultReward)
	bo.Delete("/event-results/:resultId/rewards/:itemId", auth.Handler, c.RemoveResultReward)
}

func (c *Event) GetEvents(ctx *fiber.Ctx) error {
	events, err := c.EventService.GetEvents(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(events)
}

func (c *Event) GetEventDetail(ctx *fiber.Ctx) error {
	eventID, err := paramInt(ctx, "eventId")
	if err != nil {
		return err
	}
	detail, err := c.EventService.GetEventDetail(ctx.UserContext(), eventID)
	if err != nil {
		return err
	}
	return ctx.JSON(detail)
}

func (c *Event) CreateEvent(ctx *fiber.Ctx) error {
	var request types.CreateEventRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	event, err := c.EventService.CreateEvent(ctx.UserContext(), &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(event)
}

func (c *Event) UpdateEvent(ctx *fiber.Ctx) error {
	eventID, err := paramInt(ctx, "eventId")
	if err != nil {
		return err
	}
	var request types.UpdateEventRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	if err := c.EventService.UpdateEvent(ctx.UserContext(), eventID, &request); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *Event) DeleteEvent(ctx *fiber.Ctx) error {
	eventID, err := paramInt(ctx, "eventId")
	if err != nil {
		return err
	}
	if err := c.EventService.DeleteEvent(ctx.UserContext(), eventID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Event) CreateEventResult(ctx *fiber.Ctx) error {
	eventID, err := paramInt(ctx, "eventId")
	if err != nil {
		return err
	}
	var request types.CreateEventResultRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	result, err := c.EventService.CreateEventResult(ctx.UserContext(), eventID, &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(result)
}

func (c *Event) GetEventResultDetail(ctx *fiber.Ctx) error {
	resultID, err := paramInt(ctx, "resultId")
	if err != nil {
		return err
	}
	detail, err := c.EventService.GetEventResultDetail(ctx.UserContext(), resultID)
	if err != nil {
		return err
	}
	return ctx.JSON(detail)
}

func (c *Event) UpdateEventResult(ctx *fiber.Ctx) error {
	resultID, err := paramInt(ctx, "resultId")
	if err != nil {
		return err
	}
	var request types.UpdateEventResultRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	result, err := c.EventService.UpdateEventResult(ctx.UserContext(), resultID, &request)
	if err != nil {
		return err
	}
	return ctx.JSON(result)
}

func (c *Event) DeleteEventResult(ctx *fiber.Ctx) error {
	resultID, err := paramInt(ctx, "resultId")
	if err != nil {
		return err
	}
	if err := c.EventService.DeleteEventResult(ctx.UserContext(), resultID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Event) AddResultReward(ctx *fiber.Ctx) error {
	resultID, err := paramInt(ctx, "resultId")
	if err != nil {
		return err
	}
	var request types.AddRewardRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	reward, err := c.EventService.AddResultReward(ctx.UserContext(), resultID, &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(reward)
}

func (c *Event) BatchUpdateResultRewards(ctx *fiber.Ctx) error {
	resultID, err := paramInt(ctx, "resultId")
	if err != nil {
		return err
	}
	var request types.BatchRewardsRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	rewards, err := c.EventService.BatchUpdateResultRewards(ctx.UserContext(), resultID, &request)
	if err != nil {
		return err
	}
	return ctx.JSON(rewards)
}

func (c *Event) UpdateResultReward(ctx *fiber.Ctx) error {
	resultID, err := paramInt(ctx, "resultId")
	if err != nil {
		return err
	}
	itemID, err := paramInt(ctx, "itemId")
	if err != nil {
		return err
	}
	var request types.UpdateProbabilityRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	if err := c.EventService.UpdateResultReward(ctx.UserContext(), resultID, itemID, request.Probability); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *Event) RemoveResultReward(ctx *fiber.Ctx) error {
	resultID, err := paramInt(ctx, "resultId")
	if err != nil {
		return err
	}
	itemID, err := paramInt(ctx, "itemId")
	if err != nil {
		return err
	}
	if err := c.EventService.RemoveResultReward(ctx.UserContext(), resultID, itemID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
