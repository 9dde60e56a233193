package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/mistveil/backoffice-next/internal/model/types"
	"github.com/mistveil/backoffice-next/internal/pkg/mverr"
	"github.com/mistveil/backoffice-next/internal/server/svr"
	"github.com/mistveil/backoffice-next/internal/service"
	"github.com/mistveil/backoffice-next/internal/util/rekuest"
)

type CharTemplate struct {
	fx.In

	CharTemplateService *service.CharTemplate
}

func RegisterCharTemplate(bo *svr.BO, c CharTemplate, auth AuthRequired) {
	bo.Get("/char-templates", auth.Handler, c.GetTemplates)
	bo.Get("/char-templates/:templateId", auth.Handler, c.GetTemplate)
	bo.Post("/char-templates", auth.Handler, c.CreateTemplate)
	bo.Patch("/char-templates/:templateId", auth.Handler, c.UpdateTemplate)
	bo.Delete("/char-templates/:templateId", auth.Handler, c.DeleteTemplate)
}

func (c *CharTemplate) GetTemplates(ctx *fiber.Ctx) error {
	var rarity *int
	if raw := ctx.Query("rarity"); raw != "" {
		value := ctx.QueryInt("rarity", -1)
		if value < 0 {
			return mverr.ErrInvalidReq.Msg("invalid rarity filter")
		}
		rarity = &value
	}
	templates, err := c.CharTemplateService.GetTemplates(ctx.UserContext(), rarity)
	if err != nil {
		return err
	}
	return ctx.JSON(templates)
}

func (c *CharTemplate) GetTemplate(ctx *fiber.Ctx) error {
	templateID, err := paramInt(ctx, "templateId")
	if err != nil {
		return err
	}
	template, err := c.CharTemplateService.GetTemplateByID(ctx.UserContext(), templateID)
	if err != nil {
		return err
	}
	return ctx.JSON(template)
}

func (c *CharTemplate) CreateTemplate(ctx *fiber.Ctx) error {
	var request types.CreateCharTemplateRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	template, err := c.CharTemplateService.CreateTemplate(ctx.UserContext(), &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(template)
}

func (c *CharTemplate) UpdateTemplate(ctx *fiber.Ctx) error {
	templateID, err := paramInt(ctx, "templateId")
	if err != nil {
		return err
	}
	var request types.UpdateCharTemplateRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	template, err := c.CharTemplateService.UpdateTemplate(ctx.UserContext(), templateID, &request)
	if err != nil {
		return err
	}
	return ctx.JSON(template)
}

func (c *CharTemplate) DeleteTemplate(ctx *fiber.Ctx) error {
	templateID, err := paramInt(ctx, "templateId")
	if err != nil {
		return err
	}
	if err := c.CharTemplateService.DeleteTemplate(ctx.UserContext(), templateID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
