package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/mistveil/backoffice-next/internal/model/types"
	"github.com/mistveil/backoffice-next/internal/server/svr"
	"github.com/mistveil/backoffice-next/internal/service"
	"github.com/mistveil/backoffice-next/internal/util/rekuest"
)

type Monster struct {
	fx.In

	MonsterService *service.Monster
}

func RegisterMonster(bo *svr.BO, c Monster, auth AuthRequired) {
	bo.Get("/monsters", auth.Handler, c.GetMonsters)
	bo.Get("/monsters/:monsterId", auth.Handler, c.GetMonster)
	bo.Post("/monsters", auth.Handler, c.CreateMonsters)
	bo.Put("/monsters/:monsterId", auth.Handler, c.UpdateMonster)
	bo.Delete("/monsters/:monsterId", auth.Handler, c.DeleteMonster)

	bo.Get("/monsters/:monsterId/drops", auth.Handler, c.GetMonsterDrops)
	bo.Post("/monsters/:monsterId/drops", auth.Handler, c.AddMonsterDrop)
	bo.Patch("/monsters/:monsterId/drops", auth.Handler, c.BatchUpdateMonsterDrops)
	bo.Put("/monsters/:monsterId/drops/:itemId", auth.Handler, c.UpdateMonsterDrop)
	bo.Delete("/monsters/:monsterId/drops/:dropId", auth.Handler, c.RemoveMonsterDrop)
}

func (c *Monster) GetMonsters(ctx *fiber.Ctx) error {
	cursor, err := queryCursor(ctx)
	if err != nil {
		return err
	}
	list, err := c.MonsterService.GetMonsters(ctx.UserContext(), cursor)
	if err != nil {
		return err
	}
	return ctx.JSON(list)
}

func (c *Monster) GetMonster(ctx *fiber.Ctx) error {
	monsterID, err := paramInt(ctx, "monsterId")
	if err != nil {
		return err
	}
	monster, err := c.MonsterService.GetMonsterByID(ctx.UserContext(), monsterID)
	if err != nil {
		return err
	}
	return ctx.JSON(monster)
}

func (c *Monster) CreateMonsters(ctx *fiber.Ctx) error {
	var request types.CreateMonstersRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	monsters, err := c.MonsterService.CreateMonsters(ctx.UserContext(), &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(monsters)
}

func (c *Monster) UpdateMonster(ctx *fiber.Ctx) error {
	monsterID, err := paramInt(ctx, "monsterId")
	if err != nil {
		return err
	}
	var request types.UpdateMonsterRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	monster, err := c.MonsterService.UpdateMonster(ctx.UserContext(), monsterID, &request)
	if err != nil {
		return err
	}
	return ctx.JSON(monster)
}

func (c *Monster) DeleteMonster(ctx *fiber.Ctx) error {
	monsterID, err := paramInt(ctx, "monsterId")
	if err != nil {
		return err
	}
	if err := c.MonsterService.DeleteMonster(ctx.UserContext(), monsterID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Monster) GetMonsterDrops(ctx *fiber.Ctx) error {
	monsterID, err := paramInt(ctx, "monsterId")
	if err != nil {
		return err
	}
	drops, err := c.MonsterService.GetMonsterDrops(ctx.UserContext(), monsterID)
	if err != nil {
		return err
	}
	return ctx.JSON(drops)
}

func (c *Monster) AddMonsterDrop(ctx *fiber.Ctx) error {
	monsterID, err := paramInt(ctx, "monsterId")
	if err != nil {
		return err
	}
	var request types.AddRewardRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	reward, err := c.MonsterService.AddMonsterDrop(ctx.UserContext(), monsterID, &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(reward)
}

func (c *Monster) BatchUpdateMonsterDrops(ctx *fiber.Ctx) error {
	monsterID, err := paramInt(ctx, "monsterId")
	if err != nil {
		return err
	}
	var request types.BatchRewardsRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	rewards, err := c.MonsterService.BatchUpdateMonsterDrops(ctx.UserContext(), monsterID, &request)
	if err != nil {
		return err
	}
	return ctx.JSON(rewards)
}

func (c *Monster) UpdateMonsterDrop(ctx *fiber.Ctx) error {
	monsterID, err := paramInt(ctx, "monsterId")
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
	if err := c.MonsterService.UpdateMonsterDrop(ctx.UserContext(), monsterID, itemID, request.Probability); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *Monster) RemoveMonsterDrop(ctx *fiber.Ctx) error {
	monsterID, err := paramInt(ctx, "monsterId")
	if err != nil {
		return err
	}
	dropID, err := paramInt(ctx, "dropId")
	if err != nil {
		return err
	}
	if err := c.MonsterService.RemoveMonsterDrop(ctx.UserContext(), monsterID, dropID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
