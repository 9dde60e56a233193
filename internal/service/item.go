package service

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/mistveil/backoffice-next/internal/model"
	"github.com/mistveil/backoffice-next/internal/model/types"
	"github.com/mistveil/backoffice-next/internal/repo"
)

type Item struct {
	DB             *bun.DB
	ItemRepo       *repo.Item
	RewardPoolRepo *repo.RewardPool
}

func NewItem(db *bun.DB, itemRepo *repo.Item, rewardPoolRepo *repo.RewardPool) *Item {
	return &Item{
		DB:             db,
		ItemRepo:       itemRepo,
		RewardPoolRepo: rewardPoolRepo,
	}
}

func (s *Item) GetItems(ctx context.Context, itemType string) ([]*model.Item, error) {
	if itemType != "" {
		return s.ItemRepo.GetItemsByType(ctx, itemType)
	}
	return s.ItemRepo.GetItems(ctx)
}

func (s *Item) GetItemByID(ctx context.Context, itemID int) (*model.Item, error) {
	return s.ItemRepo.GetItemByID(ctx, itemID)
}

func (s *Item) CreateItem(ctx context.Context, request *types.CreateItemRequest) (*model.Item, error) {
	item := &model.Item{
		Name:        request.Name,
		Description: request.Description,
		ItemType:    request.ItemType,
		Price:       request.Price,
		Rarity:      request.Rarity,
		Slot:        request.Slot,
		AtkBonus:    request.AtkBonus,
		DefBonus:    request.DefBonus,
		HpRestore:   request.HpRestore,
		MpRestore:   request.MpRestore,
	}
	if err := s.ItemRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Item) UpdateItem(ctx context.Context, itemID int, request *types.UpdateItemRequest) (*model.Item, error) {
	item := &model.Item{
		ItemID:      itemID,
		Name:        request.Name,
		Description: request.Description,
		ItemType:    request.ItemType,
		Price:       request.Price,
		Rarity:      request.Rarity,
		Slot:        request.Slot,
		AtkBonus:    request.AtkBonus,
		DefBonus:    request.DefBonus,
		HpRestore:   request.HpRestore,
		MpRestore:   request.MpRestore,
	}
	if err := s.ItemRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes an item together with every reward pool association
// referencing it, in one transaction.
func (s *Item) DeleteItem(ctx context.Context, itemID int) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := s.ItemRepo.GetItemForUpdate(ctx, tx, itemID); err != nil {
		tx.Rollback()
		return err
	}
	if err := s.RewardPoolRepo.DeletePoolItemsByItem(ctx, tx, itemID); err != nil {
		tx.Rollback()
		return err
	}
	if err := s.ItemRepo.DeleteItem(ctx, tx, itemID); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return err
	}
	return nil
}
