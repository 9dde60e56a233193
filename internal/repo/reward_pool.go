package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/mistveil/backoffice-next/internal/model"
	"github.com/mistveil/backoffice-next/internal/model/types"
	"github.com/mistveil/backoffice-next/internal/pkg/mverr"
)

// RewardPool owns reward_pools and their weighted reward_pool_items rows.
// Every method takes the caller's bun.IDB so the whole mutation sequence of
// one request shares one transaction; this repo never begins or commits.
type RewardPool struct {
	db *bun.DB
}

func NewRewardPool(db *bun.DB) *RewardPool {
	return &RewardPool{db: db}
}

func (r *RewardPool) CreatePool(ctx context.Context, idb bun.IDB, pool *model.RewardPool) error {
	_, err := idb.NewInsert().
		Model(pool).
		Returning("pool_id").
		Exec(ctx)
	return err
}

func (r *RewardPool) GetPoolByID(ctx context.Context, idb bun.IDB, poolID int) (*model.RewardPool, error) {
	pool := model.RewardPool{}
	err := idb.NewSelect().Model(&pool).Where("pool_id = ?", poolID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mverr.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &pool, nil
}

func (r *RewardPool) DeletePool(ctx context.Context, idb bun.IDB, poolID int) error {
	res, err := idb.NewDelete().
		Model((*model.RewardPool)(nil)).
		Where("pool_id = ?", poolID).
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *RewardPool) GetPoolItems(ctx context.Context, idb bun.IDB, poolID int) ([]*model.RewardPoolItem, error) {
	var items []*model.RewardPoolItem
	err := idb.NewSelect().
		Model(&items).
		Where("pool_id = ?", poolID).
		Order("reward_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetPoolRewards returns the pool's associations with item names resolved.
func (r *RewardPool) GetPoolRewards(ctx context.Context, idb bun.IDB, poolID int) ([]*types.Reward, error) {
	var rewards []*types.Reward
	err := idb.NewSelect().
		Model((*model.RewardPoolItem)(nil)).
		ColumnExpr("rpi.reward_id AS reward_id").
		ColumnExpr("rpi.item_id AS item_id").
		ColumnExpr("it.name AS item_name").
		ColumnExpr("rpi.probability AS probability").
		Join("LEFT JOIN items AS it ON it.item_id = rpi.item_id").
		Where("rpi.pool_id = ?", poolID).
		Order("reward_id ASC").
		Scan(ctx, &rewards)
	if err != nil {
		return nil, err
	}
	return rewards, nil
}

func (r *RewardPool) GetPoolItem(ctx context.Context, idb bun.IDB, poolID, itemID int) (*model.RewardPoolItem, error) {
	item := model.RewardPoolItem{}
	err := idb.NewSelect().
		Model(&item).
		Where("pool_id = ?", poolID).
		Where("item_id = ?", itemID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mverr.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *RewardPool) CreatePoolItem(ctx context.Context, idb bun.IDB, item *model.RewardPoolItem) error {
	_, err := idb.NewInsert().
		Model(item).
		Returning("reward_id").
		Exec(ctx)
	return err
}

func (r *RewardPool) UpdatePoolItemProbability(ctx context.Context, idb bun.IDB, rewardID int, probability float64) error {
	res, err := idb.NewUpdate().
		Model((*model.RewardPoolItem)(nil)).
		Set("probability = ?", probability).
		Where("reward_id = ?", rewardID).
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// DeletePoolItem removes one association by its (pool, item) pair and
// reports whether a row existed.
func (r *RewardPool) DeletePoolItem(ctx context.Context, idb bun.IDB, poolID, itemID int) (bool, error) {
	res, err := idb.NewDelete().
		Model((*model.RewardPoolItem)(nil)).
		Where("pool_id = ?", poolID).
		Where("item_id = ?", itemID).
		Exec(ctx)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeletePoolItemByID removes one association by its surrogate id, scoped to
// the pool so a reward id from another pool cannot be deleted by accident.
func (r *RewardPool) DeletePoolItemByID(ctx context.Context, idb bun.IDB, poolID, rewardID int) error {
	res, err := idb.NewDelete().
		Model((*model.RewardPoolItem)(nil)).
		Where("pool_id = ?", poolID).
		Where("reward_id = ?", rewardID).
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *RewardPool) DeletePoolItemsByPool(ctx context.Context, idb bun.IDB, poolID int) error {
	_, err := idb.NewDelete().
		Model((*model.RewardPoolItem)(nil)).
		Where("pool_id = ?", poolID).
		Exec(ctx)
	return err
}

// DeletePoolItemsByItem removes an item from every pool referencing it.
// Used when the item itself is deleted.
func (r *RewardPool) DeletePoolItemsByItem(ctx context.Context, idb bun.IDB, itemID int) error {
	_, err := idb.NewDelete().
		Model((*model.RewardPoolItem)(nil)).
		Where("item_id = ?", itemID).
		Exec(ctx)
	return err
}
