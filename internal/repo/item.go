package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/mistveil/backoffice-next/internal/model"
	"github.com/mistveil/backoffice-next/internal/pkg/mverr"
	"github.com/mistveil/backoffice-next/internal/repo/selector"
)

type Item struct {
	db  *bun.DB
	sel selector.S[model.Item]
}

func NewItem(db *bun.DB) *Item {
	return &Item{
		db:  db,
		sel: selector.New[model.Item](db),
	}
}

func (r *Item) GetItems(ctx context.Context) ([]*model.Item, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("item_id ASC")
	})
}

func (r *Item) GetItemsByType(ctx context.Context, itemType string) ([]*model.Item, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("item_type = ?", itemType).Order("item_id ASC")
	})
}

func (r *Item) GetItemByID(ctx context.Context, itemID int) (*model.Item, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("item_id = ?", itemID)
	})
}

// GetItemForUpdate resolves an item inside the caller's transaction.
func (r *Item) GetItemForUpdate(ctx context.Context, idb bun.IDB, itemID int) (*model.Item, error) {
	item := model.Item{}
	err := idb.NewSelect().Model(&item).Where("item_id = ?", itemID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mverr.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Item) CreateItem(ctx context.Context, item *model.Item) error {
	_, err := r.db.NewInsert().
		Model(item).
		Returning("item_id").
		Exec(ctx)
	return err
}

func (r *Item) UpdateItem(ctx context.Context, item *model.Item) error {
	res, err := r.db.NewUpdate().
		Model(item).
		WherePK().
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *Item) DeleteItem(ctx context.Context, idb bun.IDB, itemID int) error {
	res, err := idb.NewDelete().
		Model((*model.Item)(nil)).
		Where("item_id = ?", itemID).
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
