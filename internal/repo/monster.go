package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/mistveil/backoffice-next/internal/model"
	"github.com/mistveil/backoffice-next/internal/model/types"
	"github.com/mistveil/backoffice-next/internal/pkg/mverr"
	"github.com/mistveil/backoffice-next/internal/repo/selector"
)

type Monster struct {
	db  *bun.DB
	sel selector.S[model.Monster]
}

func NewMonster(db *bun.DB) *Monster {
	return &Monster{
		db:  db,
		sel: selector.New[model.Monster](db),
	}
}

func (r *Monster) GetMonsters(ctx context.Context) ([]*model.Monster, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("monster_id ASC")
	})
}

// GetMonstersPage fetches limit+1 rows ordered by id from the cursor
// position so the caller can detect whether more rows exist.
func (r *Monster) GetMonstersPage(ctx context.Context, cursor types.Cursor) ([]*model.Monster, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		if cursor.Backward() {
			q = q.Where("monster_id < ?", cursor.Start()).Order("monster_id DESC")
		} else {
			if cursor.Start() > 0 {
				q = q.Where("monster_id > ?", cursor.Start())
			}
			q = q.Order("monster_id ASC")
		}
		return q.Limit(cursor.Limit + 1)
	})
}

func (r *Monster) GetMonsterByID(ctx context.Context, monsterID int) (*model.Monster, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("monster_id = ?", monsterID)
	})
}

// GetMonsterForUpdate resolves a monster inside the caller's transaction.
func (r *Monster) GetMonsterForUpdate(ctx context.Context, idb bun.IDB, monsterID int) (*model.Monster, error) {
	monster := model.Monster{}
	err := idb.NewSelect().Model(&monster).Where("monster_id = ?", monsterID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mverr.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &monster, nil
}

func (r *Monster) CreateMonster(ctx context.Context, idb bun.IDB, monster *model.Monster) error {
	_, err := idb.NewInsert().
		Model(monster).
		Returning("monster_id").
		Exec(ctx)
	return err
}

func (r *Monster) UpdateMonster(ctx context.Context, idb bun.IDB, monster *model.Monster) error {
	res, err := idb.NewUpdate().
		Model(monster).
		WherePK().
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *Monster) DeleteMonster(ctx context.Context, idb bun.IDB, monsterID int) error {
	res, err := idb.NewDelete().
		Model((*model.Monster)(nil)).
		Where("monster_id = ?", monsterID).
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
