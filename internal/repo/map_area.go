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

type MapArea struct {
	db  *bun.DB
	sel selector.S[model.MapArea]
}

func NewMapArea(db *bun.DB) *MapArea {
	return &MapArea{
		db:  db,
		sel: selector.New[model.MapArea](db),
	}
}

func (r *MapArea) GetAreas(ctx context.Context) ([]*model.MapArea, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("area_id ASC")
	})
}

func (r *MapArea) GetAreasByMapID(ctx context.Context, idb bun.IDB, mapID int) ([]*model.MapArea, error) {
	var areas []*model.MapArea
	err := idb.NewSelect().
		Model(&areas).
		Where("map_id = ?", mapID).
		Order("area_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return areas, nil
}

func (r *MapArea) GetAreaByID(ctx context.Context, idb bun.IDB, areaID int) (*model.MapArea, error) {
	area := model.MapArea{}
	err := idb.NewSelect().Model(&area).Where("area_id = ?", areaID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mverr.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *MapArea) CreateArea(ctx context.Context, idb bun.IDB, area *model.MapArea) error {
	_, err := idb.NewInsert().
		Model(area).
		Returning("area_id").
		Exec(ctx)
	return err
}

func (r *MapArea) UpdateArea(ctx context.Context, idb bun.IDB, area *model.MapArea) error {
	res, err := idb.NewUpdate().
		Model(area).
		WherePK().
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *MapArea) DeleteArea(ctx context.Context, idb bun.IDB, areaID int) error {
	res, err := idb.NewDelete().
		Model((*model.MapArea)(nil)).
		Where("area_id = ?", areaID).
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *MapArea) DeleteAreasByMapID(ctx context.Context, idb bun.IDB, mapID int) ([]int, error) {
	var areaIDs []int
	_, err := idb.NewDelete().
		Model((*model.MapArea)(nil)).
		Where("map_id = ?", mapID).
		Returning("area_id").
		Exec(ctx, &areaIDs)
	if err != nil {
		return nil, err
	}
	return areaIDs, nil
}
