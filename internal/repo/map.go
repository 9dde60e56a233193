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

type Map struct {
	db  *bun.DB
	sel selector.S[model.Map]
}

func NewMap(db *bun.DB) *Map {
	return &Map{
		db:  db,
		sel: selector.New[model.Map](db),
	}
}

func (r *Map) GetMaps(ctx context.Context) ([]*model.Map, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("map_id ASC")
	})
}

func (r *Map) GetMapsPage(ctx context.Context, cursor types.Cursor) ([]*model.Map, error) {
	var maps []*model.Map
	query := r.db.NewSelect().
		Model(&maps).
		Limit(cursor.Limit + 1)
	if cursor.Backward() {
		query = query.Order("map_id DESC")
		if cursor.Start() > 0 {
			query = query.Where("map_id < ?", cursor.Start())
		}
	} else {
		query = query.Order("map_id ASC")
		if cursor.Start() > 0 {
			query = query.Where("map_id > ?", cursor.Start())
		}
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	return maps, nil
}

func (r *Map) GetMapByID(ctx context.Context, idb bun.IDB, mapID int) (*model.Map, error) {
	m := model.Map{}
	err := idb.NewSelect().Model(&m).Where("map_id = ?", mapID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mverr.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Map) GetMapsByID(ctx context.Context, idb bun.IDB, mapIDs []int) ([]*model.Map, error) {
	if len(mapIDs) == 0 {
		return []*model.Map{}, nil
	}
	var maps []*model.Map
	err := idb.NewSelect().
		Model(&maps).
		Where("map_id IN (?)", bun.In(mapIDs)).
		Order("map_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return maps, nil
}

func (r *Map) CreateMaps(ctx context.Context, idb bun.IDB, maps []*model.Map) error {
	if len(maps) == 0 {
		return nil
	}
	_, err := idb.NewInsert().
		Model(&maps).
		Returning("map_id").
		Exec(ctx)
	return err
}

func (r *Map) UpdateMap(ctx context.Context, idb bun.IDB, m *model.Map) error {
	res, err := idb.NewUpdate().
		Model(m).
		WherePK().
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *Map) DeleteMap(ctx context.Context, idb bun.IDB, mapID int) error {
	res, err := idb.NewDelete().
		Model((*model.Map)(nil)).
		Where("map_id = ?", mapID).
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// GetConnectionsByMapID returns the undirected edges touching a map,
// regardless of which side of the pair the map sits on.
func (r *Map) GetConnectionsByMapID(ctx context.Context, idb bun.IDB, mapID int) ([]*model.MapConnection, error) {
	var connections []*model.MapConnection
	err := idb.NewSelect().
		Model(&connections).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("map_a_id = ?", mapID).WhereOr("map_b_id = ?", mapID)
		}).
		Order("connection_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return connections, nil
}

func (r *Map) GetConnection(ctx context.Context, idb bun.IDB, mapAID, mapBID int) (*model.MapConnection, error) {
	if mapAID > mapBID {
		mapAID, mapBID = mapBID, mapAID
	}
	connection := model.MapConnection{}
	err := idb.NewSelect().
		Model(&connection).
		Where("map_a_id = ?", mapAID).
		Where("map_b_id = ?", mapBID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mverr.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &connection, nil
}

func (r *Map) CreateConnection(ctx context.Context, idb bun.IDB, connection *model.MapConnection) error {
	if connection.MapAID > connection.MapBID {
		connection.MapAID, connection.MapBID = connection.MapBID, connection.MapAID
	}
	_, err := idb.NewInsert().
		Model(connection).
		Returning("connection_id").
		Exec(ctx)
	return err
}

func (r *Map) UpdateConnection(ctx context.Context, idb bun.IDB, connection *model.MapConnection) error {
	res, err := idb.NewUpdate().
		Model(connection).
		WherePK().
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// DeleteConnection removes the edge between two maps, reporting whether it
// existed.
func (r *Map) DeleteConnection(ctx context.Context, idb bun.IDB, mapAID, mapBID int) (bool, error) {
	if mapAID > mapBID {
		mapAID, mapBID = mapBID, mapAID
	}
	res, err := idb.NewDelete().
		Model((*model.MapConnection)(nil)).
		Where("map_a_id = ?", mapAID).
		Where("map_b_id = ?", mapBID).
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

func (r *Map) DeleteConnectionsByMapID(ctx context.Context, idb bun.IDB, mapID int) error {
	_, err := idb.NewDelete().
		Model((*model.MapConnection)(nil)).
		WhereGroup(" AND ", func(q *bun.DeleteQuery) *bun.DeleteQuery {
			return q.Where("map_a_id = ?", mapID).WhereOr("map_b_id = ?", mapID)
		}).
		Exec(ctx)
	return err
}
