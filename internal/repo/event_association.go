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

// EventAssociation persists the weighted event tables of maps and map areas.
// Both tables share the same shape, so every method switches on the owner
// kind instead of duplicating the repo.
type EventAssociation struct {
	db *bun.DB
}

func NewEventAssociation(db *bun.DB) *EventAssociation {
	return &EventAssociation{db: db}
}

// AssociationOwner names which association table an operation targets.
type AssociationOwner int

const (
	OwnerMap AssociationOwner = iota
	OwnerArea
)

func (r *EventAssociation) GetAssociations(ctx context.Context, idb bun.IDB, owner AssociationOwner, ownerID int) ([]*model.MapEventAssociation, error) {
	if owner == OwnerArea {
		var rows []*model.AreaEventAssociation
		err := idb.NewSelect().
			Model(&rows).
			Where("area_id = ?", ownerID).
			Order("association_id ASC").
			Scan(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]*model.MapEventAssociation, len(rows))
		for i, row := range rows {
			out[i] = &model.MapEventAssociation{
				AssociationID: row.AssociationID,
				MapID:         row.AreaID,
				EventID:       row.EventID,
				Probability:   row.Probability,
			}
		}
		return out, nil
	}

	var rows []*model.MapEventAssociation
	err := idb.NewSelect().
		Model(&rows).
		Where("map_id = ?", ownerID).
		Order("association_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetAssociationsWithNames resolves event names alongside each association,
// ordered by association id.
func (r *EventAssociation) GetAssociationsWithNames(ctx context.Context, idb bun.IDB, owner AssociationOwner, ownerID int) ([]*types.EventAssociation, error) {
	var (
		rows  []*types.EventAssociation
		query *bun.SelectQuery
	)
	if owner == OwnerArea {
		query = idb.NewSelect().
			Model((*model.AreaEventAssociation)(nil)).
			ColumnExpr("aea.association_id, aea.event_id, aea.probability").
			ColumnExpr("ev.name AS event_name").
			Join("LEFT JOIN events AS ev ON ev.event_id = aea.event_id").
			Where("aea.area_id = ?", ownerID).
			Order("association_id ASC")
	} else {
		query = idb.NewSelect().
			Model((*model.MapEventAssociation)(nil)).
			ColumnExpr("mea.association_id, mea.event_id, mea.probability").
			ColumnExpr("ev.name AS event_name").
			Join("LEFT JOIN events AS ev ON ev.event_id = mea.event_id").
			Where("mea.map_id = ?", ownerID).
			Order("association_id ASC")
	}
	if err := query.Scan(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *EventAssociation) GetAssociation(ctx context.Context, idb bun.IDB, owner AssociationOwner, ownerID, eventID int) (*model.MapEventAssociation, error) {
	if owner == OwnerArea {
		row := model.AreaEventAssociation{}
		err := idb.NewSelect().
			Model(&row).
			Where("area_id = ?", ownerID).
			Where("event_id = ?", eventID).
			Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, mverr.ErrNotFound
		} else if err != nil {
			return nil, err
		}
		return &model.MapEventAssociation{
			AssociationID: row.AssociationID,
			MapID:         row.AreaID,
			EventID:       row.EventID,
			Probability:   row.Probability,
		}, nil
	}

	row := model.MapEventAssociation{}
	err := idb.NewSelect().
		Model(&row).
		Where("map_id = ?", ownerID).
		Where("event_id = ?", eventID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mverr.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *EventAssociation) CreateAssociation(ctx context.Context, idb bun.IDB, owner AssociationOwner, ownerID, eventID int, probability float64) error {
	if owner == OwnerArea {
		row := model.AreaEventAssociation{
			AreaID:      ownerID,
			EventID:     eventID,
			Probability: probability,
		}
		_, err := idb.NewInsert().
			Model(&row).
			Returning("association_id").
			Exec(ctx)
		return err
	}

	row := model.MapEventAssociation{
		MapID:       ownerID,
		EventID:     eventID,
		Probability: probability,
	}
	_, err := idb.NewInsert().
		Model(&row).
		Returning("association_id").
		Exec(ctx)
	return err
}

func (r *EventAssociation) UpdateProbability(ctx context.Context, idb bun.IDB, owner AssociationOwner, ownerID, eventID int, probability float64) error {
	var query *bun.UpdateQuery
	if owner == OwnerArea {
		query = idb.NewUpdate().
			Model((*model.AreaEventAssociation)(nil)).
			Set("probability = ?", probability).
			Where("area_id = ?", ownerID).
			Where("event_id = ?", eventID)
	} else {
		query = idb.NewUpdate().
			Model((*model.MapEventAssociation)(nil)).
			Set("probability = ?", probability).
			Where("map_id = ?", ownerID).
			Where("event_id = ?", eventID)
	}
	res, err := query.Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// DeleteAssociation removes one association, reporting whether it existed.
func (r *EventAssociation) DeleteAssociation(ctx context.Context, idb bun.IDB, owner AssociationOwner, ownerID, eventID int) (bool, error) {
	var query *bun.DeleteQuery
	if owner == OwnerArea {
		query = idb.NewDelete().
			Model((*model.AreaEventAssociation)(nil)).
			Where("area_id = ?", ownerID).
			Where("event_id = ?", eventID)
	} else {
		query = idb.NewDelete().
			Model((*model.MapEventAssociation)(nil)).
			Where("map_id = ?", ownerID).
			Where("event_id = ?", eventID)
	}
	res, err := query.Exec(ctx)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteAssociationsByOwner clears the whole association table of one map or
// area, as part of cascade deletes.
func (r *EventAssociation) DeleteAssociationsByOwner(ctx context.Context, idb bun.IDB, owner AssociationOwner, ownerID int) error {
	var query *bun.DeleteQuery
	if owner == OwnerArea {
		query = idb.NewDelete().
			Model((*model.AreaEventAssociation)(nil)).
			Where("area_id = ?", ownerID)
	} else {
		query = idb.NewDelete().
			Model((*model.MapEventAssociation)(nil)).
			Where("map_id = ?", ownerID)
	}
	_, err := query.Exec(ctx)
	return err
}

// DeleteAssociationsByEvent removes an event from every map and area it is
// associated with, as part of event cascade deletes.
func (r *EventAssociation) DeleteAssociationsByEvent(ctx context.Context, idb bun.IDB, eventID int) error {
	if _, err := idb.NewDelete().
		Model((*model.MapEventAssociation)(nil)).
		Where("event_id = ?", eventID).
		Exec(ctx); err != nil {
		return err
	}
	_, err := idb.NewDelete().
		Model((*model.AreaEventAssociation)(nil)).
		Where("event_id = ?", eventID).
		Exec(ctx)
	return err
}
