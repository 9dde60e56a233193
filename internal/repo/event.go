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

type Event struct {
	db  *bun.DB
	sel selector.S[model.Event]
}

func NewEvent(db *bun.DB) *Event {
	return &Event{
		db:  db,
		sel: selector.New[model.Event](db),
	}
}

func (r *Event) GetEvents(ctx context.Context) ([]*model.Event, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("event_id ASC")
	})
}

func (r *Event) GetEventByID(ctx context.Context, idb bun.IDB, eventID int) (*model.Event, error) {
	event := model.Event{}
	err := idb.NewSelect().Model(&event).Where("event_id = ?", eventID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mverr.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &event, nil
}

// ExistEventsByID reports which of the given event ids exist.
func (r *Event) ExistEventsByID(ctx context.Context, idb bun.IDB, eventIDs []int) (map[int]bool, error) {
	if len(eventIDs) == 0 {
		return map[int]bool{}, nil
	}

	var found []int
	err := idb.NewSelect().
		Model((*model.Event)(nil)).
		Column("event_id").
		Where("event_id IN (?)", bun.In(eventIDs)).
		Scan(ctx, &found)
	if err != nil {
		return nil, err
	}

	exists := make(map[int]bool, len(found))
	for _, id := range found {
		exists[id] = true
	}
	return exists, nil
}

func (r *Event) CreateEvent(ctx context.Context, idb bun.IDB, event *model.Event) error {
	_, err := idb.NewInsert().
		Model(event).
		Returning("event_id").
		Exec(ctx)
	return err
}

func (r *Event) UpdateEvent(ctx context.Context, idb bun.IDB, event *model.Event) error {
	res, err := idb.NewUpdate().
		Model(event).
		WherePK().
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *Event) DeleteEvent(ctx context.Context, idb bun.IDB, eventID int) error {
	res, err := idb.NewDelete().
		Model((*model.Event)(nil)).
		Where("event_id = ?", eventID).
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *Event) GetGeneralLogicByEventID(ctx context.Context, idb bun.IDB, eventID int) (*model.GeneralEventLogic, error) {
	logic := model.GeneralEventLogic{}
	err := idb.NewSelect().Model(&logic).Where("event_id = ?", eventID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mverr.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &logic, nil
}

func (r *Event) CreateGeneralLogic(ctx context.Context, idb bun.IDB, logic *model.GeneralEventLogic) error {
	_, err := idb.NewInsert().
		Model(logic).
		Returning("logic_id").
		Exec(ctx)
	return err
}

func (r *Event) UpdateGeneralLogic(ctx context.Context, idb bun.IDB, logic *model.GeneralEventLogic) error {
	res, err := idb.NewUpdate().
		Model(logic).
		WherePK().
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *Event) DeleteGeneralLogicByEventID(ctx context.Context, idb bun.IDB, eventID int) error {
	_, err := idb.NewDelete().
		Model((*model.GeneralEventLogic)(nil)).
		Where("event_id = ?", eventID).
		Exec(ctx)
	return err
}

func (r *Event) GetResultByID(ctx context.Context, idb bun.IDB, resultID int) (*model.EventResult, error) {
	result := model.EventResult{}
	err := idb.NewSelect().Model(&result).Where("result_id = ?", resultID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mverr.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *Event) GetResultsByLogicID(ctx context.Context, idb bun.IDB, logicID int) ([]*model.EventResult, error) {
	var results []*model.EventResult
	err := idb.NewSelect().
		Model(&results).
		Where("general_event_logic_id = ?", logicID).
		Order("result_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Event) CreateResult(ctx context.Context, idb bun.IDB, result *model.EventResult) error {
	_, err := idb.NewInsert().
		Model(result).
		Returning("result_id").
		Exec(ctx)
	return err
}

func (r *Event) UpdateResult(ctx context.Context, idb bun.IDB, result *model.EventResult) error {
	res, err := idb.NewUpdate().
		Model(result).
		WherePK().
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *Event) DeleteResult(ctx context.Context, idb bun.IDB, resultID int) error {
	res, err := idb.NewDelete().
		Model((*model.EventResult)(nil)).
		Where("result_id = ?", resultID).
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
