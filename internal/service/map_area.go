package service

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/mistveil/backoffice-next/internal/model"
	"github.com/mistveil/backoffice-next/internal/model/types"
	"github.com/mistveil/backoffice-next/internal/pkg/mverr"
	"github.com/mistveil/backoffice-next/internal/repo"
)

type MapArea struct {
	DB                 *bun.DB
	MapRepo            *repo.Map
	MapAreaRepo        *repo.MapArea
	AssociationService *EventAssociation
}

func NewMapArea(db *bun.DB, mapRepo *repo.Map, mapAreaRepo *repo.MapArea, associationService *EventAssociation) *MapArea {
	return &MapArea{
		DB:                 db,
		MapRepo:            mapRepo,
		MapAreaRepo:        mapAreaRepo,
		AssociationService: associationService,
	}
}

func (s *MapArea) GetAreasByMapID(ctx context.Context, mapID int) ([]*model.MapArea, error) {
	if _, err := s.MapRepo.GetMapByID(ctx, s.DB, mapID); err != nil {
		return nil, err
	}
	return s.MapAreaRepo.GetAreasByMapID(ctx, s.DB, mapID)
}

// GetAreaDetail resolves an area together with its initial NPCs and its
// event table. The area must belong to the given map.
func (s *MapArea) GetAreaDetail(ctx context.Context, mapID, areaID int) (*types.MapAreaDetail, error) {
	area, err := s.getOwnedArea(ctx, s.DB, mapID, areaID)
	if err != nil {
		return nil, err
	}

	detail := &types.MapAreaDetail{
		AreaID:      area.AreaID,
		MapID:       area.MapID,
		Name:        area.Name,
		Description: area.Description.ValueOrZero(),
		ImageURL:    area.ImageURL.ValueOrZero(),
		InitNPC:     []types.NPCInfo{},
	}
	if len(area.InitNPC) > 0 {
		if err := json.Unmarshal(area.InitNPC, &detail.InitNPC); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal area npc list")
		}
	}

	events, err := s.AssociationService.GetAssociations(ctx, s.DB, repo.OwnerArea, areaID)
	if err != nil {
		return nil, err
	}
	detail.Events = events
	return detail, nil
}

func (s *MapArea) CreateArea(ctx context.Context, mapID int, request *types.CreateMapAreaRequest) (*model.MapArea, error) {
	if _, err := s.MapRepo.GetMapByID(ctx, s.DB, mapID); err != nil {
		return nil, err
	}

	initNPC, err := json.Marshal(request.InitNPC)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal area npc list")
	}

	area := &model.MapArea{
		MapID:       mapID,
		Name:        request.Name,
		Description: request.Description,
		ImageURL:    request.ImageURL,
		InitNPC:     initNPC,
	}
	if err := s.MapAreaRepo.CreateArea(ctx, s.DB, area); err != nil {
		return nil, err
	}
	return area, nil
}

func (s *MapArea) UpdateArea(ctx context.Context, mapID, areaID int, request *types.UpdateMapAreaRequest) (*model.MapArea, error) {
	area, err := s.getOwnedArea(ctx, s.DB, mapID, areaID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		area.Name = *request.Name
	}
	if request.Description.Valid {
		area.Description = request.Description
	}
	if request.ImageURL.Valid {
		area.ImageURL = request.ImageURL
	}
	if err := s.MapAreaRepo.UpdateArea(ctx, s.DB, area); err != nil {
		return nil, err
	}
	return area, nil
}

// BatchUpdateAreaEvents applies an event batch to an area's event table
// atomically and returns the refreshed table.
func (s *MapArea) BatchUpdateAreaEvents(ctx context.Context, mapID, areaID int, request *types.BatchEventsRequest) ([]*types.EventAssociation, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	if _, err := s.getOwnedArea(ctx, tx, mapID, areaID); err != nil {
		tx.Rollback()
		return nil, err
	}
	events, err := s.AssociationService.BatchUpdateAssociations(ctx, tx, repo.OwnerArea, areaID, request)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return nil, err
	}
	return events, nil
}

// DeleteArea removes an area together with its event associations.
func (s *MapArea) DeleteArea(ctx context.Context, mapID, areaID int) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := s.getOwnedArea(ctx, tx, mapID, areaID); err != nil {
		tx.Rollback()
		return err
	}
	if err := s.AssociationService.AssociationRepo.DeleteAssociationsByOwner(ctx, tx, repo.OwnerArea, areaID); err != nil {
		tx.Rollback()
		return err
	}
	if err := s.MapAreaRepo.DeleteArea(ctx, tx, areaID); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return err
	}
	return nil
}

// AddAreaEvent strictly associates one event with the area's event table.
// An event the area already holds is a conflict.
func (s *MapArea) AddAreaEvent(ctx context.Context, mapID, areaID int, request *types.AddEventAssociationRequest) error {
	return s.withArea(ctx, mapID, areaID, func(tx bun.Tx) error {
		return s.AssociationService.AddAssociation(ctx, tx, repo.OwnerArea, areaID, request.EventID, request.Probability)
	})
}

// UpdateAreaEvent sets one area event's probability without touching the
// rest of the table.
func (s *MapArea) UpdateAreaEvent(ctx context.Context, mapID, areaID, eventID int, probability float64) error {
	return s.withArea(ctx, mapID, areaID, func(tx bun.Tx) error {
		return s.AssociationService.UpdateProbability(ctx, tx, repo.OwnerArea, areaID, eventID, probability)
	})
}

// RemoveAreaEvent strictly drops one event from the area's event table.
// An event the area does not hold reports not found.
func (s *MapArea) RemoveAreaEvent(ctx context.Context, mapID, areaID, eventID int) error {
	return s.withArea(ctx, mapID, areaID, func(tx bun.Tx) error {
		return s.AssociationService.RemoveAssociation(ctx, tx, repo.OwnerArea, areaID, eventID)
	})
}

// withArea runs fn inside a transaction this service owns, after verifying
// the area exists under the given map.
func (s *MapArea) withArea(ctx context.Context, mapID, areaID int, fn func(tx bun.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := s.getOwnedArea(ctx, tx, mapID, areaID); err != nil {
		tx.Rollback()
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return err
	}
	return nil
}

// getOwnedArea fetches an area and verifies it belongs to the given map.
// An area that exists under a different map is reported as not found, so
// nested routes cannot reach across maps.
func (s *MapArea) getOwnedArea(ctx context.Context, idb bun.IDB, mapID, areaID int) (*model.MapArea, error) {
	area, err := s.MapAreaRepo.GetAreaByID(ctx, idb, areaID)
	if err != nil {
		return nil, err
	}
	if area.MapID != mapID {
		return nil, mverr.ErrNotFound.Msg("area %d does not belong to map %d", areaID, mapID)
	}
	return area, nil
}
