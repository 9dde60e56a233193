package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/mistveil/backoffice-next/internal/model"
	"github.com/mistveil/backoffice-next/internal/model/types"
	"github.com/mistveil/backoffice-next/internal/pkg/mverr"
	"github.com/mistveil/backoffice-next/internal/repo"
	"github.com/mistveil/backoffice-next/internal/util"
)

type Map struct {
	DB                 *bun.DB
	MapRepo            *repo.Map
	MapAreaRepo        *repo.MapArea
	AssociationService *EventAssociation
}

func NewMap(db *bun.DB, mapRepo *repo.Map, mapAreaRepo *repo.MapArea, associationService *EventAssociation) *Map {
	return &Map{
		DB:                 db,
		MapRepo:            mapRepo,
		MapAreaRepo:        mapAreaRepo,
		AssociationService: associationService,
	}
}

// GetMaps pages through maps by id.
func (s *Map) GetMaps(ctx context.Context, cursor types.Cursor) (*types.MapList, error) {
	maps, err := s.MapRepo.GetMapsPage(ctx, cursor)
	if err != nil {
		return nil, err
	}

	page, hasMore := util.Page(maps, cursor.Limit)
	list := &types.MapList{
		HasMore: hasMore,
		Maps:    page,
	}
	if len(page) > 0 {
		list.LastID = page[len(page)-1].MapID
	}
	return list, nil
}

// GetMapDetail resolves a map together with its neighbor connections and
// its event table.
func (s *Map) GetMapDetail(ctx context.Context, mapID int) (*types.MapDetail, error) {
	m, err := s.MapRepo.GetMapByID(ctx, s.DB, mapID)
	if err != nil {
		return nil, err
	}

	connections, err := s.MapRepo.GetConnectionsByMapID(ctx, s.DB, mapID)
	if err != nil {
		return nil, err
	}
	neighborIDs := make([]int, 0, len(connections))
	for _, connection := range connections {
		if connection.MapAID == mapID {
			neighborIDs = append(neighborIDs, connection.MapBID)
		} else {
			neighborIDs = append(neighborIDs, connection.MapAID)
		}
	}
	neighborMaps, err := s.MapRepo.GetMapsByID(ctx, s.DB, neighborIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(neighborMaps))
	for _, neighbor := range neighborMaps {
		names[neighbor.MapID] = neighbor.Name
	}

	neighbors := make([]*types.MapNeighbor, 0, len(connections))
	for i, connection := range connections {
		neighbors = append(neighbors, &types.MapNeighbor{
			MapID:         neighborIDs[i],
			Name:          names[neighborIDs[i]],
			IsLocked:      connection.IsLocked,
			RequiredItem:  connection.RequiredItem.ValueOrZero(),
			RequiredLevel: connection.RequiredLevel,
		})
	}

	events, err := s.AssociationService.GetAssociations(ctx, s.DB, repo.OwnerMap, mapID)
	if err != nil {
		return nil, err
	}

	return &types.MapDetail{
		MapID:       m.MapID,
		Name:        m.Name,
		Description: m.Description.ValueOrZero(),
		ImageURL:    m.ImageURL.ValueOrZero(),
		Neighbors:   neighbors,
		Events:      events,
	}, nil
}

// CreateMaps inserts a batch of maps in one transaction.
func (s *Map) CreateMaps(ctx context.Context, request *types.CreateMapsRequest) ([]*model.Map, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	maps := make([]*model.Map, 0, len(request.Maps))
	for _, data := range request.Maps {
		maps = append(maps, &model.Map{
			Name:        data.Name,
			Description: data.Description,
			ImageURL:    data.ImageURL,
		})
	}
	if err := s.MapRepo.CreateMaps(ctx, tx, maps); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return nil, err
	}
	return maps, nil
}

func (s *Map) UpdateMap(ctx context.Context, mapID int, request *types.UpdateMapRequest) (*model.Map, error) {
	m, err := s.MapRepo.GetMapByID(ctx, s.DB, mapID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		m.Name = *request.Name
	}
	if request.Description.Valid {
		m.Description = request.Description
	}
	if request.ImageURL.Valid {
		m.ImageURL = request.ImageURL
	}
	if err := s.MapRepo.UpdateMap(ctx, s.DB, m); err != nil {
		return nil, err
	}
	return m, nil
}

// UpdateConnections upserts and removes a map's neighbor connections as one
// unit. A self-connection upsert is skipped, and the same neighbor cannot
// be upserted and removed in one request.
func (s *Map) UpdateConnections(ctx context.Context, mapID int, request *types.UpdateConnectionsRequest) error {
	upsertIDs := make([]int, 0, len(request.Connections))
	for _, upsert := range request.Connections {
		upsertIDs = append(upsertIDs, upsert.NeighborID)
	}
	if err := validateBatchMembers(upsertIDs, request.RemoveConnections, "neighborId"); err != nil {
		return err
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := s.MapRepo.GetMapByID(ctx, tx, mapID); err != nil {
		tx.Rollback()
		return err
	}

	for _, upsert := range request.Connections {
		if upsert.NeighborID == mapID {
			continue
		}
		if _, err := s.MapRepo.GetMapByID(ctx, tx, upsert.NeighborID); err != nil {
			tx.Rollback()
			return err
		}

		connection, err := s.MapRepo.GetConnection(ctx, tx, mapID, upsert.NeighborID)
		if err == nil {
			connection.IsLocked = upsert.IsLocked
			connection.RequiredItem = upsert.RequiredItem
			connection.RequiredLevel = upsert.RequiredLevel
			if err := s.MapRepo.UpdateConnection(ctx, tx, connection); err != nil {
				tx.Rollback()
				return err
			}
			continue
		} else if !errors.Is(err, mverr.ErrNotFound) {
			tx.Rollback()
			return err
		}

		connection = &model.MapConnection{
			MapAID:        mapID,
			MapBID:        upsert.NeighborID,
			IsLocked:      upsert.IsLocked,
			RequiredItem:  upsert.RequiredItem,
			RequiredLevel: upsert.RequiredLevel,
		}
		if err := s.MapRepo.CreateConnection(ctx, tx, connection); err != nil {
			tx.Rollback()
			return err
		}
	}

	for _, neighborID := range request.RemoveConnections {
		if _, err := s.MapRepo.DeleteConnection(ctx, tx, mapID, neighborID); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return err
	}
	return nil
}

// BatchUpdateMapEvents applies an event batch to a map's event table
// atomically and returns the refreshed table.
func (s *Map) BatchUpdateMapEvents(ctx context.Context, mapID int, request *types.BatchEventsRequest) ([]*types.EventAssociation, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	if _, err := s.MapRepo.GetMapByID(ctx, tx, mapID); err != nil {
		tx.Rollback()
		return nil, err
	}
	events, err := s.AssociationService.BatchUpdateAssociations(ctx, tx, repo.OwnerMap, mapID, request)
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

// AddMapEvent strictly associates one event with the map's event table.
// An event the map already holds is a conflict.
func (s *Map) AddMapEvent(ctx context.Context, mapID int, request *types.AddEventAssociationRequest) error {
	return s.withMap(ctx, mapID, func(tx bun.Tx) error {
		return s.AssociationService.AddAssociation(ctx, tx, repo.OwnerMap, mapID, request.EventID, request.Probability)
	})
}

// UpdateMapEvent sets one map event's probability without touching the rest
// of the table.
func (s *Map) UpdateMapEvent(ctx context.Context, mapID, eventID int, probability float64) error {
	return s.withMap(ctx, mapID, func(tx bun.Tx) error {
		return s.AssociationService.UpdateProbability(ctx, tx, repo.OwnerMap, mapID, eventID, probability)
	})
}

// RemoveMapEvent strictly drops one event from the map's event table.
// An event the map does not hold reports not found.
func (s *Map) RemoveMapEvent(ctx context.Context, mapID, eventID int) error {
	return s.withMap(ctx, mapID, func(tx bun.Tx) error {
		return s.AssociationService.RemoveAssociation(ctx, tx, repo.OwnerMap, mapID, eventID)
	})
}

// withMap runs fn inside a transaction this service owns, after verifying
// the map exists.
func (s *Map) withMap(ctx context.Context, mapID int, fn func(tx bun.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := s.MapRepo.GetMapByID(ctx, tx, mapID); err != nil {
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

// DeleteMap removes a map together with its connections, its areas and
// every event association held by the map or its areas.
func (s *Map) DeleteMap(ctx context.Context, mapID int) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := s.MapRepo.GetMapByID(ctx, tx, mapID); err != nil {
		tx.Rollback()
		return err
	}
	if err := s.MapRepo.DeleteConnectionsByMapID(ctx, tx, mapID); err != nil {
		tx.Rollback()
		return err
	}

	areaIDs, err := s.MapAreaRepo.DeleteAreasByMapID(ctx, tx, mapID)
	if err != nil {
		tx.Rollback()
		return err
	}
	for _, areaID := range areaIDs {
		if err := s.AssociationService.AssociationRepo.DeleteAssociationsByOwner(ctx, tx, repo.OwnerArea, areaID); err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := s.AssociationService.AssociationRepo.DeleteAssociationsByOwner(ctx, tx, repo.OwnerMap, mapID); err != nil {
		tx.Rollback()
		return err
	}

	if err := s.MapRepo.DeleteMap(ctx, tx, mapID); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return err
	}
	return nil
}
