package service

import (
	"context"
	"errors"

	"github.com/samber/lo"
	"github.com/uptrace/bun"

	"github.com/mistveil/backoffice-next/internal/model"
	"github.com/mistveil/backoffice-next/internal/model/types"
	"github.com/mistveil/backoffice-next/internal/pkg/mverr"
	"github.com/mistveil/backoffice-next/internal/repo"
	"github.com/mistveil/backoffice-next/internal/util"
)

// EventAssociation manages the weighted event tables of maps and map areas.
// Like RewardPool it works on caller-owned transaction handles and never
// commits itself.
type EventAssociation struct {
	AssociationRepo *repo.EventAssociation
	EventRepo       *repo.Event
}

func NewEventAssociation(associationRepo *repo.EventAssociation, eventRepo *repo.Event) *EventAssociation {
	return &EventAssociation{
		AssociationRepo: associationRepo,
		EventRepo:       eventRepo,
	}
}

// GetAssociations returns an owner's event table with event names resolved,
// ordered by association id.
func (s *EventAssociation) GetAssociations(ctx context.Context, tx bun.IDB, owner repo.AssociationOwner, ownerID int) ([]*types.EventAssociation, error) {
	return s.AssociationRepo.GetAssociationsWithNames(ctx, tx, owner, ownerID)
}

// AddAssociation associates an event with a map or area. Associating an
// event the owner already holds is a conflict.
func (s *EventAssociation) AddAssociation(ctx context.Context, tx bun.IDB, owner repo.AssociationOwner, ownerID, eventID int, probability float64) error {
	if _, err := s.EventRepo.GetEventByID(ctx, tx, eventID); err != nil {
		return err
	}

	_, err := s.AssociationRepo.GetAssociation(ctx, tx, owner, ownerID, eventID)
	if err == nil {
		return mverr.ErrConflict.Msg("event %d is already associated", eventID)
	} else if !errors.Is(err, mverr.ErrNotFound) {
		return err
	}

	return s.AssociationRepo.CreateAssociation(ctx, tx, owner, ownerID, eventID, probability)
}

// RemoveAssociation drops one event from an owner's table. Removing an
// event the owner does not hold reports not found.
func (s *EventAssociation) RemoveAssociation(ctx context.Context, tx bun.IDB, owner repo.AssociationOwner, ownerID, eventID int) error {
	existed, err := s.AssociationRepo.DeleteAssociation(ctx, tx, owner, ownerID, eventID)
	if err != nil {
		return err
	}
	if !existed {
		return mverr.ErrNotFound.Msg("event %d is not associated", eventID)
	}
	return nil
}

// UpdateProbability sets one association's probability without touching the
// rest of the table.
func (s *EventAssociation) UpdateProbability(ctx context.Context, tx bun.IDB, owner repo.AssociationOwner, ownerID, eventID int, probability float64) error {
	return s.AssociationRepo.UpdateProbability(ctx, tx, owner, ownerID, eventID, probability)
}

// BatchUpdateAssociations applies upserts, removals and an optional
// normalization to an owner's event table as one unit, with the same
// all-or-nothing validation and idempotency rules as reward batches.
// On success the refreshed event table is returned, ordered by association id.
func (s *EventAssociation) BatchUpdateAssociations(ctx context.Context, tx bun.IDB, owner repo.AssociationOwner, ownerID int, request *types.BatchEventsRequest) ([]*types.EventAssociation, error) {
	upsertIDs := lo.Map(request.Upsert, func(u types.EventWeightUpsert, _ int) int { return u.EventID })
	if err := validateBatchMembers(upsertIDs, request.Remove, "eventId"); err != nil {
		return nil, err
	}

	if len(upsertIDs) > 0 {
		exists, err := s.EventRepo.ExistEventsByID(ctx, tx, upsertIDs)
		if err != nil {
			return nil, err
		}
		for _, eventID := range upsertIDs {
			if !exists[eventID] {
				return nil, mverr.ErrNotFound.Msg("event %d does not exist", eventID)
			}
		}
	}

	for _, upsert := range request.Upsert {
		_, err := s.AssociationRepo.GetAssociation(ctx, tx, owner, ownerID, upsert.EventID)
		if errors.Is(err, mverr.ErrNotFound) {
			if err := s.AssociationRepo.CreateAssociation(ctx, tx, owner, ownerID, upsert.EventID, upsert.Probability); err != nil {
				return nil, err
			}
			continue
		} else if err != nil {
			return nil, err
		}
		if err := s.AssociationRepo.UpdateProbability(ctx, tx, owner, ownerID, upsert.EventID, upsert.Probability); err != nil {
			return nil, err
		}
	}

	for _, eventID := range request.Remove {
		if _, err := s.AssociationRepo.DeleteAssociation(ctx, tx, owner, ownerID, eventID); err != nil {
			return nil, err
		}
	}

	if request.Normalize {
		if err := s.normalizeAssociations(ctx, tx, owner, ownerID); err != nil {
			return nil, err
		}
	}

	return s.AssociationRepo.GetAssociationsWithNames(ctx, tx, owner, ownerID)
}

func (s *EventAssociation) normalizeAssociations(ctx context.Context, tx bun.IDB, owner repo.AssociationOwner, ownerID int) error {
	associations, err := s.AssociationRepo.GetAssociations(ctx, tx, owner, ownerID)
	if err != nil {
		return err
	}

	weights := lo.Map(associations, func(a *model.MapEventAssociation, _ int) float64 { return a.Probability })
	normalized, ok := util.NormalizeWeights(weights)
	if !ok {
		return nil
	}
	for i, association := range associations {
		if err := s.AssociationRepo.UpdateProbability(ctx, tx, owner, ownerID, association.EventID, normalized[i]); err != nil {
			return err
		}
	}
	return nil
}
