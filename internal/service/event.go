package service

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/uptrace/bun"

	"github.com/mistveil/backoffice-next/internal/model"
	"github.com/mistveil/backoffice-next/internal/model/types"
	"github.com/mistveil/backoffice-next/internal/pkg/mverr"
	"github.com/mistveil/backoffice-next/internal/repo"
)

type Event struct {
	DB                *bun.DB
	EventRepo         *repo.Event
	AssociationRepo   *repo.EventAssociation
	RewardPoolService *RewardPool
}

func NewEvent(db *bun.DB, eventRepo *repo.Event, associationRepo *repo.EventAssociation, rewardPoolService *RewardPool) *Event {
	return &Event{
		DB:                db,
		EventRepo:         eventRepo,
		AssociationRepo:   associationRepo,
		RewardPoolService: rewardPoolService,
	}
}

func (s *Event) GetEvents(ctx context.Context) ([]*model.Event, error) {
	return s.EventRepo.GetEvents(ctx)
}

// GetEventDetail resolves an event together with its narrative logic and
// the briefs of its results.
func (s *Event) GetEventDetail(ctx context.Context, eventID int) (*types.EventDetail, error) {
	event, err := s.EventRepo.GetEventByID(ctx, s.DB, eventID)
	if err != nil {
		return nil, err
	}

	detail := &types.EventDetail{
		EventID:     event.EventID,
		Name:        event.Name,
		Type:        event.Type,
		Description: event.Description.ValueOrZero(),
		Results:     []*types.EventResultBrief{},
	}

	logic, err := s.EventRepo.GetGeneralLogicByEventID(ctx, s.DB, eventID)
	if err == nil {
		detail.StoryText = logic.StoryText
		results, err := s.EventRepo.GetResultsByLogicID(ctx, s.DB, logic.LogicID)
		if err != nil {
			return nil, err
		}
		detail.Results = lo.Map(results, func(r *model.EventResult, _ int) *types.EventResultBrief {
			return &types.EventResultBrief{ResultID: r.ResultID, Name: r.Name}
		})
	} else if !errors.Is(err, mverr.ErrNotFound) {
		return nil, err
	}

	return detail, nil
}

// CreateEvent inserts an event together with its narrative logic in one
// transaction.
func (s *Event) CreateEvent(ctx context.Context, request *types.CreateEventRequest) (*model.Event, error) {
	storyText, err := json.Marshal(request.StoryText)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal story text")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	event := &model.Event{
		Name: request.Name,
		Type: request.EventType,
	}
	if request.Description != "" {
		event.Description.SetValid(request.Description)
	}
	if err := s.EventRepo.CreateEvent(ctx, tx, event); err != nil {
		tx.Rollback()
		return nil, err
	}

	logic := &model.GeneralEventLogic{
		EventID:   event.EventID,
		StoryText: storyText,
	}
	if err := s.EventRepo.CreateGeneralLogic(ctx, tx, logic); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return nil, err
	}
	return event, nil
}

func (s *Event) UpdateEvent(ctx context.Context, eventID int, request *types.UpdateEventRequest) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	event, err := s.EventRepo.GetEventByID(ctx, tx, eventID)
	if err != nil {
		tx.Rollback()
		return err
	}

	if request.Description != nil {
		event.Description.SetValid(*request.Description)
		if err := s.EventRepo.UpdateEvent(ctx, tx, event); err != nil {
			tx.Rollback()
			return err
		}
	}

	if request.StoryText != nil {
		storyText, err := json.Marshal(request.StoryText)
		if err != nil {
			tx.Rollback()
			return errors.Wrap(err, "failed to marshal story text")
		}
		logic, err := s.EventRepo.GetGeneralLogicByEventID(ctx, tx, eventID)
		if err != nil {
			tx.Rollback()
			return err
		}
		logic.StoryText = storyText
		if err := s.EventRepo.UpdateGeneralLogic(ctx, tx, logic); err != nil {
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

// DeleteEvent removes an event together with its logic, its results and
// their reward pools, and every map and area association pointing at it.
func (s *Event) DeleteEvent(ctx context.Context, eventID int) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	logic, err := s.EventRepo.GetGeneralLogicByEventID(ctx, tx, eventID)
	if err == nil {
		results, err := s.EventRepo.GetResultsByLogicID(ctx, tx, logic.LogicID)
		if err != nil {
			tx.Rollback()
			return err
		}
		for _, result := range results {
			if err := s.RewardPoolService.DeletePool(ctx, tx, result.RewardPoolID); err != nil {
				tx.Rollback()
				return err
			}
			if err := s.EventRepo.DeleteResult(ctx, tx, result.ResultID); err != nil {
				tx.Rollback()
				return err
			}
		}
		if err := s.EventRepo.DeleteGeneralLogicByEventID(ctx, tx, eventID); err != nil {
			tx.Rollback()
			return err
		}
	} else if !errors.Is(err, mverr.ErrNotFound) {
		tx.Rollback()
		return err
	}

	if err := s.AssociationRepo.DeleteAssociationsByEvent(ctx, tx, eventID); err != nil {
		tx.Rollback()
		return err
	}
	if err := s.EventRepo.DeleteEvent(ctx, tx, eventID); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return err
	}
	return nil
}

// GetEventResultDetail resolves a result together with its reward pool.
func (s *Event) GetEventResultDetail(ctx context.Context, resultID int) (*types.EventResultDetail, error) {
	result, err := s.EventRepo.GetResultByID(ctx, s.DB, resultID)
	if err != nil {
		return nil, err
	}
	rewards, err := s.RewardPoolService.GetPoolRewards(ctx, s.DB, result.RewardPoolID)
	if err != nil {
		return nil, err
	}
	return &types.EventResultDetail{
		ResultID:   result.ResultID,
		Name:       result.Name,
		Prior:      result.Prior,
		StoryText:  result.StoryText,
		Condition:  result.Conditions,
		RewardPool: rewards,
	}, nil
}

// CreateEventResult inserts a result under an event's logic, creating its
// dedicated reward pool in the same transaction.
func (s *Event) CreateEventResult(ctx context.Context, eventID int, request *types.CreateEventResultRequest) (*model.EventResult, error) {
	storyText, err := json.Marshal(request.StoryText)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal story text")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	logic, err := s.EventRepo.GetGeneralLogicByEventID(ctx, tx, eventID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	pool, err := s.RewardPoolService.CreatePool(ctx, tx, request.Name+"_pool")
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	result := &model.EventResult{
		Name:                request.Name,
		GeneralEventLogicID: logic.LogicID,
		RewardPoolID:        pool.PoolID,
		Prior:               request.Prior,
		StoryText:           storyText,
		Conditions:          request.Condition,
	}
	if err := s.EventRepo.CreateResult(ctx, tx, result); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return nil, err
	}
	return result, nil
}

func (s *Event) UpdateEventResult(ctx context.Context, resultID int, request *types.UpdateEventResultRequest) (*model.EventResult, error) {
	result, err := s.EventRepo.GetResultByID(ctx, s.DB, resultID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		result.Name = *request.Name
	}
	if request.Prior != nil {
		result.Prior = *request.Prior
	}
	if request.StoryText != nil {
		storyText, err := json.Marshal(request.StoryText)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal story text")
		}
		result.StoryText = storyText
	}
	if request.Condition != nil {
		result.Conditions = request.Condition
	}

	if err := s.EventRepo.UpdateResult(ctx, s.DB, result); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteEventResult removes a result together with its reward pool.
func (s *Event) DeleteEventResult(ctx context.Context, resultID int) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	result, err := s.EventRepo.GetResultByID(ctx, tx, resultID)
	if err != nil {
		tx.Rollback()
		return err
	}
	if err := s.RewardPoolService.DeletePool(ctx, tx, result.RewardPoolID); err != nil {
		tx.Rollback()
		return err
	}
	if err := s.EventRepo.DeleteResult(ctx, tx, resultID); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return err
	}
	return nil
}

// withResultPool runs fn against a result's reward pool inside a transaction
// this service owns.
func (s *Event) withResultPool(ctx context.Context, resultID int, fn func(tx bun.Tx, poolID int) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	result, err := s.EventRepo.GetResultByID(ctx, tx, resultID)
	if err != nil {
		tx.Rollback()
		return err
	}
	if err := fn(tx, result.RewardPoolID); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return err
	}
	return nil
}

// AddResultReward associates an item with a result's reward pool.
func (s *Event) AddResultReward(ctx context.Context, resultID int, request *types.AddRewardRequest) (*types.Reward, error) {
	var reward *types.Reward
	err := s.withResultPool(ctx, resultID, func(tx bun.Tx, poolID int) error {
		var err error
		reward, err = s.RewardPoolService.AddReward(ctx, tx, poolID, request.ItemID, request.Probability)
		return err
	})
	if err != nil {
		return nil, err
	}
	return reward, nil
}

// RemoveResultReward drops one item from a result's reward pool.
func (s *Event) RemoveResultReward(ctx context.Context, resultID, itemID int) error {
	return s.withResultPool(ctx, resultID, func(tx bun.Tx, poolID int) error {
		return s.RewardPoolService.RemoveReward(ctx, tx, poolID, itemID)
	})
}

// UpdateResultReward sets one reward's probability in a result's pool.
func (s *Event) UpdateResultReward(ctx context.Context, resultID, itemID int, probability float64) error {
	return s.withResultPool(ctx, resultID, func(tx bun.Tx, poolID int) error {
		return s.RewardPoolService.UpdateProbability(ctx, tx, poolID, itemID, probability)
	})
}

// BatchUpdateResultRewards applies a reward batch to a result's pool
// atomically, returning the refreshed reward table.
func (s *Event) BatchUpdateResultRewards(ctx context.Context, resultID int, request *types.BatchRewardsRequest) ([]*types.Reward, error) {
	var rewards []*types.Reward
	err := s.withResultPool(ctx, resultID, func(tx bun.Tx, poolID int) error {
		var err error
		rewards, err = s.RewardPoolService.BatchUpdateRewards(ctx, tx, poolID, request)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rewards, nil
}
