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

// RewardPool manages the weighted item tables behind monster drops and event
// result rewards. Every method operates on the bun.IDB handle it is given:
// callers that need multiple engine calls to land atomically open the
// transaction themselves and pass it in, and ownership of commit/rollback
// stays with them.
type RewardPool struct {
	RewardPoolRepo *repo.RewardPool
	ItemRepo       *repo.Item
}

func NewRewardPool(rewardPoolRepo *repo.RewardPool, itemRepo *repo.Item) *RewardPool {
	return &RewardPool{
		RewardPoolRepo: rewardPoolRepo,
		ItemRepo:       itemRepo,
	}
}

func (s *RewardPool) CreatePool(ctx context.Context, tx bun.IDB, name string) (*model.RewardPool, error) {
	pool := &model.RewardPool{Name: name}
	if err := s.RewardPoolRepo.CreatePool(ctx, tx, pool); err != nil {
		return nil, err
	}
	return pool, nil
}

func (s *RewardPool) GetPool(ctx context.Context, tx bun.IDB, poolID int) (*model.RewardPool, error) {
	return s.RewardPoolRepo.GetPoolByID(ctx, tx, poolID)
}

// GetPoolRewards returns the pool's associations with item names resolved,
// ordered by reward id.
func (s *RewardPool) GetPoolRewards(ctx context.Context, tx bun.IDB, poolID int) ([]*types.Reward, error) {
	if _, err := s.RewardPoolRepo.GetPoolByID(ctx, tx, poolID); err != nil {
		return nil, err
	}
	return s.RewardPoolRepo.GetPoolRewards(ctx, tx, poolID)
}

// AddReward associates an item with a pool. Adding an item the pool already
// holds is a conflict: callers that want add-or-update semantics use
// BatchUpdateRewards instead.
func (s *RewardPool) AddReward(ctx context.Context, tx bun.IDB, poolID, itemID int, probability float64) (*types.Reward, error) {
	if _, err := s.RewardPoolRepo.GetPoolByID(ctx, tx, poolID); err != nil {
		return nil, err
	}
	item, err := s.ItemRepo.GetItemForUpdate(ctx, tx, itemID)
	if err != nil {
		return nil, err
	}

	_, err = s.RewardPoolRepo.GetPoolItem(ctx, tx, poolID, itemID)
	if err == nil {
		return nil, mverr.ErrConflict.Msg("item %d is already in pool %d", itemID, poolID)
	} else if !errors.Is(err, mverr.ErrNotFound) {
		return nil, err
	}

	reward := &model.RewardPoolItem{
		PoolID:      poolID,
		ItemID:      itemID,
		Probability: probability,
	}
	if err := s.RewardPoolRepo.CreatePoolItem(ctx, tx, reward); err != nil {
		return nil, err
	}
	return &types.Reward{
		RewardID:    reward.RewardID,
		ItemID:      itemID,
		ItemName:    item.Name,
		Probability: probability,
	}, nil
}

// RemoveReward drops one item from a pool. Removing an item the pool does
// not hold reports not found.
func (s *RewardPool) RemoveReward(ctx context.Context, tx bun.IDB, poolID, itemID int) error {
	if _, err := s.RewardPoolRepo.GetPoolByID(ctx, tx, poolID); err != nil {
		return err
	}
	existed, err := s.RewardPoolRepo.DeletePoolItem(ctx, tx, poolID, itemID)
	if err != nil {
		return err
	}
	if !existed {
		return mverr.ErrNotFound.Msg("item %d is not in pool %d", itemID, poolID)
	}
	return nil
}

// RemoveRewardByID drops one association by its reward id, scoped to the
// pool. A reward id that is absent from the pool reports not found.
func (s *RewardPool) RemoveRewardByID(ctx context.Context, tx bun.IDB, poolID, rewardID int) error {
	if _, err := s.RewardPoolRepo.GetPoolByID(ctx, tx, poolID); err != nil {
		return err
	}
	return s.RewardPoolRepo.DeletePoolItemByID(ctx, tx, poolID, rewardID)
}

// UpdateProbability sets one association's probability in place. The rest of
// the pool is left untouched: no renormalization happens here, so the pool
// may transiently sum to more or less than 1 until the caller normalizes.
func (s *RewardPool) UpdateProbability(ctx context.Context, tx bun.IDB, poolID, itemID int, probability float64) error {
	reward, err := s.RewardPoolRepo.GetPoolItem(ctx, tx, poolID, itemID)
	if err != nil {
		return err
	}
	return s.RewardPoolRepo.UpdatePoolItemProbability(ctx, tx, reward.RewardID, probability)
}

// BatchUpdateRewards applies upserts, removals and an optional normalization
// to a pool as one unit. The request is validated fully before the first
// write so an invalid batch leaves the pool untouched. Upserts are
// idempotent per item; removals of absent items are skipped rather than
// failing the batch, so retried batches converge instead of erroring.
// On success the refreshed reward list is returned, ordered by reward id.
func (s *RewardPool) BatchUpdateRewards(ctx context.Context, tx bun.IDB, poolID int, request *types.BatchRewardsRequest) ([]*types.Reward, error) {
	if _, err := s.RewardPoolRepo.GetPoolByID(ctx, tx, poolID); err != nil {
		return nil, err
	}

	upsertIDs := lo.Map(request.Upsert, func(u types.RewardUpsert, _ int) int { return u.ItemID })
	if err := validateBatchMembers(upsertIDs, request.Remove, "itemId"); err != nil {
		return nil, err
	}

	for _, upsert := range request.Upsert {
		if _, err := s.ItemRepo.GetItemForUpdate(ctx, tx, upsert.ItemID); err != nil {
			if errors.Is(err, mverr.ErrNotFound) {
				return nil, mverr.ErrNotFound.Msg("item %d does not exist", upsert.ItemID)
			}
			return nil, err
		}

		existing, err := s.RewardPoolRepo.GetPoolItem(ctx, tx, poolID, upsert.ItemID)
		if errors.Is(err, mverr.ErrNotFound) {
			reward := &model.RewardPoolItem{
				PoolID:      poolID,
				ItemID:      upsert.ItemID,
				Probability: upsert.Probability,
			}
			if err := s.RewardPoolRepo.CreatePoolItem(ctx, tx, reward); err != nil {
				return nil, err
			}
			continue
		} else if err != nil {
			return nil, err
		}
		if err := s.RewardPoolRepo.UpdatePoolItemProbability(ctx, tx, existing.RewardID, upsert.Probability); err != nil {
			return nil, err
		}
	}

	for _, itemID := range request.Remove {
		if _, err := s.RewardPoolRepo.DeletePoolItem(ctx, tx, poolID, itemID); err != nil {
			return nil, err
		}
	}

	if request.Normalize {
		if err := s.normalizePool(ctx, tx, poolID); err != nil {
			return nil, err
		}
	}

	return s.RewardPoolRepo.GetPoolRewards(ctx, tx, poolID)
}

func (s *RewardPool) normalizePool(ctx context.Context, tx bun.IDB, poolID int) error {
	rewards, err := s.RewardPoolRepo.GetPoolItems(ctx, tx, poolID)
	if err != nil {
		return err
	}

	weights := lo.Map(rewards, func(r *model.RewardPoolItem, _ int) float64 { return r.Probability })
	normalized, ok := util.NormalizeWeights(weights)
	if !ok {
		return nil
	}
	for i, reward := range rewards {
		if err := s.RewardPoolRepo.UpdatePoolItemProbability(ctx, tx, reward.RewardID, normalized[i]); err != nil {
			return err
		}
	}
	return nil
}

// DeletePool removes a pool together with its associations.
func (s *RewardPool) DeletePool(ctx context.Context, tx bun.IDB, poolID int) error {
	if err := s.RewardPoolRepo.DeletePoolItemsByPool(ctx, tx, poolID); err != nil {
		return err
	}
	return s.RewardPoolRepo.DeletePool(ctx, tx, poolID)
}

// validateBatchMembers rejects batches whose member ids are ambiguous:
// a member upserted twice, or upserted and removed at once. field names the
// request field the violations refer to.
func validateBatchMembers(upsertIDs, removeIDs []int, field string) error {
	if duplicates := util.DuplicateInts(upsertIDs); len(duplicates) > 0 {
		return mverr.NewInvalidViolations(map[string]interface{}{
			"field":      field,
			"reason":     "duplicated in upsert",
			"duplicates": duplicates,
		})
	}
	if overlap := util.IntersectInts(upsertIDs, removeIDs); len(overlap) > 0 {
		return mverr.NewInvalidViolations(map[string]interface{}{
			"field":   field,
			"reason":  "present in both upsert and remove",
			"overlap": overlap,
		})
	}
	return nil
}
