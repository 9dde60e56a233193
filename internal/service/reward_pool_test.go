package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/mistveil/backoffice-next/internal/model/types"
	"github.com/mistveil/backoffice-next/internal/pkg/mverr"
	"github.com/mistveil/backoffice-next/internal/repo"
)

func TestValidateBatchMembers(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validateBatchMembers(nil, nil, "itemId"))
		assert.NoError(t, validateBatchMembers([]int{1, 2}, []int{3}, "itemId"))
		assert.NoError(t, validateBatchMembers(nil, []int{3, 3}, "itemId"))
	})

	t.Run("duplicate upsert ids", func(t *testing.T) {
		err := validateBatchMembers([]int{1, 2, 1}, nil, "itemId")
		require.Error(t, err)

		var boErr *mverr.BackofficeError
		require.ErrorAs(t, err, &boErr)
		assert.Equal(t, mverr.CodeInvalidRequest, boErr.ErrorCode)
	})

	t.Run("upsert and remove overlap", func(t *testing.T) {
		err := validateBatchMembers([]int{1, 2}, []int{2, 3}, "eventId")
		require.Error(t, err)

		var boErr *mverr.BackofficeError
		require.ErrorAs(t, err, &boErr)
		assert.Equal(t, mverr.CodeInvalidRequest, boErr.ErrorCode)
	})
}

func newRewardPoolEngine(t *testing.T) (*RewardPool, *bun.DB) {
	t.Helper()

	db := newTestDB(t)
	return NewRewardPool(repo.NewRewardPool(db), repo.NewItem(db)), db
}

func TestRewardPoolEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("add then edit keeps a single association", func(t *testing.T) {
		engine, db := newRewardPoolEngine(t)
		pool, err := engine.CreatePool(ctx, db, "goblin_pool")
		require.NoError(t, err)
		itemID := seedItem(t, db, "Rusty Sword")

		reward, err := engine.AddReward(ctx, db, pool.PoolID, itemID, 0.3)
		require.NoError(t, err)
		assert.Equal(t, "Rusty Sword", reward.ItemName)

		require.NoError(t, engine.UpdateProbability(ctx, db, pool.PoolID, itemID, 0.5))

		rewards, err := engine.GetPoolRewards(ctx, db, pool.PoolID)
		require.NoError(t, err)
		require.Len(t, rewards, 1)
		assert.Equal(t, reward.RewardID, rewards[0].RewardID)
		assert.InDelta(t, 0.5, rewards[0].Probability, 1e-9)
	})

	t.Run("adding the same item twice conflicts", func(t *testing.T) {
		engine, db := newRewardPoolEngine(t)
		pool, err := engine.CreatePool(ctx, db, "goblin_pool")
		require.NoError(t, err)
		itemID := seedItem(t, db, "Potion")

		_, err = engine.AddReward(ctx, db, pool.PoolID, itemID, 0.2)
		require.NoError(t, err)

		_, err = engine.AddReward(ctx, db, pool.PoolID, itemID, 0.4)
		var boErr *mverr.BackofficeError
		require.ErrorAs(t, err, &boErr)
		assert.Equal(t, mverr.CodeConflict, boErr.ErrorCode)

		rewards, err := engine.GetPoolRewards(ctx, db, pool.PoolID)
		require.NoError(t, err)
		require.Len(t, rewards, 1)
		assert.InDelta(t, 0.2, rewards[0].Probability, 1e-9)
	})

	t.Run("removing an absent item is not found", func(t *testing.T) {
		engine, db := newRewardPoolEngine(t)
		pool, err := engine.CreatePool(ctx, db, "goblin_pool")
		require.NoError(t, err)
		itemID := seedItem(t, db, "Potion")

		err = engine.RemoveReward(ctx, db, pool.PoolID, itemID)
		var boErr *mverr.BackofficeError
		require.ErrorAs(t, err, &boErr)
		assert.Equal(t, mverr.CodeNotFound, boErr.ErrorCode)
	})

	t.Run("removal by reward id is pool scoped", func(t *testing.T) {
		engine, db := newRewardPoolEngine(t)
		poolA, err := engine.CreatePool(ctx, db, "pool_a")
		require.NoError(t, err)
		poolB, err := engine.CreatePool(ctx, db, "pool_b")
		require.NoError(t, err)
		itemID := seedItem(t, db, "Potion")

		reward, err := engine.AddReward(ctx, db, poolB.PoolID, itemID, 0.2)
		require.NoError(t, err)

		err = engine.RemoveRewardByID(ctx, db, poolA.PoolID, reward.RewardID)
		var boErr *mverr.BackofficeError
		require.ErrorAs(t, err, &boErr)
		assert.Equal(t, mverr.CodeNotFound, boErr.ErrorCode)

		rewards, err := engine.GetPoolRewards(ctx, db, poolB.PoolID)
		require.NoError(t, err)
		assert.Len(t, rewards, 1)

		require.NoError(t, engine.RemoveRewardByID(ctx, db, poolB.PoolID, reward.RewardID))
	})

	t.Run("editing one probability never touches siblings", func(t *testing.T) {
		engine, db := newRewardPoolEngine(t)
		pool, err := engine.CreatePool(ctx, db, "goblin_pool")
		require.NoError(t, err)
		swordID := seedItem(t, db, "Sword")
		shieldID := seedItem(t, db, "Shield")

		_, err = engine.AddReward(ctx, db, pool.PoolID, swordID, 0.5)
		require.NoError(t, err)
		_, err = engine.AddReward(ctx, db, pool.PoolID, shieldID, 0.5)
		require.NoError(t, err)

		require.NoError(t, engine.UpdateProbability(ctx, db, pool.PoolID, swordID, 0.1))

		rewards, err := engine.GetPoolRewards(ctx, db, pool.PoolID)
		require.NoError(t, err)
		require.Len(t, rewards, 2)
		assert.InDelta(t, 0.1, rewards[0].Probability, 1e-9)
		assert.InDelta(t, 0.5, rewards[1].Probability, 1e-9)
	})

	t.Run("batch against a missing pool is not found even when malformed", func(t *testing.T) {
		engine, db := newRewardPoolEngine(t)
		itemID := seedItem(t, db, "Potion")

		_, err := engine.BatchUpdateRewards(ctx, db, 999, &types.BatchRewardsRequest{
			Upsert: []types.RewardUpsert{
				{ItemID: itemID, Probability: 0.2},
				{ItemID: itemID, Probability: 0.4},
			},
		})
		var boErr *mverr.BackofficeError
		require.ErrorAs(t, err, &boErr)
		assert.Equal(t, mverr.CodeNotFound, boErr.ErrorCode)
	})

	t.Run("invalid batch leaves the pool untouched", func(t *testing.T) {
		engine, db := newRewardPoolEngine(t)
		pool, err := engine.CreatePool(ctx, db, "goblin_pool")
		require.NoError(t, err)
		itemID := seedItem(t, db, "Potion")

		_, err = engine.AddReward(ctx, db, pool.PoolID, itemID, 0.2)
		require.NoError(t, err)

		_, err = engine.BatchUpdateRewards(ctx, db, pool.PoolID, &types.BatchRewardsRequest{
			Upsert: []types.RewardUpsert{
				{ItemID: itemID, Probability: 0.9},
				{ItemID: itemID, Probability: 0.8},
			},
		})
		var boErr *mverr.BackofficeError
		require.ErrorAs(t, err, &boErr)
		assert.Equal(t, mverr.CodeInvalidRequest, boErr.ErrorCode)

		rewards, err := engine.GetPoolRewards(ctx, db, pool.PoolID)
		require.NoError(t, err)
		require.Len(t, rewards, 1)
		assert.InDelta(t, 0.2, rewards[0].Probability, 1e-9)
	})

	t.Run("batch upserts are idempotent per item", func(t *testing.T) {
		engine, db := newRewardPoolEngine(t)
		pool, err := engine.CreatePool(ctx, db, "goblin_pool")
		require.NoError(t, err)
		swordID := seedItem(t, db, "Sword")
		shieldID := seedItem(t, db, "Shield")

		request := &types.BatchRewardsRequest{
			Upsert: []types.RewardUpsert{
				{ItemID: swordID, Probability: 0.3},
				{ItemID: shieldID, Probability: 0.7},
			},
		}
		first, err := engine.BatchUpdateRewards(ctx, db, pool.PoolID, request)
		require.NoError(t, err)
		require.Len(t, first, 2)

		second, err := engine.BatchUpdateRewards(ctx, db, pool.PoolID, request)
		require.NoError(t, err)
		require.Len(t, second, 2)
		for i := range first {
			assert.Equal(t, first[i].RewardID, second[i].RewardID)
			assert.InDelta(t, first[i].Probability, second[i].Probability, 1e-9)
		}
	})

	t.Run("batch removal of an absent member is skipped", func(t *testing.T) {
		engine, db := newRewardPoolEngine(t)
		pool, err := engine.CreatePool(ctx, db, "goblin_pool")
		require.NoError(t, err)
		itemID := seedItem(t, db, "Potion")

		_, err = engine.AddReward(ctx, db, pool.PoolID, itemID, 0.2)
		require.NoError(t, err)

		rewards, err := engine.BatchUpdateRewards(ctx, db, pool.PoolID, &types.BatchRewardsRequest{
			Remove: []int{itemID + 100},
		})
		require.NoError(t, err)
		require.Len(t, rewards, 1)
		assert.InDelta(t, 0.2, rewards[0].Probability, 1e-9)
	})

	t.Run("normalize rescales by the sum", func(t *testing.T) {
		engine, db := newRewardPoolEngine(t)
		pool, err := engine.CreatePool(ctx, db, "goblin_pool")
		require.NoError(t, err)
		swordID := seedItem(t, db, "Sword")
		shieldID := seedItem(t, db, "Shield")
		potionID := seedItem(t, db, "Potion")

		rewards, err := engine.BatchUpdateRewards(ctx, db, pool.PoolID, &types.BatchRewardsRequest{
			Upsert: []types.RewardUpsert{
				{ItemID: swordID, Probability: 0.2},
				{ItemID: shieldID, Probability: 0.2},
				{ItemID: potionID, Probability: 0.1},
			},
			Normalize: true,
		})
		require.NoError(t, err)
		require.Len(t, rewards, 3)
		assert.InDelta(t, 0.4, rewards[0].Probability, 1e-9)
		assert.InDelta(t, 0.4, rewards[1].Probability, 1e-9)
		assert.InDelta(t, 0.2, rewards[2].Probability, 1e-9)
	})

	t.Run("normalize with a zero sum is a no-op", func(t *testing.T) {
		engine, db := newRewardPoolEngine(t)
		pool, err := engine.CreatePool(ctx, db, "goblin_pool")
		require.NoError(t, err)
		itemID := seedItem(t, db, "Potion")

		rewards, err := engine.BatchUpdateRewards(ctx, db, pool.PoolID, &types.BatchRewardsRequest{
			Upsert:    []types.RewardUpsert{{ItemID: itemID, Probability: 0}},
			Normalize: true,
		})
		require.NoError(t, err)
		require.Len(t, rewards, 1)
		assert.InDelta(t, 0, rewards[0].Probability, 1e-9)
	})
}
