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

func newMonsterService(t *testing.T) (*Monster, *bun.DB) {
	t.Helper()

	db := newTestDB(t)
	pools := NewRewardPool(repo.NewRewardPool(db), repo.NewItem(db))
	return NewMonster(db, repo.NewMonster(db), pools), db
}

func TestMonsterDrops(t *testing.T) {
	ctx := context.Background()

	t.Run("monster without a pool is not found", func(t *testing.T) {
		svc, db := newMonsterService(t)
		monsterID := seedMonster(t, db, "Goblin")

		_, err := svc.GetMonsterDrops(ctx, monsterID)
		var boErr *mverr.BackofficeError
		require.ErrorAs(t, err, &boErr)
		assert.Equal(t, mverr.CodeNotFound, boErr.ErrorCode)
	})

	t.Run("first add creates the pool lazily", func(t *testing.T) {
		svc, db := newMonsterService(t)
		monsterID := seedMonster(t, db, "Goblin")
		itemID := seedItem(t, db, "Rusty Sword")

		reward, err := svc.AddMonsterDrop(ctx, monsterID, &types.AddRewardRequest{
			ItemID:      itemID,
			Probability: 0.3,
		})
		require.NoError(t, err)
		assert.Equal(t, "Rusty Sword", reward.ItemName)

		drops, err := svc.GetMonsterDrops(ctx, monsterID)
		require.NoError(t, err)
		assert.Equal(t, "Goblin", drops.MonsterName)
		require.Len(t, drops.DropPool, 1)
		assert.InDelta(t, 0.3, drops.DropPool[0].Probability, 1e-9)
	})

	t.Run("remove by drop id", func(t *testing.T) {
		svc, db := newMonsterService(t)
		monsterID := seedMonster(t, db, "Goblin")
		itemID := seedItem(t, db, "Potion")

		reward, err := svc.AddMonsterDrop(ctx, monsterID, &types.AddRewardRequest{
			ItemID:      itemID,
			Probability: 0.5,
		})
		require.NoError(t, err)

		require.NoError(t, svc.RemoveMonsterDrop(ctx, monsterID, reward.RewardID))

		drops, err := svc.GetMonsterDrops(ctx, monsterID)
		require.NoError(t, err)
		assert.Empty(t, drops.DropPool)
	})

	t.Run("batch returns the refreshed table", func(t *testing.T) {
		svc, db := newMonsterService(t)
		monsterID := seedMonster(t, db, "Goblin")
		swordID := seedItem(t, db, "Sword")
		shieldID := seedItem(t, db, "Shield")

		_, err := svc.AddMonsterDrop(ctx, monsterID, &types.AddRewardRequest{
			ItemID:      swordID,
			Probability: 0.2,
		})
		require.NoError(t, err)

		rewards, err := svc.BatchUpdateMonsterDrops(ctx, monsterID, &types.BatchRewardsRequest{
			Upsert:    []types.RewardUpsert{{ItemID: shieldID, Probability: 0.6}},
			Normalize: true,
		})
		require.NoError(t, err)
		require.Len(t, rewards, 2)
		assert.InDelta(t, 0.25, rewards[0].Probability, 1e-9)
		assert.InDelta(t, 0.75, rewards[1].Probability, 1e-9)
	})
}
