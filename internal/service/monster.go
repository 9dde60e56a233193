package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"

	"github.com/mistveil/backoffice-next/internal/model"
	"github.com/mistveil/backoffice-next/internal/model/types"
	"github.com/mistveil/backoffice-next/internal/pkg/mverr"
	"github.com/mistveil/backoffice-next/internal/repo"
	"github.com/mistveil/backoffice-next/internal/util"
)

type Monster struct {
	DB                *bun.DB
	MonsterRepo       *repo.Monster
	RewardPoolService *RewardPool
}

func NewMonster(db *bun.DB, monsterRepo *repo.Monster, rewardPoolService *RewardPool) *Monster {
	return &Monster{
		DB:                db,
		MonsterRepo:       monsterRepo,
		RewardPoolService: rewardPoolService,
	}
}

// GetMonsters pages through monsters by id.
func (s *Monster) GetMonsters(ctx context.Context, cursor types.Cursor) (*types.MonsterList, error) {
	monsters, err := s.MonsterRepo.GetMonstersPage(ctx, cursor)
	if err != nil {
		return nil, err
	}

	page, hasMore := util.Page(monsters, cursor.Limit)
	list := &types.MonsterList{
		HasMore:  hasMore,
		Monsters: page,
	}
	if len(page) > 0 {
		list.LastID = page[len(page)-1].MonsterID
	}
	return list, nil
}

func (s *Monster) GetMonsterByID(ctx context.Context, monsterID int) (*model.Monster, error) {
	return s.MonsterRepo.GetMonsterByID(ctx, monsterID)
}

// CreateMonsters inserts a batch of monsters in one transaction. When
// requested, each monster also gets a freshly created empty drop pool named
// after it.
func (s *Monster) CreateMonsters(ctx context.Context, request *types.CreateMonstersRequest) ([]*model.Monster, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	monsters := make([]*model.Monster, 0, len(request.Monsters))
	for _, data := range request.Monsters {
		monster := &model.Monster{
			Name: data.Name,
			Hp:   data.Hp,
			Mp:   data.Mp,
			Atk:  data.Atk,
			Spd:  data.Spd,
			Def:  data.Def,
		}
		if request.AutoAddRewardPool {
			pool, err := s.RewardPoolService.CreatePool(ctx, tx, data.Name+"_pool")
			if err != nil {
				tx.Rollback()
				return nil, err
			}
			monster.DropPoolID = null.IntFrom(int64(pool.PoolID))
		}
		if err := s.MonsterRepo.CreateMonster(ctx, tx, monster); err != nil {
			tx.Rollback()
			return nil, err
		}
		monsters = append(monsters, monster)
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return nil, err
	}

	log.Info().
		Str("evt.name", "monster.batch_create").
		Int("count", len(monsters)).
		Bool("auto_pools", request.AutoAddRewardPool).
		Msg("created monsters")
	return monsters, nil
}

func (s *Monster) UpdateMonster(ctx context.Context, monsterID int, request *types.UpdateMonsterRequest) (*model.Monster, error) {
	monster, err := s.MonsterRepo.GetMonsterByID(ctx, monsterID)
	if err != nil {
		return nil, err
	}

	monster.Name = request.Name
	monster.Hp = request.Hp
	monster.Mp = request.Mp
	monster.Atk = request.Atk
	monster.Spd = request.Spd
	monster.Def = request.Def
	if err := s.MonsterRepo.UpdateMonster(ctx, s.DB, monster); err != nil {
		return nil, err
	}
	return monster, nil
}

// DeleteMonster removes a monster and, when it owns a drop pool, the pool
// and its associations with it.
func (s *Monster) DeleteMonster(ctx context.Context, monsterID int) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	monster, err := s.MonsterRepo.GetMonsterForUpdate(ctx, tx, monsterID)
	if err != nil {
		tx.Rollback()
		return err
	}
	if monster.DropPoolID.Valid {
		if err := s.RewardPoolService.DeletePool(ctx, tx, int(monster.DropPoolID.Int64)); err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := s.MonsterRepo.DeleteMonster(ctx, tx, monsterID); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return err
	}
	return nil
}

// GetMonsterDrops returns a monster's drop table with item names resolved.
// A monster without a drop pool reports not found, same as the mutation
// paths.
func (s *Monster) GetMonsterDrops(ctx context.Context, monsterID int) (*types.MonsterDrops, error) {
	monster, err := s.MonsterRepo.GetMonsterByID(ctx, monsterID)
	if err != nil {
		return nil, err
	}
	if !monster.DropPoolID.Valid {
		return nil, mverr.ErrNotFound.Msg("monster %d has no drop pool", monsterID)
	}

	rewards, err := s.RewardPoolService.GetPoolRewards(ctx, s.DB, int(monster.DropPoolID.Int64))
	if err != nil {
		return nil, err
	}
	return &types.MonsterDrops{
		MonsterID:   monster.MonsterID,
		MonsterName: monster.Name,
		DropPool:    rewards,
	}, nil
}

// AddMonsterDrop associates an item with a monster's drop pool, creating the
// pool first when the monster does not have one yet.
func (s *Monster) AddMonsterDrop(ctx context.Context, monsterID int, request *types.AddRewardRequest) (*types.Reward, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	monster, err := s.MonsterRepo.GetMonsterForUpdate(ctx, tx, monsterID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if !monster.DropPoolID.Valid {
		pool, err := s.RewardPoolService.CreatePool(ctx, tx, monster.Name+"_pool")
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		monster.DropPoolID = null.IntFrom(int64(pool.PoolID))
		if err := s.MonsterRepo.UpdateMonster(ctx, tx, monster); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	reward, err := s.RewardPoolService.AddReward(ctx, tx, int(monster.DropPoolID.Int64), request.ItemID, request.Probability)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return nil, err
	}
	return reward, nil
}

// RemoveMonsterDrop drops one association from a monster's drop pool by its
// reward id.
func (s *Monster) RemoveMonsterDrop(ctx context.Context, monsterID, dropID int) error {
	return s.withDropPool(ctx, monsterID, func(tx bun.Tx, poolID int) error {
		return s.RewardPoolService.RemoveRewardByID(ctx, tx, poolID, dropID)
	})
}

// UpdateMonsterDrop sets one drop's probability without touching the rest
// of the pool.
func (s *Monster) UpdateMonsterDrop(ctx context.Context, monsterID, itemID int, probability float64) error {
	return s.withDropPool(ctx, monsterID, func(tx bun.Tx, poolID int) error {
		return s.RewardPoolService.UpdateProbability(ctx, tx, poolID, itemID, probability)
	})
}

// BatchUpdateMonsterDrops applies a batch of upserts, removals and an
// optional normalization to a monster's drop pool atomically, returning the
// refreshed drop table.
func (s *Monster) BatchUpdateMonsterDrops(ctx context.Context, monsterID int, request *types.BatchRewardsRequest) ([]*types.Reward, error) {
	var rewards []*types.Reward
	err := s.withDropPool(ctx, monsterID, func(tx bun.Tx, poolID int) error {
		var err error
		rewards, err = s.RewardPoolService.BatchUpdateRewards(ctx, tx, poolID, request)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rewards, nil
}

// withDropPool runs fn against the monster's drop pool inside a transaction
// this service owns. A monster without a pool reports not found.
func (s *Monster) withDropPool(ctx context.Context, monsterID int, fn func(tx bun.Tx, poolID int) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	monster, err := s.MonsterRepo.GetMonsterForUpdate(ctx, tx, monsterID)
	if err != nil {
		tx.Rollback()
		return err
	}
	if !monster.DropPoolID.Valid {
		tx.Rollback()
		return mverr.ErrNotFound.Msg("monster %d has no drop pool", monsterID)
	}

	if err := fn(tx, int(monster.DropPoolID.Int64)); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return err
	}
	return nil
}
