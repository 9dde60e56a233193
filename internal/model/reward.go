package model

import (
	"github.com/uptrace/bun"
)

type RewardPool struct {
	bun.BaseModel `bun:"reward_pools,alias:rp"`

	PoolID int    `bun:",pk,autoincrement" json:"id"`
	Name   string `json:"name"`
}

// RewardPoolItem is one weighted item association of a reward pool.
// At most one row exists per (pool_id, item_id).
type RewardPoolItem struct {
	bun.BaseModel `bun:"reward_pool_items,alias:rpi"`

	RewardID    int     `bun:",pk,autoincrement" json:"id"`
	PoolID      int     `json:"poolId"`
	ItemID      int     `json:"itemId"`
	Probability float64 `json:"probability"`
}
