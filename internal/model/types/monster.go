package types

import "github.com/mistveil/backoffice-next/internal/model"

type MonsterData struct {
	Name string `json:"name" validate:"required,max=100"`

	Hp  int `json:"hp" validate:"min=1" example:"1"`
	Mp  int `json:"mp" validate:"min=1" example:"1"`
	Atk int `json:"atk" validate:"min=1" example:"1"`
	Spd int `json:"spd" validate:"min=1" example:"1"`
	Def int `json:"def" validate:"min=1" example:"1"`
}

type CreateMonstersRequest struct {
	// AutoAddRewardPool creates an empty drop pool per monster, named
	// after the monster.
	AutoAddRewardPool bool          `json:"autoAddRewardPool"`
	Monsters          []MonsterData `json:"monsters" validate:"required,min=1,dive"`
}

type UpdateMonsterRequest struct {
	Name string `json:"name" validate:"required,max=100"`

	Hp  int `json:"hp" validate:"min=1"`
	Mp  int `json:"mp" validate:"min=1"`
	Atk int `json:"atk" validate:"min=1"`
	Spd int `json:"spd" validate:"min=1"`
	Def int `json:"def" validate:"min=1"`
}

type MonsterList struct {
	LastID   int              `json:"lastId"`
	HasMore  bool             `json:"hasMore"`
	Monsters []*model.Monster `json:"monsters"`
}

// MonsterDrops is a monster's drop table with resolved item names.
type MonsterDrops struct {
	MonsterID   int       `json:"monsterId"`
	MonsterName string    `json:"monsterName"`
	DropPool    []*Reward `json:"dropPool"`
}
