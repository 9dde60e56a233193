package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Monster struct {
	bun.BaseModel `bun:"monsters,alias:mo"`

	MonsterID  int      `bun:",pk,autoincrement" json:"id"`
	Name       string   `json:"name"`
	DropPoolID null.Int `json:"dropPoolId" swaggertype:"integer"`

	Hp  int `json:"hp"`
	Mp  int `json:"mp"`
	Atk int `json:"atk"`
	Spd int `json:"spd"`
	Def int `json:"def"`
}
