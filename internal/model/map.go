package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Map struct {
	bun.BaseModel `bun:"maps,alias:mp"`

	MapID       int         `bun:",pk,autoincrement" json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description" swaggertype:"string"`
	ImageURL    null.String `bun:"image_url" json:"imageUrl" swaggertype:"string"`
}

// MapConnection is an undirected edge between two maps. Rows are stored with
// map_a_id < map_b_id so each pair exists exactly once.
type MapConnection struct {
	bun.BaseModel `bun:"map_connections,alias:mc"`

	ConnectionID  int         `bun:",pk,autoincrement" json:"id"`
	MapAID        int         `bun:"map_a_id" json:"mapAId"`
	MapBID        int         `bun:"map_b_id" json:"mapBId"`
	IsLocked      bool        `json:"isLocked"`
	RequiredItem  null.String `json:"requiredItem" swaggertype:"string"`
	RequiredLevel int         `json:"requiredLevel"`
}
