package model

import (
	"github.com/goccy/go-json"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type MapArea struct {
	bun.BaseModel `bun:"map_areas,alias:ma"`

	AreaID      int             `bun:",pk,autoincrement" json:"id"`
	MapID       int             `json:"mapId"`
	Name        string          `json:"name"`
	Description null.String     `json:"description" swaggertype:"string"`
	ImageURL    null.String     `bun:"image_url" json:"imageUrl" swaggertype:"string"`
	InitNPC     json.RawMessage `bun:"init_npc" json:"initNpc" swaggertype:"array,object"`
}
