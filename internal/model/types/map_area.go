package types

import (
	"gopkg.in/guregu/null.v3"
)

type NPCInfo struct {
	NpcID   int    `json:"npcId" validate:"required"`
	NpcName string `json:"npcName" validate:"required"`
	NpcRole string `json:"npcRole" validate:"required"`
}

type CreateMapAreaRequest struct {
	Name        string      `json:"name" validate:"required,max=100"`
	Description null.String `json:"description" swaggertype:"string"`
	ImageURL    null.String `json:"imageUrl" swaggertype:"string"`
	InitNPC     []NPCInfo   `json:"initNpc" validate:"omitempty,dive"`
}

type UpdateMapAreaRequest struct {
	Name        *string     `json:"name" validate:"omitempty,max=100"`
	Description null.String `json:"description" swaggertype:"string"`
	ImageURL    null.String `json:"imageUrl" swaggertype:"string"`
}

type MapAreaDetail struct {
	AreaID      int                 `json:"id"`
	MapID       int                 `json:"mapId"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	ImageURL    string              `json:"imageUrl"`
	InitNPC     []NPCInfo           `json:"initNpc"`
	Events      []*EventAssociation `json:"events"`
}
