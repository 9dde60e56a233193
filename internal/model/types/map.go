package types

import (
	"gopkg.in/guregu/null.v3"

	"github.com/mistveil/backoffice-next/internal/model"
)

type MapData struct {
	Name        string      `json:"name" validate:"required,max=100"`
	Description null.String `json:"description" swaggertype:"string"`
	ImageURL    null.String `json:"imageUrl" swaggertype:"string"`
}

type CreateMapsRequest struct {
	Maps []MapData `json:"maps" validate:"required,min=1,dive"`
}

type UpdateMapRequest struct {
	Name        *string     `json:"name" validate:"omitempty,max=100"`
	Description null.String `json:"description" swaggertype:"string"`
	ImageURL    null.String `json:"imageUrl" swaggertype:"string"`
}

type MapList struct {
	LastID  int          `json:"lastId"`
	HasMore bool         `json:"hasMore"`
	Maps    []*model.Map `json:"maps"`
}

type MapNeighbor struct {
	MapID         int    `json:"id"`
	Name          string `json:"name"`
	IsLocked      bool   `json:"isLocked"`
	RequiredItem  string `json:"requiredItem,omitempty"`
	RequiredLevel int    `json:"requiredLevel"`
}

type MapDetail struct {
	MapID       int                 `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	ImageURL    string              `json:"imageUrl"`
	Neighbors   []*MapNeighbor      `json:"neighbors"`
	Events      []*EventAssociation `json:"events"`
}

type ConnectionUpsert struct {
	NeighborID    int         `json:"neighborId" validate:"required"`
	IsLocked      bool        `json:"isLocked"`
	RequiredItem  null.String `json:"requiredItem" swaggertype:"string"`
	RequiredLevel int         `json:"requiredLevel" validate:"min=0"`
}

// UpdateConnectionsRequest upserts and removes undirected neighbor
// connections of one map.
type UpdateConnectionsRequest struct {
	Connections       []ConnectionUpsert `json:"connections" validate:"omitempty,dive"`
	RemoveConnections []int              `json:"removeConnections"`
}
