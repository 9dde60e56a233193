package model

import (
	"github.com/uptrace/bun"
)

// MapEventAssociation is one weighted event association of a map.
// At most one row exists per (map_id, event_id).
type MapEventAssociation struct {
	bun.BaseModel `bun:"map_event_associations,alias:mea"`

	AssociationID int     `bun:",pk,autoincrement" json:"id"`
	MapID         int     `json:"mapId"`
	EventID       int     `json:"eventId"`
	Probability   float64 `json:"probability"`
}

// AreaEventAssociation is one weighted event association of a map area.
// At most one row exists per (area_id, event_id).
type AreaEventAssociation struct {
	bun.BaseModel `bun:"area_event_associations,alias:aea"`

	AssociationID int     `bun:",pk,autoincrement" json:"id"`
	AreaID        int     `json:"areaId"`
	EventID       int     `json:"eventId"`
	Probability   float64 `json:"probability"`
}
