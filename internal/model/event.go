package model

import (
	"github.com/goccy/go-json"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Event struct {
	bun.BaseModel `bun:"events,alias:ev"`

	EventID     int         `bun:",pk,autoincrement" json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Description null.String `json:"description" swaggertype:"string"`
}

// GeneralEventLogic holds the narrative payload of an event: its story text
// fragments plus the branch conditions leading to its results.
type GeneralEventLogic struct {
	bun.BaseModel `bun:"general_event_logics,alias:gel"`

	LogicID    int             `bun:",pk,autoincrement" json:"id"`
	EventID    int             `json:"eventId"`
	StoryText  json.RawMessage `json:"storyText" swaggertype:"array,object"`
	Conditions json.RawMessage `bun:"condition_json" json:"conditions" swaggertype:"array,object"`
}

// EventResult is one outcome of an event. Each result owns a reward pool
// holding its weighted item outcomes.
type EventResult struct {
	bun.BaseModel `bun:"event_results,alias:er"`

	ResultID            int             `bun:",pk,autoincrement" json:"id"`
	Name                string          `json:"name"`
	GeneralEventLogicID int             `json:"generalEventLogicId"`
	RewardPoolID        int             `json:"rewardPoolId"`
	Prior               int             `json:"prior"`
	StoryText           json.RawMessage `json:"storyText" swaggertype:"array,object"`
	Conditions          json.RawMessage `bun:"condition_json" json:"conditions" swaggertype:"array,object"`
}
