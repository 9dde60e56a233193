package types

import "github.com/goccy/go-json"

type StoryText struct {
	Name string `json:"name"`
	Text string `json:"text" validate:"required"`
}

type CreateEventRequest struct {
	Name        string      `json:"name" validate:"required,max=100"`
	EventType   string      `json:"eventType" validate:"required,max=50"`
	Description string      `json:"description"`
	StoryText   []StoryText `json:"storyText" validate:"omitempty,dive"`
}

type UpdateEventRequest struct {
	Description *string     `json:"description"`
	StoryText   []StoryText `json:"storyText" validate:"omitempty,dive"`
}

type EventResultBrief struct {
	ResultID int    `json:"id"`
	Name     string `json:"name"`
}

type EventDetail struct {
	EventID     int                 `json:"id"`
	Name        string              `json:"name"`
	Type        string              `json:"type"`
	Description string              `json:"description"`
	StoryText   json.RawMessage     `json:"storyText"`
	Results     []*EventResultBrief `json:"results"`
}

type CreateEventResultRequest struct {
	Name      string          `json:"name" validate:"required,max=100"`
	Prior     int             `json:"prior"`
	StoryText []StoryText     `json:"storyText" validate:"omitempty,dive"`
	Condition json.RawMessage `json:"condition" swaggertype:"array,object"`
}

type UpdateEventResultRequest struct {
	Name      *string         `json:"name" validate:"omitempty,max=100"`
	Prior     *int            `json:"prior"`
	StoryText []StoryText     `json:"storyText" validate:"omitempty,dive"`
	Condition json.RawMessage `json:"condition" swaggertype:"array,object"`
}

type EventResultDetail struct {
	ResultID   int             `json:"id"`
	Name       string          `json:"name"`
	Prior      int             `json:"prior"`
	StoryText  json.RawMessage `json:"storyText"`
	Condition  json.RawMessage `json:"condition"`
	RewardPool []*Reward       `json:"rewardPool"`
}
