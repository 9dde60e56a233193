package types

// EventAssociation is one weighted event association of a map or map area,
// with the event name resolved for display.
type EventAssociation struct {
	AssociationID int     `json:"id"`
	EventID       int     `json:"eventId"`
	EventName     string  `json:"eventName"`
	Probability   float64 `json:"probability"`
}

type AddEventAssociationRequest struct {
	EventID     int     `json:"eventId" validate:"required" example:"42"`
	Probability float64 `json:"probability" validate:"min=0,max=1" example:"0.2"`
}

type EventWeightUpsert struct {
	EventID     int     `json:"eventId" validate:"required" example:"42"`
	Probability float64 `json:"probability" validate:"min=0,max=1" example:"0.2"`
}

// BatchEventsRequest applies a partial update to an event association table:
// upserts, removals, and an optional normalization of the remaining
// probabilities.
type BatchEventsRequest struct {
	Upsert    []EventWeightUpsert `json:"upsert" validate:"omitempty,dive"`
	Remove    []int               `json:"remove"`
	Normalize bool                `json:"normalize"`
}
