package types

// Reward is one weighted item association of a reward pool, with the item
// name resolved for display.
type Reward struct {
	RewardID    int     `json:"id"`
	ItemID      int     `json:"itemId"`
	ItemName    string  `json:"itemName"`
	Probability float64 `json:"probability"`
}

type RewardUpsert struct {
	ItemID      int     `json:"itemId" validate:"required" example:"13"`
	Probability float64 `json:"probability" validate:"min=0,max=1" example:"0.35"`
}

type AddRewardRequest struct {
	ItemID      int     `json:"itemId" validate:"required" example:"13"`
	Probability float64 `json:"probability" validate:"min=0,max=1" example:"0.35"`
}

type UpdateProbabilityRequest struct {
	Probability float64 `json:"probability" validate:"min=0,max=1" example:"0.5"`
}

// BatchRewardsRequest applies a partial update to a reward pool: upserts,
// removals, and an optional normalization of the remaining probabilities.
type BatchRewardsRequest struct {
	Upsert    []RewardUpsert `json:"upsert" validate:"omitempty,dive"`
	Remove    []int          `json:"remove"`
	Normalize bool           `json:"normalize"`
}
