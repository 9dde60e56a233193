package types

import "gopkg.in/guregu/null.v3"

type CreateCharTemplateRequest struct {
	Name        string      `json:"name" validate:"required,max=100"`
	Rarity      int         `json:"rarity" validate:"min=0"`
	Description null.String `json:"description" swaggertype:"string"`
	ImageSmURL  null.String `json:"imageSmUrl" swaggertype:"string"`
	ImageLgURL  null.String `json:"imageLgUrl" swaggertype:"string"`

	BaseHp  int `json:"baseHp" validate:"min=1"`
	BaseMp  int `json:"baseMp" validate:"min=1"`
	BaseAtk int `json:"baseAtk" validate:"min=1"`
	BaseSpd int `json:"baseSpd" validate:"min=1"`
	BaseDef int `json:"baseDef" validate:"min=1"`
}

// UpdateCharTemplateRequest is a typed partial update: nil fields are left
// untouched.
type UpdateCharTemplateRequest struct {
	Name        *string     `json:"name" validate:"omitempty,max=100"`
	Rarity      *int        `json:"rarity" validate:"omitempty,min=0"`
	Description null.String `json:"description" swaggertype:"string"`
	ImageSmURL  null.String `json:"imageSmUrl" swaggertype:"string"`
	ImageLgURL  null.String `json:"imageLgUrl" swaggertype:"string"`

	BaseHp  *int `json:"baseHp" validate:"omitempty,min=1"`
	BaseMp  *int `json:"baseMp" validate:"omitempty,min=1"`
	BaseAtk *int `json:"baseAtk" validate:"omitempty,min=1"`
	BaseSpd *int `json:"baseSpd" validate:"omitempty,min=1"`
	BaseDef *int `json:"baseDef" validate:"omitempty,min=1"`
}
