package types

import "gopkg.in/guregu/null.v3"

type CreateItemRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	ItemType    string `json:"itemType" validate:"required,oneof=equipment consumable material quest"`
	Price       int    `json:"price" validate:"min=0"`
	Rarity      int    `json:"rarity" validate:"min=0"`

	Slot     null.String `json:"slot" swaggertype:"string"`
	AtkBonus null.Int    `json:"atkBonus" swaggertype:"integer"`
	DefBonus null.Int    `json:"defBonus" swaggertype:"integer"`

	HpRestore null.Int `json:"hpRestore" swaggertype:"integer"`
	MpRestore null.Int `json:"mpRestore" swaggertype:"integer"`
}

type UpdateItemRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	ItemType    string `json:"itemType" validate:"required,oneof=equipment consumable material quest"`
	Price       int    `json:"price" validate:"min=0"`
	Rarity      int    `json:"rarity" validate:"min=0"`

	Slot     null.String `json:"slot" swaggertype:"string"`
	AtkBonus null.Int    `json:"atkBonus" swaggertype:"integer"`
	DefBonus null.Int    `json:"defBonus" swaggertype:"integer"`

	HpRestore null.Int `json:"hpRestore" swaggertype:"integer"`
	MpRestore null.Int `json:"mpRestore" swaggertype:"integer"`
}
