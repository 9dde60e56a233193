package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Item struct {
	bun.BaseModel `bun:"items,alias:it"`

	ItemID      int    `bun:",pk,autoincrement" json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ItemType    string `json:"itemType"`
	Price       int    `json:"price"`
	Rarity      int    `json:"rarity"`

	// equipment-only fields
	Slot     null.String `json:"slot" swaggertype:"string"`
	AtkBonus null.Int    `json:"atkBonus" swaggertype:"integer"`
	DefBonus null.Int    `json:"defBonus" swaggertype:"integer"`

	// consumable-only fields
	HpRestore null.Int `json:"hpRestore" swaggertype:"integer"`
	MpRestore null.Int `json:"mpRestore" swaggertype:"integer"`
}
