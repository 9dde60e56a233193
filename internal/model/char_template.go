package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type CharTemplate struct {
	bun.BaseModel `bun:"char_templates,alias:ct"`

	TemplateID  int         `bun:",pk,autoincrement" json:"id"`
	Name        string      `json:"name"`
	Rarity      int         `json:"rarity"`
	Description null.String `json:"description" swaggertype:"string"`
	ImageSmURL  null.String `bun:"image_sm_url" json:"imageSmUrl" swaggertype:"string"`
	ImageLgURL  null.String `bun:"image_lg_url" json:"imageLgUrl" swaggertype:"string"`

	BaseHp  int `json:"baseHp"`
	BaseMp  int `json:"baseMp"`
	BaseAtk int `json:"baseAtk"`
	BaseSpd int `json:"baseSpd"`
	BaseDef int `json:"baseDef"`
}
