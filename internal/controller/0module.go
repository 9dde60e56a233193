package controller

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("controller",
		fx.Provide(NewAuthRequired),
		fx.Invoke(
			RegisterMap,
			RegisterItem,
			RegisterMeta,
			RegisterAuth,
			RegisterUser,
			RegisterEvent,
			RegisterMapArea,
			RegisterMonster,
			RegisterCharTemplate,
		),
	)
}
