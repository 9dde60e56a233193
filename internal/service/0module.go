package service

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("service", fx.Provide(
		NewMap,
		NewItem,
		NewHealth,
		NewEvent,
		NewAccount,
		NewMapArea,
		NewMonster,
		NewRewardPool,
		NewCharTemplate,
		NewEventAssociation,
	))
}
