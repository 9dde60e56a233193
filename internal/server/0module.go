package server

import (
	"go.uber.org/fx"

	"github.com/mistveil/backoffice-next/internal/server/httpserver"
	"github.com/mistveil/backoffice-next/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
