package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/mistveil/backoffice-next/internal/app/appconfig"
	"github.com/mistveil/backoffice-next/internal/app/appcontext"
	"github.com/mistveil/backoffice-next/internal/controller"
	"github.com/mistveil/backoffice-next/internal/infra"
	"github.com/mistveil/backoffice-next/internal/pkg/logger"
	"github.com/mistveil/backoffice-next/internal/repo"
	"github.com/mistveil/backoffice-next/internal/server"
	"github.com/mistveil/backoffice-next/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Servers
		server.Module(),

		// Repositories
		repo.Module(),

		// Services
		service.Module(),

		// Controllers
		controller.Module(),

		// fx Extra Options
		fx.StartTimeout(1 * time.Second),
		// StopTimeout is not typically needed, since we're using fiber's Shutdown(),
		// in which fiber has its own IdleTimeout for controlling the shutdown timeout.
		// It acts as a countermeasure in case the fiber app is not properly shutting down.
		fx.StopTimeout(5 * time.Minute),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
