package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/mistveil/backoffice-next/cmd/app/server"
	"github.com/mistveil/backoffice-next/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "mvbackoffice",
		Description: "The Mistveil game backoffice backend. Built with Go, fiber, bun and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
