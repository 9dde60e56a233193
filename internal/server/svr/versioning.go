package svr

import (
	"github.com/gofiber/fiber/v2"
)

// BO is the endpoint group serving the backoffice API.
type BO struct {
	fiber.Router
}

// Meta is the endpoint group serving meta endpoints such as health checks.
type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) (*BO, *Meta) {
	bo := app.Group("/bo_api")
	meta := app.Group("/")

	return &BO{Router: bo}, &Meta{Router: meta}
}
