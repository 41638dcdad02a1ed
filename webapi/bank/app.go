package bank

import (
	"github.com/gofiber/fiber/v2"

	banksvc "github.com/archlab/patterns/pkg/service/bank"
)

// NewApp builds the Fiber application serving the bank endpoints.
func NewApp(svc *banksvc.Service) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "bank"})
	Routes(app, svc)
	return app
}
