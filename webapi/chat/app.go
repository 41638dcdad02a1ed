package chat

import (
	"github.com/gofiber/fiber/v2"

	chatsvc "github.com/archlab/patterns/pkg/service/chat"
)

// NewApp builds the Fiber application serving the chat endpoints.
func NewApp(svc *chatsvc.Service) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "chat"})
	Routes(app, svc)
	return app
}
