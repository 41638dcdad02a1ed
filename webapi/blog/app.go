package blog

import (
	"github.com/gofiber/fiber/v2"

	"github.com/archlab/patterns/pkg/repository"
)

// NewApp builds the Fiber application serving the blog endpoints.
func NewApp(posts repository.PostRepository) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "blog"})
	Routes(app, posts)
	return app
}
