// Package blog exposes the blog service over HTTP. The handlers are
// transaction scripts: each one owns its whole operation and drives the
// storage gateway directly, with no service layer in between. That is the
// pattern this service demonstrates.
package blog

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	domain "github.com/archlab/patterns/pkg/domain/blog"
	"github.com/archlab/patterns/pkg/repository"
	"github.com/archlab/patterns/webapi/common"
)

// Routes registers standard CRUD over /posts.
func Routes(app *fiber.App, posts repository.PostRepository) {
	app.Post("/posts", CreatePost(posts))
	app.Get("/posts", ListPosts(posts))
	app.Get("/posts/:id", GetPost(posts))
	app.Put("/posts/:id", UpdatePost(posts))
	app.Delete("/posts/:id", DeletePost(posts))
}

// CreatePost handles POST /posts.
func CreatePost(posts repository.PostRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[PostRequest](c)
		if input == nil {
			return err
		}
		post, err := posts.Create(c.UserContext(), input.Title, input.Content)
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to create post", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Post created", toPostResponse(post))
	}
}

// ListPosts handles GET /posts.
func ListPosts(posts repository.PostRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		all, err := posts.List(c.UserContext())
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to list posts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Posts",
			lo.Map(all, func(p *domain.Post, _ int) PostResponse {
				return toPostResponse(p)
			}))
	}
}

// GetPost handles GET /posts/:id.
func GetPost(posts repository.PostRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c, "id")
		if id == 0 {
			return err
		}
		post, err := posts.Get(c.UserContext(), id)
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to get post", err)
		}
		if post == nil {
			return common.DomainErrorJSON(c, "Post not found", domain.ErrPostNotFound)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Post", toPostResponse(post))
	}
}

// UpdatePost handles PUT /posts/:id.
func UpdatePost(posts repository.PostRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c, "id")
		if id == 0 {
			return err
		}
		input, err := common.BindAndValidate[PostRequest](c)
		if input == nil {
			return err
		}
		post, err := posts.Update(c.UserContext(), id, input.Title, input.Content)
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to update post", err)
		}
		if post == nil {
			return common.DomainErrorJSON(c, "Post not found", domain.ErrPostNotFound)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Post updated", toPostResponse(post))
	}
}

// DeletePost handles DELETE /posts/:id.
func DeletePost(posts repository.PostRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c, "id")
		if id == 0 {
			return err
		}
		deleted, err := posts.Delete(c.UserContext(), id)
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to delete post", err)
		}
		if !deleted {
			return common.DomainErrorJSON(c, "Post not found", domain.ErrPostNotFound)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Post deleted", nil)
	}
}
