// Package chat exposes the chat service over HTTP.
package chat

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	domain "github.com/archlab/patterns/pkg/domain/chat"
	chatsvc "github.com/archlab/patterns/pkg/service/chat"
	"github.com/archlab/patterns/webapi/common"
)

// Routes registers the chat endpoints:
//
//   - POST /conversations               : start a conversation
//   - GET  /conversations               : list conversations
//   - GET  /conversations/:id           : fetch one conversation with stats
//   - POST /conversations/:id/messages  : append a message (400 when closed)
//   - POST /conversations/:id/close     : close a conversation (idempotent)
func Routes(app *fiber.App, svc *chatsvc.Service) {
	app.Post("/conversations", CreateConversation(svc))
	app.Get("/conversations", ListConversations(svc))
	app.Get("/conversations/:id", GetConversation(svc))
	app.Post("/conversations/:id/messages", PostMessage(svc))
	app.Post("/conversations/:id/close", CloseConversation(svc))
}

// CreateConversation handles POST /conversations.
func CreateConversation(svc *chatsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateConversationRequest](c)
		if input == nil {
			return err
		}
		conv, err := svc.Start(c.UserContext(), input.Title)
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to start conversation", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Conversation started", toConversationResponse(conv))
	}
}

// ListConversations handles GET /conversations.
func ListConversations(svc *chatsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		all, err := svc.List(c.UserContext())
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to list conversations", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Conversations",
			lo.Map(all, func(conv *domain.Conversation, _ int) ConversationResponse {
				return toConversationResponse(conv)
			}))
	}
}

// GetConversation handles GET /conversations/:id.
func GetConversation(svc *chatsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c, "id")
		if id == 0 {
			return err
		}
		conv, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to get conversation", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Conversation", toConversationResponse(conv))
	}
}

// PostMessage handles POST /conversations/:id/messages.
func PostMessage(svc *chatsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c, "id")
		if id == 0 {
			return err
		}
		input, err := common.BindAndValidate[PostMessageRequest](c)
		if input == nil {
			return err
		}
		msg, err := svc.PostMessage(c.UserContext(), id, input.Sender, input.Text)
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to post message", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Message posted", toMessageResponse(msg))
	}
}

// CloseConversation handles POST /conversations/:id/close.
func CloseConversation(svc *chatsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c, "id")
		if id == 0 {
			return err
		}
		conv, err := svc.Close(c.UserContext(), id)
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to close conversation", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Conversation closed", toConversationResponse(conv))
	}
}
