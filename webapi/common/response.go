// Package common holds the response shapes and error translation shared by
// the three services' HTTP surfaces.
package common

import (
	"errors"

	"github.com/archlab/patterns/pkg/domain/bank"
	"github.com/archlab/patterns/pkg/domain/blog"
	"github.com/archlab/patterns/pkg/domain/chat"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Response is the standard success envelope.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// SuccessResponseJSON writes a success envelope with the given status.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemJSON writes a problem+json response with the given status.
func ProblemJSON(c *fiber.Ctx, status int, title, detail string) error {
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(status).JSON(ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	})
}

// DomainErrorJSON translates a domain error to a problem response.
func DomainErrorJSON(c *fiber.Ctx, title string, err error) error {
	return ProblemJSON(c, ErrorToStatusCode(err), title, err.Error())
}

// ErrorToStatusCode maps domain errors to HTTP status codes. Everything in
// the taxonomy is a client error; anything unknown is a 500.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, bank.ErrAccountNotFound),
		errors.Is(err, bank.ErrSourceAccountNotFound),
		errors.Is(err, bank.ErrDestinationAccountNotFound),
		errors.Is(err, blog.ErrPostNotFound),
		errors.Is(err, chat.ErrConversationNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, bank.ErrAmountMustBePositive),
		errors.Is(err, bank.ErrNegativeInitialBalance),
		errors.Is(err, bank.ErrInsufficientFunds),
		errors.Is(err, chat.ErrConversationClosed):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

var validate = validator.New()

// BindAndValidate parses the request body into T and validates it. On
// failure it writes the error response and returns a non-nil error, so the
// handler can just return it.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := validate.Struct(&input); err != nil {
		return nil, ProblemJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error())
	}
	return &input, nil
}

// ParamID reads a positive integer id from the named route parameter.
func ParamID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, ProblemJSON(c, fiber.StatusBadRequest, "Invalid id", "id must be a positive integer")
	}
	return uint(id), nil
}
