package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/FantRS/web-chat/internal/model"
)

// ErrorHandler is the single conversion boundary from domain errors to
// HTTP responses. Internal failures collapse into a generic message;
// their detail is logged server-side only.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var validationErr *model.ValidationError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).SendString(validationErr.Error())
	case errors.Is(err, model.ErrEmptyUpdate):
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	case errors.Is(err, model.ErrUnauthorized),
		errors.Is(err, model.ErrMissingToken),
		errors.Is(err, model.ErrInvalidToken):
		return c.Status(fiber.StatusUnauthorized).SendString(err.Error())
	case errors.Is(err, model.ErrNotFound):
		return c.Status(fiber.StatusNotFound).SendString(err.Error())
	case errors.Is(err, model.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).SendString(err.Error())
	case errors.As(err, &fiberErr):
		return c.Status(fiberErr.Code).SendString(fiberErr.Message)
	default:
		return c.Status(fiber.StatusInternalServerError).SendString("internal server error")
	}
}
