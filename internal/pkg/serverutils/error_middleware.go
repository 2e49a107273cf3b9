package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"catalog-assistant-be/internal/service"
	"catalog-assistant-be/pkg/dialog"
)

// ErrorHandlerMiddleware maps service errors onto HTTP statuses and renders
// the standard JSON envelope. Unknown errors become 500s.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
		case errors.Is(err, service.ErrSessionNotFound):
			code = fiber.StatusNotFound
		case errors.Is(err, dialog.ErrSessionBusy):
			code = fiber.StatusConflict
		}

		return ctx.Status(code).JSON(fiber.Map{"message": err.Error()})
	}
}
