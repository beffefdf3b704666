package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"business-chat-be/internal/apperrors"
)

// ErrorHandlerMiddleware translates the error taxonomy into HTTP
// status codes: validation 400, unknown session 404, everything else
// (collaborator failures included) 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *apperrors.ValidationError
		var unknownSessionErr *apperrors.UnknownSessionError
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &validationErr):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(validationErr.Message))
		case errors.As(err, &unknownSessionErr):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(unknownSessionErr.Error()))
		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error"))
		}
	}
}
