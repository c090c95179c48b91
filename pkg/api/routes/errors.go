package routes

import (
	"errors"

	"github.com/atomo10/atomo/pkg/ctdf"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandler renders every error as {"error", "kind"}. Only domain errors have their message shown.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	kind := ctdf.ErrorKind(err)
	message := "internal server error"

	var fiberError *fiber.Error

	switch {
	case errors.As(err, &fiberError):
		code = fiberError.Code
		message = fiberError.Message
		switch code {
		case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
			kind = "validation"
		case fiber.StatusNotFound:
			kind = "not_found"
		default:
			kind = "request"
		}
	case errors.Is(err, ctdf.ErrNotFound):
		code = fiber.StatusNotFound
		message = err.Error()
	case errors.Is(err, ctdf.ErrMalformedIdentifier),
		errors.Is(err, ctdf.ErrInvalidIndex),
		errors.Is(err, ctdf.ErrValidation):
		code = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, ctdf.ErrConflict):
		code = fiber.StatusConflict
		message = err.Error()
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("Request failed")
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
		"kind":  kind,
	})
}

func badRequest(message string) error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}
