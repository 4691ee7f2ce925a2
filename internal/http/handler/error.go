package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"cybercorner/internal/contract"
)

// errorBody is the uniform error response shape: {message, field?}. Field is
// only set on validation failures that can be pinned to one property.
type errorBody struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorBody{Message: message})
}

// writeValidationError translates a contract violation into a 400 with the
// dotted field path of the first offending property.
func writeValidationError(c *fiber.Ctx, err error) error {
	var verr *contract.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody{Message: verr.Message, Field: verr.Field})
	}
	return writeError(c, fiber.StatusBadRequest, err.Error())
}

// internalError logs the real error to stderr and hides it from the client.
func internalError(c *fiber.Ctx, err error) error {
	log.Printf("internal error on %s %s: %v", c.Method(), c.Path(), err)
	return writeError(c, fiber.StatusInternalServerError, "Internal server error")
}

// ErrorHandler is the fiber-level last resort for errors no handler caught
// (unknown routes, oversized bodies, panics surfaced as errors).
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "Bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "Not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "Method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "Request body too large")
		default:
			log.Printf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
			return writeError(c, status, "Internal server error")
		}
	}
}
