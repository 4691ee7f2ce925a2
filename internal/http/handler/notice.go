package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"cybercorner/internal/contract"
	"cybercorner/internal/service"
)

// ListNotices is public: the storefront renders announcements without a
// session.
func ListNotices(svc service.NoticeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(items)
	}
}

// CreateNotice publishes a new announcement.
func CreateNotice(svc service.NoticeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body any
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid JSON body")
		}
		if err := contract.NoticeCreate.ValidateInput(body); err != nil {
			return writeValidationError(c, err)
		}

		var payload struct {
			Title   string `json:"title"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(c.Body(), &payload); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid JSON body")
		}

		created, err := svc.Create(c.UserContext(), payload.Title, payload.Message)
		if err != nil {
			return internalError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// DeleteNotice removes an announcement; unknown ids are a 204 like the
// request variant.
func DeleteNotice(svc service.NoticeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid id")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return internalError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
