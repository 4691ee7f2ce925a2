package handler

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"cybercorner/internal/contract"
	"cybercorner/internal/model"
	"cybercorner/internal/service"
	"cybercorner/internal/upload"
)

// ListServiceRequests returns all intake records, newest first.
func ListServiceRequests(svc service.ServiceRequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(items)
	}
}

// CreateServiceRequest accepts the public multipart intake form. Unlike the
// JSON endpoints this cannot be validated against a contract schema up
// front, so required fields are checked one by one after parsing.
func CreateServiceRequest(svc service.ServiceRequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.CreateServiceRequestInput{
			Name:        strings.TrimSpace(c.FormValue("name")),
			Phone:       strings.TrimSpace(c.FormValue("phone")),
			ServiceType: strings.TrimSpace(c.FormValue("serviceType")),
		}

		for _, f := range []struct {
			field string
			value string
		}{
			{"name", in.Name},
			{"phone", in.Phone},
			{"serviceType", in.ServiceType},
		} {
			if f.value == "" {
				return c.Status(fiber.StatusBadRequest).JSON(errorBody{
					Message: f.field + " is required",
					Field:   f.field,
				})
			}
		}

		if msg := c.FormValue("message"); msg != "" {
			in.Message = &msg
		}
		if fh, err := c.FormFile(upload.FieldName); err == nil {
			in.Document = fh
		}

		created, err := svc.Create(c.UserContext(), in)
		if err != nil {
			if errors.Is(err, upload.ErrTooLarge) || errors.Is(err, upload.ErrBadFileType) {
				return writeError(c, fiber.StatusBadRequest, err.Error())
			}
			return internalError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// UpdateServiceRequestStatus transitions a request between Pending and
// Completed.
func UpdateServiceRequestStatus(svc service.ServiceRequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid id")
		}

		var body any
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid JSON body")
		}
		if err := contract.ServiceRequestUpdateStatus.ValidateInput(body); err != nil {
			return writeValidationError(c, err)
		}

		var payload struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(c.Body(), &payload); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid JSON body")
		}

		updated, err := svc.UpdateStatus(c.UserContext(), id, model.Status(payload.Status))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidStatus):
				return writeError(c, fiber.StatusBadRequest, "Invalid status")
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "Request not found")
			default:
				return internalError(c, err)
			}
		}
		return c.JSON(updated)
	}
}

// DeleteServiceRequest removes a request. Deleting an unknown id is still a
// 204; two racing deletes both succeed.
func DeleteServiceRequest(svc service.ServiceRequestService) fiber.Handler {
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

func pathID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
