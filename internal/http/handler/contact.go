package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/config"
	"portfolioapi/internal/model"
	"portfolioapi/internal/service"
)

// SubmitContact godoc
// @Summary Relay a contact message to the site owner
// @Tags contact
// @Accept json
// @Produce json
// @Param request body model.ContactRequest true "Contact form"
// @Success 200 {object} map[string]string
// @Failure 400 {object} handler.errorPayload
// @Failure 429 {object} handler.errorPayload
// @Failure 500 {object} handler.errorPayload
// @Router /api/contact [post]
func SubmitContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.ContactRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_CONTACT", "invalid request body")
		}

		if err := svc.Submit(c.UserContext(), req); err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidContact):
				return writeError(c, fiber.StatusBadRequest, "INVALID_CONTACT", err.Error())
			case errors.Is(err, config.ErrMailNotConfigured):
				return writeError(c, fiber.StatusInternalServerError, "MAIL_NOT_CONFIGURED", err.Error())
			case errors.Is(err, service.ErrMailDelivery):
				return writeError(c, fiber.StatusInternalServerError, "MAIL_DELIVERY_FAILED", err.Error())
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(fiber.Map{"message": service.ContactReceivedMessage})
	}
}
