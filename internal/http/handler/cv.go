package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/service"
)

// GetCV godoc
// @Summary Get the CV document
// @Tags cv
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} handler.errorPayload
// @Failure 500 {object} handler.errorPayload
// @Router /api/es [get]
// @Router /api/en [get]
func GetCV(svc service.CVService, lang string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := svc.Get(c.UserContext(), lang)
		if err != nil {
			if errors.Is(err, service.ErrCVNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "cv not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		c.Type("json")
		return c.Send(doc)
	}
}
