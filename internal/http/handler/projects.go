package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/service"
)

// PinnedProjects godoc
// @Summary List pinned GitHub repositories
// @Description Upstream failures yield an empty list.
// @Tags github
// @Produce json
// @Success 200 {array} model.PinnedRepository
// @Router /api/github/pinned-projects [get]
func PinnedProjects(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Pinned(c.UserContext()))
	}
}
