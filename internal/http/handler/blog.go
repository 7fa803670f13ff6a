package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"portfolioapi/internal/service"
	"portfolioapi/internal/storage"
)

// ListPosts godoc
// @Summary List blog posts
// @Tags blog
// @Produce json
// @Param lang query string false "Language partition" default(es)
// @Success 200 {array} model.BlogPost
// @Failure 400 {object} handler.errorPayload
// @Failure 500 {object} handler.errorPayload
// @Router /api/blog/posts [get]
func ListPosts(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		posts, err := svc.List(c.UserContext(), utils.CopyString(c.Query("lang")))
		if err != nil {
			return blogError(c, err)
		}
		return c.JSON(posts)
	}
}

// GetPost godoc
// @Summary Get a blog post by id
// @Tags blog
// @Produce json
// @Param post_id path string true "Post id"
// @Param lang query string false "Language partition" default(es)
// @Success 200 {object} model.BlogPost
// @Failure 404 {object} handler.errorPayload
// @Failure 500 {object} handler.errorPayload
// @Router /api/blog/posts/{post_id} [get]
func GetPost(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		post, err := svc.Get(c.UserContext(), utils.CopyString(c.Query("lang")), utils.CopyString(c.Params("post_id")))
		if err != nil {
			return blogError(c, err)
		}
		return c.JSON(post)
	}
}

func blogError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrPostNotFound), errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "Post no encontrado")
	case errors.Is(err, storage.ErrInvalidKey):
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid lang")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
