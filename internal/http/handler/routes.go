package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"portfolioapi/internal/http/middleware"
	"portfolioapi/internal/service"
)

// Deps groups what the routes need. Nil optional fields disable their route.
type Deps struct {
	Storage        Pinger
	Blog           service.BlogService
	CV             service.CVService
	Contact        service.ContactService
	Projects       service.ProjectService
	ContactLimiter *middleware.IPRateLimiter
	Metrics        prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.Storage))
	app.Get("/healthz", LivenessProbe())

	if d.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Metrics, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	for _, lang := range service.CVLangs {
		api.Get("/"+lang, GetCV(d.CV, lang))
	}

	api.Get("/blog/posts", ListPosts(d.Blog))
	api.Get("/blog/posts/:post_id", GetPost(d.Blog))

	contact := []fiber.Handler{SubmitContact(d.Contact)}
	if d.ContactLimiter != nil {
		contact = append([]fiber.Handler{d.ContactLimiter.Handler()}, contact...)
	}
	api.Post("/contact", contact...)

	api.Get("/github/pinned-projects", PinnedProjects(d.Projects))
}
