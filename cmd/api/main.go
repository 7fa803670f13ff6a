package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"portfolioapi/docs"
	"portfolioapi/internal/config"
	"portfolioapi/internal/github"
	handlers "portfolioapi/internal/http/handler"
	"portfolioapi/internal/http/middleware"
	"portfolioapi/internal/logging"
	"portfolioapi/internal/mail"
	"portfolioapi/internal/otel"
	"portfolioapi/internal/repository/jsonstore"
	"portfolioapi/internal/service"
	"portfolioapi/internal/storage"
)

// @title Portfolio API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()

	logger, closeLog := logging.Init(cfg.Log)
	defer closeLog.Close()

	if err := run(cfg, loc, logger); err != nil {
		logger.Error("server stopped", "error", err)
		closeLog.Close()
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, loc *time.Location, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logging.WithComponent(logger, "otel"))
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("tracing shutdown", "error", err)
		}
	}()

	// Blog partitions and CV documents live on the same backend kind
	backends, err := storage.Open(cfg.Storage, cfg.MinIO)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	posts, err := jsonstore.NewPostStore(backends.Posts,
		jsonstore.WithLocation(loc),
		jsonstore.WithLogger(logging.WithComponent(logger, "post_store")),
		jsonstore.WithRegisterer(reg),
	)
	if err != nil {
		return err
	}

	projects, err := service.NewProjectService(github.NewClient(cfg.GitHub), logging.WithComponent(logger, "github"), reg)
	if err != nil {
		return err
	}

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(loc))
	app.Use(promMiddleware.Handler())
	app.Use(middleware.CORS())

	handlers.RegisterRoutes(app, handlers.Deps{
		Storage:        backends.Posts,
		Blog:           service.NewBlogService(posts),
		CV:             service.NewCVService(backends.CV),
		Contact:        service.NewContactService(cfg.Mail, mail.NewSMTPSender(cfg.Mail), logging.WithComponent(logger, "contact")),
		Projects:       projects,
		ContactLimiter: middleware.NewIPRateLimiter(cfg.ContactRatePerMin),
		Metrics:        reg,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr, "storage_backend", cfg.Storage.Backend)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
