package web

import (
	"net/http"
	"time"

	"poker-stack-go/internal/metrics"
	"poker-stack-go/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const prefixAPI = "/api/"

// NewApp builds the fiber application with middleware and routes installed
func NewApp(cfg models.ServerConfig, handler *Handler, m *metrics.Metrics, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "poker-stack",
		ErrorHandler:          ErrorHandler(logger),
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(RequestLogger(logger))
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(staticFiles()),
		MaxAge: 3600,
	}))

	SetupRoutes(app, handler)
	app.Get("/metrics", m.Handler())

	return app
}

func SetupRoutes(app *fiber.App, handler *Handler) {
	app.Get("/ping", handler.Pong)
	app.Get("/", handler.Index)
	app.Post("/players", handler.CreatePlayer)
	app.Post("/transactions", handler.CreateTransaction)
	app.Get(prefixAPI+"players", handler.ListPlayers)
	app.Get(prefixAPI+"transactions", handler.ListTransactions)
}

// RequestLogger logs one line per request once the response status is known
func RequestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
			err = nil
		}

		requestId, _ := c.Locals("requestid").(string)
		logger.Info("HTTP request",
			zap.String("request_id", requestId),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)))
		return err
	}
}
