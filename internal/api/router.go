package api

import (
	"os"
	"path/filepath"

	"txn-dashboard/docs"
	"txn-dashboard/internal/api/handlers"
	"txn-dashboard/internal/dto"
	"txn-dashboard/pkg/config"
	"txn-dashboard/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func SetupRouter(txHandler *handlers.TransactionHandler, serverCfg *config.ServerConfig, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(middleware.RequestLogger(appLogger))

	_ = docs.SwaggerInfo // registers the swagger spec via init()
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok"})
	})

	// Dashboard client build, when deployed next to the binary
	if webStaticPath := findWebStaticPath(appLogger); webStaticPath != "" {
		appLogger.Info("Serving dashboard client", zap.String("path", webStaticPath))
		app.Static("/static", webStaticPath)
		app.Get("/", func(c *fiber.Ctx) error {
			return c.SendFile(filepath.Join(webStaticPath, "index.html"))
		})
	} else {
		appLogger.Warn("Web static directory not found, dashboard client will not be served")
	}

	api := app.Group("/api")
	api.Get("/initialize-database", txHandler.InitializeDatabase)
	api.Get("/transactions", txHandler.ListTransactions)
	api.Get("/statistics", txHandler.Statistics)
	api.Get("/bar-chart", txHandler.BarChart)
	api.Get("/pie-chart", txHandler.PieChart)
	api.Get("/combined-data", txHandler.CombinedData)

	return app
}

// findWebStaticPath looks for web/static/index.html relative to the
// working directory.
func findWebStaticPath(logger *zap.Logger) string {
	paths := []string{
		"web/static",
		"../web/static",
		"../../web/static",
	}

	for _, path := range paths {
		if fileExists(filepath.Join(path, "index.html")) {
			return path
		}
		logger.Debug("Tried web static path", zap.String("path", path))
	}

	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
