package api

import (
	"github.com/atomo10/atomo/pkg/api/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func NewServer(application *Application) *fiber.App {
	webApp := fiber.New(fiber.Config{
		AppName:      "Atomo10",
		BodyLimit:    16 * 1024 * 1024,
		ErrorHandler: routes.ErrorHandler,
	})
	webApp.Use(NewLogger(application.Metrics))
	webApp.Use(recover.New())
	webApp.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
	}))

	webApp.Get("/", routes.Root)
	webApp.Get("/version", routes.APIVersion)
	webApp.Get("/health", routes.HealthHandler(application.Health))
	webApp.Get("/metrics", adaptor.HTTPHandler(application.Metrics.Handler()))

	group := webApp.Group("/api")

	routes.LinesRouter(group.Group("/lines"), application.Lines, application.Metrics)
	routes.OCRRouter(group.Group("/ocr"), application.OCR)

	return webApp
}

func SetupServer(listen string, application *Application) error {
	return NewServer(application).Listen(listen)
}
