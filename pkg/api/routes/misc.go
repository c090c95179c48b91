package routes

import (
	"context"

	"github.com/atomo10/atomo/pkg/database"
	"github.com/gofiber/fiber/v2"
)

func Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":   "Atomo10",
		"status": "ok",
	})
}

func HealthHandler(health func(ctx context.Context) *database.Health) fiber.Handler {
	return func(c *fiber.Ctx) error {
		databaseHealth := health(c.UserContext())

		if !databaseHealth.Connected {
			c.Status(fiber.StatusServiceUnavailable)
		}

		return c.JSON(fiber.Map{
			"backend":  "running",
			"database": databaseHealth,
		})
	}
}
