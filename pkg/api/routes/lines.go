package routes

import (
	"github.com/atomo10/atomo/pkg/ctdf"
	"github.com/atomo10/atomo/pkg/lines"
	"github.com/atomo10/atomo/pkg/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
)

type linesRoutes struct {
	repository *lines.Repository
	metrics    *metrics.Collector
}

func LinesRouter(router fiber.Router, repository *lines.Repository, collector *metrics.Collector) {
	routes := &linesRoutes{
		repository: repository,
		metrics:    collector,
	}

	router.Post("/", routes.createLine)
	router.Get("/", routes.listLines)
	router.Get("/:identifier", routes.getLine)

	router.Post("/:identifier/stops", routes.appendStop)
	router.Patch("/:identifier/stops", routes.patchStop)
	router.Delete("/:identifier/stops", routes.deleteStop)

	router.Put("/:identifier/schedules", routes.replaceSchedules)

	router.Get("/:identifier/eta", routes.getETA)
}

func (r *linesRoutes) createLine(c *fiber.Ctx) error {
	var line ctdf.Line
	if err := c.BodyParser(&line); err != nil {
		return badRequest("Body must be a JSON line")
	}
	line.PrimaryIdentifier = ""

	identifier, err := r.repository.CreateLine(c.UserContext(), &line)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"id": identifier,
	})
}

func (r *linesRoutes) listLines(c *fiber.Ctx) error {
	lines, err := r.repository.ListLines(c.UserContext())
	if err != nil {
		return err
	}

	linesReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, lines)
	if err != nil {
		return err
	}

	return c.JSON(linesReduced)
}

func (r *linesRoutes) getLine(c *fiber.Ctx) error {
	line, err := r.repository.GetLine(c.UserContext(), c.Params("identifier"))
	if err != nil {
		return err
	}

	lineReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, line)
	if err != nil {
		return err
	}

	return c.JSON(lineReduced)
}

func ok(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"ok": true,
	})
}
