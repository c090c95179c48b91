package routes

import "github.com/gofiber/fiber/v2"

type schedulesRequest struct {
	Schedules *[]string `json:"schedules"`
}

func (r *linesRoutes) replaceSchedules(c *fiber.Ctx) error {
	var request schedulesRequest
	if err := c.BodyParser(&request); err != nil || request.Schedules == nil {
		return badRequest("Body must contain a schedules list")
	}

	if err := r.repository.ReplaceSchedules(c.UserContext(), c.Params("identifier"), *request.Schedules); err != nil {
		return err
	}

	return ok(c)
}
