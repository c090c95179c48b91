package routes

import (
	"github.com/atomo10/atomo/pkg/ctdf"
	"github.com/gofiber/fiber/v2"
)

type stopPatchRequest struct {
	Index *int `json:"index"`
	ctdf.StopPatch
}

type stopDeleteRequest struct {
	Index *int `json:"index"`
}

func (r *linesRoutes) appendStop(c *fiber.Ctx) error {
	var stop ctdf.Stop
	if err := c.BodyParser(&stop); err != nil {
		return badRequest("Body must be a JSON stop")
	}

	if err := r.repository.AppendStop(c.UserContext(), c.Params("identifier"), &stop); err != nil {
		return err
	}

	return ok(c)
}

func (r *linesRoutes) patchStop(c *fiber.Ctx) error {
	var request stopPatchRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest("Body must be a JSON stop patch")
	}
	if request.Index == nil {
		return badRequest("Parameter index is required")
	}

	if err := r.repository.PatchStopAt(c.UserContext(), c.Params("identifier"), *request.Index, &request.StopPatch); err != nil {
		return err
	}

	return ok(c)
}

func (r *linesRoutes) deleteStop(c *fiber.Ctx) error {
	var request stopDeleteRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest("Body must be a JSON object with an index")
	}
	if request.Index == nil {
		return badRequest("Parameter index is required")
	}

	if err := r.repository.DeleteStopAt(c.UserContext(), c.Params("identifier"), *request.Index); err != nil {
		return err
	}

	return ok(c)
}
