package routes

import (
	"io"

	"github.com/atomo10/atomo/pkg/ocr"
	"github.com/gofiber/fiber/v2"
)

func OCRRouter(router fiber.Router, parser ocr.Parser) {
	router.Post("/upload", func(c *fiber.Ctx) error {
		file, err := c.FormFile("image")
		if err != nil {
			return badRequest("An image file must be uploaded")
		}

		upload, err := file.Open()
		if err != nil {
			return err
		}
		defer upload.Close()

		content, err := io.ReadAll(upload)
		if err != nil {
			return err
		}

		timetable, err := parser.Parse(content)
		if err != nil {
			return err
		}

		return c.JSON(timetable)
	})
}
