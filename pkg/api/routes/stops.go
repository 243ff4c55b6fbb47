package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/punctuality/pkg/analysis"
)

func StopsRouter(router fiber.Router, analyser *analysis.Analyser) {
	router.Get("/:code", func(c *fiber.Ctx) error {
		code := c.Params("code")

		name, err := analyser.StopName(code)
		if err != nil {
			return sendError(c, err)
		}

		return c.JSON(fiber.Map{
			"code": code,
			"name": name,
		})
	})
}
