package progressValidator

import (
	"strings"

	"clubhub/middleware"

	"github.com/gofiber/fiber/v2"
)

func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ModuleID  string `json:"module_id"`
			Completed bool   `json:"completed"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request body!")
		}

		if strings.TrimSpace(reqData.ModuleID) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"module_id": "Module id is required!"})
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
