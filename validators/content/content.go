package contentValidator

import (
	"strings"

	"clubhub/middleware"

	"github.com/gofiber/fiber/v2"
)

func Leadership() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string  `json:"name"`
			Position    string  `json:"position"`
			PhotoURL    *string `json:"photo_url"`
			OrderNumber int     `json:"order_number"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request body!")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if strings.TrimSpace(reqData.Position) == "" {
			errors["position"] = "Position is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLeadership", reqData)
		return c.Next()
	}
}

func Announcement() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title    string  `json:"title"`
			Content  string  `json:"content"`
			ImageURL *string `json:"image_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request body!")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Content) == "" {
			errors["content"] = "Content is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAnnouncement", reqData)
		return c.Next()
	}
}

func SuccessEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string  `json:"title"`
			Description string  `json:"description"`
			ImageURL    *string `json:"image_url"`
			Date        string  `json:"date"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request body!")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Date) == "" {
			errors["date"] = "Date is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSuccessEvent", reqData)
		return c.Next()
	}
}

func Homepage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Section string `json:"section"`
			Content string `json:"content"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request body!")
		}

		if strings.TrimSpace(reqData.Section) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"section": "Section is required!"})
		}

		c.Locals("validatedHomepage", reqData)
		return c.Next()
	}
}

func Coach() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         string  `json:"name"`
			Bio          string  `json:"bio"`
			Achievements string  `json:"achievements"`
			ImageURL     *string `json:"image_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request body!")
		}

		if strings.TrimSpace(reqData.Name) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"name": "Name is required!"})
		}

		c.Locals("validatedCoach", reqData)
		return c.Next()
	}
}
