package courseValidator

import (
	"strings"

	"clubhub/middleware"
	"clubhub/models"

	"github.com/gofiber/fiber/v2"
)

func validCourseType(courseType string) bool {
	switch courseType {
	case models.CourseTypeBeginner, models.CourseTypeAdvanced, models.CourseTypeMentorship:
		return true
	}
	return false
}

// Course validates the create/update body shared by both admin operations.
func Course() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Outline     string `json:"outline"`
			CourseType  string `json:"course_type"`
			OrderNumber int    `json:"order_number"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request body!")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}
		if !validCourseType(reqData.CourseType) {
			errors["course_type"] = "Course type must be beginner, advanced or mentorship!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID    string  `json:"course_id"`
			Title       string  `json:"title"`
			Duration    *string `json:"duration"`
			VideoLink   *string `json:"video_link"`
			PdfLink     *string `json:"pdf_link"`
			OrderNumber int     `json:"order_number"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request body!")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.CourseID) == "" {
			errors["course_id"] = "Course id is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string  `json:"title"`
			Duration    *string `json:"duration"`
			VideoLink   *string `json:"video_link"`
			PdfLink     *string `json:"pdf_link"`
			OrderNumber int     `json:"order_number"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request body!")
		}

		if strings.TrimSpace(reqData.Title) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title is required!"})
		}

		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

// Reorder validates the (id, order_number) pair list used by every reorder
// endpoint.
func Reorder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new([]struct {
			ID          string `json:"id"`
			OrderNumber int    `json:"order_number"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request body!")
		}

		errors := make(map[string]string)
		for _, item := range *reqData {
			if strings.TrimSpace(item.ID) == "" {
				errors["id"] = "Each item requires an id!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReorder", reqData)
		return c.Next()
	}
}
