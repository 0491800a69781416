package contentController

import (
	"errors"
	"time"

	"clubhub/middleware"
	"clubhub/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListHomepageContent returns every homepage section. Public.
func (ctrl *ContentController) ListHomepageContent(c *fiber.Ctx) error {
	var sections []models.HomepageContent
	if err := ctrl.DB.Find(&sections).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Homepage content fetched successfully.", sections)
}

// UpdateHomepageContent upserts a section by its key. Admin only.
func (ctrl *ContentController) UpdateHomepageContent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedHomepage").(*struct {
		Section string `json:"section"`
		Content string `json:"content"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request data!")
	}

	section := models.HomepageContent{
		Section:   reqData.Section,
		Content:   reqData.Content,
		UpdatedAt: time.Now().UTC(),
	}

	var existing models.HomepageContent
	err := ctrl.DB.Where("section = ?", reqData.Section).First(&existing).Error
	switch {
	case err == nil:
		err = ctrl.DB.Model(&existing).Updates(map[string]interface{}{
			"content":    section.Content,
			"updated_at": section.UpdatedAt,
		}).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		err = ctrl.DB.Create(&section).Error
	}
	if err != nil {
		return middleware.InternalErrorResponse(c)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Homepage content updated.", section)
}
