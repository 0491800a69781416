package contentController

import (
	"errors"
	"time"

	"clubhub/middleware"
	"clubhub/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetCoachInfo returns the coach profile. Public. 404 until the profile is set.
func (ctrl *ContentController) GetCoachInfo(c *fiber.Ctx) error {
	var coach models.CoachInfo
	if err := ctrl.DB.First(&coach).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Coach info not found")
		}
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Coach info fetched successfully.", coach)
}

// UpdateCoachInfo replaces the singleton coach profile. Admin only.
func (ctrl *ContentController) UpdateCoachInfo(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCoach").(*struct {
		Name         string  `json:"name"`
		Bio          string  `json:"bio"`
		Achievements string  `json:"achievements"`
		ImageURL     *string `json:"image_url"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request data!")
	}

	if err := ctrl.DB.Where("1 = 1").Delete(&models.CoachInfo{}).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}

	coach := models.CoachInfo{
		Name:         reqData.Name,
		Bio:          reqData.Bio,
		Achievements: reqData.Achievements,
		ImageURL:     reqData.ImageURL,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := ctrl.DB.Create(&coach).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Coach info updated.", coach)
}
