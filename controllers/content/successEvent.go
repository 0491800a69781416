package contentController

import (
	"errors"
	"time"

	"clubhub/middleware"
	"clubhub/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListSuccessEvents returns non-archived events, most recent date first. Public.
func (ctrl *ContentController) ListSuccessEvents(c *fiber.Ctx) error {
	var events []models.SuccessEvent
	if err := ctrl.DB.Where("archived = ?", false).Order("date DESC").Find(&events).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Events fetched successfully.", events)
}

// CreateSuccessEvent records a success event. Admin only.
func (ctrl *ContentController) CreateSuccessEvent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSuccessEvent").(*struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		ImageURL    *string `json:"image_url"`
		Date        string  `json:"date"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request data!")
	}

	event := models.SuccessEvent{
		ID:          uuid.NewString(),
		Title:       reqData.Title,
		Description: reqData.Description,
		ImageURL:    reqData.ImageURL,
		Date:        reqData.Date,
		CreatedAt:   time.Now().UTC(),
	}
	if err := ctrl.DB.Create(&event).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Event created successfully!", event)
}

// UpdateSuccessEvent replaces the editable fields of an event. Admin only.
func (ctrl *ContentController) UpdateSuccessEvent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSuccessEvent").(*struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		ImageURL    *string `json:"image_url"`
		Date        string  `json:"date"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request data!")
	}

	var event models.SuccessEvent
	if err := ctrl.DB.Where("id = ?", c.Params("id")).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Event not found")
		}
		return middleware.InternalErrorResponse(c)
	}

	event.Title = reqData.Title
	event.Description = reqData.Description
	event.ImageURL = reqData.ImageURL
	event.Date = reqData.Date

	if err := ctrl.DB.Save(&event).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Event updated successfully!", event)
}

// ArchiveSuccessEvent hides an event. Idempotent. Admin only.
func (ctrl *ContentController) ArchiveSuccessEvent(c *fiber.Ctx) error {
	var event models.SuccessEvent
	if err := ctrl.DB.Where("id = ?", c.Params("id")).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Event not found")
		}
		return middleware.InternalErrorResponse(c)
	}

	if err := ctrl.DB.Model(&event).Update("archived", true).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Event archived", nil)
}
