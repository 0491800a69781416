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

// ListAnnouncements returns non-archived announcements, newest first. Public.
func (ctrl *ContentController) ListAnnouncements(c *fiber.Ctx) error {
	var announcements []models.Announcement
	if err := ctrl.DB.Where("archived = ?", false).Order("created_at DESC").Find(&announcements).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcements fetched successfully.", announcements)
}

// CreateAnnouncement publishes an announcement. Admin only.
func (ctrl *ContentController) CreateAnnouncement(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAnnouncement").(*struct {
		Title    string  `json:"title"`
		Content  string  `json:"content"`
		ImageURL *string `json:"image_url"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request data!")
	}

	announcement := models.Announcement{
		ID:        uuid.NewString(),
		Title:     reqData.Title,
		Content:   reqData.Content,
		ImageURL:  reqData.ImageURL,
		CreatedAt: time.Now().UTC(),
	}
	if err := ctrl.DB.Create(&announcement).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Announcement created successfully!", announcement)
}

// UpdateAnnouncement replaces the editable fields of an announcement. Admin only.
func (ctrl *ContentController) UpdateAnnouncement(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAnnouncement").(*struct {
		Title    string  `json:"title"`
		Content  string  `json:"content"`
		ImageURL *string `json:"image_url"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request data!")
	}

	var announcement models.Announcement
	if err := ctrl.DB.Where("id = ?", c.Params("id")).First(&announcement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Announcement not found")
		}
		return middleware.InternalErrorResponse(c)
	}

	announcement.Title = reqData.Title
	announcement.Content = reqData.Content
	announcement.ImageURL = reqData.ImageURL

	if err := ctrl.DB.Save(&announcement).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcement updated successfully!", announcement)
}

// ArchiveAnnouncement hides an announcement. Idempotent. Admin only.
func (ctrl *ContentController) ArchiveAnnouncement(c *fiber.Ctx) error {
	var announcement models.Announcement
	if err := ctrl.DB.Where("id = ?", c.Params("id")).First(&announcement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Announcement not found")
		}
		return middleware.InternalErrorResponse(c)
	}

	if err := ctrl.DB.Model(&announcement).Update("archived", true).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcement archived", nil)
}
