package courseController

import (
	"errors"
	"time"

	"clubhub/middleware"
	"clubhub/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCourseModules lists the non-archived modules of a course for approved
// members. Mentorship courses additionally require the caller's mentorship
// entitlement, independent of approval.
func (ctrl *CourseController) ListCourseModules(c *fiber.Ctx) error {
	var course models.Course
	if err := ctrl.DB.Where("id = ?", c.Params("id")).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Course not found")
		}
		return middleware.InternalErrorResponse(c)
	}

	user := middleware.CurrentUser(c)
	if course.CourseType == models.CourseTypeMentorship && (user == nil || !user.MentorshipAccess) {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, middleware.CodeForbidden, "Mentorship access required")
	}

	var modules []models.Module
	err := ctrl.DB.Where("course_id = ? AND archived = ?", course.ID, false).
		Order("order_number").Find(&modules).Error
	if err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully.", modules)
}

// CreateModule creates a module under a course. Admin only.
func (ctrl *CourseController) CreateModule(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedModule").(*struct {
		CourseID    string  `json:"course_id"`
		Title       string  `json:"title"`
		Duration    *string `json:"duration"`
		VideoLink   *string `json:"video_link"`
		PdfLink     *string `json:"pdf_link"`
		OrderNumber int     `json:"order_number"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request data!")
	}

	module := models.Module{
		ID:          uuid.NewString(),
		CourseID:    reqData.CourseID,
		Title:       reqData.Title,
		Duration:    reqData.Duration,
		VideoLink:   reqData.VideoLink,
		PdfLink:     reqData.PdfLink,
		OrderNumber: reqData.OrderNumber,
		CreatedAt:   time.Now().UTC(),
	}
	if err := ctrl.DB.Create(&module).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// UpdateModule replaces the editable fields of a module. Admin only.
func (ctrl *CourseController) UpdateModule(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedModuleUpdate").(*struct {
		Title       string  `json:"title"`
		Duration    *string `json:"duration"`
		VideoLink   *string `json:"video_link"`
		PdfLink     *string `json:"pdf_link"`
		OrderNumber int     `json:"order_number"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request data!")
	}

	var module models.Module
	if err := ctrl.DB.Where("id = ?", c.Params("id")).First(&module).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Module not found")
		}
		return middleware.InternalErrorResponse(c)
	}

	module.Title = reqData.Title
	module.Duration = reqData.Duration
	module.VideoLink = reqData.VideoLink
	module.PdfLink = reqData.PdfLink
	module.OrderNumber = reqData.OrderNumber

	if err := ctrl.DB.Save(&module).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// ArchiveModule hides a module from listings. Idempotent. Admin only.
func (ctrl *CourseController) ArchiveModule(c *fiber.Ctx) error {
	var module models.Module
	if err := ctrl.DB.Where("id = ?", c.Params("id")).First(&module).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Module not found")
		}
		return middleware.InternalErrorResponse(c)
	}

	if err := ctrl.DB.Model(&module).Update("archived", true).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module archived", nil)
}

// ReorderModules applies each (id, order_number) pair independently. Not
// transactional: a failure partway leaves earlier updates committed, and a
// retry with the same input converges.
func (ctrl *CourseController) ReorderModules(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReorder").(*[]struct {
		ID          string `json:"id"`
		OrderNumber int    `json:"order_number"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request data!")
	}

	for _, item := range *reqData {
		err := ctrl.DB.Model(&models.Module{}).Where("id = ?", item.ID).
			Update("order_number", item.OrderNumber).Error
		if err != nil {
			return middleware.InternalErrorResponse(c)
		}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order updated", nil)
}
