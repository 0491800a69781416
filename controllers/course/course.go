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

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// ListCourses returns all non-archived courses in display order. Public.
func (ctrl *CourseController) ListCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := ctrl.DB.Where("archived = ?", false).Order("order_number").Find(&courses).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
}

// GetCourse returns a single non-archived course. Public.
func (ctrl *CourseController) GetCourse(c *fiber.Ctx) error {
	var course models.Course
	err := ctrl.DB.Where("id = ? AND archived = ?", c.Params("id"), false).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Course not found")
		}
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", course)
}

// CreateCourse creates a new course. Admin only.
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Outline     string `json:"outline"`
		CourseType  string `json:"course_type"`
		OrderNumber int    `json:"order_number"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request data!")
	}

	course := models.Course{
		ID:          uuid.NewString(),
		Title:       reqData.Title,
		Description: reqData.Description,
		Outline:     reqData.Outline,
		CourseType:  reqData.CourseType,
		OrderNumber: reqData.OrderNumber,
		CreatedAt:   time.Now().UTC(),
	}
	if err := ctrl.DB.Create(&course).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse replaces the editable fields of a course. Admin only. Archived
// courses remain editable; archival only hides them from listings.
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Outline     string `json:"outline"`
		CourseType  string `json:"course_type"`
		OrderNumber int    `json:"order_number"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request data!")
	}

	var course models.Course
	if err := ctrl.DB.Where("id = ?", c.Params("id")).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Course not found")
		}
		return middleware.InternalErrorResponse(c)
	}

	course.Title = reqData.Title
	course.Description = reqData.Description
	course.Outline = reqData.Outline
	course.CourseType = reqData.CourseType
	course.OrderNumber = reqData.OrderNumber

	if err := ctrl.DB.Save(&course).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// ArchiveCourse hides a course from all listings. Idempotent. Admin only.
func (ctrl *CourseController) ArchiveCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := ctrl.DB.Where("id = ?", c.Params("id")).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Course not found")
		}
		return middleware.InternalErrorResponse(c)
	}

	if err := ctrl.DB.Model(&course).Update("archived", true).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course archived", nil)
}
