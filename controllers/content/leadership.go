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

type ContentController struct {
	DB *gorm.DB
}

func NewContentController(db *gorm.DB) *ContentController {
	return &ContentController{DB: db}
}

// ListLeadership returns the non-archived roster in display order. Public.
func (ctrl *ContentController) ListLeadership(c *fiber.Ctx) error {
	var members []models.LeadershipMember
	if err := ctrl.DB.Where("archived = ?", false).Order("order_number").Find(&members).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Leadership fetched successfully.", members)
}

// CreateLeadershipMember adds a roster entry. Admin only.
func (ctrl *ContentController) CreateLeadershipMember(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLeadership").(*struct {
		Name        string  `json:"name"`
		Position    string  `json:"position"`
		PhotoURL    *string `json:"photo_url"`
		OrderNumber int     `json:"order_number"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request data!")
	}

	member := models.LeadershipMember{
		ID:          uuid.NewString(),
		Name:        reqData.Name,
		Position:    reqData.Position,
		PhotoURL:    reqData.PhotoURL,
		OrderNumber: reqData.OrderNumber,
		CreatedAt:   time.Now().UTC(),
	}
	if err := ctrl.DB.Create(&member).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Member created successfully!", member)
}

// UpdateLeadershipMember replaces the editable fields of a roster entry. Admin only.
func (ctrl *ContentController) UpdateLeadershipMember(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLeadership").(*struct {
		Name        string  `json:"name"`
		Position    string  `json:"position"`
		PhotoURL    *string `json:"photo_url"`
		OrderNumber int     `json:"order_number"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request data!")
	}

	var member models.LeadershipMember
	if err := ctrl.DB.Where("id = ?", c.Params("id")).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Member not found")
		}
		return middleware.InternalErrorResponse(c)
	}

	member.Name = reqData.Name
	member.Position = reqData.Position
	member.PhotoURL = reqData.PhotoURL
	member.OrderNumber = reqData.OrderNumber

	if err := ctrl.DB.Save(&member).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Member updated successfully!", member)
}

// ArchiveLeadershipMember hides a roster entry. Idempotent. Admin only.
func (ctrl *ContentController) ArchiveLeadershipMember(c *fiber.Ctx) error {
	var member models.LeadershipMember
	if err := ctrl.DB.Where("id = ?", c.Params("id")).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Member not found")
		}
		return middleware.InternalErrorResponse(c)
	}

	if err := ctrl.DB.Model(&member).Update("archived", true).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Member archived", nil)
}

// ReorderLeadership applies each (id, order_number) pair independently; not
// transactional.
func (ctrl *ContentController) ReorderLeadership(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReorder").(*[]struct {
		ID          string `json:"id"`
		OrderNumber int    `json:"order_number"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request data!")
	}

	for _, item := range *reqData {
		err := ctrl.DB.Model(&models.LeadershipMember{}).Where("id = ?", item.ID).
			Update("order_number", item.OrderNumber).Error
		if err != nil {
			return middleware.InternalErrorResponse(c)
		}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order updated", nil)
}
