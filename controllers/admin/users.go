package adminController

import (
	"errors"

	"clubhub/middleware"
	"clubhub/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// ListUsers returns non-archived accounts, optionally filtered by status or
// mentorship entitlement.
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	query := ctrl.DB.Where("archived = ?", false)

	if status := c.Query("filter_status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if mentorship := c.Query("filter_mentorship"); mentorship != "" {
		query = query.Where("mentorship_access = ?", mentorship == "true")
	}

	var users []models.User
	if err := query.Order("created_at").Find(&users).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully.", users)
}

// loadUser fetches an account by id regardless of archived state; archived
// accounts stay reachable for administrative actions.
func (ctrl *UserController) loadUser(c *fiber.Ctx, id string) (*models.User, error) {
	var user models.User
	if err := ctrl.DB.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "User not found")
		}
		return nil, middleware.InternalErrorResponse(c)
	}
	return &user, nil
}

// ApproveUser moves an account from pending to approved.
func (ctrl *UserController) ApproveUser(c *fiber.Ctx) error {
	user, err := ctrl.loadUser(c, c.Params("id"))
	if user == nil {
		return err
	}

	if err := ctrl.DB.Model(user).Update("status", models.StatusApproved).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User approved", nil)
}

// SetMentorship grants or revokes the mentorship entitlement, independent of
// role or status.
func (ctrl *UserController) SetMentorship(c *fiber.Ctx) error {
	user, err := ctrl.loadUser(c, c.Params("id"))
	if user == nil {
		return err
	}

	grant := c.QueryBool("grant")
	if err := ctrl.DB.Model(user).Update("mentorship_access", grant).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}

	message := "Mentorship access revoked"
	if grant {
		message = "Mentorship access granted"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, nil)
}

// ArchiveUser soft-deletes an account. Archiving an already-archived account
// is an idempotent success; not-found is reserved for ids that do not exist.
func (ctrl *UserController) ArchiveUser(c *fiber.Ctx) error {
	user, err := ctrl.loadUser(c, c.Params("id"))
	if user == nil {
		return err
	}

	if err := ctrl.DB.Model(user).Update("archived", true).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User archived", nil)
}
