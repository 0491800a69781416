package progressController

import (
	"errors"
	"time"

	"clubhub/middleware"
	"clubhub/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressController struct {
	DB *gorm.DB
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{DB: db}
}

// ListProgress returns the caller's own progress records.
func (ctrl *ProgressController) ListProgress(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeUnauthorized, "Unauthorized!")
	}

	var records []models.Progress
	if err := ctrl.DB.Where("user_id = ?", user.ID).Find(&records).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully.", records)
}

// UpsertProgress records completion for one module, keyed by (caller, module).
// At most one record exists per pair; completed_at is set when completed flips
// to true and cleared when it flips to false. The user id is always the
// authenticated caller, never taken from the request.
func (ctrl *ProgressController) UpsertProgress(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeUnauthorized, "Unauthorized!")
	}

	reqData, ok := c.Locals("validatedProgress").(*struct {
		ModuleID  string `json:"module_id"`
		Completed bool   `json:"completed"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request data!")
	}

	var completedAt *time.Time
	if reqData.Completed {
		now := time.Now().UTC()
		completedAt = &now
	}

	var existing models.Progress
	err := ctrl.DB.Where("user_id = ? AND module_id = ?", user.ID, reqData.ModuleID).First(&existing).Error
	switch {
	case err == nil:
		existing.Completed = reqData.Completed
		existing.CompletedAt = completedAt
		updates := map[string]interface{}{
			"completed":    reqData.Completed,
			"completed_at": completedAt,
		}
		if err := ctrl.DB.Model(&existing).Updates(updates).Error; err != nil {
			return middleware.InternalErrorResponse(c)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated.", existing)
	case errors.Is(err, gorm.ErrRecordNotFound):
		record := models.Progress{
			ID:          uuid.NewString(),
			UserID:      user.ID,
			ModuleID:    reqData.ModuleID,
			Completed:   reqData.Completed,
			CompletedAt: completedAt,
		}
		if err := ctrl.DB.Create(&record).Error; err != nil {
			return middleware.InternalErrorResponse(c)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated.", record)
	default:
		return middleware.InternalErrorResponse(c)
	}
}
