package progressRoutes

import (
	progressController "clubhub/controllers/progress"
	"clubhub/middleware"
	progressValidator "clubhub/validators/progress"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupProgressRoutes sets up the per-user progress ledger. Reading requires
// authentication; writing additionally requires an approved account.
func SetupProgressRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := progressController.NewProgressController(db)

	progressGroup := app.Group("/api/progress", middleware.JWTMiddleware, middleware.Authenticate(db))

	progressGroup.Get("/", ctrl.ListProgress)
	progressGroup.Post("/", middleware.RequireApproved(), progressValidator.UpdateProgress(), ctrl.UpsertProgress)
}
