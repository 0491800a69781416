package setupRoutes

import (
	setupController "clubhub/controllers/setup"
	setupValidator "clubhub/validators/setup"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupSetupRoutes sets up the one-time bootstrap endpoints
func SetupSetupRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := setupController.NewSetupController(db)

	setupGroup := app.Group("/api/setup")

	setupGroup.Get("/status", ctrl.Status)
	setupGroup.Post("/initialize", setupValidator.Initialize(), ctrl.Initialize)
}
