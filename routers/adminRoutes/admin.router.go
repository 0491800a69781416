package adminRoutes

import (
	adminController "clubhub/controllers/admin"
	analyticsController "clubhub/controllers/analytics"
	uploadController "clubhub/controllers/upload"
	"clubhub/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupAdminRoutes sets up user management, analytics and image upload.
// Every route here requires an authenticated admin.
func SetupAdminRoutes(app *fiber.App, db *gorm.DB) {
	userCtrl := adminController.NewUserController(db)
	analyticsCtrl := analyticsController.NewAnalyticsController(db)

	adminGroup := app.Group("/api/admin",
		middleware.JWTMiddleware,
		middleware.Authenticate(db),
		middleware.RequireAdmin(),
	)

	adminGroup.Get("/users", userCtrl.ListUsers)
	adminGroup.Patch("/users/:id/approve", userCtrl.ApproveUser)
	adminGroup.Patch("/users/:id/mentorship", userCtrl.SetMentorship)
	adminGroup.Patch("/users/:id/archive", userCtrl.ArchiveUser)

	adminGroup.Get("/analytics", analyticsCtrl.GetAnalytics)

	adminGroup.Post("/upload-image", uploadController.UploadImage)
}
