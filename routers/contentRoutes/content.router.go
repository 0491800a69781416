package contentRoutes

import (
	contentController "clubhub/controllers/content"
	"clubhub/middleware"
	contentValidator "clubhub/validators/content"
	courseValidator "clubhub/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupContentRoutes sets up the public marketing-content listings
func SetupContentRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := contentController.NewContentController(db)

	api := app.Group("/api")

	api.Get("/leadership", ctrl.ListLeadership)
	api.Get("/announcements", ctrl.ListAnnouncements)
	api.Get("/success-events", ctrl.ListSuccessEvents)
	api.Get("/homepage-content", ctrl.ListHomepageContent)
	api.Get("/coach-info", ctrl.GetCoachInfo)
}

// SetupAdminContentRoutes sets up admin management of marketing content
func SetupAdminContentRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := contentController.NewContentController(db)

	adminGroup := app.Group("/api/admin",
		middleware.JWTMiddleware,
		middleware.Authenticate(db),
		middleware.RequireAdmin(),
	)

	adminGroup.Post("/leadership", contentValidator.Leadership(), ctrl.CreateLeadershipMember)
	adminGroup.Post("/leadership/reorder", courseValidator.Reorder(), ctrl.ReorderLeadership)
	adminGroup.Put("/leadership/:id", contentValidator.Leadership(), ctrl.UpdateLeadershipMember)
	adminGroup.Patch("/leadership/:id/archive", ctrl.ArchiveLeadershipMember)

	adminGroup.Post("/announcements", contentValidator.Announcement(), ctrl.CreateAnnouncement)
	adminGroup.Put("/announcements/:id", contentValidator.Announcement(), ctrl.UpdateAnnouncement)
	adminGroup.Patch("/announcements/:id/archive", ctrl.ArchiveAnnouncement)

	adminGroup.Post("/success-events", contentValidator.SuccessEvent(), ctrl.CreateSuccessEvent)
	adminGroup.Put("/success-events/:id", contentValidator.SuccessEvent(), ctrl.UpdateSuccessEvent)
	adminGroup.Patch("/success-events/:id/archive", ctrl.ArchiveSuccessEvent)

	adminGroup.Put("/homepage-content", contentValidator.Homepage(), ctrl.UpdateHomepageContent)
	adminGroup.Put("/coach-info", contentValidator.Coach(), ctrl.UpdateCoachInfo)
}
