package courseRoutes

import (
	courseController "clubhub/controllers/course"
	"clubhub/middleware"
	courseValidator "clubhub/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupCourseRoutes sets up public course browsing and the approved-member
// module listing
func SetupCourseRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)

	courseGroup := app.Group("/api/courses")

	courseGroup.Get("/", ctrl.ListCourses)
	courseGroup.Get("/:id", ctrl.GetCourse)

	// Module content is member-only; the mentorship entitlement is checked
	// per course inside the handler.
	courseGroup.Get("/:id/modules",
		middleware.JWTMiddleware,
		middleware.Authenticate(db),
		middleware.RequireApproved(),
		ctrl.ListCourseModules,
	)
}

// SetupAdminCourseRoutes sets up admin course and module management
func SetupAdminCourseRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)

	adminChain := []fiber.Handler{
		middleware.JWTMiddleware,
		middleware.Authenticate(db),
		middleware.RequireAdmin(),
	}

	courseGroup := app.Group("/api/admin/courses", adminChain...)
	courseGroup.Post("/", courseValidator.Course(), ctrl.CreateCourse)
	courseGroup.Put("/:id", courseValidator.Course(), ctrl.UpdateCourse)
	courseGroup.Patch("/:id/archive", ctrl.ArchiveCourse)

	moduleGroup := app.Group("/api/admin/modules", adminChain...)
	moduleGroup.Post("/", courseValidator.CreateModule(), ctrl.CreateModule)
	moduleGroup.Post("/reorder", courseValidator.Reorder(), ctrl.ReorderModules)
	moduleGroup.Put("/:id", courseValidator.UpdateModule(), ctrl.UpdateModule)
	moduleGroup.Patch("/:id/archive", ctrl.ArchiveModule)
}
