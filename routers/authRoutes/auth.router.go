package authRoutes

import (
	authController "clubhub/controllers/auth"
	"clubhub/middleware"
	authValidator "clubhub/validators/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupAuthRoutes sets up signup, login and the current-user endpoint
func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	authGroup := app.Group("/api/auth")

	authGroup.Post("/signup", authValidator.Signup(), ctrl.Signup)
	authGroup.Post("/login", authValidator.Login(), ctrl.Login)
	authGroup.Get("/me", middleware.JWTMiddleware, middleware.Authenticate(db), ctrl.Me)
}
