package middleware

import (
	"errors"

	"clubhub/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Authenticate loads the caller's account fresh on every request so that a
// just-archived or just-approved account takes effect on the very next call.
// Archived accounts fail here even when their token is still valid.
func Authenticate(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(string)
		if !ok || userID == "" {
			return ErrorResponse(c, fiber.StatusUnauthorized, CodeUnauthorized, "Unauthorized!")
		}

		var user models.User
		err := db.Where("id = ? AND archived = ?", userID, false).First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrorResponse(c, fiber.StatusUnauthorized, CodeUnauthorized, "User not found!")
			}
			return InternalErrorResponse(c)
		}

		c.Locals("currentUser", &user)
		return c.Next()
	}
}

// RequireAdmin passes iff the authenticated account's role is admin.
// Must be chained after Authenticate.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("currentUser").(*models.User)
		if !ok {
			return ErrorResponse(c, fiber.StatusUnauthorized, CodeUnauthorized, "Unauthorized!")
		}
		if user.Role != models.RoleAdmin {
			return ErrorResponse(c, fiber.StatusForbidden, CodeForbidden, "Admin access required!")
		}
		return c.Next()
	}
}

// RequireApproved passes iff the authenticated account's status is approved.
// Admin role does not implicitly satisfy this; the check is independent.
func RequireApproved() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("currentUser").(*models.User)
		if !ok {
			return ErrorResponse(c, fiber.StatusUnauthorized, CodeUnauthorized, "Unauthorized!")
		}
		if user.Status != models.StatusApproved {
			return ErrorResponse(c, fiber.StatusForbidden, CodeForbidden, "Account approval required!")
		}
		return c.Next()
	}
}

// CurrentUser returns the account stashed by Authenticate.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("currentUser").(*models.User)
	return user
}
