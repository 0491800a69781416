package middleware

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"clubhub/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, role, status string, archived bool) *models.User {
	t.Helper()
	user := &models.User{
		ID:           uuid.NewString(),
		FullName:     "Test User",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		Role:         role,
		Status:       status,
		Archived:     archived,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func guardedApp(db *gorm.DB, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{JWTMiddleware, Authenticate(db)}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.SendString(CurrentUser(c).ID)
	})
	app.Get("/guarded", handlers...)
	return app
}

func requestWithToken(t *testing.T, app *fiber.App, userID string) int {
	t.Helper()
	token, err := GenerateJWT(userID)
	require.NoError(t, err)
	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthenticateLoadsAccountFresh(t *testing.T) {
	setTestConfig()
	db := openTestDB(t)
	app := guardedApp(db)

	user := createTestUser(t, db, models.RoleStudent, models.StatusPending, false)
	require.Equal(t, fiber.StatusOK, requestWithToken(t, app, user.ID))

	// Archiving takes effect on the very next request even though the token
	// is still valid.
	require.NoError(t, db.Model(user).Update("archived", true).Error)
	require.Equal(t, fiber.StatusUnauthorized, requestWithToken(t, app, user.ID))
}

func TestAuthenticateRejectsUnknownSubject(t *testing.T) {
	setTestConfig()
	db := openTestDB(t)
	app := guardedApp(db)

	require.Equal(t, fiber.StatusUnauthorized, requestWithToken(t, app, uuid.NewString()))
}

func TestRequireAdmin(t *testing.T) {
	setTestConfig()
	db := openTestDB(t)
	app := guardedApp(db, RequireAdmin())

	student := createTestUser(t, db, models.RoleStudent, models.StatusApproved, false)
	admin := createTestUser(t, db, models.RoleAdmin, models.StatusApproved, false)

	require.Equal(t, fiber.StatusForbidden, requestWithToken(t, app, student.ID))
	require.Equal(t, fiber.StatusOK, requestWithToken(t, app, admin.ID))
}

func TestRequireApproved(t *testing.T) {
	setTestConfig()
	db := openTestDB(t)
	app := guardedApp(db, RequireApproved())

	pending := createTestUser(t, db, models.RoleStudent, models.StatusPending, false)
	approved := createTestUser(t, db, models.RoleStudent, models.StatusApproved, false)

	require.Equal(t, fiber.StatusForbidden, requestWithToken(t, app, pending.ID))
	require.Equal(t, fiber.StatusOK, requestWithToken(t, app, approved.ID))
}

// RequireApproved is evaluated independently of role: an unapproved admin is
// still refused member-only content.
func TestRequireApprovedIgnoresRole(t *testing.T) {
	setTestConfig()
	db := openTestDB(t)
	app := guardedApp(db, RequireApproved())

	pendingAdmin := createTestUser(t, db, models.RoleAdmin, models.StatusPending, false)
	require.Equal(t, fiber.StatusForbidden, requestWithToken(t, app, pendingAdmin.ID))
}
