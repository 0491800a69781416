package setupController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"clubhub/config"
	"clubhub/database"
	"clubhub/middleware"
	"clubhub/models"
	setupRoutes "clubhub/routers/setupRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: bcrypt.MinCost}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	setupRoutes.SetupSetupRoutes(app, db)
	return app, db
}

func initialize(t *testing.T, app *fiber.App, email string) (int, envelope) {
	t.Helper()
	payload, err := json.Marshal(fiber.Map{
		"full_name": "Club Admin",
		"email":     email,
		"password":  "admin-secret",
	})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/api/setup/initialize", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func setupStatus(t *testing.T, app *fiber.App) bool {
	t.Helper()
	req := httptest.NewRequest("GET", "/api/setup/status", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	var data struct {
		IsSetupComplete bool `json:"is_setup_complete"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.IsSetupComplete
}

func TestInitializeBootstrapsAdminAndContent(t *testing.T) {
	app, db := setupApp(t)

	require.False(t, setupStatus(t, app))

	status, env := initialize(t, app, "admin@example.com")
	require.Equal(t, fiber.StatusOK, status)
	require.True(t, env.Status)

	var data struct {
		AccessToken string      `json:"access_token"`
		User        models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Equal(t, models.RoleAdmin, data.User.Role)
	require.Equal(t, models.StatusApproved, data.User.Status)
	require.True(t, data.User.MentorshipAccess)

	subject, err := middleware.VerifyJWT(data.AccessToken)
	require.NoError(t, err)
	require.Equal(t, data.User.ID, subject)

	require.True(t, setupStatus(t, app))

	// Seeded defaults: homepage copy, roster samples, coach bio, three
	// starter courses with modules on the first two.
	var sections, members, courses, modules, coaches int64
	require.NoError(t, db.Model(&models.HomepageContent{}).Count(&sections).Error)
	require.NoError(t, db.Model(&models.LeadershipMember{}).Count(&members).Error)
	require.NoError(t, db.Model(&models.Course{}).Count(&courses).Error)
	require.NoError(t, db.Model(&models.Module{}).Count(&modules).Error)
	require.NoError(t, db.Model(&models.CoachInfo{}).Count(&coaches).Error)
	require.EqualValues(t, 6, sections)
	require.EqualValues(t, 3, members)
	require.EqualValues(t, 3, courses)
	require.EqualValues(t, 13, modules)
	require.EqualValues(t, 1, coaches)

	var mentorship models.Course
	require.NoError(t, db.Where("course_type = ?", models.CourseTypeMentorship).First(&mentorship).Error)
}

func TestInitializeReplayFails(t *testing.T) {
	app, db := setupApp(t)

	status, _ := initialize(t, app, "admin@example.com")
	require.Equal(t, fiber.StatusOK, status)

	status, env := initialize(t, app, "second@example.com")
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, middleware.CodeAlreadyInitialized, env.Code)

	// Exactly one admin account and one setup-flag record exist afterward.
	var admins, flags int64
	require.NoError(t, db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&admins).Error)
	require.NoError(t, db.Model(&models.SystemSetup{}).Count(&flags).Error)
	require.EqualValues(t, 1, admins)
	require.EqualValues(t, 1, flags)
}

func TestInitializeDuplicateEmail(t *testing.T) {
	app, db := setupApp(t)

	existing := models.User{
		ID:           "existing",
		FullName:     "Existing",
		Email:        "taken@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&existing).Error)

	status, env := initialize(t, app, "taken@example.com")
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, middleware.CodeDuplicateEmail, env.Code)
	require.False(t, setupStatus(t, app))
}
