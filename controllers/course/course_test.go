package courseController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"clubhub/config"
	"clubhub/database"
	"clubhub/middleware"
	"clubhub/models"
	courseRoutes "clubhub/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
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
	courseRoutes.SetupCourseRoutes(app, db)
	courseRoutes.SetupAdminCourseRoutes(app, db)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, role, status string, mentorship bool) *models.User {
	t.Helper()
	user := &models.User{
		ID:               uuid.NewString(),
		FullName:         "Member",
		Email:            uuid.NewString() + "@example.com",
		PasswordHash:     "x",
		Role:             role,
		Status:           status,
		MentorshipAccess: mentorship,
		CreatedAt:        time.Now().UTC(),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createCourse(t *testing.T, db *gorm.DB, courseType string, order int) *models.Course {
	t.Helper()
	course := &models.Course{
		ID:          uuid.NewString(),
		Title:       "Course " + uuid.NewString()[:8],
		Description: "desc",
		Outline:     "outline",
		CourseType:  courseType,
		OrderNumber: order,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, db.Create(course).Error)
	return course
}

func createModule(t *testing.T, db *gorm.DB, courseID string, order int) *models.Module {
	t.Helper()
	module := &models.Module{
		ID:          uuid.NewString(),
		CourseID:    courseID,
		Title:       "Module " + uuid.NewString()[:8],
		OrderNumber: order,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, db.Create(module).Error)
	return module
}

func do(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := middleware.GenerateJWT(userID)
	require.NoError(t, err)
	return token
}

func TestListCoursesExcludesArchivedAndOrders(t *testing.T) {
	app, db := setupApp(t)

	second := createCourse(t, db, models.CourseTypeAdvanced, 2)
	first := createCourse(t, db, models.CourseTypeBeginner, 1)
	hidden := createCourse(t, db, models.CourseTypeBeginner, 3)
	require.NoError(t, db.Model(hidden).Update("archived", true).Error)

	status, env := do(t, app, "GET", "/api/courses", "", nil)
	require.Equal(t, fiber.StatusOK, status)

	var courses []models.Course
	require.NoError(t, json.Unmarshal(env.Data, &courses))
	require.Len(t, courses, 2)
	require.Equal(t, first.ID, courses[0].ID)
	require.Equal(t, second.ID, courses[1].ID)

	// Archived course is 404 by id on the public endpoint.
	status, _ = do(t, app, "GET", "/api/courses/"+hidden.ID, "", nil)
	require.Equal(t, fiber.StatusNotFound, status)
}

func TestModuleListingRequiresApproval(t *testing.T) {
	app, db := setupApp(t)

	course := createCourse(t, db, models.CourseTypeBeginner, 1)
	createModule(t, db, course.ID, 1)

	pending := createUser(t, db, models.RoleStudent, models.StatusPending, false)
	approved := createUser(t, db, models.RoleStudent, models.StatusApproved, false)

	status, _ := do(t, app, "GET", "/api/courses/"+course.ID+"/modules", tokenFor(t, pending.ID), nil)
	require.Equal(t, fiber.StatusForbidden, status)

	status, _ = do(t, app, "GET", "/api/courses/"+course.ID+"/modules", tokenFor(t, approved.ID), nil)
	require.Equal(t, fiber.StatusOK, status)

	status, _ = do(t, app, "GET", "/api/courses/"+course.ID+"/modules", "", nil)
	require.Equal(t, fiber.StatusUnauthorized, status)
}

func TestMentorshipModulesRequireEntitlement(t *testing.T) {
	app, db := setupApp(t)

	course := createCourse(t, db, models.CourseTypeMentorship, 1)
	createModule(t, db, course.ID, 1)

	// Approved alone is not enough for mentorship content.
	approved := createUser(t, db, models.RoleStudent, models.StatusApproved, false)
	status, env := do(t, app, "GET", "/api/courses/"+course.ID+"/modules", tokenFor(t, approved.ID), nil)
	require.Equal(t, fiber.StatusForbidden, status)
	require.Equal(t, middleware.CodeForbidden, env.Code)

	entitled := createUser(t, db, models.RoleStudent, models.StatusApproved, true)
	status, _ = do(t, app, "GET", "/api/courses/"+course.ID+"/modules", tokenFor(t, entitled.ID), nil)
	require.Equal(t, fiber.StatusOK, status)
}

func TestModuleListingExcludesArchivedAndOrders(t *testing.T) {
	app, db := setupApp(t)

	course := createCourse(t, db, models.CourseTypeBeginner, 1)
	second := createModule(t, db, course.ID, 2)
	first := createModule(t, db, course.ID, 1)
	hidden := createModule(t, db, course.ID, 3)
	require.NoError(t, db.Model(hidden).Update("archived", true).Error)

	member := createUser(t, db, models.RoleStudent, models.StatusApproved, false)
	status, env := do(t, app, "GET", "/api/courses/"+course.ID+"/modules", tokenFor(t, member.ID), nil)
	require.Equal(t, fiber.StatusOK, status)

	var modules []models.Module
	require.NoError(t, json.Unmarshal(env.Data, &modules))
	require.Len(t, modules, 2)
	require.Equal(t, first.ID, modules[0].ID)
	require.Equal(t, second.ID, modules[1].ID)
}

func TestAdminCourseCRUD(t *testing.T) {
	app, db := setupApp(t)
	admin := createUser(t, db, models.RoleAdmin, models.StatusApproved, true)
	token := tokenFor(t, admin.ID)

	status, env := do(t, app, "POST", "/api/admin/courses", token, fiber.Map{
		"title":        "New Course",
		"description":  "desc",
		"outline":      "outline",
		"course_type":  "beginner",
		"order_number": 5,
	})
	require.Equal(t, fiber.StatusCreated, status)
	var created models.Course
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, env = do(t, app, "PUT", "/api/admin/courses/"+created.ID, token, fiber.Map{
		"title":        "Renamed",
		"description":  "desc",
		"outline":      "outline",
		"course_type":  "advanced",
		"order_number": 5,
	})
	require.Equal(t, fiber.StatusOK, status)
	var updated models.Course
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	require.Equal(t, "Renamed", updated.Title)
	require.Equal(t, models.CourseTypeAdvanced, updated.CourseType)

	status, _ = do(t, app, "PATCH", "/api/admin/courses/"+created.ID+"/archive", token, nil)
	require.Equal(t, fiber.StatusOK, status)

	// Archived course stays editable by id for administrators.
	status, _ = do(t, app, "PUT", "/api/admin/courses/"+created.ID, token, fiber.Map{
		"title":        "Still Editable",
		"description":  "desc",
		"outline":      "outline",
		"course_type":  "advanced",
		"order_number": 5,
	})
	require.Equal(t, fiber.StatusOK, status)

	status, env = do(t, app, "PUT", "/api/admin/courses/"+uuid.NewString(), token, fiber.Map{
		"title":        "Ghost",
		"description":  "desc",
		"outline":      "outline",
		"course_type":  "beginner",
		"order_number": 1,
	})
	require.Equal(t, fiber.StatusNotFound, status)
	require.Equal(t, middleware.CodeNotFound, env.Code)
}

func TestReorderModules(t *testing.T) {
	app, db := setupApp(t)
	admin := createUser(t, db, models.RoleAdmin, models.StatusApproved, true)
	member := createUser(t, db, models.RoleStudent, models.StatusApproved, false)

	course := createCourse(t, db, models.CourseTypeBeginner, 1)
	moduleA := createModule(t, db, course.ID, 1)
	moduleB := createModule(t, db, course.ID, 2)

	status, _ := do(t, app, "POST", "/api/admin/modules/reorder", tokenFor(t, admin.ID), []fiber.Map{
		{"id": moduleA.ID, "order_number": 2},
		{"id": moduleB.ID, "order_number": 1},
	})
	require.Equal(t, fiber.StatusOK, status)

	status, env := do(t, app, "GET", "/api/courses/"+course.ID+"/modules", tokenFor(t, member.ID), nil)
	require.Equal(t, fiber.StatusOK, status)

	var modules []models.Module
	require.NoError(t, json.Unmarshal(env.Data, &modules))
	require.Len(t, modules, 2)
	require.Equal(t, moduleB.ID, modules[0].ID)
	require.Equal(t, moduleA.ID, modules[1].ID)
}

func TestAdminModuleEndpointsRejectStudents(t *testing.T) {
	app, db := setupApp(t)
	student := createUser(t, db, models.RoleStudent, models.StatusApproved, false)

	status, _ := do(t, app, "POST", "/api/admin/modules", tokenFor(t, student.ID), fiber.Map{
		"course_id":    uuid.NewString(),
		"title":        "Nope",
		"order_number": 1,
	})
	require.Equal(t, fiber.StatusForbidden, status)
}
