package analyticsController

import (
	"math"
	"time"

	"clubhub/middleware"
	"clubhub/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

type courseStats struct {
	CourseID       string  `json:"course_id"`
	CourseTitle    string  `json:"course_title"`
	Enrolled       int     `json:"enrolled"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"`
}

// GetAnalytics computes membership totals and per-course completion stats.
// Enrolled = distinct users with at least one progress record among the
// course's modules; completed = users whose completed-module count equals the
// course's module count. Courses without modules are omitted.
func (ctrl *AnalyticsController) GetAnalytics(c *fiber.Ctx) error {
	var totalUsers, approvedUsers, pendingUsers, mentorshipUsers, activeUsers int64

	base := func() *gorm.DB { return ctrl.DB.Model(&models.User{}).Where("archived = ?", false) }
	if err := base().Count(&totalUsers).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	if err := base().Where("status = ?", models.StatusApproved).Count(&approvedUsers).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	if err := base().Where("status = ?", models.StatusPending).Count(&pendingUsers).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	if err := base().Where("mentorship_access = ?", true).Count(&mentorshipUsers).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}

	thirtyDaysAgo := time.Now().UTC().AddDate(0, 0, -30)
	if err := base().Where("last_login >= ?", thirtyDaysAgo).Count(&activeUsers).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}

	var courses []models.Course
	if err := ctrl.DB.Where("archived = ?", false).Order("order_number").Find(&courses).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}

	stats := make([]courseStats, 0, len(courses))
	for _, course := range courses {
		var moduleIDs []string
		err := ctrl.DB.Model(&models.Module{}).
			Where("course_id = ? AND archived = ?", course.ID, false).
			Pluck("id", &moduleIDs).Error
		if err != nil {
			return middleware.InternalErrorResponse(c)
		}
		if len(moduleIDs) == 0 {
			continue
		}

		var enrolledUserIDs []string
		err = ctrl.DB.Model(&models.Progress{}).
			Where("module_id IN ?", moduleIDs).
			Distinct("user_id").
			Pluck("user_id", &enrolledUserIDs).Error
		if err != nil {
			return middleware.InternalErrorResponse(c)
		}

		completed := 0
		for _, userID := range enrolledUserIDs {
			var completedCount int64
			err = ctrl.DB.Model(&models.Progress{}).
				Where("user_id = ? AND module_id IN ? AND completed = ?", userID, moduleIDs, true).
				Count(&completedCount).Error
			if err != nil {
				return middleware.InternalErrorResponse(c)
			}
			if completedCount == int64(len(moduleIDs)) {
				completed++
			}
		}

		rate := 0.0
		if len(enrolledUserIDs) > 0 {
			rate = math.Round(float64(completed)/float64(len(enrolledUserIDs))*100*100) / 100
		}
		stats = append(stats, courseStats{
			CourseID:       course.ID,
			CourseTitle:    course.Title,
			Enrolled:       len(enrolledUserIDs),
			Completed:      completed,
			CompletionRate: rate,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics fetched successfully.", fiber.Map{
		"total_users":      totalUsers,
		"approved_users":   approvedUsers,
		"pending_users":    pendingUsers,
		"active_users":     activeUsers,
		"mentorship_users": mentorshipUsers,
		"course_stats":     stats,
	})
}
