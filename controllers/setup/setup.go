package setupController

import (
	"errors"
	"log"
	"time"

	"clubhub/config"
	"clubhub/middleware"
	"clubhub/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SetupController struct {
	DB *gorm.DB
}

func NewSetupController(db *gorm.DB) *SetupController {
	return &SetupController{DB: db}
}

// Status reports whether the one-time bootstrap has run.
func (ctrl *SetupController) Status(c *fiber.Ctx) error {
	var setup models.SystemSetup
	err := ctrl.DB.First(&setup).Error
	complete := err == nil && setup.IsSetupComplete
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Setup status.", fiber.Map{
		"is_setup_complete": complete,
	})
}

// Initialize performs the one-time system bootstrap: creates the approved
// admin account, seeds default content and permanently sets the setup flag.
// Seeding is a sequence of independent writes; a crash mid-sequence is safe
// to retry because the flag is only set at the end.
func (ctrl *SetupController) Initialize(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSetup").(*struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request data!")
	}

	var setup models.SystemSetup
	if err := ctrl.DB.First(&setup).Error; err == nil && setup.IsSetupComplete {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeAlreadyInitialized, "System already initialized")
	}

	err := ctrl.DB.Where("email = ?", reqData.Email).First(&models.User{}).Error
	if err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeDuplicateEmail, "Email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.InternalErrorResponse(c)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	now := time.Now().UTC()
	admin := models.User{
		ID:               uuid.NewString(),
		FullName:         reqData.FullName,
		Email:            reqData.Email,
		PasswordHash:     string(hashedPassword),
		Role:             models.RoleAdmin,
		Status:           models.StatusApproved,
		MentorshipAccess: true,
		LastLogin:        &now,
		CreatedAt:        now,
	}
	if err := ctrl.DB.Create(&admin).Error; err != nil {
		log.Printf("Error saving admin to database: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	if err := SeedDefaultContent(ctrl.DB); err != nil {
		log.Printf("Error seeding default content: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	// Mark system as set up. Terminal: no reset path is exposed.
	if err := ctrl.DB.Where("1 = 1").Delete(&models.SystemSetup{}).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}
	if err := ctrl.DB.Create(&models.SystemSetup{IsSetupComplete: true, CreatedAt: now}).Error; err != nil {
		return middleware.InternalErrorResponse(c)
	}

	token, err := middleware.GenerateJWT(admin.ID)
	if err != nil {
		return middleware.InternalErrorResponse(c)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "System initialized.", fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
		"user":         &admin,
	})
}

// SeedDefaultContent populates homepage copy, a sample leadership roster, the
// coach bio and three starter courses. Each section replaces its previous
// contents, so re-running after a partial failure converges.
func SeedDefaultContent(db *gorm.DB) error {
	now := time.Now().UTC()

	homepageSections := []models.HomepageContent{
		{Section: "hero_title", Content: "Welcome to BUTEX Debating Club", UpdatedAt: now},
		{Section: "hero_subtitle", Content: "Empowering voices, shaping leaders", UpdatedAt: now},
		{Section: "about_university", Content: "Bangladesh University of Textiles (BUTEX) is a premier institution dedicated to textile education and research in Bangladesh.", UpdatedAt: now},
		{Section: "about_club", Content: "BUTEX Debating Club is a platform for students to develop critical thinking, public speaking, and leadership skills through debate.", UpdatedAt: now},
		{Section: "mission", Content: "To foster intellectual discourse and develop confident, articulate leaders.", UpdatedAt: now},
		{Section: "vision", Content: "To be the leading debating platform in Bangladesh, nurturing world-class debaters.", UpdatedAt: now},
	}
	if err := db.Where("1 = 1").Delete(&models.HomepageContent{}).Error; err != nil {
		return err
	}
	if err := db.Create(&homepageSections).Error; err != nil {
		return err
	}

	leadership := []models.LeadershipMember{
		{ID: uuid.NewString(), Name: "President Name", Position: "President", OrderNumber: 1, CreatedAt: now},
		{ID: uuid.NewString(), Name: "General Secretary Name", Position: "General Secretary", OrderNumber: 2, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Chief of English Wing Name", Position: "Chief of English Wing", OrderNumber: 3, CreatedAt: now},
	}
	if err := db.Where("1 = 1").Delete(&models.LeadershipMember{}).Error; err != nil {
		return err
	}
	if err := db.Create(&leadership).Error; err != nil {
		return err
	}

	coach := models.CoachInfo{
		Name:         "Abrar Fahad Zaman",
		Bio:          "Expert debate coach with extensive experience in training national and international champions.",
		Achievements: "1. Coached the Pre-worlds Champions of 2019 - Scholastica\n2. Grand Final Chair and Cap of BDC Digital Discourse 2020 - Bangladesh's first real time international debate tournament in English\n3. Worked as the Content Curator of Bitorko Matter Training after the former chair of BDC Fardeen Ameen passed the torch\n4. World Bank IFC TOT (online) acquired under Master Trainer Quazi M. Ahmed\n5. Trained under Don Sumdany, Coach Kamrul and Mashahed Hassan Simanta in their training programs\n6. Completed NLD which was a pioneering coaching program by Sajid Khandaker and Adi Mehedi Adi\n7. Coach of ULAB, Trainer of Scholastica Debate Team, Mentor at BRAC.",
		UpdatedAt:    now,
	}
	if err := db.Where("1 = 1").Delete(&models.CoachInfo{}).Error; err != nil {
		return err
	}
	if err := db.Create(&coach).Error; err != nil {
		return err
	}

	if err := seedBeginnerCourse(db, now); err != nil {
		return err
	}
	if err := seedAdvancedCourse(db, now); err != nil {
		return err
	}
	return seedMentorshipCourse(db, now)
}

type seedModule struct {
	title    string
	duration string
	video    string
	order    int
}

func seedCourseModules(db *gorm.DB, courseID string, mods []seedModule, now time.Time) error {
	for _, mod := range mods {
		duration := mod.duration
		video := mod.video
		m := models.Module{
			ID:          uuid.NewString(),
			CourseID:    courseID,
			Title:       mod.title,
			Duration:    &duration,
			VideoLink:   &video,
			OrderNumber: mod.order,
			CreatedAt:   now,
		}
		if err := db.Create(&m).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedBeginnerCourse(db *gorm.DB, now time.Time) error {
	course := models.Course{
		ID:          uuid.NewString(),
		Title:       "Beginner Course",
		Description: "This course is designed to introduce participants to the fundamentals of parliamentary debate formats, focusing on the Asian Parliamentary (AP) and British Parliamentary (BP) styles. It covers the roles of speakers, types of motions, and essential argumentation techniques.",
		Outline:     "Master the fundamentals of debate including AP & BP formats, speaker roles, motion analysis, framing, impact analysis, principled and utility arguments, and rebuttal techniques.",
		CourseType:  models.CourseTypeBeginner,
		OrderNumber: 1,
		CreatedAt:   now,
	}
	if err := db.Create(&course).Error; err != nil {
		return err
	}

	return seedCourseModules(db, course.ID, []seedModule{
		{"Introduction to AP & BP Debate Formats", "45 min", "https://www.youtube.com/watch?v=example1", 1},
		{"Roles of Speakers", "60 min", "https://www.youtube.com/watch?v=example2", 2},
		{"Types of Motion and Their Demand", "50 min", "https://www.youtube.com/watch?v=example3", 3},
		{"Debates to Watch (AP)", "90 min", "https://www.youtube.com/playlist?list=PLJKCyUsDFuAX5wRnTm3ipGQ9WPvXYD6Cn", 4},
		{"Framing", "55 min", "https://www.youtube.com/watch?v=example5", 5},
		{"Impact Analysis & Comparative", "50 min", "https://www.youtube.com/watch?v=example6", 6},
		{"Principal Argument", "60 min", "https://www.youtube.com/watch?v=example7", 7},
		{"Utility Argument", "55 min", "https://www.youtube.com/watch?v=example8", 8},
		{"Rebuttal", "65 min", "https://www.youtube.com/watch?v=example9", 9},
	}, now)
}

func seedAdvancedCourse(db *gorm.DB, now time.Time) error {
	course := models.Course{
		ID:          uuid.NewString(),
		Title:       "Advanced Course",
		Description: "This course delves into more sophisticated debate strategies, focusing on advanced weighing techniques, effective use of evidence and illustrations, constructing extensions, and top-tier strategic thinking.",
		Outline:     "Develop advanced skills including sophisticated weighing, strategic illustration usage, lower house extensions, and top house strategies for competitive debate.",
		CourseType:  models.CourseTypeAdvanced,
		OrderNumber: 2,
		CreatedAt:   now,
	}
	if err := db.Create(&course).Error; err != nil {
		return err
	}

	return seedCourseModules(db, course.ID, []seedModule{
		{"Weighing", "70 min", "https://www.youtube.com/watch?v=example10", 1},
		{"Illustration and How to Use Matter in Debate", "80 min", "https://www.youtube.com/watch?v=example11", 2},
		{"Extensions for Lower House and Connecting It", "75 min", "https://www.youtube.com/watch?v=example12", 3},
		{"Top House Strategies", "85 min", "https://www.youtube.com/watch?v=example13", 4},
	}, now)
}

func seedMentorshipCourse(db *gorm.DB, now time.Time) error {
	course := models.Course{
		ID:          uuid.NewString(),
		Title:       "Mentorship with AFZ",
		Description: "Exclusive mentorship program with Abrar Fahad Zaman, designed for advanced debaters seeking personalized coaching and elite-level training.",
		Outline:     "One-on-one mentorship sessions, personalized feedback, advanced strategy development, and preparation for international competitions.",
		CourseType:  models.CourseTypeMentorship,
		OrderNumber: 3,
		CreatedAt:   now,
	}
	return db.Create(&course).Error
}
