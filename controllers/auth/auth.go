package authController

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

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// tokenPayload is the login/signup response body: a bearer token plus the
// account it belongs to.
func tokenPayload(token string, user *models.User) fiber.Map {
	return fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	}
}

// Signup registers a new account. Self-registered accounts always start as
// pending students with no mentorship entitlement.
func (ctrl *AuthController) Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*struct {
		FullName string  `json:"full_name"`
		Email    string  `json:"email"`
		Password string  `json:"password"`
		Batch    *string `json:"batch"`
		Reason   *string `json:"reason"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request data!")
	}

	// Check if email already exists (exact match as stored, archived included)
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
	newUser := models.User{
		ID:               uuid.NewString(),
		FullName:         reqData.FullName,
		Email:            reqData.Email,
		PasswordHash:     string(hashedPassword),
		Role:             models.RoleStudent,
		Status:           models.StatusPending,
		MentorshipAccess: false,
		Batch:            reqData.Batch,
		Reason:           reqData.Reason,
		LastLogin:        &now,
		CreatedAt:        now,
	}

	if err := ctrl.DB.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.InternalErrorResponse(c)
	}

	token, err := middleware.GenerateJWT(newUser.ID)
	if err != nil {
		return middleware.InternalErrorResponse(c)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", tokenPayload(token, &newUser))
}

// Login validates credentials and refreshes last_login. The failure response
// never distinguishes an unknown email from a wrong password.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request data!")
	}

	var user models.User
	if err := ctrl.DB.Where("email = ? AND archived = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeInvalidCredentials, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeInvalidCredentials, "Invalid credentials")
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	if err := ctrl.DB.Model(&user).Update("last_login", now).Error; err != nil {
		log.Printf("Error saving last login time: %v", err)
	}

	token, err := middleware.GenerateJWT(user.ID)
	if err != nil {
		return middleware.InternalErrorResponse(c)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", tokenPayload(token, &user))
}

// Me returns the authenticated caller's account record.
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeUnauthorized, "Unauthorized!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Current user.", user)
}
