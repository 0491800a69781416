package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"clubhub/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

func setTestConfig() {
	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}
}

func TestGenerateAndVerifyJWT(t *testing.T) {
	setTestConfig()

	token, err := GenerateJWT("user-123")
	require.NoError(t, err)

	subject, err := VerifyJWT(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", subject)
}

func TestVerifyJWTRejectsTamperedToken(t *testing.T) {
	setTestConfig()

	token, err := GenerateJWT("user-123")
	require.NoError(t, err)

	_, err = VerifyJWT(token + "x")
	require.Error(t, err)

	_, err = VerifyJWT("not-a-token")
	require.Error(t, err)
}

func TestVerifyJWTRejectsWrongKey(t *testing.T) {
	setTestConfig()
	token, err := GenerateJWT("user-123")
	require.NoError(t, err)

	config.AppConfig.JWTKey = "rotated-secret"
	_, err = VerifyJWT(token)
	require.Error(t, err, "rotating the signing key must invalidate outstanding tokens")
}

func TestVerifyJWTRejectsExpiredToken(t *testing.T) {
	setTestConfig()

	claims := jwt.MapClaims{
		"sub": "user-123",
		"iat": time.Now().Add(-8 * 24 * time.Hour).Unix(),
		"exp": time.Now().Add(-24 * time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.AppConfig.JWTKey))
	require.NoError(t, err)

	_, err = VerifyJWT(expired)
	require.Error(t, err)
}

func TestVerifyJWTRejectsMissingSubject(t *testing.T) {
	setTestConfig()

	claims := jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.AppConfig.JWTKey))
	require.NoError(t, err)

	_, err = VerifyJWT(token)
	require.Error(t, err)
}

func TestJWTMiddlewareHeaderHandling(t *testing.T) {
	setTestConfig()

	app := fiber.New()
	app.Get("/protected", JWTMiddleware, func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("userId").(string))
	})

	// No header
	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Wrong scheme
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic abc")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Valid bearer token
	token, err := GenerateJWT("user-123")
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
