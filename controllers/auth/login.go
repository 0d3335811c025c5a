package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"matkabook/database"
	"matkabook/helpers"
	"matkabook/models"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" || req.Password == "" {
		return helpers.JSONError(c, "USERNAME_AND_PASSWORD_REQUIRED")
	}

	var user models.User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS")
	}
	if user.Blocked {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "USER_BLOCKED")
	}

	session := models.Session{UserID: user.ID}
	if err := database.DB.Create(&session).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "SESSION_CREATE_FAILED")
	}

	return helpers.JSONSuccess(c, "LOGIN_OK", fiber.Map{
		"token":      session.SID,
		"expires_at": session.ExpiresAt,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

func Logout(c *fiber.Ctx) error {
	token := c.Get("X-Session-Token")
	if token == "" {
		return helpers.JSONError(c, "SESSION_TOKEN_REQUIRED")
	}
	database.DB.Where("sid = ?", token).Delete(&models.Session{})
	return helpers.JSONSuccess(c, "LOGOUT_OK", nil)
}
