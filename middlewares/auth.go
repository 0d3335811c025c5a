package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"matkabook/database"
	"matkabook/helpers"
	"matkabook/models"
)

// SessionAuth resolves X-Session-Token to a user and stores it in Locals.
func SessionAuth(c *fiber.Ctx) error {
	token := c.Get("X-Session-Token")
	if token == "" {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "SESSION_TOKEN_REQUIRED")
	}

	var session models.Session
	if err := database.DB.Preload("User").Where("sid = ?", token).First(&session).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}
	if time.Now().After(session.ExpiresAt) {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "SESSION_EXPIRED")
	}
	if session.User.Blocked {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "USER_BLOCKED")
	}

	c.Locals("user", session.User)
	return c.Next()
}

// RequireRole guards a route group to the given roles. Run after SessionAuth.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(models.User)
		if !ok {
			return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "ROLE_NOT_ALLOWED")
	}
}
