package admin

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"matkabook/database"
	"matkabook/helpers"
	"matkabook/models"
)

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"` // subadmin | player
}

// CreateUser registers a subadmin (admin only) or a player. The new user is
// owned by the caller: players created by a subadmin are that subadmin's
// players, which is what routes their odds overrides and commission.
func CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	caller, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	if len(username) < 3 || len(username) > 32 {
		return helpers.JSONError(c, "INVALID_USERNAME")
	}
	if len(req.Password) < 6 {
		return helpers.JSONError(c, "PASSWORD_TOO_SHORT")
	}

	switch req.Role {
	case models.RoleSubadmin:
		if caller.Role != models.RoleAdmin {
			return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "ONLY_ADMIN_CREATES_SUBADMINS")
		}
	case models.RolePlayer:
		// admins and subadmins both register players
	default:
		return helpers.JSONError(c, "INVALID_ROLE")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "HASH_FAILED")
	}

	ownerID := caller.ID
	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         req.Role,
		AssignedTo:   &ownerID,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return helpers.JSONError(c, "USERNAME_TAKEN")
	}

	return helpers.JSONSuccess(c, "USER_CREATED", fiber.Map{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}

// ListUsers shows the caller's own users; admins see everyone.
func ListUsers(c *fiber.Ctx) error {
	caller, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	q := database.DB.Model(&models.User{})
	if caller.Role != models.RoleAdmin {
		q = q.Where("assigned_to = ?", caller.ID)
	}
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}

	var users []models.User
	if err := q.Order("id asc").Limit(200).Find(&users).Error; err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "USERS", users)
}

type BlockRequest struct {
	UserID  uint `json:"user_id"`
	Blocked bool `json:"blocked"`
}

func SetBlocked(c *fiber.Ctx) error {
	var req BlockRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	caller, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	target, err := ownedUser(caller, req.UserID)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	if err := database.DB.Model(target).Update("blocked", req.Blocked).Error; err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "USER_UPDATED", fiber.Map{"id": target.ID, "blocked": req.Blocked})
}
