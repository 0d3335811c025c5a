package admin

import (
	"github.com/gofiber/fiber/v2"

	"matkabook/database"
	"matkabook/helpers"
	"matkabook/models"
	"matkabook/services"
)

type SetOddsRequest struct {
	GameType   string `json:"game_type"`
	Multiplier int64  `json:"multiplier"` // scaled by 100, 195 = 1.95x
	SubadminID uint   `json:"subadmin_id"`
}

// SetOdds writes a multiplier. Admins may write the global default
// (subadmin_id 0) or any subadmin's override; subadmins only their own.
func SetOdds(c *fiber.Ctx) error {
	var req SetOddsRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	caller, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	scope := req.SubadminID
	if caller.Role == models.RoleSubadmin {
		scope = caller.ID
	}

	if err := services.SetGameOdds(database.DB, scope, req.GameType, req.Multiplier); err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "ODDS_UPDATED", fiber.Map{
		"game_type":   req.GameType,
		"subadmin_id": scope,
		"multiplier":  req.Multiplier,
	})
}

type SetDiscountRequest struct {
	UserID   uint   `json:"user_id"`
	GameType string `json:"game_type"`
	Rate     int64  `json:"rate"` // percent scaled by 100, 1000 = 10%
}

func SetDiscount(c *fiber.Ctx) error {
	var req SetDiscountRequest
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
	if target.Role != models.RolePlayer {
		return helpers.JSONError(c, "DISCOUNTS_ARE_FOR_PLAYERS")
	}

	if err := services.SetUserDiscount(database.DB, target.ID, req.GameType, req.Rate); err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "DISCOUNT_UPDATED", fiber.Map{
		"user_id":   target.ID,
		"game_type": req.GameType,
		"rate":      req.Rate,
	})
}

type SetCommissionRequest struct {
	SubadminID uint   `json:"subadmin_id"`
	GameType   string `json:"game_type"`
	Rate       int64  `json:"rate"` // percent scaled by 100, 500 = 5%
}

// SetCommission is admin-only (enforced by the route group): subadmins read
// their rates, never write them.
func SetCommission(c *fiber.Ctx) error {
	var req SetCommissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	var subadmin models.User
	if err := database.DB.First(&subadmin, req.SubadminID).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "USER_NOT_FOUND")
	}
	if subadmin.Role != models.RoleSubadmin {
		return helpers.JSONError(c, "COMMISSION_IS_FOR_SUBADMINS")
	}

	if err := services.SetCommissionRate(database.DB, req.SubadminID, req.GameType, req.Rate); err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "COMMISSION_UPDATED", fiber.Map{
		"subadmin_id": req.SubadminID,
		"game_type":   req.GameType,
		"rate":        req.Rate,
	})
}

// ListOdds returns the odds rows visible to the caller.
func ListOdds(c *fiber.Ctx) error {
	caller, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	q := database.DB.Model(&models.GameOdds{}).Where("active = true")
	if caller.Role == models.RoleSubadmin {
		q = q.Where("subadmin_id IN ?", []uint{0, caller.ID})
	}

	var odds []models.GameOdds
	if err := q.Order("game_type asc, subadmin_id asc").Find(&odds).Error; err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "ODDS", odds)
}
