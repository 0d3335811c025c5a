package admin

import (
	"github.com/gofiber/fiber/v2"

	"matkabook/database"
	"matkabook/helpers"
	"matkabook/models"
	"matkabook/services"
)

func ListPaymentRequests(c *fiber.Ctx) error {
	reqs, err := services.ListPaymentRequests(database.DB, uint(c.QueryInt("user_id")), c.Query("status"),
		c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "REQUESTS", reqs)
}

type ReviewRequestBody struct {
	RequestID uint `json:"request_id"`
	Approve   bool `json:"approve"`
}

// ReviewPaymentRequest approves or rejects a pending deposit/withdrawal.
// Subadmins may only review their own players' requests.
func ReviewPaymentRequest(c *fiber.Ctx) error {
	var body ReviewRequestBody
	if err := c.BodyParser(&body); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	caller, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	var req models.PaymentRequest
	if err := database.DB.First(&req, body.RequestID).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "REQUEST_NOT_FOUND")
	}
	if _, err := ownedUser(caller, req.UserID); err != nil {
		return helpers.ServiceError(c, err)
	}

	reviewed, err := services.ReviewPaymentRequest(database.DB, body.RequestID, caller.ID, body.Approve)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "REQUEST_REVIEWED", reviewed)
}

// CheckLedger replays one user's transaction log against the cached balance.
func CheckLedger(c *fiber.Ctx) error {
	userID := c.QueryInt("user_id")
	if userID <= 0 {
		return helpers.JSONError(c, "USER_ID_REQUIRED")
	}

	caller, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}
	if _, err := ownedUser(caller, uint(userID)); err != nil {
		return helpers.ServiceError(c, err)
	}

	check, err := services.CheckLedger(database.DB, uint(userID))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "LEDGER_CHECK", check)
}
