package player

import (
	"github.com/gofiber/fiber/v2"

	"matkabook/database"
	"matkabook/helpers"
	"matkabook/models"
	"matkabook/money"
	"matkabook/services"
)

func Balance(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	balance, err := services.GetBalance(database.DB, user.ID)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "BALANCE", fiber.Map{
		"balance":       balance.Paisa(),
		"balance_rupee": balance.String(),
	})
}

func Statement(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	txns, err := services.ListTransactions(database.DB, user.ID,
		c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "STATEMENT", txns)
}

type PaymentRequestBody struct {
	Type   string `json:"type"` // deposit | withdraw
	Amount string `json:"amount"`
	Note   string `json:"note"`
}

func CreatePaymentRequest(c *fiber.Ctx) error {
	var req PaymentRequestBody
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	amount, err := money.FromString(req.Amount)
	if err != nil {
		return helpers.JSONError(c, "INVALID_AMOUNT")
	}

	pr, err := services.CreatePaymentRequest(database.DB, user.ID, req.Type, amount, req.Note)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "REQUEST_CREATED", pr)
}

func MyPaymentRequests(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	reqs, err := services.ListPaymentRequests(database.DB, user.ID, c.Query("status"),
		c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "REQUESTS", reqs)
}
