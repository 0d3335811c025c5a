package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"matkabook/database"
	"matkabook/helpers"
	"matkabook/models"
	"matkabook/services"
)

type CreateMarketRequest struct {
	Title    string    `json:"title"`
	Kind     string    `json:"kind"`
	TeamA    string    `json:"team_a"`
	TeamB    string    `json:"team_b"`
	OpensAt  time.Time `json:"opens_at"`
	ClosesAt time.Time `json:"closes_at"`
}

func CreateMarket(c *fiber.Ctx) error {
	var req CreateMarketRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.OpensAt.IsZero() {
		req.OpensAt = time.Now()
	}

	market, err := services.CreateMarket(database.DB, req.Title, req.Kind, req.TeamA, req.TeamB, req.OpensAt, req.ClosesAt)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "MARKET_CREATED", market)
}

func ListMarkets(c *fiber.Ctx) error {
	markets, err := services.ListMarkets(database.DB, c.Query("status"), c.Query("kind"),
		c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "MARKETS", markets)
}

type CloseMarketRequest struct {
	MarketID uint `json:"market_id"`
}

func CloseMarket(c *fiber.Ctx) error {
	var req CloseMarketRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := services.CloseMarket(database.DB, req.MarketID); err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "MARKET_CLOSED", fiber.Map{"market_id": req.MarketID})
}

type DeclareResultRequest struct {
	MarketID uint   `json:"market_id"`
	Result   string `json:"result"`
}

func DeclareResult(c *fiber.Ctx) error {
	var req DeclareResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	caller, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	summary, err := services.DeclareResult(database.DB, req.MarketID, req.Result, caller.ID)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "RESULT_DECLARED", summary)
}

func SettlementReport(c *fiber.Ctx) error {
	marketID := c.QueryInt("market_id")
	if marketID <= 0 {
		return helpers.JSONError(c, "MARKET_ID_REQUIRED")
	}

	var report models.SettlementReport
	if err := database.DB.Where("market_id = ?", marketID).First(&report).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "REPORT_NOT_FOUND")
	}
	return helpers.JSONSuccess(c, "SETTLEMENT_REPORT", report)
}
