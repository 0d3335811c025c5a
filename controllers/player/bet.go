package player

import (
	"github.com/gofiber/fiber/v2"

	"matkabook/database"
	"matkabook/helpers"
	"matkabook/models"
	"matkabook/money"
	"matkabook/services"
)

type PlaceBetRequest struct {
	MarketID   uint   `json:"market_id"`
	GameType   string `json:"game_type"`
	Stake      string `json:"stake"` // display units, e.g. "20.00"
	Prediction string `json:"prediction"`
}

func PlaceBet(c *fiber.Ctx) error {
	var req PlaceBetRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	stake, err := money.FromString(req.Stake)
	if err != nil {
		return helpers.JSONError(c, "INVALID_STAKE")
	}

	bet, err := services.PlaceBet(database.DB, user.ID, req.GameType, stake, req.Prediction, req.MarketID)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "BET_PLACED", fiber.Map{
		"bet":           bet,
		"stake":         money.FromPaisa(bet.Stake).String(),
		"resolved_odds": bet.ResolvedOdds,
	})
}

func BetHistory(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	filter := services.BetHistoryFilter{
		GameType: c.Query("game_type"),
		Status:   c.Query("status"),
		MarketID: uint(c.QueryInt("market_id")),
		Limit:    c.QueryInt("limit", 50),
		Offset:   c.QueryInt("offset", 0),
	}

	bets, err := services.ListBets(database.DB, user.ID, filter)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "BET_HISTORY", bets)
}

func OpenMarkets(c *fiber.Ctx) error {
	markets, err := services.ListMarkets(database.DB, models.MarketOpen, c.Query("kind"),
		c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "MARKETS", markets)
}
