package routes

import (
	"github.com/gofiber/fiber/v2"

	"matkabook/controllers/admin"
	"matkabook/controllers/auth"
	"matkabook/controllers/player"
	"matkabook/middlewares"
	"matkabook/models"
)

func Setup(app *fiber.App) {
	app.Post("/auth/login", auth.Login)
	app.Post("/auth/logout", auth.Logout)

	playerroutes := app.Group("/player", middlewares.SessionAuth, middlewares.RequireRole(models.RolePlayer))
	playerroutes.Get("/markets", player.OpenMarkets)
	playerroutes.Post("/bets", player.PlaceBet)
	playerroutes.Get("/bets", player.BetHistory)
	playerroutes.Get("/balance", player.Balance)
	playerroutes.Get("/statement", player.Statement)
	playerroutes.Post("/requests", player.CreatePaymentRequest)
	playerroutes.Get("/requests", player.MyPaymentRequests)

	// admin + subadmin surface; handlers narrow by ownership
	ops := app.Group("/ops", middlewares.SessionAuth, middlewares.RequireRole(models.RoleAdmin, models.RoleSubadmin))
	ops.Post("/users", admin.CreateUser)
	ops.Get("/users", admin.ListUsers)
	ops.Post("/users/block", admin.SetBlocked)
	ops.Get("/markets", admin.ListMarkets)
	ops.Post("/markets/close", admin.CloseMarket)
	ops.Post("/markets/result", admin.DeclareResult)
	ops.Get("/markets/report", admin.SettlementReport)
	ops.Post("/odds", admin.SetOdds)
	ops.Get("/odds", admin.ListOdds)
	ops.Post("/discounts", admin.SetDiscount)
	ops.Get("/requests", admin.ListPaymentRequests)
	ops.Post("/requests/review", admin.ReviewPaymentRequest)
	ops.Get("/ledger/check", admin.CheckLedger)

	// admin only
	adminroutes := app.Group("/admin", middlewares.SessionAuth, middlewares.RequireRole(models.RoleAdmin))
	adminroutes.Post("/markets", admin.CreateMarket)
	adminroutes.Post("/commissions", admin.SetCommission)
}
