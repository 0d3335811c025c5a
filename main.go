package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"matkabook/database"
	"matkabook/jobs"
	"matkabook/logger"
	"matkabook/routes"
)

func main() {
	_ = godotenv.Load()
	logger.Init()
	defer logger.Sync()

	database.Connect()

	host := os.Getenv("HOST")
	port := os.Getenv("PORT")

	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "3000"
	}

	app := fiber.New()
	routes.Setup(app)
	jobs.StartMarketCloser()

	addr := fmt.Sprintf("%s:%s", host, port)
	logger.Info("server running", "addr", addr)

	go func() {
		if err := app.Listen(addr); err != nil {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logger.Info("gracefully shutting down")
	if err := app.Shutdown(); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}
	logger.Info("server exited cleanly")
}
