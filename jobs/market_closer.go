package jobs

import (
	"os"
	"strconv"
	"time"

	"matkabook/database"
	"matkabook/logger"
	"matkabook/models"
)

// StartMarketCloser runs a background sweep that closes open markets whose
// betting window has passed, so late bets are refused even if no operator
// closes the market by hand. Interval in seconds via MARKET_CLOSER_INTERVAL,
// default 30.
func StartMarketCloser() {
	interval := 30
	if v := os.Getenv("MARKET_CLOSER_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			interval = n
		}
	}

	go func() {
		ticker := time.NewTicker(time.Duration(interval) * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			res := database.DB.Model(&models.Market{}).
				Where("status = ? AND closes_at < ?", models.MarketOpen, time.Now()).
				Update("status", models.MarketClosed)
			if res.Error != nil {
				logger.Error("market closer sweep failed", "error", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				logger.Info("closed expired markets", "count", res.RowsAffected)
			}
		}
	}()

	logger.Info("market closer started", "interval_seconds", interval)
}
