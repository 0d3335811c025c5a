package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BetPending = "pending"
	BetWon     = "won"
	BetLost    = "lost"
)

// Bet is an immutable ledger entry for one placed bet. The stake is debited
// from the player's wallet in the same transaction that creates the row, and
// ResolvedOdds is the multiplier snapshot taken at placement; later odds
// changes never touch it. The only mutation a Bet ever sees is the single
// pending -> won/lost transition applied by settlement.
type Bet struct {
	gorm.Model

	UserID   uint   `gorm:"index" json:"user_id"`
	MarketID uint   `gorm:"index" json:"market_id"`
	GameType string `gorm:"size:32;index" json:"game_type"`

	Stake        int64  `json:"stake"`
	Prediction   string `gorm:"size:32" json:"prediction"`
	ResolvedOdds int64  `json:"resolved_odds"`
	OddsSource   string `gorm:"size:48" json:"odds_source"`

	Status string `gorm:"size:16;index;default:pending" json:"status"`
	Payout int64  `json:"payout"`

	SettledAt *time.Time `json:"settled_at,omitempty"`
}
