package models

import (
	"gorm.io/gorm"
)

const (
	GameCoinFlip         = "coin_flip"
	GameSatamatkaJodi    = "satamatka_jodi"
	GameSatamatkaHarf    = "satamatka_harf"
	GameSatamatkaCross   = "satamatka_crossing"
	GameSatamatkaOddEven = "satamatka_odd_even"
	GameCricketToss      = "cricket_toss"
	GameTeamMatch        = "team_match"
)

// GameOdds is the payout multiplier for a game type, scaled by 100
// (195 means 1.95x). SubadminID 0 is the global admin default; a non-zero
// SubadminID overrides the default for that subadmin's players. The composite
// unique index keeps a single row per scope key, which is what "at most one
// active row" means here: writes upsert in place.
type GameOdds struct {
	gorm.Model

	GameType   string `gorm:"size:32;index:idx_odds_scope,unique" json:"game_type"`
	SubadminID uint   `gorm:"index:idx_odds_scope,unique" json:"subadmin_id"`
	Multiplier int64  `json:"multiplier"`
	Active     bool   `gorm:"default:true" json:"active"`
}

// UserDiscount improves a player's payout multiplier by Rate percent
// (scaled by 100, so 1000 = 10%). Applied multiplicatively on top of
// whichever odds row wins the scope walk.
type UserDiscount struct {
	gorm.Model

	UserID   uint   `gorm:"index:idx_discount_scope,unique" json:"user_id"`
	GameType string `gorm:"size:32;index:idx_discount_scope,unique" json:"game_type"`
	Rate     int64  `json:"rate"`
	Active   bool   `gorm:"default:true" json:"active"`
}

// CommissionRate is the subadmin's cut of their players' losing stakes,
// percent scaled by 100. Written only by admins.
type CommissionRate struct {
	gorm.Model

	SubadminID uint   `gorm:"index:idx_commission_scope,unique" json:"subadmin_id"`
	GameType   string `gorm:"size:32;index:idx_commission_scope,unique" json:"game_type"`
	Rate       int64  `json:"rate"`
	Active     bool   `gorm:"default:true" json:"active"`
}
