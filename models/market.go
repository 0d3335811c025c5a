package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	MarketKindCoinFlip    = "coin_flip"
	MarketKindSatamatka   = "satamatka"
	MarketKindCricketToss = "cricket_toss"
	MarketKindTeamMatch   = "team_match"
)

const (
	MarketOpen     = "open"
	MarketClosed   = "closed"
	MarketResulted = "resulted"
)

// Market is a bettable event: a satamatka draw, a coin flip round, or a
// sports fixture (toss and match outcome are separate markets). Status moves
// open -> closed -> resulted, one direction only; the transition to resulted
// is what triggers settlement of the market's pending bets.
type Market struct {
	gorm.Model

	Title string `gorm:"size:128" json:"title"`
	Kind  string `gorm:"size:32;index" json:"kind"`

	Status string `gorm:"size:16;index;default:open" json:"status"`
	Result string `gorm:"size:64" json:"result"`

	// Team names, set for cricket_toss and team_match markets. The declared
	// result must be one of the two.
	TeamA string `gorm:"size:64" json:"team_a,omitempty"`
	TeamB string `gorm:"size:64" json:"team_b,omitempty"`

	OpensAt    time.Time  `json:"opens_at"`
	ClosesAt   time.Time  `gorm:"index" json:"closes_at"`
	ResultedAt *time.Time `json:"resulted_at,omitempty"`

	ExtraInfo datatypes.JSON `gorm:"type:jsonb" json:"extra_info,omitempty"`

	Bets []Bet `gorm:"foreignKey:MarketID" json:"-"`
}

// BetGameTypes lists the game types a market kind accepts. Satamatka markets
// take all four satamatka variants against the same draw result.
func (m *Market) BetGameTypes() []string {
	switch m.Kind {
	case MarketKindSatamatka:
		return []string{GameSatamatkaJodi, GameSatamatkaHarf, GameSatamatkaCross, GameSatamatkaOddEven}
	case MarketKindCoinFlip:
		return []string{GameCoinFlip}
	case MarketKindCricketToss:
		return []string{GameCricketToss}
	case MarketKindTeamMatch:
		return []string{GameTeamMatch}
	}
	return nil
}

func (m *Market) AcceptsGameType(gameType string) bool {
	for _, gt := range m.BetGameTypes() {
		if gt == gameType {
			return true
		}
	}
	return false
}
