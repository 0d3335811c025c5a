package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SettlementReport is the persisted outcome of a result declaration. Failures
// holds per-bet errors from the sweep (a bet whose settlement failed stays
// pending and is retried by re-declaring the same result).
type SettlementReport struct {
	gorm.Model

	MarketID uint   `gorm:"uniqueIndex" json:"market_id"`
	Result   string `gorm:"size:64" json:"result"`

	SettledCount    int   `json:"settled_count"`
	WonCount        int   `json:"won_count"`
	LostCount       int   `json:"lost_count"`
	TotalPayout     int64 `json:"total_payout"`
	TotalCommission int64 `json:"total_commission"`

	Failures datatypes.JSON `gorm:"type:jsonb" json:"failures,omitempty"`

	DeclaredBy uint `gorm:"index" json:"declared_by"`
}
