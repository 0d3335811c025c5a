package models

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "admin"
	RoleSubadmin = "subadmin"
	RolePlayer   = "player"
)

const (
	TxnDeposit    = "deposit"
	TxnWithdrawal = "withdrawal"
	TxnBetStake   = "bet_stake"
	TxnBetPayout  = "bet_payout"
	TxnCommission = "commission"
)

type User struct {
	gorm.Model

	Username     string `gorm:"uniqueIndex;size:32" json:"username"`
	PasswordHash string `gorm:"size:128" json:"-"`
	Role         string `gorm:"size:16;index" json:"role"`

	// Balance is in paisa. Every mutation goes through the wallet service
	// under a row lock; the value is the running sum of the user's
	// WalletTransactions.
	Balance int64 `json:"balance"`

	// AssignedTo is the owning subadmin (for players) or admin (for
	// subadmins). Nil only for the root admin.
	AssignedTo *uint `gorm:"index" json:"assigned_to"`

	Blocked bool `gorm:"default:false" json:"blocked"`

	Transactions []WalletTransaction `gorm:"foreignKey:UserID" json:"-"`
	Bets         []Bet               `gorm:"foreignKey:UserID" json:"-"`
}

// WalletTransaction is one append-only ledger row. BalanceBefore/BalanceAfter
// are snapshots taken under the same row lock as the balance update, so the
// per-user sequence of rows replays to the cached balance.
type WalletTransaction struct {
	gorm.Model

	UserID uint   `gorm:"index" json:"user_id"`
	Delta  int64  `json:"delta"`
	Reason string `gorm:"size:16;index" json:"reason"`

	BalanceBefore int64 `json:"balance_before"`
	BalanceAfter  int64 `json:"balance_after"`

	RelatedBetID     *uint  `gorm:"index" json:"related_bet_id,omitempty"`
	RelatedRequestID *uint  `gorm:"index" json:"related_request_id,omitempty"`
	RefID            string `gorm:"size:64;index" json:"ref_id"`

	Note string `gorm:"size:255" json:"note"`
}
