package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RequestDeposit  = "deposit"
	RequestWithdraw = "withdraw"
)

const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// PaymentRequest is a player's deposit or withdrawal request. The wallet is
// only touched when a reviewer approves it; approval and the balance change
// happen in one transaction keyed to RelatedRequestID.
type PaymentRequest struct {
	gorm.Model

	UserID uint   `gorm:"index" json:"user_id"`
	Type   string `gorm:"size:16" json:"type"`
	Amount int64  `json:"amount"`

	Status     string `gorm:"size:16;index;default:pending" json:"status"`
	RefID      string `gorm:"size:36;uniqueIndex" json:"ref_id"`
	Note       string `gorm:"size:255" json:"note"`
	ReviewedBy *uint  `json:"reviewed_by,omitempty"`
}

func (r *PaymentRequest) BeforeCreate(tx *gorm.DB) (err error) {
	r.RefID = strings.ToLower(uuid.New().String())
	return nil
}
