package services

import (
	"errors"

	"gorm.io/gorm"

	"matkabook/models"
	"matkabook/money"
)

// accrueCommission credits the losing player's subadmin with their cut of the
// lost stake. Runs inside the bet's settlement transaction, so the bet-level
// idempotency guard also covers the commission: one losing bet, one accrual.
// Returns the credited amount in paisa.
func accrueCommission(tx *gorm.DB, bet *models.Bet) (int64, error) {
	var player models.User
	if err := tx.Select("id", "assigned_to").First(&player, bet.UserID).Error; err != nil {
		return 0, err
	}
	if player.AssignedTo == nil {
		return 0, nil
	}
	subadminID := *player.AssignedTo

	rate, err := lookupCommissionRate(tx, subadminID, bet.GameType)
	if err != nil {
		return 0, err
	}

	commission := commissionAmount(bet.Stake, rate)
	if commission == 0 {
		return 0, nil
	}

	subadmin, err := lockUser(tx, subadminID)
	if err != nil {
		return 0, err
	}
	if subadmin.Role != models.RoleSubadmin {
		// Players owned directly by the admin generate no commission.
		return 0, nil
	}

	if _, err := creditLocked(tx, subadmin, money.FromPaisa(commission), models.TxnCommission, walletRef{
		BetID: &bet.ID,
		Note:  "commission " + bet.GameType,
	}); err != nil {
		return 0, err
	}
	return commission, nil
}

// lookupCommissionRate returns the subadmin's rate for a game type, scaled by
// 100. Unset means 0.
func lookupCommissionRate(tx *gorm.DB, subadminID uint, gameType string) (int64, error) {
	var cr models.CommissionRate
	err := tx.Where("subadmin_id = ? AND game_type = ? AND active = true", subadminID, gameType).
		First(&cr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return cr.Rate, nil
}

// commissionAmount is floor(stake * rate / 100) with rate scaled by 100.
func commissionAmount(stake, rate int64) int64 {
	return money.FromPaisa(stake).Percent(rate).Paisa()
}
