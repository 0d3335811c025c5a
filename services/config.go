package services

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"matkabook/logger"
	"matkabook/models"
)

// Validated ranges for administrative writes, in scaled-integer units.
// Multipliers: 100 (1.00x) to 2000 (20.00x). Rates: 0 to 10000 (100%).
const (
	MinMultiplier = 100
	MaxMultiplier = 2000
	MinRate       = 0
	MaxRate       = 10000
)

func validMultiplier(m int64) bool { return m >= MinMultiplier && m <= MaxMultiplier }
func validRate(r int64) bool       { return r >= MinRate && r <= MaxRate }

func validGameType(gameType string) bool {
	switch gameType {
	case models.GameCoinFlip, models.GameSatamatkaJodi, models.GameSatamatkaHarf,
		models.GameSatamatkaCross, models.GameSatamatkaOddEven,
		models.GameCricketToss, models.GameTeamMatch:
		return true
	}
	return false
}

// SetGameOdds writes the multiplier for a scope key. subadminID 0 sets the
// global admin default; non-zero sets that subadmin's override. The upsert
// targets the (game_type, subadmin_id) unique index, so each scope key keeps
// exactly one active row.
func SetGameOdds(db *gorm.DB, subadminID uint, gameType string, multiplier int64) error {
	if !validGameType(gameType) {
		return fmt.Errorf("%w: game type %q", ErrOutOfRange, gameType)
	}
	if !validMultiplier(multiplier) {
		return fmt.Errorf("%w: multiplier %d not in [%d, %d]", ErrOutOfRange, multiplier, MinMultiplier, MaxMultiplier)
	}

	odds := models.GameOdds{
		GameType:   gameType,
		SubadminID: subadminID,
		Multiplier: multiplier,
		Active:     true,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "game_type"}, {Name: "subadmin_id"}},
		DoUpdates: clause.Assignments(map[string]any{"multiplier": multiplier, "active": true}),
	}).Create(&odds).Error
	if err != nil {
		return err
	}

	logger.Info("game odds updated", "game_type", gameType, "subadmin_id", subadminID, "multiplier", multiplier)
	return nil
}

// SetUserDiscount writes a player's discount for a game type (percent scaled
// by 100, capped at 100%).
func SetUserDiscount(db *gorm.DB, userID uint, gameType string, rate int64) error {
	if !validGameType(gameType) {
		return fmt.Errorf("%w: game type %q", ErrOutOfRange, gameType)
	}
	if !validRate(rate) {
		return fmt.Errorf("%w: discount rate %d not in [%d, %d]", ErrOutOfRange, rate, MinRate, MaxRate)
	}

	discount := models.UserDiscount{
		UserID:   userID,
		GameType: gameType,
		Rate:     rate,
		Active:   true,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "game_type"}},
		DoUpdates: clause.Assignments(map[string]any{"rate": rate, "active": true}),
	}).Create(&discount).Error
	if err != nil {
		return err
	}

	logger.Info("user discount updated", "user_id", userID, "game_type", gameType, "rate", rate)
	return nil
}

// SetCommissionRate writes a subadmin's commission rate for a game type.
// Admin-only; the HTTP layer enforces the role, this enforces the range.
func SetCommissionRate(db *gorm.DB, subadminID uint, gameType string, rate int64) error {
	if !validGameType(gameType) {
		return fmt.Errorf("%w: game type %q", ErrOutOfRange, gameType)
	}
	if !validRate(rate) {
		return fmt.Errorf("%w: commission rate %d not in [%d, %d]", ErrOutOfRange, rate, MinRate, MaxRate)
	}

	cr := models.CommissionRate{
		SubadminID: subadminID,
		GameType:   gameType,
		Rate:       rate,
		Active:     true,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "subadmin_id"}, {Name: "game_type"}},
		DoUpdates: clause.Assignments(map[string]any{"rate": rate, "active": true}),
	}).Create(&cr).Error
	if err != nil {
		return err
	}

	logger.Info("commission rate updated", "subadmin_id", subadminID, "game_type", gameType, "rate", rate)
	return nil
}
