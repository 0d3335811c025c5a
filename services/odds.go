package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"matkabook/models"
)

const (
	OddsGlobalDefault    = "global_default"
	OddsSubadminOverride = "subadmin_override"
	discountSuffix       = "+discount"
)

// ResolvedOdds is the outcome of one walk over the override hierarchy. The
// Source tag records which rows won, so the number snapshotted into a bet can
// be audited after the fact.
type ResolvedOdds struct {
	Multiplier   int64
	Source       string
	BaseOdds     int64
	DiscountRate int64
}

// ResolveOdds returns the effective multiplier for one player and game type:
// subadmin override if the player's owner has an active one, otherwise the
// global default, then the player's discount applied on top. The caller
// snapshots the result into the bet; it is never recomputed.
func ResolveOdds(db *gorm.DB, gameType string, player *models.User) (ResolvedOdds, error) {
	var base *models.GameOdds

	if player.AssignedTo != nil {
		var override models.GameOdds
		err := db.Where("game_type = ? AND subadmin_id = ? AND active = true", gameType, *player.AssignedTo).
			First(&override).Error
		if err == nil {
			base = &override
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return ResolvedOdds{}, err
		}
	}

	if base == nil {
		var global models.GameOdds
		err := db.Where("game_type = ? AND subadmin_id = 0 AND active = true", gameType).
			First(&global).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ResolvedOdds{}, fmt.Errorf("%w: %s", ErrOddsNotConfigured, gameType)
		}
		if err != nil {
			return ResolvedOdds{}, err
		}
		base = &global
	}

	source := OddsGlobalDefault
	if base.SubadminID != 0 {
		source = OddsSubadminOverride
	}

	var discountRate int64
	var discount models.UserDiscount
	err := db.Where("user_id = ? AND game_type = ? AND active = true", player.ID, gameType).
		First(&discount).Error
	if err == nil {
		discountRate = discount.Rate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ResolvedOdds{}, err
	}

	return composeOdds(base.Multiplier, source, discountRate), nil
}

// composeOdds applies a discount rate (percent scaled by 100) on top of the
// base multiplier, multiplicatively and floored: 210 at 10% becomes 231.
func composeOdds(base int64, source string, discountRate int64) ResolvedOdds {
	r := ResolvedOdds{
		Multiplier:   base,
		Source:       source,
		BaseOdds:     base,
		DiscountRate: discountRate,
	}
	if discountRate > 0 {
		r.Multiplier = base * (10000 + discountRate) / 10000
		r.Source = source + discountSuffix
	}
	return r
}
