package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"matkabook/games"
	"matkabook/models"
	"matkabook/money"
)

// PlaceBet escrows the stake and creates the pending bet in one transaction.
// The odds are resolved and snapshotted here; if any step fails the whole
// placement rolls back, so there is never a debit without a bet or a bet
// without a debit.
func PlaceBet(db *gorm.DB, playerID uint, gameType string, stake money.Money, prediction string, marketID uint) (*models.Bet, error) {
	if !stake.IsPositive() {
		return nil, fmt.Errorf("%w: stake must be positive", ErrOutOfRange)
	}
	prediction = games.Normalize(prediction)

	var bet *models.Bet
	err := db.Transaction(func(tx *gorm.DB) error {
		// Share-lock the market row so placement serializes against the
		// resulted transition: either this bet commits before the market
		// flips and the settlement sweep sees it, or the lock read observes
		// the terminal status and the placement is refused. Concurrent
		// placements on the same market still proceed in parallel.
		var market models.Market
		err := tx.Clauses(clause.Locking{Strength: "SHARE"}).First(&market, marketID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMarketNotFound
		}
		if err != nil {
			return err
		}

		if err := placementGate(&market, time.Now()); err != nil {
			return err
		}
		if !market.AcceptsGameType(gameType) {
			return fmt.Errorf("%w: market %q does not take %s bets", games.ErrBadPrediction, market.Title, gameType)
		}
		if err := games.ValidatePrediction(gameType, prediction, &market); err != nil {
			return err
		}

		player, err := lockUser(tx, playerID)
		if err != nil {
			return err
		}
		if player.Blocked {
			return ErrUserBlocked
		}
		if player.Role != models.RolePlayer {
			return fmt.Errorf("%w: only players place bets", ErrForbidden)
		}

		odds, err := ResolveOdds(tx, gameType, player)
		if err != nil {
			return err
		}

		bet = &models.Bet{
			UserID:       player.ID,
			MarketID:     market.ID,
			GameType:     gameType,
			Stake:        stake.Paisa(),
			Prediction:   prediction,
			ResolvedOdds: odds.Multiplier,
			OddsSource:   odds.Source,
			Status:       models.BetPending,
		}
		if err := tx.Create(bet).Error; err != nil {
			return err
		}

		_, err = debitLocked(tx, player, stake, models.TxnBetStake, walletRef{
			BetID: &bet.ID,
			Note:  fmt.Sprintf("stake %s on market %d", gameType, market.ID),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return bet, nil
}

// placementGate decides whether a market takes bets at now: open status and
// inside the betting window, both ends.
func placementGate(market *models.Market, now time.Time) error {
	if market.Status != models.MarketOpen {
		return ErrMarketClosed
	}
	if now.Before(market.OpensAt) || now.After(market.ClosesAt) {
		return ErrMarketClosed
	}
	return nil
}

// BetHistoryFilter narrows ListBets. Zero values mean no filter.
type BetHistoryFilter struct {
	GameType string
	Status   string
	MarketID uint
	Limit    int
	Offset   int
}

// ListBets returns a user's bets, newest first. Lock-free read.
func ListBets(db *gorm.DB, userID uint, f BetHistoryFilter) ([]models.Bet, error) {
	q := db.Where("user_id = ?", userID)
	if f.GameType != "" {
		q = q.Where("game_type = ?", f.GameType)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.MarketID != 0 {
		q = q.Where("market_id = ?", f.MarketID)
	}
	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var bets []models.Bet
	err := q.Order("id desc").Limit(limit).Offset(f.Offset).Find(&bets).Error
	return bets, err
}

// ListTransactions returns a user's wallet statement, newest first.
func ListTransactions(db *gorm.DB, userID uint, limit, offset int) ([]models.WalletTransaction, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var txns []models.WalletTransaction
	err := db.Where("user_id = ?", userID).Order("id desc").Limit(limit).Offset(offset).Find(&txns).Error
	return txns, err
}
