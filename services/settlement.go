package services

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"matkabook/games"
	"matkabook/logger"
	"matkabook/models"
	"matkabook/money"
)

// SettlementSummary reports one declaration sweep. Failures lists bets whose
// settlement errored; those stay pending and are picked up when the same
// result is declared again.
type SettlementSummary struct {
	MarketID        uint         `json:"market_id"`
	Result          string       `json:"result"`
	SettledCount    int          `json:"settled_count"`
	WonCount        int          `json:"won_count"`
	LostCount       int          `json:"lost_count"`
	TotalPayout     int64        `json:"total_payout"`
	TotalCommission int64        `json:"total_commission"`
	Failures        []BetFailure `json:"failures,omitempty"`
}

type BetFailure struct {
	BetID uint   `json:"bet_id"`
	Error string `json:"error"`
}

// DeclareResult moves a market to resulted and settles its pending bets.
//
// The status transition is a conditional UPDATE, so two concurrent
// declarations race for a single winner. Re-declaring the same result on a
// resulted market is a no-op sweep that settles any bets a previous run left
// pending; declaring a different result is rejected. Each bet settles in its
// own transaction so one bad bet never blocks its siblings.
func DeclareResult(db *gorm.DB, marketID uint, result string, declaredBy uint) (*SettlementSummary, error) {
	var market models.Market
	err := db.First(&market, marketID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMarketNotFound
	}
	if err != nil {
		return nil, err
	}

	result = games.Normalize(result)
	if err := games.ValidateResult(&market, result); err != nil {
		return nil, err
	}

	now := time.Now()
	res := db.Model(&models.Market{}).
		Where("id = ? AND status IN ?", marketID, []string{models.MarketOpen, models.MarketClosed}).
		Updates(map[string]any{"status": models.MarketResulted, "result": result, "resulted_at": now})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Someone got there first. Same result means idempotent retry;
		// a different result on a resulted market is immutable.
		if err := db.First(&market, marketID).Error; err != nil {
			return nil, err
		}
		if market.Status != models.MarketResulted || market.Result != result {
			return nil, ErrAlreadyResulted
		}
	}

	summary := &SettlementSummary{MarketID: marketID, Result: result}

	var betIDs []uint
	if err := db.Model(&models.Bet{}).
		Where("market_id = ? AND status = ?", marketID, models.BetPending).
		Order("id asc").
		Pluck("id", &betIDs).Error; err != nil {
		return nil, err
	}

	for _, betID := range betIDs {
		outcome, payout, commission, err := settleBet(db, betID, result)
		if err != nil {
			logger.Error("bet settlement failed", "bet_id", betID, "market_id", marketID, "error", err)
			summary.Failures = append(summary.Failures, BetFailure{BetID: betID, Error: err.Error()})
			continue
		}
		switch outcome {
		case models.BetWon:
			summary.SettledCount++
			summary.WonCount++
			summary.TotalPayout += payout
		case models.BetLost:
			summary.SettledCount++
			summary.LostCount++
			summary.TotalCommission += commission
		}
		// empty outcome: another settler already finished this bet
	}

	if err := saveReport(db, summary, declaredBy); err != nil {
		logger.Error("failed to persist settlement report", "market_id", marketID, "error", err)
	}

	logger.Info("market resulted",
		"market_id", marketID, "result", result,
		"settled", summary.SettledCount, "won", summary.WonCount, "lost", summary.LostCount,
		"total_payout", summary.TotalPayout, "total_commission", summary.TotalCommission,
		"failures", len(summary.Failures))

	return summary, nil
}

// betOutcome is the pure pending -> terminal decision for one bet against a
// declared result. AlreadyTerminal marks the idempotent no-op: a bet that is
// won or lost stays exactly as it is, with no payout computed.
type betOutcome struct {
	AlreadyTerminal bool
	Status          string
	Payout          int64
}

func decideSettlement(bet *models.Bet, result string) (betOutcome, error) {
	if bet.Status != models.BetPending {
		return betOutcome{AlreadyTerminal: true}, nil
	}

	won, err := games.Judge(bet.GameType, bet.Prediction, result)
	if err != nil {
		// Unknown or malformed rule input. Surface and leave the bet
		// pending rather than guess an outcome.
		return betOutcome{}, err
	}

	if won {
		return betOutcome{
			Status: models.BetWon,
			Payout: money.FromPaisa(bet.Stake).ApplyMultiplier(bet.ResolvedOdds).Paisa(),
		}, nil
	}
	return betOutcome{Status: models.BetLost}, nil
}

// settleBet applies the pending -> terminal transition for one bet in its own
// transaction. Returns an empty outcome when the bet was already terminal
// (no-op, not an error). The conditional status update is the idempotency
// guard: exactly one settler wins the row.
func settleBet(db *gorm.DB, betID uint, result string) (outcome string, payout, commission int64, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		var bet models.Bet
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&bet, betID).Error; err != nil {
			return err
		}

		out, err := decideSettlement(&bet, result)
		if err != nil {
			return err
		}
		if out.AlreadyTerminal {
			return nil
		}

		res := tx.Model(&models.Bet{}).
			Where("id = ? AND status = ?", bet.ID, models.BetPending).
			Updates(map[string]any{"status": out.Status, "payout": out.Payout, "settled_at": time.Now()})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// lost the race to another settler
			return nil
		}

		if out.Status == models.BetWon {
			payout = out.Payout
			player, err := lockUser(tx, bet.UserID)
			if err != nil {
				return err
			}
			if _, err := creditLocked(tx, player, money.FromPaisa(payout), models.TxnBetPayout, walletRef{
				BetID: &bet.ID,
				Note:  "payout " + bet.GameType,
			}); err != nil {
				return err
			}
			outcome = models.BetWon
			return nil
		}

		commission, err = accrueCommission(tx, &bet)
		if err != nil {
			return err
		}
		outcome = models.BetLost
		return nil
	})
	if err != nil {
		return "", 0, 0, err
	}
	return outcome, payout, commission, nil
}

// buildReport assembles the persistable report row for one sweep.
func buildReport(s *SettlementSummary, declaredBy uint) models.SettlementReport {
	var failures datatypes.JSON
	if len(s.Failures) > 0 {
		b, _ := json.Marshal(s.Failures)
		failures = datatypes.JSON(b)
	}
	return models.SettlementReport{
		MarketID:        s.MarketID,
		Result:          s.Result,
		SettledCount:    s.SettledCount,
		WonCount:        s.WonCount,
		LostCount:       s.LostCount,
		TotalPayout:     s.TotalPayout,
		TotalCommission: s.TotalCommission,
		Failures:        failures,
		DeclaredBy:      declaredBy,
	}
}

// saveReport upserts on the market_id unique index with additive counts, so
// concurrent same-result sweeps and retry sweeps fold together instead of
// racing a read-then-create.
func saveReport(db *gorm.DB, s *SettlementSummary, declaredBy uint) error {
	report := buildReport(s, declaredBy)
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "market_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"settled_count":    gorm.Expr("settlement_reports.settled_count + ?", s.SettledCount),
			"won_count":        gorm.Expr("settlement_reports.won_count + ?", s.WonCount),
			"lost_count":       gorm.Expr("settlement_reports.lost_count + ?", s.LostCount),
			"total_payout":     gorm.Expr("settlement_reports.total_payout + ?", s.TotalPayout),
			"total_commission": gorm.Expr("settlement_reports.total_commission + ?", s.TotalCommission),
			"failures":         report.Failures,
			"declared_by":      declaredBy,
		}),
	}).Create(&report).Error
}
