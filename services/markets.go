package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"matkabook/logger"
	"matkabook/models"
)

func validMarketKind(kind string) bool {
	switch kind {
	case models.MarketKindCoinFlip, models.MarketKindSatamatka,
		models.MarketKindCricketToss, models.MarketKindTeamMatch:
		return true
	}
	return false
}

// CreateMarket opens a new bettable market. Sports kinds require both team
// names.
func CreateMarket(db *gorm.DB, title, kind, teamA, teamB string, opensAt, closesAt time.Time) (*models.Market, error) {
	if !validMarketKind(kind) {
		return nil, fmt.Errorf("%w: market kind %q", ErrOutOfRange, kind)
	}
	if title == "" {
		return nil, fmt.Errorf("%w: title required", ErrOutOfRange)
	}
	if !closesAt.After(opensAt) {
		return nil, fmt.Errorf("%w: closes_at must be after opens_at", ErrOutOfRange)
	}
	if kind == models.MarketKindCricketToss || kind == models.MarketKindTeamMatch {
		if teamA == "" || teamB == "" || teamA == teamB {
			return nil, fmt.Errorf("%w: two distinct team names required", ErrOutOfRange)
		}
	}

	market := models.Market{
		Title:    title,
		Kind:     kind,
		Status:   models.MarketOpen,
		TeamA:    teamA,
		TeamB:    teamB,
		OpensAt:  opensAt,
		ClosesAt: closesAt,
	}
	if err := db.Create(&market).Error; err != nil {
		return nil, err
	}

	logger.Info("market created", "market_id", market.ID, "kind", kind, "title", title)
	return &market, nil
}

// CloseMarket stops further bet placement. open -> closed only; the
// conditional update makes a repeat close a no-op and never reopens a
// resulted market.
func CloseMarket(db *gorm.DB, marketID uint) error {
	res := db.Model(&models.Market{}).
		Where("id = ? AND status = ?", marketID, models.MarketOpen).
		Update("status", models.MarketClosed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var market models.Market
		err := db.First(&market, marketID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMarketNotFound
		}
		if err != nil {
			return err
		}
		// already closed or resulted: fine either way
	}
	return nil
}

// ListMarkets returns markets, optionally filtered by status and kind.
func ListMarkets(db *gorm.DB, status, kind string, limit, offset int) ([]models.Market, error) {
	q := db.Model(&models.Market{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var markets []models.Market
	err := q.Order("id desc").Limit(limit).Offset(offset).Find(&markets).Error
	return markets, err
}
