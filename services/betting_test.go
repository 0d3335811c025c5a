package services

import (
	"errors"
	"testing"
	"time"

	"matkabook/models"
)

func TestPlacementGate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		market  models.Market
		wantErr bool
	}{
		{
			name: "open market inside window",
			market: models.Market{
				Status:   models.MarketOpen,
				OpensAt:  now.Add(-time.Hour),
				ClosesAt: now.Add(time.Hour),
			},
		},
		{
			name: "window not open yet",
			market: models.Market{
				Status:   models.MarketOpen,
				OpensAt:  now.Add(time.Hour),
				ClosesAt: now.Add(2 * time.Hour),
			},
			wantErr: true,
		},
		{
			name: "window already over",
			market: models.Market{
				Status:   models.MarketOpen,
				OpensAt:  now.Add(-2 * time.Hour),
				ClosesAt: now.Add(-time.Hour),
			},
			wantErr: true,
		},
		{
			name: "closed market",
			market: models.Market{
				Status:   models.MarketClosed,
				OpensAt:  now.Add(-time.Hour),
				ClosesAt: now.Add(time.Hour),
			},
			wantErr: true,
		},
		{
			name: "resulted market refuses late bets",
			market: models.Market{
				Status:   models.MarketResulted,
				OpensAt:  now.Add(-time.Hour),
				ClosesAt: now.Add(time.Hour),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := placementGate(&tt.market, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("placementGate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrMarketClosed) {
				t.Errorf("placementGate() error = %v, want ErrMarketClosed", err)
			}
		})
	}
}
