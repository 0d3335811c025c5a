package services

import (
	"encoding/json"
	"errors"
	"testing"

	"matkabook/games"
	"matkabook/models"
)

func TestDecideSettlement(t *testing.T) {
	tests := []struct {
		name       string
		bet        models.Bet
		result     string
		wantStatus string
		wantPayout int64
		wantErr    error
	}{
		{
			name: "winning coin flip pays floor of stake times odds",
			bet: models.Bet{
				GameType:     models.GameCoinFlip,
				Prediction:   "heads",
				Stake:        2000,
				ResolvedOdds: 195,
				Status:       models.BetPending,
			},
			result:     "heads",
			wantStatus: models.BetWon,
			wantPayout: 3900,
		},
		{
			name: "losing coin flip pays nothing",
			bet: models.Bet{
				GameType:     models.GameCoinFlip,
				Prediction:   "heads",
				Stake:        2000,
				ResolvedOdds: 195,
				Status:       models.BetPending,
			},
			result:     "tails",
			wantStatus: models.BetLost,
			wantPayout: 0,
		},
		{
			name: "winning jodi at high odds",
			bet: models.Bet{
				GameType:     models.GameSatamatkaJodi,
				Prediction:   "47",
				Stake:        1000,
				ResolvedOdds: 950,
				Status:       models.BetPending,
			},
			result:     "47",
			wantStatus: models.BetWon,
			wantPayout: 9500,
		},
		{
			name: "payout floors fractional paisa",
			bet: models.Bet{
				GameType:     models.GameCoinFlip,
				Prediction:   "tails",
				Stake:        333,
				ResolvedOdds: 195,
				Status:       models.BetPending,
			},
			result:     "tails",
			wantStatus: models.BetWon,
			wantPayout: 649, // 333*195/100 = 649.35
		},
		{
			name: "unknown game type halts the bet",
			bet: models.Bet{
				GameType:   "roulette",
				Prediction: "red",
				Stake:      1000,
				Status:     models.BetPending,
			},
			result:  "black",
			wantErr: games.ErrUnknownGameType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := decideSettlement(&tt.bet, tt.result)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("decideSettlement() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("decideSettlement() error = %v", err)
			}
			if out.AlreadyTerminal {
				t.Fatal("decideSettlement() reported terminal for a pending bet")
			}
			if out.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", out.Status, tt.wantStatus)
			}
			if out.Payout != tt.wantPayout {
				t.Errorf("Payout = %d, want %d", out.Payout, tt.wantPayout)
			}
		})
	}
}

// Settling a market twice must leave every bet exactly as the first pass left
// it: the second decision sees the terminal status and yields a no-op with no
// payout, so no second wallet movement can follow.
func TestDecideSettlementIdempotent(t *testing.T) {
	tests := []struct {
		name       string
		prediction string
		result     string
	}{
		{name: "won bet stays won", prediction: "heads", result: "heads"},
		{name: "lost bet stays lost", prediction: "heads", result: "tails"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bet := models.Bet{
				GameType:     models.GameCoinFlip,
				Prediction:   tt.prediction,
				Stake:        2000,
				ResolvedOdds: 195,
				Status:       models.BetPending,
			}

			first, err := decideSettlement(&bet, tt.result)
			if err != nil {
				t.Fatalf("first decideSettlement() error = %v", err)
			}
			bet.Status = first.Status
			bet.Payout = first.Payout

			second, err := decideSettlement(&bet, tt.result)
			if err != nil {
				t.Fatalf("second decideSettlement() error = %v", err)
			}
			if !second.AlreadyTerminal {
				t.Fatal("second settlement attempt not flagged as terminal no-op")
			}
			if second.Payout != 0 || second.Status != "" {
				t.Errorf("second attempt produced outcome (%q, %d), want none", second.Status, second.Payout)
			}

			// state unchanged by the second pass
			if bet.Status != first.Status || bet.Payout != first.Payout {
				t.Errorf("bet mutated to (%q, %d), want (%q, %d)", bet.Status, bet.Payout, first.Status, first.Payout)
			}
		})
	}
}

func TestBuildReport(t *testing.T) {
	s := &SettlementSummary{
		MarketID:        9,
		Result:          "47",
		SettledCount:    3,
		WonCount:        1,
		LostCount:       2,
		TotalPayout:     9500,
		TotalCommission: 250,
		Failures:        []BetFailure{{BetID: 12, Error: "unknown game type rule: roulette"}},
	}

	report := buildReport(s, 1)
	if report.MarketID != 9 || report.Result != "47" || report.DeclaredBy != 1 {
		t.Errorf("report identity = (%d, %q, %d), want (9, 47, 1)", report.MarketID, report.Result, report.DeclaredBy)
	}
	if report.SettledCount != 3 || report.WonCount != 1 || report.LostCount != 2 {
		t.Errorf("report counts = (%d, %d, %d), want (3, 1, 2)", report.SettledCount, report.WonCount, report.LostCount)
	}
	if report.TotalPayout != 9500 || report.TotalCommission != 250 {
		t.Errorf("report totals = (%d, %d), want (9500, 250)", report.TotalPayout, report.TotalCommission)
	}

	var failures []BetFailure
	if err := json.Unmarshal(report.Failures, &failures); err != nil {
		t.Fatalf("failures not valid JSON: %v", err)
	}
	if len(failures) != 1 || failures[0].BetID != 12 {
		t.Errorf("failures = %+v, want one entry for bet 12", failures)
	}

	clean := buildReport(&SettlementSummary{MarketID: 9, Result: "47"}, 1)
	if clean.Failures != nil {
		t.Errorf("clean sweep failures = %v, want nil", clean.Failures)
	}
}
