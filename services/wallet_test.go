package services

import (
	"testing"

	"matkabook/models"
)

func TestReplayBalance(t *testing.T) {
	tests := []struct {
		name string
		txns []models.WalletTransaction
		want int64
	}{
		{
			name: "empty ledger",
			txns: nil,
			want: 0,
		},
		{
			name: "deposit then stake then payout",
			txns: []models.WalletTransaction{
				{Delta: 10000, Reason: models.TxnDeposit},
				{Delta: -2000, Reason: models.TxnBetStake},
				{Delta: 3900, Reason: models.TxnBetPayout},
			},
			want: 11900,
		},
		{
			name: "losing day",
			txns: []models.WalletTransaction{
				{Delta: 10000, Reason: models.TxnDeposit},
				{Delta: -2000, Reason: models.TxnBetStake},
			},
			want: 8000,
		},
		{
			name: "withdrawal to zero",
			txns: []models.WalletTransaction{
				{Delta: 5000, Reason: models.TxnDeposit},
				{Delta: -5000, Reason: models.TxnWithdrawal},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReplayBalance(tt.txns)
			if got != tt.want {
				t.Errorf("ReplayBalance() = %d, want %d", got, tt.want)
			}
		})
	}
}

// The prefix-sum snapshots in each row must chain: every row's BalanceAfter
// is the next row's BalanceBefore, and the final BalanceAfter equals the
// replayed sum.
func TestLedgerSnapshotsChain(t *testing.T) {
	txns := []models.WalletTransaction{
		{Delta: 10000, BalanceBefore: 0, BalanceAfter: 10000},
		{Delta: -2000, BalanceBefore: 10000, BalanceAfter: 8000},
		{Delta: 3900, BalanceBefore: 8000, BalanceAfter: 11900},
	}

	for i := 1; i < len(txns); i++ {
		if txns[i].BalanceBefore != txns[i-1].BalanceAfter {
			t.Errorf("row %d: BalanceBefore = %d, want %d", i, txns[i].BalanceBefore, txns[i-1].BalanceAfter)
		}
	}
	if got := ReplayBalance(txns); got != txns[len(txns)-1].BalanceAfter {
		t.Errorf("replayed %d != final snapshot %d", got, txns[len(txns)-1].BalanceAfter)
	}
}
