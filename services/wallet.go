package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"matkabook/models"
	"matkabook/money"
)

// walletRef links a ledger row to whatever caused it.
type walletRef struct {
	BetID     *uint
	RequestID *uint
	RefID     string
	Note      string
}

// lockUser loads a user row FOR UPDATE inside tx. Every wallet mutation goes
// through this lock, so concurrent mutations on one user serialize while
// different users proceed in parallel.
func lockUser(tx *gorm.DB, userID uint) (*models.User, error) {
	var user models.User
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// creditLocked adds amount to a row-locked user and appends the ledger entry.
// The balance snapshot pair is taken under the same lock as the update.
func creditLocked(tx *gorm.DB, user *models.User, amount money.Money, reason string, ref walletRef) (*models.WalletTransaction, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("credit amount must not be negative: %s", amount)
	}
	return applyDelta(tx, user, amount.Paisa(), reason, ref)
}

// debitLocked removes amount from a row-locked user, rejecting any debit that
// would take the balance negative. Never clamps.
func debitLocked(tx *gorm.DB, user *models.User, amount money.Money, reason string, ref walletRef) (*models.WalletTransaction, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("debit amount must not be negative: %s", amount)
	}
	if user.Balance < amount.Paisa() {
		return nil, ErrInsufficientBalance
	}
	return applyDelta(tx, user, -amount.Paisa(), reason, ref)
}

func applyDelta(tx *gorm.DB, user *models.User, delta int64, reason string, ref walletRef) (*models.WalletTransaction, error) {
	before := user.Balance
	after := before + delta

	if err := tx.Model(user).Update("balance", after).Error; err != nil {
		return nil, err
	}
	user.Balance = after

	refID := ref.RefID
	if refID == "" {
		refID = strings.ToLower(uuid.New().String())
	}

	txn := models.WalletTransaction{
		UserID:           user.ID,
		Delta:            delta,
		Reason:           reason,
		BalanceBefore:    before,
		BalanceAfter:     after,
		RelatedBetID:     ref.BetID,
		RelatedRequestID: ref.RequestID,
		RefID:            refID,
		Note:             ref.Note,
	}
	if err := tx.Create(&txn).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

// Deposit credits a user outside bet flow, in its own transaction.
func Deposit(db *gorm.DB, userID uint, amount money.Money, requestID *uint, note string) (*models.WalletTransaction, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: deposit must be positive", ErrOutOfRange)
	}
	var txn *models.WalletTransaction
	err := db.Transaction(func(tx *gorm.DB) error {
		user, err := lockUser(tx, userID)
		if err != nil {
			return err
		}
		txn, err = creditLocked(tx, user, amount, models.TxnDeposit, walletRef{RequestID: requestID, Note: note})
		return err
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// Withdraw debits a user outside bet flow, in its own transaction.
func Withdraw(db *gorm.DB, userID uint, amount money.Money, requestID *uint, note string) (*models.WalletTransaction, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: withdrawal must be positive", ErrOutOfRange)
	}
	var txn *models.WalletTransaction
	err := db.Transaction(func(tx *gorm.DB) error {
		user, err := lockUser(tx, userID)
		if err != nil {
			return err
		}
		txn, err = debitLocked(tx, user, amount, models.TxnWithdrawal, walletRef{RequestID: requestID, Note: note})
		return err
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// GetBalance is a lock-free read of the cached balance.
func GetBalance(db *gorm.DB, userID uint) (money.Money, error) {
	var user models.User
	err := db.Select("balance").First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrUserNotFound
	}
	if err != nil {
		return 0, err
	}
	return money.FromPaisa(user.Balance), nil
}

// ReplayBalance folds a ledger back into a balance. The cached balance must
// always equal the replay of the user's full transaction log.
func ReplayBalance(txns []models.WalletTransaction) int64 {
	var sum int64
	for i := range txns {
		sum += txns[i].Delta
	}
	return sum
}

// LedgerCheck is the reconciliation result for one user.
type LedgerCheck struct {
	UserID   uint  `json:"user_id"`
	Cached   int64 `json:"cached_balance"`
	Replayed int64 `json:"replayed_balance"`
	Count    int   `json:"transaction_count"`
	Ok       bool  `json:"ok"`
}

// CheckLedger replays a user's full transaction log in insertion order and
// compares it with the cached balance.
func CheckLedger(db *gorm.DB, userID uint) (*LedgerCheck, error) {
	var user models.User
	err := db.Select("id", "balance").First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	var txns []models.WalletTransaction
	if err := db.Where("user_id = ?", userID).Order("id asc").Find(&txns).Error; err != nil {
		return nil, err
	}

	replayed := ReplayBalance(txns)
	return &LedgerCheck{
		UserID:   userID,
		Cached:   user.Balance,
		Replayed: replayed,
		Count:    len(txns),
		Ok:       replayed == user.Balance,
	}, nil
}
