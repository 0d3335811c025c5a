package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"matkabook/logger"
	"matkabook/models"
	"matkabook/money"
)

// CreatePaymentRequest files a player's deposit or withdrawal for review.
// Nothing touches the wallet until a reviewer approves.
func CreatePaymentRequest(db *gorm.DB, userID uint, reqType string, amount money.Money, note string) (*models.PaymentRequest, error) {
	if reqType != models.RequestDeposit && reqType != models.RequestWithdraw {
		return nil, fmt.Errorf("%w: request type %q", ErrOutOfRange, reqType)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", ErrOutOfRange)
	}

	req := models.PaymentRequest{
		UserID: userID,
		Type:   reqType,
		Amount: amount.Paisa(),
		Status: models.RequestPending,
		Note:   note,
	}
	if err := db.Create(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// ReviewPaymentRequest approves or rejects a pending request. Approval and
// the wallet mutation commit together; if the wallet side fails (for example
// a withdrawal against an emptied balance) the request stays pending and the
// error surfaces to the reviewer.
func ReviewPaymentRequest(db *gorm.DB, requestID, reviewerID uint, approve bool) (*models.PaymentRequest, error) {
	var req models.PaymentRequest
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&req, requestID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("payment request %d: %w", requestID, gorm.ErrRecordNotFound)
		}
		if err != nil {
			return err
		}
		if req.Status != models.RequestPending {
			return ErrRequestNotPending
		}

		status := models.RequestRejected
		if approve {
			status = models.RequestApproved
		}
		res := tx.Model(&models.PaymentRequest{}).
			Where("id = ? AND status = ?", req.ID, models.RequestPending).
			Updates(map[string]any{"status": status, "reviewed_by": reviewerID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRequestNotPending
		}
		req.Status = status
		req.ReviewedBy = &reviewerID

		if !approve {
			return nil
		}

		user, err := lockUser(tx, req.UserID)
		if err != nil {
			return err
		}

		amount := money.FromPaisa(req.Amount)
		ref := walletRef{RequestID: &req.ID, RefID: req.RefID, Note: "payment request " + req.Type}
		if req.Type == models.RequestDeposit {
			_, err = creditLocked(tx, user, amount, models.TxnDeposit, ref)
		} else {
			_, err = debitLocked(tx, user, amount, models.TxnWithdrawal, ref)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("payment request reviewed",
		"request_id", req.ID, "user_id", req.UserID, "type", req.Type,
		"status", req.Status, "reviewer", reviewerID)
	return &req, nil
}

// ListPaymentRequests returns requests for review, newest first. userID 0
// means all users; status "" means all statuses.
func ListPaymentRequests(db *gorm.DB, userID uint, status string, limit, offset int) ([]models.PaymentRequest, error) {
	q := db.Model(&models.PaymentRequest{})
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var reqs []models.PaymentRequest
	err := q.Order("id desc").Limit(limit).Offset(offset).Find(&reqs).Error
	return reqs, err
}
