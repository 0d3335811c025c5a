package services

import "errors"

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrOddsNotConfigured   = errors.New("odds not configured for game type")
	ErrMarketNotFound      = errors.New("market not found")
	ErrMarketClosed        = errors.New("market is not open for betting")
	ErrAlreadyResulted     = errors.New("market already resulted with a different result")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserBlocked         = errors.New("user is blocked")
	ErrRequestNotPending   = errors.New("payment request is not pending")
	ErrOutOfRange          = errors.New("value outside allowed range")
	ErrForbidden           = errors.New("operation not allowed for this user")
)
