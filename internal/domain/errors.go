package domain

import "errors"

var (
	ErrInvalidAmount       = errors.New("amount must be positive and below the configured maximum")
	ErrSignatureMismatch   = errors.New("webhook signature mismatch")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrReceiptExists       = errors.New("receipt already issued for transaction")
	ErrGatewayUnavailable  = errors.New("payment gateway request failed")
	ErrNotificationFailed  = errors.New("receipt or email notification failed")
)
