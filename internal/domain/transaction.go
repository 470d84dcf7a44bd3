package domain

import "time"

type TransactionStatus string

const (
	StatusCreated TransactionStatus = "CREATED"
	StatusPaid    TransactionStatus = "PAID"
	StatusFailed  TransactionStatus = "FAILED"
)

// IsTerminal reports whether no further transition may leave the status.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusPaid || s == StatusFailed
}

type TransactionPurpose string

const (
	PurposeDonation    TransactionPurpose = "DONATION"
	PurposeSponsorship TransactionPurpose = "SPONSORSHIP"
	PurposeListingFee  TransactionPurpose = "LISTING_FEE"
)

// Transaction is the append-only audit record of a requested payment.
// Created by order initiation, mutated only by reconciliation, never deleted.
type Transaction struct {
	ID             string
	GatewayOrderID string
	AmountMinor    int64
	Currency       string
	Purpose        TransactionPurpose
	PayerName      string
	PayerEmail     string
	Anonymous      bool
	Status         TransactionStatus
	PaidAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DisplayName is what receipts and emails show as the payer.
func (t *Transaction) DisplayName() string {
	if t.Anonymous || t.PayerName == "" {
		return "Anonymous"
	}
	return t.PayerName
}

type TransactionFilters struct {
	Statuses       []TransactionStatus
	Purpose        TransactionPurpose
	MinAmountMinor int64
	MaxAmountMinor int64
	DateFrom       time.Time
	DateTo         time.Time
}

type TransactionStats struct {
	CreatedCount     int64
	CreatedAmount    int64
	PaidCount        int64
	PaidAmount       int64
	FailedCount      int64
	FailedAmount     int64
}
