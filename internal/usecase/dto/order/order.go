package orderdto

import (
	"time"

	"github.com/vetbridge/payment-service/internal/domain"
)

type CreateOrderInput struct {
	AmountMinor int64
	Currency    string
	Purpose     domain.TransactionPurpose
	PayerName   string
	PayerEmail  string
	Anonymous   bool
}

type CreateOrderOutput struct {
	TransactionID  string
	GatewayOrderID string
	PublicKey      string
}

type TransactionOutput struct {
	ID             string
	GatewayOrderID string
	AmountMinor    int64
	AmountDisplay  string
	Currency       string
	Purpose        domain.TransactionPurpose
	PayerName      string
	Anonymous      bool
	Status         domain.TransactionStatus
	PaidAt         *time.Time
	CreatedAt      time.Time
}

func ToTransactionOutput(tx *domain.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:             tx.ID,
		GatewayOrderID: tx.GatewayOrderID,
		AmountMinor:    tx.AmountMinor,
		AmountDisplay:  domain.FormatAmountMinor(tx.AmountMinor, tx.Currency),
		Currency:       tx.Currency,
		Purpose:        tx.Purpose,
		PayerName:      tx.DisplayName(),
		Anonymous:      tx.Anonymous,
		Status:         tx.Status,
		PaidAt:         tx.PaidAt,
		CreatedAt:      tx.CreatedAt,
	}
}
