package models

import (
	"time"

	"github.com/vetbridge/payment-service/internal/domain"
)

type TransactionModel struct {
	ID             string                   `gorm:"primaryKey;type:uuid"`
	GatewayOrderID string                   `gorm:"uniqueIndex:idx_gateway_order_id"`
	AmountMinor    int64                    `gorm:"index:idx_amount"`
	Currency       string
	Purpose        domain.TransactionPurpose
	PayerName      string
	PayerEmail     string
	Anonymous      bool
	Status         domain.TransactionStatus `gorm:"index:idx_status"`
	PaidAt         *time.Time
	CreatedAt      time.Time                `gorm:"index:idx_created_at"`
	UpdatedAt      time.Time
}
