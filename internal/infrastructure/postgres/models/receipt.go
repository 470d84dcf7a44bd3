package models

import "time"

type ReceiptModel struct {
	ID            string    `gorm:"primaryKey;type:uuid"`
	Number        string    `gorm:"uniqueIndex:idx_receipt_number"`
	TransactionID string    `gorm:"type:uuid;uniqueIndex:idx_receipt_transaction"`
	AmountMinor   int64
	Currency      string
	PayerName     string
	DocumentHTML  string    `gorm:"type:text"`
	IssuedAt      time.Time
}
