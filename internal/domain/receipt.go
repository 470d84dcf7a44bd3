package domain

import "time"

// Receipt is the artifact proving a captured payment. One per transaction,
// immutable after issuance; regenerating from the same transaction state
// must yield the same document.
type Receipt struct {
	ID            string
	Number        string
	TransactionID string
	AmountMinor   int64
	Currency      string
	PayerName     string
	DocumentHTML  string
	IssuedAt      time.Time
}

type ReceiptRepository interface {
	// CreateReceipt persists the receipt. Inserting a second receipt for
	// the same transaction id must return ErrReceiptExists.
	CreateReceipt(receipt *Receipt) error
	GetReceiptByTransactionID(transactionID string) (*Receipt, error)
}
