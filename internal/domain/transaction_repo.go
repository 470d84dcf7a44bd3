package domain

import "time"

type TransactionRepository interface {
	CreateTransaction(tx *Transaction) error
	GetTransactionByID(id string) (*Transaction, error)
	GetTransactionByGatewayOrderID(gatewayOrderID string) (*Transaction, error)

	// MarkPaid performs the conditional CREATED->PAID transition keyed by
	// gateway order id. It returns true when this caller won the
	// transition and false when zero rows matched, which is the
	// replayed-delivery or concurrent-loser case.
	MarkPaid(gatewayOrderID string, paidAt time.Time) (bool, error)

	// MarkFailed performs the conditional CREATED->FAILED transition with
	// the same zero-rows semantics as MarkPaid.
	MarkFailed(gatewayOrderID string) (bool, error)

	GetTransactions(filters TransactionFilters, page, limit int64) ([]*Transaction, int64, error)
	GetTransactionStats(dateFrom, dateTo time.Time) (*TransactionStats, error)
}
