package response

import "time"

type CreateOrderResponse struct {
	OrderID       string `json:"orderId"`
	TransactionID string `json:"transactionId"`
	PublicKey     string `json:"publicKey"`
}

type TransactionResponse struct {
	ID             string     `json:"id"`
	GatewayOrderID string     `json:"gateway_order_id"`
	Amount         int64      `json:"amount"`
	AmountDisplay  string     `json:"amount_display"`
	Currency       string     `json:"currency"`
	Purpose        string     `json:"purpose"`
	PayerName      string     `json:"payer_name"`
	Status         string     `json:"status"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int64                 `json:"page"`
	Limit        int64                 `json:"limit"`
}

type StatsResponse struct {
	CreatedCount  int64 `json:"created_count"`
	CreatedAmount int64 `json:"created_amount"`
	PaidCount     int64 `json:"paid_count"`
	PaidAmount    int64 `json:"paid_amount"`
	FailedCount   int64 `json:"failed_count"`
	FailedAmount  int64 `json:"failed_amount"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
