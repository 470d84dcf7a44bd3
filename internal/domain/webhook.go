package domain

import "time"

const (
	EventPaymentCaptured = "payment.captured"
	EventPaymentFailed   = "payment.failed"
)

// WebhookEvent is the verified, parsed gateway notification. It lives only
// for the duration of request handling; only failed processing is persisted.
type WebhookEvent struct {
	Type           string
	GatewayOrderID string
	PaymentID      string
	AmountMinor    int64
	Currency       string
	ReceivedAt     time.Time
}

// FailedWebhookEvent is the audit row written when a verified event could
// not be applied, kept for manual reconciliation.
type FailedWebhookEvent struct {
	ID             string
	EventType      string
	GatewayOrderID string
	Payload        string
	Error          string
	ReceivedAt     time.Time
}

type WebhookEventLogger interface {
	LogFailedEvent(event *FailedWebhookEvent) error
}
