package models

import "time"

// FailedWebhookEventModel keeps verified events that could not be applied,
// for manual reconciliation. Successful deliveries are never persisted here.
type FailedWebhookEventModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	EventType      string
	GatewayOrderID string `gorm:"index"`
	Payload        string `gorm:"type:jsonb"`
	Error          string
	ReceivedAt     time.Time
}
