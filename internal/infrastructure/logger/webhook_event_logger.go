package logger

import (
	"github.com/vetbridge/payment-service/internal/domain"
	"github.com/vetbridge/payment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// PGWebhookEventLogger persists verified-but-unapplied webhook events so
// operators can reconcile them by hand. Dropped events are not retried.
type PGWebhookEventLogger struct {
	db *gorm.DB
}

func NewPGWebhookEventLogger(db *gorm.DB) *PGWebhookEventLogger {
	return &PGWebhookEventLogger{db: db}
}

func (l *PGWebhookEventLogger) LogFailedEvent(event *domain.FailedWebhookEvent) error {
	return l.db.Create(&models.FailedWebhookEventModel{
		ID:             event.ID,
		EventType:      event.EventType,
		GatewayOrderID: event.GatewayOrderID,
		Payload:        event.Payload,
		Error:          event.Error,
		ReceivedAt:     event.ReceivedAt,
	}).Error
}
