package usecase

import (
	"errors"

	"github.com/google/uuid"
	"github.com/vetbridge/payment-service/internal/domain"
	"github.com/vetbridge/payment-service/internal/infrastructure/kafka"
	"github.com/vetbridge/payment-service/internal/infrastructure/metrics"
	"go.uber.org/zap"
)

type ReconcileUsecase interface {
	HandleEvent(event *domain.WebhookEvent, rawPayload []byte) error
}

// PaymentEventPublisher is the slice of the Kafka publisher reconciliation
// needs; fakes implement it in tests.
type PaymentEventPublisher interface {
	PublishPaymentEvent(event kafka.PaymentEvent) error
}

// DefaultReconcileUsecase applies verified gateway events to transactions.
// The state transition is the source of truth; receipt and email are
// best-effort and never roll it back.
type DefaultReconcileUsecase struct {
	TransactionRepo domain.TransactionRepository
	ReceiptUsecase  ReceiptUsecase
	EventLogger     domain.WebhookEventLogger
	Publisher       PaymentEventPublisher
	Metrics         *metrics.PaymentMetrics
	Logger          *zap.Logger
}

func NewDefaultReconcileUsecase(
	transactionRepo domain.TransactionRepository,
	receiptUsecase ReceiptUsecase,
	eventLogger domain.WebhookEventLogger,
	kafkaPublisher PaymentEventPublisher,
	paymentMetrics *metrics.PaymentMetrics,
	logger *zap.Logger) *DefaultReconcileUsecase {

	return &DefaultReconcileUsecase{
		TransactionRepo: transactionRepo,
		ReceiptUsecase:  receiptUsecase,
		EventLogger:     eventLogger,
		Publisher:       kafkaPublisher,
		Metrics:         paymentMetrics,
		Logger:          logger,
	}
}

func (uc *DefaultReconcileUsecase) HandleEvent(event *domain.WebhookEvent, rawPayload []byte) error {
	switch event.Type {
	case domain.EventPaymentCaptured:
		return uc.handleCaptured(event, rawPayload)
	case domain.EventPaymentFailed:
		return uc.handleFailed(event, rawPayload)
	default:
		// Unknown event types are accepted without side effect so new
		// gateway events do not break existing deployments.
		uc.Logger.Info("ignoring webhook event", zap.String("event", event.Type))
		return nil
	}
}

func (uc *DefaultReconcileUsecase) handleCaptured(event *domain.WebhookEvent, rawPayload []byte) error {
	won, err := uc.TransactionRepo.MarkPaid(event.GatewayOrderID, event.ReceivedAt)
	if err != nil {
		return err
	}

	if !won {
		return uc.resolveLostTransition(event, rawPayload)
	}

	tx, err := uc.TransactionRepo.GetTransactionByGatewayOrderID(event.GatewayOrderID)
	if err != nil {
		// The row was just updated; a read failure here is transient.
		return err
	}

	uc.Metrics.PaymentsCapturedTotal.WithLabelValues(string(tx.Purpose), tx.Currency).Inc()
	uc.Metrics.PaymentsCapturedAmountTotal.WithLabelValues(string(tx.Purpose), tx.Currency).Add(float64(tx.AmountMinor))

	uc.Logger.Info("payment captured",
		zap.String("transaction_id", tx.ID),
		zap.String("gateway_order_id", tx.GatewayOrderID),
		zap.Int64("amount_minor", tx.AmountMinor),
	)

	if uc.Publisher != nil {
		if err := uc.Publisher.PublishPaymentEvent(kafka.PaymentEvent{
			TransactionID:  tx.ID,
			GatewayOrderID: tx.GatewayOrderID,
			Status:         string(tx.Status),
			AmountMinor:    tx.AmountMinor,
			Currency:       tx.Currency,
			Purpose:        string(tx.Purpose),
		}); err != nil {
			uc.Logger.Warn("payment event publish failed", zap.Error(err))
		}
	}

	// Receipt and email run off the request path. The transition already
	// succeeded; their failure is observed through logs and metrics only.
	go func() {
		if _, err := uc.ReceiptUsecase.IssueReceipt(tx); err != nil {
			uc.Metrics.NotificationFailuresTotal.WithLabelValues("receipt").Inc()
			uc.Logger.Error("receipt issuance failed",
				zap.String("transaction_id", tx.ID),
				zap.Error(err),
			)
		}
	}()

	return nil
}

func (uc *DefaultReconcileUsecase) handleFailed(event *domain.WebhookEvent, rawPayload []byte) error {
	won, err := uc.TransactionRepo.MarkFailed(event.GatewayOrderID)
	if err != nil {
		return err
	}

	if !won {
		return uc.resolveLostTransition(event, rawPayload)
	}

	tx, err := uc.TransactionRepo.GetTransactionByGatewayOrderID(event.GatewayOrderID)
	if err != nil {
		return err
	}

	uc.Metrics.PaymentsFailedTotal.WithLabelValues(string(tx.Purpose), tx.Currency).Inc()
	uc.Logger.Info("payment failed",
		zap.String("transaction_id", tx.ID),
		zap.String("gateway_order_id", tx.GatewayOrderID),
	)

	return nil
}

// resolveLostTransition classifies a zero-rows conditional update: either
// the transaction is unknown (manual review) or it already reached a
// terminal state and this delivery is an at-least-once replay.
func (uc *DefaultReconcileUsecase) resolveLostTransition(event *domain.WebhookEvent, rawPayload []byte) error {
	tx, err := uc.TransactionRepo.GetTransactionByGatewayOrderID(event.GatewayOrderID)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			uc.Metrics.WebhooksUnmatchedTotal.Inc()
			uc.logFailedEvent(event, rawPayload, domain.ErrTransactionNotFound.Error())
			uc.Logger.Warn("webhook references unknown gateway order",
				zap.String("gateway_order_id", event.GatewayOrderID),
				zap.String("event", event.Type),
			)
			return domain.ErrTransactionNotFound
		}
		return err
	}

	if tx.Status.IsTerminal() {
		uc.Metrics.WebhooksReplayedTotal.Inc()
		uc.Logger.Info("duplicate webhook delivery ignored",
			zap.String("transaction_id", tx.ID),
			zap.String("status", string(tx.Status)),
		)
		return nil
	}

	// Still CREATED but the update matched nothing: a concurrent delivery
	// won the transition between our update and this read. Treat as replay.
	uc.Metrics.WebhooksReplayedTotal.Inc()
	return nil
}

func (uc *DefaultReconcileUsecase) logFailedEvent(event *domain.WebhookEvent, rawPayload []byte, reason string) {
	logErr := uc.EventLogger.LogFailedEvent(&domain.FailedWebhookEvent{
		ID:             uuid.New().String(),
		EventType:      event.Type,
		GatewayOrderID: event.GatewayOrderID,
		Payload:        string(rawPayload),
		Error:          reason,
		ReceivedAt:     event.ReceivedAt,
	})
	if logErr != nil {
		uc.Logger.Error("failed to persist webhook event for review", zap.Error(logErr))
	}
}
