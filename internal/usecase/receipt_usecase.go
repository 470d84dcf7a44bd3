package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/vetbridge/payment-service/internal/domain"
	"github.com/vetbridge/payment-service/internal/infrastructure/metrics"
	"github.com/vetbridge/payment-service/internal/infrastructure/receipts"
	"go.uber.org/zap"
)

type ReceiptUsecase interface {
	IssueReceipt(tx *domain.Transaction) (*domain.Receipt, error)
	GetReceiptByTransactionID(transactionID string) (*domain.Receipt, error)
}

type DefaultReceiptUsecase struct {
	ReceiptRepo domain.ReceiptRepository
	Mailer      domain.MailerPort
	Metrics     *metrics.PaymentMetrics
	Logger      *zap.Logger
}

func NewDefaultReceiptUsecase(
	receiptRepo domain.ReceiptRepository,
	mailer domain.MailerPort,
	paymentMetrics *metrics.PaymentMetrics,
	logger *zap.Logger) *DefaultReceiptUsecase {

	return &DefaultReceiptUsecase{
		ReceiptRepo: receiptRepo,
		Mailer:      mailer,
		Metrics:     paymentMetrics,
		Logger:      logger,
	}
}

// IssueReceipt creates the receipt for a paid transaction and emails it to
// the payer. The unique index on transaction id makes replays return the
// already-issued receipt instead of a duplicate.
func (uc *DefaultReceiptUsecase) IssueReceipt(tx *domain.Transaction) (*domain.Receipt, error) {
	if tx.Status != domain.StatusPaid {
		return nil, fmt.Errorf("receipt requested for unpaid transaction %s", tx.ID)
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	issuedAt := time.Now()
	number := "VB-" + idGenerator()
	document, err := receipts.Render(tx, number, issuedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNotificationFailed, err)
	}

	receipt := &domain.Receipt{
		ID:            uuid.New().String(),
		Number:        number,
		TransactionID: tx.ID,
		AmountMinor:   tx.AmountMinor,
		Currency:      tx.Currency,
		PayerName:     tx.DisplayName(),
		DocumentHTML:  document,
		IssuedAt:      issuedAt,
	}

	if err := uc.ReceiptRepo.CreateReceipt(receipt); err != nil {
		if errors.Is(err, domain.ErrReceiptExists) {
			return uc.ReceiptRepo.GetReceiptByTransactionID(tx.ID)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrNotificationFailed, err)
	}

	uc.Metrics.ReceiptsIssuedTotal.Inc()
	uc.Logger.Info("receipt issued",
		zap.String("transaction_id", tx.ID),
		zap.String("receipt_number", number),
	)

	if tx.PayerEmail != "" {
		subject := fmt.Sprintf("Your VetBridge receipt %s", number)
		uc.Mailer.SendAsync(tx.PayerEmail, subject, document)
	}

	return receipt, nil
}

func (uc *DefaultReceiptUsecase) GetReceiptByTransactionID(transactionID string) (*domain.Receipt, error) {
	return uc.ReceiptRepo.GetReceiptByTransactionID(transactionID)
}
