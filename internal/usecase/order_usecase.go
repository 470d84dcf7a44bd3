package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vetbridge/payment-service/internal/domain"
	"github.com/vetbridge/payment-service/internal/infrastructure/metrics"
	orderdto "github.com/vetbridge/payment-service/internal/usecase/dto/order"
	"go.uber.org/zap"
)

type OrderUsecase interface {
	CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*orderdto.CreateOrderOutput, error)
	GetTransactionByID(id string) (*orderdto.TransactionOutput, error)
	GetTransactions(filters domain.TransactionFilters, page, limit int64) ([]*orderdto.TransactionOutput, int64, error)
	GetTransactionStats(dateFrom, dateTo time.Time) (*domain.TransactionStats, error)
}

type DefaultOrderUsecase struct {
	TransactionRepo  domain.TransactionRepository
	Gateway          domain.GatewayPort
	Metrics          *metrics.PaymentMetrics
	Logger           *zap.Logger
	GatewayPublicKey string
	MaxAmountMinor   int64
}

func NewDefaultOrderUsecase(
	transactionRepo domain.TransactionRepository,
	gateway domain.GatewayPort,
	paymentMetrics *metrics.PaymentMetrics,
	logger *zap.Logger,
	gatewayPublicKey string,
	maxAmountMinor int64) *DefaultOrderUsecase {

	return &DefaultOrderUsecase{
		TransactionRepo:  transactionRepo,
		Gateway:          gateway,
		Metrics:          paymentMetrics,
		Logger:           logger,
		GatewayPublicKey: gatewayPublicKey,
		MaxAmountMinor:   maxAmountMinor,
	}
}

// CreateOrder validates the amount, registers a gateway order and persists
// the pending transaction in CREATED status. Gateway failures surface to the
// caller as retryable; nothing is written when the gateway call fails.
func (uc *DefaultOrderUsecase) CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*orderdto.CreateOrderOutput, error) {
	if input.AmountMinor <= 0 || input.AmountMinor > uc.MaxAmountMinor {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidAmount, input.AmountMinor)
	}

	currency := input.Currency
	if currency == "" {
		currency = "INR"
	}
	purpose := input.Purpose
	if purpose == "" {
		purpose = domain.PurposeDonation
	}

	transactionID := uuid.New().String()
	receipt := "txn_" + transactionID

	start := time.Now()
	gatewayOrderID, err := uc.Gateway.CreateOrder(ctx, input.AmountMinor, currency, receipt, map[string]string{
		"payer_name":  input.PayerName,
		"payer_email": input.PayerEmail,
		"purpose":     string(purpose),
	})
	uc.Metrics.GatewayRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		uc.Logger.Error("gateway order creation failed",
			zap.Int64("amount_minor", input.AmountMinor),
			zap.String("currency", currency),
			zap.Error(err),
		)
		return nil, err
	}

	now := time.Now()
	tx := &domain.Transaction{
		ID:             transactionID,
		GatewayOrderID: gatewayOrderID,
		AmountMinor:    input.AmountMinor,
		Currency:       currency,
		Purpose:        purpose,
		PayerName:      input.PayerName,
		PayerEmail:     input.PayerEmail,
		Anonymous:      input.Anonymous,
		Status:         domain.StatusCreated,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.TransactionRepo.CreateTransaction(tx); err != nil {
		return nil, fmt.Errorf("failed to persist transaction: %w", err)
	}

	uc.Metrics.OrdersCreatedTotal.WithLabelValues(string(purpose), currency).Inc()
	uc.Metrics.OrdersCreatedAmountTotal.WithLabelValues(string(purpose), currency).Add(float64(input.AmountMinor))

	uc.Logger.Info("payment order created",
		zap.String("transaction_id", transactionID),
		zap.String("gateway_order_id", gatewayOrderID),
		zap.Int64("amount_minor", input.AmountMinor),
	)

	return &orderdto.CreateOrderOutput{
		TransactionID:  transactionID,
		GatewayOrderID: gatewayOrderID,
		PublicKey:      uc.GatewayPublicKey,
	}, nil
}

func (uc *DefaultOrderUsecase) GetTransactionByID(id string) (*orderdto.TransactionOutput, error) {
	tx, err := uc.TransactionRepo.GetTransactionByID(id)
	if err != nil {
		return nil, err
	}
	return orderdto.ToTransactionOutput(tx), nil
}

func (uc *DefaultOrderUsecase) GetTransactions(filters domain.TransactionFilters, page, limit int64) ([]*orderdto.TransactionOutput, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	transactions, total, err := uc.TransactionRepo.GetTransactions(filters, page, limit)
	if err != nil {
		return nil, 0, err
	}

	outputs := make([]*orderdto.TransactionOutput, len(transactions))
	for i, tx := range transactions {
		outputs[i] = orderdto.ToTransactionOutput(tx)
	}
	return outputs, total, nil
}

func (uc *DefaultOrderUsecase) GetTransactionStats(dateFrom, dateTo time.Time) (*domain.TransactionStats, error) {
	return uc.TransactionRepo.GetTransactionStats(dateFrom, dateTo)
}
