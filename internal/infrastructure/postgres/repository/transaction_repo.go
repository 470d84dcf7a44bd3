package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/vetbridge/payment-service/internal/domain"
	"github.com/vetbridge/payment-service/internal/infrastructure/postgres/mappers"
	"github.com/vetbridge/payment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

func (r *DefaultTransactionRepository) CreateTransaction(tx *domain.Transaction) error {
	transactionModel := mappers.ToGORMTransaction(tx)
	if err := r.DB.Create(transactionModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultTransactionRepository) GetTransactionByID(id string) (*domain.Transaction, error) {
	var transactionModel models.TransactionModel
	if err := r.DB.First(&transactionModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}

	return mappers.ToDomainTransaction(&transactionModel), nil
}

func (r *DefaultTransactionRepository) GetTransactionByGatewayOrderID(gatewayOrderID string) (*domain.Transaction, error) {
	var transactionModel models.TransactionModel
	if err := r.DB.First(&transactionModel, "gateway_order_id = ?", gatewayOrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}

	return mappers.ToDomainTransaction(&transactionModel), nil
}

// MarkPaid is a single conditional UPDATE so that of two concurrent
// deliveries for one gateway order id exactly one observes RowsAffected=1.
func (r *DefaultTransactionRepository) MarkPaid(gatewayOrderID string, paidAt time.Time) (bool, error) {
	result := r.DB.Model(&models.TransactionModel{}).
		Where("gateway_order_id = ? AND status = ?", gatewayOrderID, domain.StatusCreated).
		Updates(map[string]interface{}{
			"status":     domain.StatusPaid,
			"paid_at":    paidAt,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

func (r *DefaultTransactionRepository) MarkFailed(gatewayOrderID string) (bool, error) {
	result := r.DB.Model(&models.TransactionModel{}).
		Where("gateway_order_id = ? AND status = ?", gatewayOrderID, domain.StatusCreated).
		Updates(map[string]interface{}{
			"status":     domain.StatusFailed,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

func (r *DefaultTransactionRepository) GetTransactions(filters domain.TransactionFilters, page, limit int64) ([]*domain.Transaction, int64, error) {
	var transactionModels []models.TransactionModel
	var total int64

	baseQuery := r.DB.Model(&models.TransactionModel{})

	if len(filters.Statuses) > 0 {
		baseQuery = baseQuery.Where("status IN (?)", filters.Statuses)
	}

	if filters.Purpose != "" {
		baseQuery = baseQuery.Where("purpose = ?", filters.Purpose)
	}

	if filters.MinAmountMinor > 0 {
		baseQuery = baseQuery.Where("amount_minor >= ?", filters.MinAmountMinor)
	}

	if filters.MaxAmountMinor > 0 {
		baseQuery = baseQuery.Where("amount_minor <= ?", filters.MaxAmountMinor)
	}

	if !filters.DateFrom.IsZero() {
		baseQuery = baseQuery.Where("created_at >= ?", filters.DateFrom)
	}

	if !filters.DateTo.IsZero() {
		baseQuery = baseQuery.Where("created_at <= ?", filters.DateTo)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&transactionModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find transactions: %w", err)
	}

	transactions := make([]*domain.Transaction, len(transactionModels))
	for i, transactionModel := range transactionModels {
		transactions[i] = mappers.ToDomainTransaction(&transactionModel)
	}

	return transactions, total, nil
}

func (r *DefaultTransactionRepository) GetTransactionStats(dateFrom, dateTo time.Time) (*domain.TransactionStats, error) {
	type row struct {
		Status domain.TransactionStatus
		Count  int64
		Amount int64
	}

	var rows []row
	query := r.DB.Model(&models.TransactionModel{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(amount_minor), 0) AS amount").
		Group("status")

	if !dateFrom.IsZero() {
		query = query.Where("created_at >= ?", dateFrom)
	}
	if !dateTo.IsZero() {
		query = query.Where("created_at <= ?", dateTo)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate transactions: %w", err)
	}

	stats := &domain.TransactionStats{}
	for _, r := range rows {
		switch r.Status {
		case domain.StatusCreated:
			stats.CreatedCount = r.Count
			stats.CreatedAmount = r.Amount
		case domain.StatusPaid:
			stats.PaidCount = r.Count
			stats.PaidAmount = r.Amount
		case domain.StatusFailed:
			stats.FailedCount = r.Count
			stats.FailedAmount = r.Amount
		}
	}

	return stats, nil
}
