package repository

import (
	"errors"
	"strings"

	"github.com/vetbridge/payment-service/internal/domain"
	"github.com/vetbridge/payment-service/internal/infrastructure/postgres/mappers"
	"github.com/vetbridge/payment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultReceiptRepository struct {
	DB *gorm.DB
}

func NewDefaultReceiptRepository(db *gorm.DB) *DefaultReceiptRepository {
	return &DefaultReceiptRepository{DB: db}
}

func (r *DefaultReceiptRepository) CreateReceipt(receipt *domain.Receipt) error {
	receiptModel := mappers.ToGORMReceipt(receipt)
	if err := r.DB.Create(receiptModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrReceiptExists
		}
		return err
	}
	return nil
}

func (r *DefaultReceiptRepository) GetReceiptByTransactionID(transactionID string) (*domain.Receipt, error) {
	var receiptModel models.ReceiptModel
	if err := r.DB.First(&receiptModel, "transaction_id = ?", transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}

	return mappers.ToDomainReceipt(&receiptModel), nil
}
