package mappers

import (
	"github.com/vetbridge/payment-service/internal/domain"
	"github.com/vetbridge/payment-service/internal/infrastructure/postgres/models"
)

func ToGORMReceipt(receipt *domain.Receipt) *models.ReceiptModel {
	return &models.ReceiptModel{
		ID:            receipt.ID,
		Number:        receipt.Number,
		TransactionID: receipt.TransactionID,
		AmountMinor:   receipt.AmountMinor,
		Currency:      receipt.Currency,
		PayerName:     receipt.PayerName,
		DocumentHTML:  receipt.DocumentHTML,
		IssuedAt:      receipt.IssuedAt,
	}
}

func ToDomainReceipt(model *models.ReceiptModel) *domain.Receipt {
	return &domain.Receipt{
		ID:            model.ID,
		Number:        model.Number,
		TransactionID: model.TransactionID,
		AmountMinor:   model.AmountMinor,
		Currency:      model.Currency,
		PayerName:     model.PayerName,
		DocumentHTML:  model.DocumentHTML,
		IssuedAt:      model.IssuedAt,
	}
}
