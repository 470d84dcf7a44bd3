package mappers

import (
	"github.com/vetbridge/payment-service/internal/domain"
	"github.com/vetbridge/payment-service/internal/infrastructure/postgres/models"
)

func ToGORMTransaction(tx *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:             tx.ID,
		GatewayOrderID: tx.GatewayOrderID,
		AmountMinor:    tx.AmountMinor,
		Currency:       tx.Currency,
		Purpose:        tx.Purpose,
		PayerName:      tx.PayerName,
		PayerEmail:     tx.PayerEmail,
		Anonymous:      tx.Anonymous,
		Status:         tx.Status,
		PaidAt:         tx.PaidAt,
		CreatedAt:      tx.CreatedAt,
		UpdatedAt:      tx.UpdatedAt,
	}
}

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:             model.ID,
		GatewayOrderID: model.GatewayOrderID,
		AmountMinor:    model.AmountMinor,
		Currency:       model.Currency,
		Purpose:        model.Purpose,
		PayerName:      model.PayerName,
		PayerEmail:     model.PayerEmail,
		Anonymous:      model.Anonymous,
		Status:         model.Status,
		PaidAt:         model.PaidAt,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}
