package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vetbridge/payment-service/internal/delivery/http/dto/order/request"
	"github.com/vetbridge/payment-service/internal/delivery/http/dto/order/response"
	"github.com/vetbridge/payment-service/internal/domain"
	"github.com/vetbridge/payment-service/internal/usecase"
	orderdto "github.com/vetbridge/payment-service/internal/usecase/dto/order"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUsecase
}

func NewOrderHandler(orderUsecase usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := h.orderUsecase.CreateOrder(c.Request.Context(), &orderdto.CreateOrderInput{
		AmountMinor: req.Amount,
		Currency:    req.Currency,
		Purpose:     domain.TransactionPurpose(req.Purpose),
		PayerName:   req.PayerName,
		PayerEmail:  req.PayerEmail,
		Anonymous:   req.Anonymous,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrGatewayUnavailable):
			c.JSON(http.StatusBadGateway, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		}
		return
	}

	c.JSON(http.StatusCreated, response.CreateOrderResponse{
		OrderID:       output.GatewayOrderID,
		TransactionID: output.TransactionID,
		PublicKey:     output.PublicKey,
	})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	output, err := h.orderUsecase.GetTransactionByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, toTransactionResponse(output))
}

func (h *OrderHandler) GetOrders(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	filters := domain.TransactionFilters{
		Purpose: domain.TransactionPurpose(c.Query("purpose")),
	}
	if status := c.Query("status"); status != "" {
		filters.Statuses = []domain.TransactionStatus{domain.TransactionStatus(status)}
	}
	if from := c.Query("date_from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			filters.DateFrom = t
		}
	}
	if to := c.Query("date_to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			filters.DateTo = t
		}
	}

	outputs, total, err := h.orderUsecase.GetTransactions(filters, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}

	transactions := make([]response.TransactionResponse, len(outputs))
	for i, output := range outputs {
		transactions[i] = toTransactionResponse(output)
	}

	c.JSON(http.StatusOK, response.TransactionListResponse{
		Transactions: transactions,
		Total:        total,
		Page:         page,
		Limit:        limit,
	})
}

func (h *OrderHandler) GetStats(c *gin.Context) {
	var dateFrom, dateTo time.Time
	if from := c.Query("date_from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			dateFrom = t
		}
	}
	if to := c.Query("date_to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			dateTo = t
		}
	}

	stats, err := h.orderUsecase.GetTransactionStats(dateFrom, dateTo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, response.StatsResponse{
		CreatedCount:  stats.CreatedCount,
		CreatedAmount: stats.CreatedAmount,
		PaidCount:     stats.PaidCount,
		PaidAmount:    stats.PaidAmount,
		FailedCount:   stats.FailedCount,
		FailedAmount:  stats.FailedAmount,
	})
}

func toTransactionResponse(output *orderdto.TransactionOutput) response.TransactionResponse {
	return response.TransactionResponse{
		ID:             output.ID,
		GatewayOrderID: output.GatewayOrderID,
		Amount:         output.AmountMinor,
		AmountDisplay:  output.AmountDisplay,
		Currency:       output.Currency,
		Purpose:        string(output.Purpose),
		PayerName:      output.PayerName,
		Status:         string(output.Status),
		PaidAt:         output.PaidAt,
		CreatedAt:      output.CreatedAt,
	}
}
