package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vetbridge/payment-service/internal/delivery/http/dto/order/response"
	"github.com/vetbridge/payment-service/internal/domain"
	"github.com/vetbridge/payment-service/internal/infrastructure/metrics"
	"github.com/vetbridge/payment-service/internal/infrastructure/razorpay"
	"github.com/vetbridge/payment-service/internal/usecase"
	"go.uber.org/zap"
)

const signatureHeader = "X-Razorpay-Signature"

type WebhookHandler struct {
	reconcileUsecase usecase.ReconcileUsecase
	webhookSecret    string
	metrics          *metrics.PaymentMetrics
	logger           *zap.Logger
}

func NewWebhookHandler(
	reconcileUsecase usecase.ReconcileUsecase,
	webhookSecret string,
	paymentMetrics *metrics.PaymentMetrics,
	logger *zap.Logger) *WebhookHandler {

	return &WebhookHandler{
		reconcileUsecase: reconcileUsecase,
		webhookSecret:    webhookSecret,
		metrics:          paymentMetrics,
		logger:           logger,
	}
}

// HandlePaymentWebhook verifies and applies a gateway notification. A non-2xx
// response makes the gateway redeliver, so replays and successes both answer
// 200; only bad signatures (400) and unknown orders (404) differ.
func (h *WebhookHandler) HandlePaymentWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "failed to read body"})
		return
	}

	signature := c.GetHeader(signatureHeader)
	if signature == "" || !razorpay.VerifyWebhookSignature(body, signature, h.webhookSecret) {
		h.metrics.WebhooksRejectedTotal.Inc()
		h.logger.Warn("webhook signature rejected",
			zap.String("remote_addr", c.ClientIP()),
			zap.Bool("signature_present", signature != ""),
		)
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: domain.ErrSignatureMismatch.Error()})
		return
	}

	event, err := razorpay.ParseWebhookEvent(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "malformed event payload"})
		return
	}

	if err := h.reconcileUsecase.HandleEvent(event, body); err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
