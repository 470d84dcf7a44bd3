package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vetbridge/payment-service/internal/delivery/http/handlers"
)

func NewRouter(orderHandler *handlers.OrderHandler, webhookHandler *handlers.WebhookHandler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "payment-service"})
	})

	r.POST("/orders", orderHandler.CreateOrder)
	r.GET("/orders", orderHandler.GetOrders)
	r.GET("/orders/stats", orderHandler.GetStats)
	r.GET("/orders/:id", orderHandler.GetOrder)

	r.POST("/webhooks/payment", webhookHandler.HandlePaymentWebhook)

	return r
}
