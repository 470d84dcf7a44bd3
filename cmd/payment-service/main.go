package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/vetbridge/payment-service/internal/config"
	deliveryhttp "github.com/vetbridge/payment-service/internal/delivery/http"
	"github.com/vetbridge/payment-service/internal/delivery/http/handlers"
	"github.com/vetbridge/payment-service/internal/infrastructure/kafka"
	"github.com/vetbridge/payment-service/internal/infrastructure/logger"
	"github.com/vetbridge/payment-service/internal/infrastructure/mailer"
	"github.com/vetbridge/payment-service/internal/infrastructure/metrics"
	"github.com/vetbridge/payment-service/internal/infrastructure/migrate"
	"github.com/vetbridge/payment-service/internal/infrastructure/postgres"
	"github.com/vetbridge/payment-service/internal/infrastructure/postgres/repository"
	"github.com/vetbridge/payment-service/internal/infrastructure/razorpay"
	"github.com/vetbridge/payment-service/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	zapLogger := mustInitLogger(cfg)
	defer zapLogger.Sync()

	// Init database
	db := postgres.MustInitDB(cfg)
	if err := migrate.Run(db, cfg.Migrations.Path); err != nil {
		zapLogger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Init repositories
	transactionRepo := repository.NewDefaultTransactionRepository(db)
	receiptRepo := repository.NewDefaultReceiptRepository(db)
	webhookEventLogger := logger.NewPGWebhookEventLogger(db)

	// External collaborators, constructed here and injected everywhere
	gatewayClient := razorpay.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, cfg.Razorpay.BaseURL)
	mailerClient := mailer.NewClient(cfg.Mailer.APIAddress, cfg.Mailer.APIKey, cfg.Mailer.Sender, zapLogger)
	kafkaPublisher := kafka.NewKafkaPublisher(
		[]string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)},
		cfg.KafkaService.Topic,
	)
	defer kafkaPublisher.Close()

	paymentMetrics := metrics.NewPaymentMetrics()

	// Init usecases
	orderUsecase := usecase.NewDefaultOrderUsecase(
		transactionRepo,
		gatewayClient,
		paymentMetrics,
		zapLogger,
		cfg.Razorpay.KeyID,
		cfg.Razorpay.MaxAmountMinor,
	)
	receiptUsecase := usecase.NewDefaultReceiptUsecase(receiptRepo, mailerClient, paymentMetrics, zapLogger)
	reconcileUsecase := usecase.NewDefaultReconcileUsecase(
		transactionRepo,
		receiptUsecase,
		webhookEventLogger,
		kafkaPublisher,
		paymentMetrics,
		zapLogger,
	)

	// Init handlers and router
	orderHandler := handlers.NewOrderHandler(orderUsecase)
	webhookHandler := handlers.NewWebhookHandler(reconcileUsecase, cfg.Razorpay.WebhookSecret, paymentMetrics, zapLogger)
	router := deliveryhttp.NewRouter(orderHandler, webhookHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler: router,
	}

	go func() {
		zapLogger.Info("payment service starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("server exited")
}

func mustInitLogger(cfg *config.PaymentConfig) *zap.Logger {
	var zapLogger *zap.Logger
	var err error
	if cfg.Env == "local" || cfg.Env == "dev" {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	return zapLogger
}
