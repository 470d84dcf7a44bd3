package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PaymentMetrics holds the counters and histograms for the payment funnel.
type PaymentMetrics struct {
	OrdersCreatedTotal       *prometheus.CounterVec
	OrdersCreatedAmountTotal *prometheus.CounterVec

	PaymentsCapturedTotal       *prometheus.CounterVec
	PaymentsCapturedAmountTotal *prometheus.CounterVec
	PaymentsFailedTotal         *prometheus.CounterVec

	WebhooksRejectedTotal  prometheus.Counter
	WebhooksReplayedTotal  prometheus.Counter
	WebhooksUnmatchedTotal prometheus.Counter

	ReceiptsIssuedTotal       prometheus.Counter
	NotificationFailuresTotal *prometheus.CounterVec

	GatewayRequestDuration prometheus.Histogram
}

func NewPaymentMetrics() *PaymentMetrics {
	return NewPaymentMetricsWith(prometheus.DefaultRegisterer)
}

// NewPaymentMetricsWith registers the collectors on the given registerer.
// Tests pass a fresh registry to avoid duplicate registration panics.
func NewPaymentMetricsWith(reg prometheus.Registerer) *PaymentMetrics {
	factory := promauto.With(reg)
	return &PaymentMetrics{
		OrdersCreatedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "payment_orders_created_total",
			Help: "Total payment orders created",
		}, []string{"purpose", "currency"}),
		OrdersCreatedAmountTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "payment_orders_created_amount_total",
			Help: "Total amount of created orders in minor units",
		}, []string{"purpose", "currency"}),

		PaymentsCapturedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "payments_captured_total",
			Help: "Total captured payments",
		}, []string{"purpose", "currency"}),
		PaymentsCapturedAmountTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "payments_captured_amount_total",
			Help: "Total captured amount in minor units",
		}, []string{"purpose", "currency"}),
		PaymentsFailedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "payments_failed_total",
			Help: "Total failed payments",
		}, []string{"purpose", "currency"}),

		WebhooksRejectedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "payment_webhooks_rejected_total",
			Help: "Webhook deliveries rejected for bad signature",
		}),
		WebhooksReplayedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "payment_webhooks_replayed_total",
			Help: "Webhook deliveries treated as idempotent replays",
		}),
		WebhooksUnmatchedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "payment_webhooks_unmatched_total",
			Help: "Webhook deliveries referencing unknown gateway order ids",
		}),

		ReceiptsIssuedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "payment_receipts_issued_total",
			Help: "Receipts issued",
		}),
		NotificationFailuresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "payment_notification_failures_total",
			Help: "Receipt or email failures after a successful transition",
		}, []string{"kind"}),

		GatewayRequestDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "payment_gateway_request_duration_seconds",
			Help:    "Duration of outbound gateway order-create calls",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
