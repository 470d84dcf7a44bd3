package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/vetbridge/payment-service/internal/domain"
)

// VerifyWebhookSignature checks the hex HMAC-SHA256 of the raw body under
// the shared webhook secret against the supplied signature header value.
// The comparison is constant-time; this is the only gate between a forged
// request and a false paid transition.
func VerifyWebhookSignature(body []byte, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

type webhookEnvelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID       string `json:"id"`
				OrderID  string `json:"order_id"`
				Amount   int64  `json:"amount"`
				Currency string `json:"currency"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// ParseWebhookEvent decodes a verified body into the domain event. Unknown
// event types parse fine and are handled as no-ops downstream.
func ParseWebhookEvent(body []byte) (*domain.WebhookEvent, error) {
	var envelope webhookEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}

	entity := envelope.Payload.Payment.Entity
	return &domain.WebhookEvent{
		Type:           envelope.Event,
		GatewayOrderID: entity.OrderID,
		PaymentID:      entity.ID,
		AmountMinor:    entity.Amount,
		Currency:       entity.Currency,
		ReceivedAt:     time.Now(),
	}, nil
}
