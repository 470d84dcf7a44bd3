package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	secret := "whsec_test"
	body := []byte(`{"event":"payment.captured"}`)
	valid := sign(body, secret)

	if !VerifyWebhookSignature(body, valid, secret) {
		t.Fatal("valid signature rejected")
	}

	t.Run("flipped bit in body", func(t *testing.T) {
		tampered := append([]byte(nil), body...)
		tampered[0] ^= 0x01
		if VerifyWebhookSignature(tampered, valid, secret) {
			t.Error("tampered body accepted")
		}
	})

	t.Run("flipped bit in signature", func(t *testing.T) {
		tampered := []byte(valid)
		if tampered[0] == 'a' {
			tampered[0] = 'b'
		} else {
			tampered[0] = 'a'
		}
		if VerifyWebhookSignature(body, string(tampered), secret) {
			t.Error("tampered signature accepted")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		if VerifyWebhookSignature(body, sign(body, "other_secret"), secret) {
			t.Error("signature under wrong secret accepted")
		}
	})

	t.Run("empty signature", func(t *testing.T) {
		if VerifyWebhookSignature(body, "", secret) {
			t.Error("empty signature accepted")
		}
	})
}

func TestParseWebhookEvent(t *testing.T) {
	body := []byte(`{
		"event": "payment.captured",
		"payload": {
			"payment": {
				"entity": {
					"id": "pay_abc123",
					"order_id": "order_xyz789",
					"amount": 50000,
					"currency": "INR"
				}
			}
		}
	}`)

	event, err := ParseWebhookEvent(body)
	if err != nil {
		t.Fatalf("ParseWebhookEvent() error = %v", err)
	}
	if event.Type != "payment.captured" {
		t.Errorf("Type = %q", event.Type)
	}
	if event.GatewayOrderID != "order_xyz789" {
		t.Errorf("GatewayOrderID = %q", event.GatewayOrderID)
	}
	if event.PaymentID != "pay_abc123" {
		t.Errorf("PaymentID = %q", event.PaymentID)
	}
	if event.AmountMinor != 50000 {
		t.Errorf("AmountMinor = %d", event.AmountMinor)
	}

	if _, err := ParseWebhookEvent([]byte("not json")); err == nil {
		t.Error("expected error for malformed body")
	}
}

func TestParseWebhookEventUnknownType(t *testing.T) {
	event, err := ParseWebhookEvent([]byte(`{"event":"refund.processed","payload":{}}`))
	if err != nil {
		t.Fatalf("unknown event types must still parse, got %v", err)
	}
	if event.Type != "refund.processed" {
		t.Errorf("Type = %q", event.Type)
	}
}
