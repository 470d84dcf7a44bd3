package razorpay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vetbridge/payment-service/internal/domain"
)

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "key_id" || pass != "key_secret" {
			t.Error("missing or wrong basic auth")
		}

		var req map[string]interface{}
		json.NewDecoder(r.Body).Decode(&req)
		if req["amount"].(float64) != 50000 {
			t.Errorf("amount = %v", req["amount"])
		}
		if req["currency"] != "INR" {
			t.Errorf("currency = %v", req["currency"])
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_xyz789",
			"amount":   50000,
			"currency": "INR",
			"status":   "created",
		})
	}))
	defer server.Close()

	client := NewClient("key_id", "key_secret", server.URL)
	orderID, err := client.CreateOrder(context.Background(), 50000, "INR", "txn_1", map[string]string{"purpose": "DONATION"})
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}
	if orderID != "order_xyz789" {
		t.Errorf("orderID = %q", orderID)
	}
}

func TestCreateOrderGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"code": "BAD_REQUEST_ERROR", "description": "invalid api key"},
		})
	}))
	defer server.Close()

	client := NewClient("key_id", "bad_secret", server.URL)
	_, err := client.CreateOrder(context.Background(), 50000, "INR", "txn_1", nil)
	if !errors.Is(err, domain.ErrGatewayUnavailable) {
		t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
	}
}

func TestCreateOrderNetworkError(t *testing.T) {
	client := NewClient("key_id", "key_secret", "http://127.0.0.1:1")
	_, err := client.CreateOrder(context.Background(), 50000, "INR", "txn_1", nil)
	if !errors.Is(err, domain.ErrGatewayUnavailable) {
		t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
	}
}
