package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vetbridge/payment-service/internal/domain"
)

// Client talks to the Razorpay Orders REST API. Construct it in main and
// inject it; there is no package-level instance.
type Client struct {
	KeyID     string
	KeySecret string
	BaseURL   string
	client    *http.Client
}

func NewClient(keyID, keySecret, baseURL string) *Client {
	return &Client{
		KeyID:     keyID,
		KeySecret: keySecret,
		BaseURL:   baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type createOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder registers a payment intent with the gateway and returns the
// gateway order id. Amount is in minor currency units (paise for INR).
func (c *Client) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (string, error) {
	requestBodyBytes, err := json.Marshal(createOrderRequest{
		Amount:   amountMinor,
		Currency: currency,
		Receipt:  receipt,
		Notes:    notes,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/orders", c.BaseURL), bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.KeyID, c.KeySecret)

	response, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var orderResponse createOrderResponse
		if err := json.Unmarshal(responseBodyBytes, &orderResponse); err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
		}
		if orderResponse.ID == "" {
			return "", fmt.Errorf("%w: empty order id in response", domain.ErrGatewayUnavailable)
		}
		return orderResponse.ID, nil
	}

	var gatewayError errorResponse
	if err := json.Unmarshal(responseBodyBytes, &gatewayError); err != nil {
		return "", fmt.Errorf("%w: status %d", domain.ErrGatewayUnavailable, response.StatusCode)
	}
	return "", fmt.Errorf("%w: %s", domain.ErrGatewayUnavailable, gatewayError.Error.Description)
}
