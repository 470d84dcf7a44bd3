package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client posts to a transactional email API. Delivery is best-effort; a
// failed send is logged and never propagated back to the payment flow.
type Client struct {
	address string
	apiKey  string
	sender  string
	client  *http.Client
	logger  *zap.Logger
}

func NewClient(address, apiKey, sender string, logger *zap.Logger) *Client {
	return &Client{
		address: address,
		apiKey:  apiKey,
		sender:  sender,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		logger: logger,
	}
}

type sendRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body"`
}

func (c *Client) Send(to, subject, htmlBody string) error {
	requestBodyBytes, err := json.Marshal(sendRequest{
		From:     c.sender,
		To:       to,
		Subject:  subject,
		HTMLBody: htmlBody,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s/messages", c.address), bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	response, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("mailer returned status %d", response.StatusCode)
	}
	return nil
}

// SendAsync fires the send in a goroutine and logs the outcome. Used where
// the caller must not block or fail on notification problems.
func (c *Client) SendAsync(to, subject, htmlBody string) {
	go func() {
		if err := c.Send(to, subject, htmlBody); err != nil {
			c.logger.Warn("confirmation email failed",
				zap.String("to", to),
				zap.Error(err),
			)
			return
		}
		c.logger.Info("confirmation email sent", zap.String("to", to))
	}()
}
