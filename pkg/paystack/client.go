package paystack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the production Paystack API endpoint.
const DefaultBaseURL = "https://api.paystack.co"

// ErrNotConfigured is returned when no secret key has been provided.
var ErrNotConfigured = errors.New("paystack: secret key not set")

// Transaction is one transaction record as returned by the gateway.
// Amount is in the gateway's minor units (kobo).
type Transaction struct {
	ID        int64       `json:"id"`
	Reference string      `json:"reference"`
	Amount    float64     `json:"amount"`
	Status    string      `json:"status"`
	Channel   string      `json:"channel"`
	PaidAt    string      `json:"paid_at"`
	Customer  TxnCustomer `json:"customer"`
}

// TxnCustomer is the customer block embedded in a transaction.
type TxnCustomer struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type listResponse struct {
	Status  bool          `json:"status"`
	Message string        `json:"message"`
	Data    []Transaction `json:"data"`
}

// Client is a read-only client for the Paystack transaction API.
type Client struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Paystack client. An empty baseURL falls back to the
// production endpoint.
func NewClient(secretKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		secretKey: secretKey,
		baseURL:   baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// IsConfigured reports whether a secret key has been provided.
func (c *Client) IsConfigured() bool {
	return c.secretKey != ""
}

// ListTransactions fetches all transactions visible to the configured key.
func (c *Client) ListTransactions(ctx context.Context) ([]Transaction, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transaction", nil)
	if err != nil {
		return nil, fmt.Errorf("paystack: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paystack: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("paystack: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var out listResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("paystack: failed to decode response: %w", err)
	}
	if !out.Status {
		return nil, fmt.Errorf("paystack: API error: %s", out.Message)
	}

	return out.Data, nil
}
