package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"wtl-backend/internal/domain/models"
)

// Client creates Razorpay orders through the platform's payment API.
type Client struct {
	baseURL     string
	fallbackKey string
	httpClient  *http.Client
}

// NewClient builds a payment client. fallbackKey is the public widget key
// used when the order response omits one; empty disables the fallback.
func NewClient(baseURL string, timeout time.Duration, fallbackKey string) *Client {
	return &Client{
		baseURL:     baseURL,
		fallbackKey: fallbackKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Order is the created payment order. Both fields must be present before the
// checkout widget can open.
type Order struct {
	OrderID string `json:"orderId"`
	KeyID   string `json:"keyId"`
}

// CreateOrder requests a gateway order for the amount to charge (whole
// rupees). A missing order id or key id counts as unavailable; the widget
// cannot open without them.
func (c *Client) CreateOrder(ctx context.Context, amount int64) (*Order, error) {
	body, err := json.Marshal(map[string]int64{"amount": amount})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/payments/create-razorpay-order", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, string(raw))
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if order.KeyID == "" {
		order.KeyID = c.fallbackKey
	}
	if order.OrderID == "" || order.KeyID == "" {
		return nil, fmt.Errorf("%w: order id or key missing", ErrUnavailable)
	}
	return &order, nil
}

// CheckoutOptions is the configuration handed to the Razorpay checkout
// widget. Amount is in paise.
type CheckoutOptions struct {
	Key         string  `json:"key"`
	Amount      int64   `json:"amount"`
	Currency    string  `json:"currency"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	OrderID     string  `json:"order_id"`
	Prefill     Prefill `json:"prefill"`
}

type Prefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// BuildCheckoutOptions assembles the widget config for an order. amount is in
// whole rupees and converted to paise here, nowhere else.
func BuildCheckoutOptions(order *Order, amount int64, contact models.ContactDetails) CheckoutOptions {
	return CheckoutOptions{
		Key:         order.KeyID,
		Amount:      amount * 100,
		Currency:    "INR",
		Name:        "World Trip Link Pvt. Ltd.",
		Description: "Cab Booking Payment",
		OrderID:     order.OrderID,
		Prefill: Prefill{
			Name:    contact.Name,
			Email:   contact.Email,
			Contact: contact.Phone,
		},
	}
}
