package discount

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"wtl-backend/internal/domain/models"
)

// Client talks to the discount registry on the legacy platform.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetAll fetches the full coupon list. Callers treat any error as "no coupons
// to offer"; browsing coupons is optional and must never block the page.
func (c *Client) GetAll(ctx context.Context) ([]models.DiscountCode, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/discount/getAll", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var list []models.DiscountCode
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return list, nil
}

// Validation is the single-code validation response. Fields absent from the
// response decode to zero, which apply-time checks treat as "not configured".
type Validation struct {
	DiscountPercentage float64 `json:"discountPercentage"`
	PriceDiscount      float64 `json:"priceDiscount"`
	MaxDiscountAmount  float64 `json:"maxDiscountAmount"`
	MinOrderAmount     float64 `json:"minOrderAmount"`
}

// Validate resolves one code against the registry. HTTP 410 means the coupon
// is expired; any other non-2xx answer reports the registry as unavailable so
// the caller can fall back to its bulk list.
func (c *Client) Validate(ctx context.Context, code string) (*Validation, error) {
	u := c.baseURL + "/discount/validate?code=" + url.QueryEscape(code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusGone:
		return nil, ErrCouponExpired
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var v Validation
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return &v, nil
}
