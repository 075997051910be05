package bookingapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"wtl-backend/internal/domain"
	"wtl-backend/internal/domain/models"
)

// Client submits the final confirmation payload to the booking backend.
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

// Submit posts the booking as form-url-encoded fields and returns the
// bookingId. A 2xx answer without a bookingId is still a failure.
func (c *Client) Submit(ctx context.Context, sub models.BookingSubmission) (string, error) {
	form := EncodeSubmission(sub)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/bookingConfirm", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, string(raw))
	}

	var out struct {
		BookingID string `json:"bookingId"`
		Error     string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if out.BookingID == "" {
		if out.Error != "" {
			return "", fmt.Errorf("%w: %s", ErrRejected, out.Error)
		}
		return "", fmt.Errorf("%w: bookingId missing", ErrRejected)
	}
	return out.BookingID, nil
}

// EncodeSubmission flattens a submission into the exact form fields the
// booking backend expects. driverrate is always "0": the driver charge is
// already folded into the total for round trips and the backend never
// itemizes it.
func EncodeSubmission(sub models.BookingSubmission) url.Values {
	q := sub.Quote

	returnDate := ""
	if domain.IsRoundTrip(q.TripType) {
		returnDate = q.ReturnDate
	}

	form := url.Values{
		"cabId":           {q.CabID},
		"modelName":       {q.ModelName},
		"modelType":       {q.Category},
		"seats":           {q.Seats()},
		"fuelType":        {"CNG-Diesel"},
		"availability":    {"Available"},
		"price":           {strconv.FormatInt(q.Price, 10)},
		"pickupLocation":  {q.PickupLocation},
		"dropLocation":    {q.DropLocation},
		"date":            {q.Date},
		"returndate":      {returnDate},
		"time":            {q.Time},
		"tripType":        {q.TripType},
		"distance":        {q.Distance},
		"name":            {sub.Contact.Name},
		"email":           {sub.Contact.Email},
		"phone":           {sub.Contact.Phone},
		"service":         {strconv.FormatInt(sub.ServiceCharge, 10)},
		"gst":             {strconv.FormatInt(sub.GST, 10)},
		"total":           {strconv.FormatInt(sub.Total, 10)},
		"days":            {strconv.Itoa(q.Days)},
		"driverrate":      {"0"},
		"userId":          {sub.UserID},
		"packageName":     {q.PackageName},
		"paymentMethod":   {sub.PaymentMethod},
		"paymentType":     {sub.PaymentType},
		"paymentStatus":   {sub.PaymentStatus},
		"amountPaid":      {strconv.FormatInt(sub.AmountPaid, 10)},
		"remainingAmount": {strconv.FormatInt(sub.RemainingAmount, 10)},
	}

	if sub.Receipt != nil {
		form.Set("razorpayOrderId", sub.Receipt.OrderID)
		form.Set("razorpayPaymentId", sub.Receipt.PaymentID)
		form.Set("razorpaySignature", sub.Receipt.Signature)
	}

	return form
}
