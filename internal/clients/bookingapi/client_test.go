package bookingapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"wtl-backend/internal/domain/models"
)

func sampleSubmission() models.BookingSubmission {
	return models.BookingSubmission{
		Quote: models.TripQuote{
			CabID:          "cab-7",
			ModelName:      "Ertiga",
			Category:       "SUV",
			Price:          2500,
			PickupLocation: "Pune",
			DropLocation:   "Mumbai",
			Date:           "2025-07-01",
			ReturnDate:     "2025-07-03",
			Time:           "09:30",
			TripType:       "roundTrip",
			Distance:       "150",
			Days:           2,
		},
		Contact:         models.ContactDetails{Name: "Asha", Email: "asha@example.com", Phone: "9876543210"},
		ServiceCharge:   160,
		GST:             80,
		Total:           1840,
		UserID:          "42",
		PaymentMethod:   "online",
		PaymentType:     "partial",
		PaymentStatus:   "paid",
		AmountPaid:      368,
		RemainingAmount: 1472,
	}
}

func TestEncodeSubmissionFields(t *testing.T) {
	sub := sampleSubmission()
	form := EncodeSubmission(sub)

	want := map[string]string{
		"cabId":           "cab-7",
		"modelName":       "Ertiga",
		"modelType":       "SUV",
		"seats":           "6+1",
		"fuelType":        "CNG-Diesel",
		"availability":    "Available",
		"price":           "2500",
		"pickupLocation":  "Pune",
		"dropLocation":    "Mumbai",
		"date":            "2025-07-01",
		"returndate":      "2025-07-03",
		"time":            "09:30",
		"tripType":        "roundTrip",
		"distance":        "150",
		"name":            "Asha",
		"email":           "asha@example.com",
		"phone":           "9876543210",
		"service":         "160",
		"gst":             "80",
		"total":           "1840",
		"days":            "2",
		"driverrate":      "0",
		"userId":          "42",
		"paymentMethod":   "online",
		"paymentType":     "partial",
		"paymentStatus":   "paid",
		"amountPaid":      "368",
		"remainingAmount": "1472",
	}
	for k, v := range want {
		if got := form.Get(k); got != v {
			t.Fatalf("%s = %q, want %q", k, got, v)
		}
	}
	if form.Has("razorpayOrderId") {
		t.Fatalf("razorpay fields must be absent without a receipt")
	}
}

func TestEncodeSubmissionOneWayAndHatchback(t *testing.T) {
	sub := sampleSubmission()
	sub.Quote.TripType = "oneWay"
	sub.Quote.Category = "Hatchback"
	form := EncodeSubmission(sub)

	if got := form.Get("returndate"); got != "" {
		t.Fatalf("returndate = %q, want empty for one way", got)
	}
	if got := form.Get("seats"); got != "4+1" {
		t.Fatalf("seats = %q, want 4+1", got)
	}
}

func TestEncodeSubmissionReceipt(t *testing.T) {
	sub := sampleSubmission()
	sub.Receipt = &models.GatewayReceipt{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig_1"}
	form := EncodeSubmission(sub)

	if form.Get("razorpayOrderId") != "order_1" || form.Get("razorpayPaymentId") != "pay_1" || form.Get("razorpaySignature") != "sig_1" {
		t.Fatalf("receipt fields not encoded: %v", form)
	}
}

func TestSubmit(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/bookingConfirm" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("content type = %q", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		got = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"bookingId":"WTL123"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	id, err := c.Submit(context.Background(), sampleSubmission())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if id != "WTL123" {
		t.Fatalf("bookingId = %q, want WTL123", id)
	}
	if got.Get("driverrate") != "0" {
		t.Fatalf("driverrate = %q, want 0", got.Get("driverrate"))
	}
}

func TestSubmitMissingBookingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"vehicle no longer available"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	if _, err := c.Submit(context.Background(), sampleSubmission()); !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
}

func TestSubmitServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	if _, err := c.Submit(context.Background(), sampleSubmission()); !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
}

func TestSubmitUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, time.Second)
	if _, err := c.Submit(context.Background(), sampleSubmission()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
