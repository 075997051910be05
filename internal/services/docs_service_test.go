package services

import (
	"strings"
	"testing"

	"wtl-backend/internal/domain/models"
)

func TestDocsServiceGenerateInvoice(t *testing.T) {
	loader := func(id int64) (models.BookingRecord, error) {
		return models.BookingRecord{
			ID:             id,
			BookingID:      "WTL123",
			ModelName:      "Ertiga",
			TripType:       "roundTrip",
			PickupLocation: "Pune",
			DropLocation:   "Mumbai",
			Date:           "2025-07-01",
			ReturnDate:     "2025-07-03",
			Time:           "09:30",
			Name:           "Asha",
			Email:          "asha@example.com",
			Phone:          "9876543210",
			ServiceCharge:  160,
			GST:            80,
			Total:          1840,
			PaymentMethod:  "online",
			PaymentType:    "partial",
			PaymentStatus:  "paid",
			AmountPaid:     368,
			Remaining:      1472,
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateInvoice(5)
	if err != nil {
		t.Fatalf("GenerateInvoice returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateInvoice returned empty data")
	}
	if filename != "INVOICE_WTL123.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := safeFilenamePart("a/b:c"); got != "a_b_c" {
		t.Fatalf("safeFilenamePart = %q", got)
	}
	if got := safeFilenamePart(""); got != "NA" {
		t.Fatalf("safeFilenamePart empty = %q", got)
	}
	long := strings.Repeat("x", 60)
	if got := safeFilenamePart(long); len(got) != 40 {
		t.Fatalf("len = %d, want 40", len(got))
	}
}
