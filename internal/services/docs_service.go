package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"wtl-backend/internal/domain/models"
	"wtl-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the booking invoice as a PDF.
type DocsService struct {
	Bookings  BookingService
	RequestID string
	Loader    func(int64) (models.BookingRecord, error)
}

func (s DocsService) GenerateInvoice(bookingID int64) ([]byte, string, error) {
	var (
		rec models.BookingRecord
		err error
	)
	if s.Loader != nil {
		rec, err = s.Loader(bookingID)
	} else {
		rec, err = s.Bookings.GetByID(bookingID)
	}
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("booking_id=%d", bookingID))
	return buildInvoicePDF(rec)
}

func buildInvoicePDF(rec models.BookingRecord) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : INV-"+safe(rec.BookingID, "NA"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date       : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Name  : %s", safe(rec.Name, "-")),
		fmt.Sprintf("Email : %s", safe(rec.Email, "-")),
		fmt.Sprintf("Phone : %s", safe(rec.Phone, "-")),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}
	pdf.Ln(3)

	trip := fmt.Sprintf("Cab %s (%s) %s -> %s on %s %s",
		safe(rec.ModelName, "-"), safe(rec.TripType, "-"),
		safe(rec.PickupLocation, "-"), safe(rec.DropLocation, "-"),
		safe(rec.Date, "-"), safe(rec.Time, "-"),
	)
	if rec.ReturnDate != "" {
		trip += ", return " + rec.ReturnDate
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Trip:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, trip, "", "", false)
	pdf.Ln(2)

	base := rec.Total - rec.ServiceCharge - rec.GST
	amounts := []string{
		"Fare              : " + utils.FormatRupees(base),
		"Service Charge    : " + utils.FormatRupees(rec.ServiceCharge),
		"GST               : " + utils.FormatRupees(rec.GST),
		"Amount Paid       : " + utils.FormatRupees(rec.AmountPaid),
		"Remaining Amount  : " + utils.FormatRupees(rec.Remaining),
	}
	for _, l := range amounts {
		pdf.Cell(0, 6, l)
		pdf.Ln(6)
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatRupees(rec.Total))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	note := "Payment: " + safe(rec.PaymentMethod, "-") + " (" + safe(rec.PaymentType, "-") + ", " + safe(rec.PaymentStatus, "-") + ")"
	pdf.MultiCell(0, 6, note, "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%s.pdf", safeFilenamePart(rec.BookingID))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
