package models

import "regexp"

const (
	PaymentMethodCash   = "cash"
	PaymentMethodOnline = "online"

	PaymentTypeFull    = "full"
	PaymentTypePartial = "partial"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// ContactDetails are the booking contact fields entered on the invoice page.
type ContactDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// ValidPhone requires exactly 10 digits, same rule the booking form enforces.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// PaymentSelection is the chosen method and type. Cash is always a full
// payment; online requires an explicit full or partial choice.
type PaymentSelection struct {
	Method string `json:"method"`
	Type   string `json:"type"`
}

// GatewayReceipt holds the identifiers Razorpay hands back on success. The
// signature is forwarded untouched; verification is the backend's job.
type GatewayReceipt struct {
	OrderID   string `json:"razorpayOrderId"`
	PaymentID string `json:"razorpayPaymentId"`
	Signature string `json:"razorpaySignature"`
}

// BookingSubmission is the single confirmation payload sent to the booking
// backend once per successful flow.
type BookingSubmission struct {
	Quote   TripQuote
	Contact ContactDetails

	ServiceCharge int64
	GST           int64
	Total         int64

	UserID string

	PaymentMethod   string
	PaymentType     string
	PaymentStatus   string
	AmountPaid      int64
	RemainingAmount int64

	Receipt *GatewayReceipt
}

// BookingRecord is a confirmed booking as stored locally for trip history.
type BookingRecord struct {
	ID             int64  `json:"id"`
	BookingID      string `json:"bookingId"`
	UserID         string `json:"userId"`
	CabID          string `json:"cabId"`
	ModelName      string `json:"modelName"`
	TripType       string `json:"tripType"`
	PickupLocation string `json:"pickupLocation"`
	DropLocation   string `json:"dropLocation"`
	Date           string `json:"date"`
	ReturnDate     string `json:"returnDate"`
	Time           string `json:"time"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	ServiceCharge  int64  `json:"service"`
	GST            int64  `json:"gst"`
	Total          int64  `json:"total"`
	PaymentMethod  string `json:"paymentMethod"`
	PaymentType    string `json:"paymentType"`
	PaymentStatus  string `json:"paymentStatus"`
	AmountPaid     int64  `json:"amountPaid"`
	Remaining      int64  `json:"remainingAmount"`
	CreatedAt      string `json:"createdAt"`
}
