package services

import (
	"context"
	"fmt"

	"wtl-backend/internal/clients/payment"
	"wtl-backend/internal/domain"
	"wtl-backend/internal/domain/models"
	"wtl-backend/internal/utils"
)

// Banner messages shown on the invoice page. Kept verbatim since the frontend
// matches on them.
const (
	MsgMissingFields      = "Please fill in all required fields and select a payment option."
	MsgMissingPaymentType = "Please select a payment type (Full or Partial)."
	MsgPaymentUnavailable = "Payment service is currently unavailable. Please try again later."
	MsgPaymentFailed      = "Payment failed. Please try again."
	MsgPaymentCancelled   = "Payment was cancelled. Please try again if you wish to complete the booking."
	MsgSubmitFailed       = "Failed to complete booking. Please try again."
)

// OrderCreator creates a gateway payment order.
type OrderCreator interface {
	CreateOrder(ctx context.Context, amount int64) (*payment.Order, error)
}

// BookingSubmitter posts the confirmation payload and returns the bookingId.
type BookingSubmitter interface {
	Submit(ctx context.Context, sub models.BookingSubmission) (string, error)
}

// BookingRecorder stores a confirmed booking for trip history. Recording is
// best-effort; the remote confirmation is the source of truth.
type BookingRecorder interface {
	SaveConfirmed(sub models.BookingSubmission, bookingID string) error
}

// CheckoutService drives a booking attempt from validation through payment to
// confirmation submission.
type CheckoutService struct {
	Orders    OrderCreator
	Bookings  BookingSubmitter
	Recorder  BookingRecorder
	Store     *AttemptStore
	RequestID string
}

// StartInput carries everything the invoice page knows at submit time. The
// discount amount comes from a prior DiscountService.Apply (zero when no
// coupon is active).
type StartInput struct {
	Quote     models.TripQuote        `json:"quote"`
	Contact   models.ContactDetails   `json:"contact"`
	Selection models.PaymentSelection `json:"payment"`
	Discount  int64                   `json:"discount"`
	UserID    string                  `json:"userId"`
}

// StartResult is either a confirmed cash booking or a parked online attempt
// with the checkout widget configuration.
type StartResult struct {
	Status    string                   `json:"status"` // "confirmed" | "awaiting_payment"
	BookingID string                   `json:"bookingId,omitempty"`
	AttemptID string                   `json:"attemptId,omitempty"`
	Invoice   domain.Invoice           `json:"invoice"`
	Checkout  *payment.CheckoutOptions `json:"checkout,omitempty"`
}

// Start validates the attempt and routes it down the cash or online path.
// Validation failures have no side effects: nothing is parked, nothing is
// submitted.
func (s CheckoutService) Start(ctx context.Context, in StartInput) (StartResult, error) {
	if err := validateStart(in); err != nil {
		return StartResult{}, err
	}

	sel := in.Selection
	if sel.Method == models.PaymentMethodCash {
		sel.Type = models.PaymentTypeFull
	}

	inv := domain.ComputeInvoice(in.Quote.TripType, in.Quote.Price, in.Quote.Days, in.Discount)

	if sel.Method == models.PaymentMethodCash {
		return s.startCash(ctx, in, sel, inv)
	}
	return s.startOnline(ctx, in, sel, inv)
}

func (s CheckoutService) startCash(ctx context.Context, in StartInput, sel models.PaymentSelection, inv domain.Invoice) (StartResult, error) {
	sub := buildSubmission(in, sel, inv)
	sub.PaymentStatus = models.PaymentStatusPending
	sub.AmountPaid = 0
	sub.RemainingAmount = inv.Total

	bookingID, err := s.Bookings.Submit(ctx, sub)
	if err != nil {
		utils.LogEvent(s.RequestID, "checkout", "cash_submit", "confirm failed: "+err.Error())
		return StartResult{}, domain.UnavailableError{Service: "booking", Msg: MsgSubmitFailed, Err: err}
	}

	s.record(sub, bookingID)
	utils.LogEvent(s.RequestID, "checkout", "cash_submit", "booking_id="+bookingID)
	return StartResult{Status: "confirmed", BookingID: bookingID, Invoice: inv}, nil
}

func (s CheckoutService) startOnline(ctx context.Context, in StartInput, sel models.PaymentSelection, inv domain.Invoice) (StartResult, error) {
	amount := inv.Total
	if sel.Type == models.PaymentTypePartial {
		amount = inv.PartialAmount
	}

	order, err := s.Orders.CreateOrder(ctx, amount)
	if err != nil {
		utils.LogEvent(s.RequestID, "checkout", "create_order", "failed: "+err.Error())
		return StartResult{}, domain.UnavailableError{Service: "payment", Msg: MsgPaymentUnavailable, Err: err}
	}

	attempt := &Attempt{
		State:       StateGatewayOpen,
		Quote:       in.Quote,
		Contact:     in.Contact,
		Selection:   sel,
		Invoice:     inv,
		UserID:      in.UserID,
		AmountToPay: amount,
		Order:       order,
	}
	s.Store.Put(attempt)

	opts := payment.BuildCheckoutOptions(order, amount, in.Contact)
	utils.LogEvent(s.RequestID, "checkout", "create_order", fmt.Sprintf("attempt=%s order=%s amount=%d", attempt.ID, order.OrderID, amount))

	return StartResult{
		Status:    "awaiting_payment",
		AttemptID: attempt.ID,
		Invoice:   inv,
		Checkout:  &opts,
	}, nil
}

// Confirmation is the terminal success of a flow.
type Confirmation struct {
	BookingID string `json:"bookingId"`
}

// CompletePayment handles the gateway success callback: marks the attempt
// paid and submits the booking. A manual resubmit after a submit failure is
// allowed; a second confirm of an already confirmed attempt is not.
func (s CheckoutService) CompletePayment(ctx context.Context, attemptID string, receipt models.GatewayReceipt) (Confirmation, error) {
	attempt, err := s.Store.Transition(attemptID, StatePaid, StateGatewayOpen, StateSubmitFailed)
	if err != nil {
		return Confirmation{}, err
	}

	sub := buildSubmission(StartInput{
		Quote:    attempt.Quote,
		Contact:  attempt.Contact,
		Discount: attempt.Invoice.Discount,
		UserID:   attempt.UserID,
	}, attempt.Selection, attempt.Invoice)
	sub.PaymentStatus = models.PaymentStatusPaid
	sub.AmountPaid = attempt.AmountToPay
	sub.RemainingAmount = attempt.Invoice.Total - attempt.AmountToPay
	sub.Receipt = &receipt

	bookingID, err := s.Bookings.Submit(ctx, sub)
	if err != nil {
		_, _ = s.Store.Transition(attemptID, StateSubmitFailed, StatePaid)
		utils.LogEvent(s.RequestID, "checkout", "submit", "confirm failed: "+err.Error())
		return Confirmation{}, domain.UnavailableError{Service: "booking", Msg: MsgSubmitFailed, Err: err}
	}

	if _, err := s.Store.Transition(attemptID, StateConfirmed, StatePaid); err != nil {
		return Confirmation{}, err
	}
	s.Store.SetBookingID(attemptID, bookingID)
	s.record(sub, bookingID)

	utils.LogEvent(s.RequestID, "checkout", "submit", "booking_id="+bookingID)
	return Confirmation{BookingID: bookingID}, nil
}

// FailPayment handles the gateway's explicit failure signal. The attempt is
// terminal; the user retries from payment-method selection.
func (s CheckoutService) FailPayment(attemptID string) (string, error) {
	if _, err := s.Store.Transition(attemptID, StateFailed, StateGatewayOpen); err != nil {
		return "", err
	}
	utils.LogEvent(s.RequestID, "checkout", "gateway", "payment failed attempt="+attemptID)
	return MsgPaymentFailed, nil
}

// CancelPayment handles the user dismissing the checkout widget.
func (s CheckoutService) CancelPayment(attemptID string) (string, error) {
	if _, err := s.Store.Transition(attemptID, StateCancelled, StateGatewayOpen); err != nil {
		return "", err
	}
	utils.LogEvent(s.RequestID, "checkout", "gateway", "payment cancelled attempt="+attemptID)
	return MsgPaymentCancelled, nil
}

func (s CheckoutService) record(sub models.BookingSubmission, bookingID string) {
	if s.Recorder == nil {
		return
	}
	if err := s.Recorder.SaveConfirmed(sub, bookingID); err != nil {
		// History is a convenience; the remote confirmation already went
		// through, so only log.
		utils.LogEvent(s.RequestID, "checkout", "record", "save failed: "+err.Error())
	}
}

func buildSubmission(in StartInput, sel models.PaymentSelection, inv domain.Invoice) models.BookingSubmission {
	return models.BookingSubmission{
		Quote:         in.Quote,
		Contact:       in.Contact,
		ServiceCharge: inv.ServiceCharge,
		GST:           inv.GST,
		Total:         inv.Total,
		UserID:        in.UserID,
		PaymentMethod: sel.Method,
		PaymentType:   sel.Type,
	}
}

func validateStart(in StartInput) error {
	if in.Contact.Name == "" || in.Contact.Email == "" {
		return domain.ValidationError{Field: "contact", Msg: MsgMissingFields}
	}
	if in.Contact.Phone == "" {
		return domain.ValidationError{Field: "phone", Msg: "Phone number is required"}
	}
	if !models.ValidPhone(in.Contact.Phone) {
		return domain.ValidationError{Field: "phone", Msg: "Phone number must be exactly 10 digits"}
	}

	switch in.Selection.Method {
	case models.PaymentMethodCash:
		// Cash is always a full payment; any submitted type is overridden.
	case models.PaymentMethodOnline:
		switch in.Selection.Type {
		case models.PaymentTypeFull, models.PaymentTypePartial:
		default:
			return domain.ValidationError{Field: "paymentType", Msg: MsgMissingPaymentType}
		}
	default:
		return domain.ValidationError{Field: "paymentMethod", Msg: MsgMissingFields}
	}
	return nil
}
