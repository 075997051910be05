package services

import (
	"context"
	"errors"
	"testing"

	"wtl-backend/internal/clients/payment"
	"wtl-backend/internal/domain"
	"wtl-backend/internal/domain/models"
)

type fakeOrders struct {
	calls int
	order *payment.Order
	err   error
}

func (f *fakeOrders) CreateOrder(ctx context.Context, amount int64) (*payment.Order, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.order, nil
}

type fakeSubmitter struct {
	calls     int
	last      models.BookingSubmission
	bookingID string
	err       error
}

func (f *fakeSubmitter) Submit(ctx context.Context, sub models.BookingSubmission) (string, error) {
	f.calls++
	f.last = sub
	if f.err != nil {
		return "", f.err
	}
	return f.bookingID, nil
}

type fakeRecorder struct {
	calls int
	last  models.BookingSubmission
}

func (f *fakeRecorder) SaveConfirmed(sub models.BookingSubmission, bookingID string) error {
	f.calls++
	f.last = sub
	return nil
}

func validInput(method, payType string) StartInput {
	return StartInput{
		Quote: models.TripQuote{
			CabID:    "cab-1",
			TripType: "oneWay",
			Price:    1000,
		},
		Contact: models.ContactDetails{
			Name:  "Asha",
			Email: "asha@example.com",
			Phone: "9876543210",
		},
		Selection: models.PaymentSelection{Method: method, Type: payType},
		UserID:    "42",
	}
}

func newCheckout(orders *fakeOrders, submit *fakeSubmitter, rec *fakeRecorder) CheckoutService {
	return CheckoutService{
		Orders:   orders,
		Bookings: submit,
		Recorder: rec,
		Store:    NewAttemptStore(),
	}
}

func TestStartValidationHasNoSideEffects(t *testing.T) {
	orders := &fakeOrders{order: &payment.Order{OrderID: "o1", KeyID: "k1"}}
	submit := &fakeSubmitter{bookingID: "BK1"}
	svc := newCheckout(orders, submit, &fakeRecorder{})

	cases := []StartInput{
		func() StartInput { in := validInput("cash", ""); in.Contact.Name = ""; return in }(),
		func() StartInput { in := validInput("cash", ""); in.Contact.Phone = ""; return in }(),
		func() StartInput { in := validInput("cash", ""); in.Contact.Phone = "12345"; return in }(),
		validInput("", ""),
		validInput("online", ""),
		validInput("online", "later"),
	}
	for i, in := range cases {
		if _, err := svc.Start(context.Background(), in); !domain.IsValidation(err) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
	if orders.calls != 0 || submit.calls != 0 {
		t.Fatalf("rejected input reached collaborators: orders=%d submit=%d", orders.calls, submit.calls)
	}
}

func TestStartCashConfirmsAsPending(t *testing.T) {
	submit := &fakeSubmitter{bookingID: "BK100"}
	rec := &fakeRecorder{}
	svc := newCheckout(&fakeOrders{}, submit, rec)

	res, err := svc.Start(context.Background(), validInput("cash", "partial"))
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if res.Status != "confirmed" || res.BookingID != "BK100" {
		t.Fatalf("unexpected result: %+v", res)
	}

	sub := submit.last
	if sub.PaymentMethod != "cash" || sub.PaymentType != "full" {
		t.Fatalf("cash must submit as full payment: %+v", sub)
	}
	if sub.PaymentStatus != "pending" || sub.AmountPaid != 0 {
		t.Fatalf("cash must submit pending with nothing paid: %+v", sub)
	}
	if sub.RemainingAmount != res.Invoice.Total {
		t.Fatalf("remaining = %d, want %d", sub.RemainingAmount, res.Invoice.Total)
	}
	if sub.Receipt != nil {
		t.Fatalf("cash submission must carry no gateway receipt")
	}
	if rec.calls != 1 {
		t.Fatalf("expected one history record, got %d", rec.calls)
	}
}

func TestStartOnlineParksAttempt(t *testing.T) {
	orders := &fakeOrders{order: &payment.Order{OrderID: "order_9", KeyID: "rzp_key"}}
	submit := &fakeSubmitter{bookingID: "BK1"}
	svc := newCheckout(orders, submit, &fakeRecorder{})

	res, err := svc.Start(context.Background(), validInput("online", "full"))
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if res.Status != "awaiting_payment" || res.AttemptID == "" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if submit.calls != 0 {
		t.Fatalf("nothing may be submitted before the gateway resolves")
	}

	if res.Checkout == nil {
		t.Fatalf("missing checkout options")
	}
	if res.Checkout.Amount != res.Invoice.Total*100 {
		t.Fatalf("amount = %d paise, want %d", res.Checkout.Amount, res.Invoice.Total*100)
	}
	if res.Checkout.Key != "rzp_key" || res.Checkout.OrderID != "order_9" {
		t.Fatalf("unexpected checkout options: %+v", res.Checkout)
	}

	attempt, ok := svc.Store.Get(res.AttemptID)
	if !ok || attempt.State != StateGatewayOpen {
		t.Fatalf("attempt not parked as GATEWAY_OPEN: %+v", attempt)
	}
}

func TestStartOnlinePartialAmount(t *testing.T) {
	orders := &fakeOrders{order: &payment.Order{OrderID: "o1", KeyID: "k1"}}
	svc := newCheckout(orders, &fakeSubmitter{}, &fakeRecorder{})

	res, err := svc.Start(context.Background(), validInput("online", "partial"))
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	// 1000 oneWay totals 1150; 20% of that is 230.
	if res.Invoice.PartialAmount != 230 {
		t.Fatalf("partial = %d, want 230", res.Invoice.PartialAmount)
	}
	if res.Checkout.Amount != 230*100 {
		t.Fatalf("amount = %d paise, want %d", res.Checkout.Amount, 230*100)
	}
}

func TestStartOnlineOrderFailure(t *testing.T) {
	orders := &fakeOrders{err: errors.New("gateway down")}
	svc := newCheckout(orders, &fakeSubmitter{}, &fakeRecorder{})

	_, err := svc.Start(context.Background(), validInput("online", "full"))
	if !domain.IsUnavailable(err) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
	if err.Error() != MsgPaymentUnavailable {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestCompletePaymentSubmitsAndConfirms(t *testing.T) {
	orders := &fakeOrders{order: &payment.Order{OrderID: "o1", KeyID: "k1"}}
	submit := &fakeSubmitter{bookingID: "BK77"}
	rec := &fakeRecorder{}
	svc := newCheckout(orders, submit, rec)

	res, err := svc.Start(context.Background(), validInput("online", "partial"))
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	receipt := models.GatewayReceipt{OrderID: "o1", PaymentID: "pay_1", Signature: "sig"}
	conf, err := svc.CompletePayment(context.Background(), res.AttemptID, receipt)
	if err != nil {
		t.Fatalf("CompletePayment returned error: %v", err)
	}
	if conf.BookingID != "BK77" {
		t.Fatalf("bookingId = %q, want BK77", conf.BookingID)
	}

	sub := submit.last
	if sub.PaymentStatus != "paid" {
		t.Fatalf("status = %q, want paid", sub.PaymentStatus)
	}
	if sub.AmountPaid != 230 || sub.RemainingAmount != res.Invoice.Total-230 {
		t.Fatalf("paid=%d remaining=%d, want 230/%d", sub.AmountPaid, sub.RemainingAmount, res.Invoice.Total-230)
	}
	if sub.Receipt == nil || sub.Receipt.PaymentID != "pay_1" {
		t.Fatalf("receipt not forwarded: %+v", sub.Receipt)
	}
	if rec.calls != 1 {
		t.Fatalf("expected one history record, got %d", rec.calls)
	}

	attempt, _ := svc.Store.Get(res.AttemptID)
	if attempt.State != StateConfirmed || attempt.BookingID != "BK77" {
		t.Fatalf("attempt not confirmed: %+v", attempt)
	}

	// A second confirm of the same attempt must not submit again.
	if _, err := svc.CompletePayment(context.Background(), res.AttemptID, receipt); !domain.IsConflict(err) {
		t.Fatalf("expected conflict on double confirm, got %v", err)
	}
	if submit.calls != 1 {
		t.Fatalf("submitted %d times, want 1", submit.calls)
	}
}

func TestCompletePaymentSubmitFailureAllowsRetry(t *testing.T) {
	orders := &fakeOrders{order: &payment.Order{OrderID: "o1", KeyID: "k1"}}
	submit := &fakeSubmitter{err: errors.New("confirm down")}
	svc := newCheckout(orders, submit, &fakeRecorder{})

	res, err := svc.Start(context.Background(), validInput("online", "full"))
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	receipt := models.GatewayReceipt{OrderID: "o1", PaymentID: "pay_1"}
	_, err = svc.CompletePayment(context.Background(), res.AttemptID, receipt)
	if !domain.IsUnavailable(err) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
	if err.Error() != MsgSubmitFailed {
		t.Fatalf("unexpected message: %v", err)
	}

	attempt, _ := svc.Store.Get(res.AttemptID)
	if attempt.State != StateSubmitFailed {
		t.Fatalf("state = %s, want %s", attempt.State, StateSubmitFailed)
	}

	// The payment went through; retrying the submit is allowed.
	submit.err = nil
	submit.bookingID = "BK5"
	conf, err := svc.CompletePayment(context.Background(), res.AttemptID, receipt)
	if err != nil {
		t.Fatalf("retry returned error: %v", err)
	}
	if conf.BookingID != "BK5" {
		t.Fatalf("bookingId = %q, want BK5", conf.BookingID)
	}
}

func TestFailAndCancelAreTerminal(t *testing.T) {
	orders := &fakeOrders{order: &payment.Order{OrderID: "o1", KeyID: "k1"}}
	svc := newCheckout(orders, &fakeSubmitter{}, &fakeRecorder{})

	res, err := svc.Start(context.Background(), validInput("online", "full"))
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	msg, err := svc.FailPayment(res.AttemptID)
	if err != nil {
		t.Fatalf("FailPayment returned error: %v", err)
	}
	if msg != MsgPaymentFailed {
		t.Fatalf("unexpected message: %q", msg)
	}

	// No confirm, no cancel after a terminal failure.
	if _, err := svc.CompletePayment(context.Background(), res.AttemptID, models.GatewayReceipt{}); !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if _, err := svc.CancelPayment(res.AttemptID); !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}

	res2, err := svc.Start(context.Background(), validInput("online", "full"))
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	msg, err = svc.CancelPayment(res2.AttemptID)
	if err != nil {
		t.Fatalf("CancelPayment returned error: %v", err)
	}
	if msg != MsgPaymentCancelled {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestCompleteUnknownAttempt(t *testing.T) {
	svc := newCheckout(&fakeOrders{}, &fakeSubmitter{}, &fakeRecorder{})
	if _, err := svc.CompletePayment(context.Background(), "att-missing", models.GatewayReceipt{}); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
