package services

import (
	"math/rand"
	"strconv"
	"sync"
	"time"

	"wtl-backend/internal/clients/payment"
	"wtl-backend/internal/domain"
	"wtl-backend/internal/domain/models"
)

// CheckoutState is the explicit state of one booking attempt. A single tagged
// state replaces the pile of independent flags the invoice page used to
// juggle, so "submitting while showing a payment error" is unrepresentable.
type CheckoutState string

const (
	StateGatewayOpen  CheckoutState = "GATEWAY_OPEN"
	StatePaid         CheckoutState = "PAID"
	StateFailed       CheckoutState = "FAILED"
	StateCancelled    CheckoutState = "CANCELLED"
	StateConfirmed    CheckoutState = "CONFIRMED"
	StateSubmitFailed CheckoutState = "SUBMIT_FAILED"
)

// Attempt is one online checkout parked between order creation and the
// gateway's terminal signal.
type Attempt struct {
	ID        string
	State     CheckoutState
	Quote     models.TripQuote
	Contact   models.ContactDetails
	Selection models.PaymentSelection
	Invoice   domain.Invoice
	UserID    string

	AmountToPay int64
	Order       *payment.Order

	BookingID string
	CreatedAt time.Time
}

// AttemptStore keeps in-flight attempts in memory. All mutation goes through
// the store's mutex; attempt state is never touched outside it.
type AttemptStore struct {
	mu       sync.Mutex
	attempts map[string]*Attempt
}

func NewAttemptStore() *AttemptStore {
	return &AttemptStore{attempts: make(map[string]*Attempt)}
}

func (s *AttemptStore) Put(a *Attempt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == "" {
		a.ID = newAttemptID()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	s.attempts[a.ID] = a
}

func (s *AttemptStore) Get(id string) (Attempt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.attempts[id]
	if !ok {
		return Attempt{}, false
	}
	return *a, true
}

// Transition moves an attempt from one of the allowed states to next and
// returns the updated copy. It fails when the attempt is missing or in a
// state not listed; that is the double-confirm guard.
func (s *AttemptStore) Transition(id string, next CheckoutState, allowed ...CheckoutState) (Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.attempts[id]
	if !ok {
		return Attempt{}, domain.NotFoundError{Resource: "checkout attempt"}
	}
	for _, st := range allowed {
		if a.State == st {
			a.State = next
			return *a, nil
		}
	}
	return Attempt{}, domain.ConflictError{
		Resource: "checkout attempt",
		Msg:      "attempt is " + string(a.State),
	}
}

func (s *AttemptStore) SetBookingID(id, bookingID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.attempts[id]; ok {
		a.BookingID = bookingID
	}
}

func newAttemptID() string {
	return "att-" + strconv.FormatInt(time.Now().UnixNano(), 36) + "-" + strconv.Itoa(rand.Intn(1000000))
}
