package bookingapi

import "errors"

var (
	// ErrUnavailable covers network failures reaching the booking backend.
	ErrUnavailable = errors.New("booking service unavailable")

	// ErrRejected means the backend answered but did not confirm a booking.
	ErrRejected = errors.New("booking rejected")

	// ErrInvalidResponse means the confirmation answer could not be decoded.
	ErrInvalidResponse = errors.New("booking service: invalid response")

	// ErrInternal covers client-side request construction failures.
	ErrInternal = errors.New("booking client: internal error")
)
