package payment

import "errors"

var (
	// ErrUnavailable means no usable order came back; the attempt must be
	// aborted with a user-visible "service unavailable" message.
	ErrUnavailable = errors.New("payment service unavailable")

	// ErrInternal covers client-side request construction failures.
	ErrInternal = errors.New("payment client: internal error")
)
