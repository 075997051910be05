package discount

import "errors"

var (
	// ErrCouponExpired maps the registry's HTTP 410 answer.
	ErrCouponExpired = errors.New("coupon expired")

	// ErrUnavailable covers network failures and unexpected status codes.
	ErrUnavailable = errors.New("discount registry unavailable")

	// ErrInvalidResponse means the registry answered with something we
	// could not decode.
	ErrInvalidResponse = errors.New("discount registry: invalid response")

	// ErrInternal covers client-side request construction failures.
	ErrInternal = errors.New("discount client: internal error")
)
