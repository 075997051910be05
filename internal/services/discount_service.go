package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"wtl-backend/internal/clients/discount"
	"wtl-backend/internal/domain"
	"wtl-backend/internal/domain/models"
	"wtl-backend/internal/utils"
)

// DiscountRegistry is the slice of the registry client the service needs.
type DiscountRegistry interface {
	GetAll(ctx context.Context) ([]models.DiscountCode, error)
	Validate(ctx context.Context, code string) (*discount.Validation, error)
}

// DiscountService resolves coupon codes and reprices quotes.
type DiscountService struct {
	Registry  DiscountRegistry
	RequestID string
	Now       func() time.Time
}

func (s DiscountService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ListActive returns the browsable coupons. Registry failures degrade to an
// empty list with degraded=true, so the invoice page stays usable without
// coupons, and the caller can tell the degraded path apart in tests.
func (s DiscountService) ListActive(ctx context.Context) (list []models.DiscountCode, degraded bool) {
	all, err := s.Registry.GetAll(ctx)
	if err != nil {
		utils.LogEvent(s.RequestID, "discount", "list", "registry fetch failed, degrading: "+err.Error())
		return []models.DiscountCode{}, true
	}

	now := s.now()
	list = make([]models.DiscountCode, 0, len(all))
	for _, c := range all {
		if c.IsEnabled && !c.Expired(now) {
			list = append(list, c)
		}
	}
	return list, false
}

// AppliedDiscount is the outcome of a successful coupon application: the
// resolved amount plus the invoice recomputed in the same step, so callers
// never observe a discount without its repriced invoice.
type AppliedDiscount struct {
	Code    string         `json:"code"`
	Amount  int64          `json:"amount"`
	Invoice domain.Invoice `json:"invoice"`
}

// Apply validates a code against the registry and reprices the quote.
// Resolution tries the single-code endpoint first; if the registry is
// unreachable it falls back to the bulk list before rejecting the code.
func (s DiscountService) Apply(ctx context.Context, code string, quote models.TripQuote) (AppliedDiscount, error) {
	normalized := models.NormalizeCouponCode(code)
	if normalized == "" {
		return AppliedDiscount{}, domain.ValidationError{Field: "coupon", Msg: "coupon code is required"}
	}

	terms, err := s.resolve(ctx, normalized)
	if err != nil {
		return AppliedDiscount{}, err
	}

	base := quote.Price
	if terms.MinOrderAmount > 0 && float64(base) < terms.MinOrderAmount {
		return AppliedDiscount{}, domain.ValidationError{
			Field: "coupon",
			Msg:   fmt.Sprintf("order must be at least %s to use this coupon", utils.FormatRupees(int64(terms.MinOrderAmount))),
		}
	}

	amount, err := discountAmount(terms, base)
	if err != nil {
		return AppliedDiscount{}, err
	}

	inv := domain.ComputeInvoice(quote.TripType, base, quote.Days, amount)
	utils.LogEvent(s.RequestID, "discount", "apply", fmt.Sprintf("code=%s amount=%d total=%d", normalized, amount, inv.Total))

	return AppliedDiscount{Code: normalized, Amount: amount, Invoice: inv}, nil
}

// Clear reprices the quote from its undiscounted base.
func (s DiscountService) Clear(quote models.TripQuote) domain.Invoice {
	return domain.ComputeInvoice(quote.TripType, quote.Price, quote.Days, 0)
}

func (s DiscountService) resolve(ctx context.Context, code string) (discount.Validation, error) {
	v, err := s.Registry.Validate(ctx, code)
	if err == nil {
		return *v, nil
	}
	if errors.Is(err, discount.ErrCouponExpired) {
		return discount.Validation{}, domain.ValidationError{Field: "coupon", Msg: "coupon has expired"}
	}

	// Registry unreachable or answered garbage: fall back to the bulk list
	// before declaring the code invalid.
	utils.LogEvent(s.RequestID, "discount", "apply", "validate endpoint failed, trying bulk list: "+err.Error())
	all, listErr := s.Registry.GetAll(ctx)
	if listErr == nil {
		now := s.now()
		for _, c := range all {
			if models.NormalizeCouponCode(c.CouponCode) != code {
				continue
			}
			if !c.IsEnabled || c.Expired(now) {
				break
			}
			return discount.Validation{
				DiscountPercentage: c.DiscountPercent,
				PriceDiscount:      c.FlatAmount,
				MaxDiscountAmount:  c.MaxDiscount,
				MinOrderAmount:     c.MinOrderAmount,
			}, nil
		}
	}
	return discount.Validation{}, domain.ValidationError{Field: "coupon", Msg: "invalid or disabled coupon"}
}

func discountAmount(terms discount.Validation, base int64) (int64, error) {
	switch {
	case terms.DiscountPercentage > 0:
		raw := int64(math.Round(float64(base) * terms.DiscountPercentage / 100))
		if terms.MaxDiscountAmount > 0 {
			limit := int64(math.Round(terms.MaxDiscountAmount))
			if raw > limit {
				raw = limit
			}
		}
		return raw, nil
	case terms.PriceDiscount > 0:
		return int64(math.Round(terms.PriceDiscount)), nil
	default:
		return 0, domain.ValidationError{Field: "coupon", Msg: "invalid or disabled coupon"}
	}
}
