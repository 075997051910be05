package models

import (
	"strings"
	"time"
)

// DiscountCode is a coupon from the discount registry. A code carries either
// a percentage or a flat amount; zero in both means it is misconfigured and
// must be rejected at apply time.
type DiscountCode struct {
	ID              int64   `json:"id"`
	CouponCode      string  `json:"couponCode"`
	DiscountPercent float64 `json:"discountPercentage"`
	FlatAmount      float64 `json:"priceDiscount"`
	MaxDiscount     float64 `json:"maxDiscountAmount"`
	MinOrderAmount  float64 `json:"minOrderAmount"`
	IsEnabled       bool    `json:"isEnabled"`
	ExpiryDate      string  `json:"expiryDate"`
}

var expiryLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02-01-2006",
}

// Expired reports whether the coupon is past its expiry date. The date is
// inclusive through end-of-day. Absent or unparsable dates never expire;
// the registry has always been permissive here.
func (d DiscountCode) Expired(now time.Time) bool {
	raw := strings.TrimSpace(d.ExpiryDate)
	if raw == "" {
		return false
	}
	for _, layout := range expiryLayouts {
		exp, err := time.ParseInLocation(layout, raw, now.Location())
		if err != nil {
			continue
		}
		endOfDay := time.Date(exp.Year(), exp.Month(), exp.Day(), 23, 59, 59, 0, now.Location())
		return now.After(endOfDay)
	}
	return false
}

// NormalizeCouponCode canonicalizes a user-entered code for lookup.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
