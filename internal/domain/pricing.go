package domain

import "math"

// DriverRatePerDay is the fixed driver allowance added per day on round trips.
const DriverRatePerDay int64 = 300

const (
	TripOneWay    = "oneWay"
	TripRoundTrip = "roundTrip"
	TripRental    = "rental"
)

// Invoice is the derived pricing breakdown for a quote. Amounts are whole
// rupees; fractions are rounded per component, never carried.
type Invoice struct {
	BaseFare      int64 `json:"baseFare"`
	Discount      int64 `json:"discount"`
	EffectiveBase int64 `json:"effectiveBase"`
	DriverCharge  int64 `json:"driverCharge"`
	Subtotal      int64 `json:"subtotal"`
	ServiceCharge int64 `json:"serviceCharge"`
	GST           int64 `json:"gst"`
	Total         int64 `json:"total"`
	PartialAmount int64 `json:"partialAmount"`
}

func roundMoney(x float64) int64 {
	return int64(math.Round(x))
}

// ComputeInvoice derives the invoice for a trip. Service charge (10%) and GST
// (5%) are rounded independently, so ServiceCharge+GST can differ by one rupee
// from a combined 15%, matching what the platform has always charged.
func ComputeInvoice(tripType string, basePrice int64, days int, discount int64) Invoice {
	effective := basePrice - discount
	if effective < 0 {
		effective = 0
	}

	inv := Invoice{
		BaseFare:      basePrice,
		Discount:      discount,
		EffectiveBase: effective,
	}

	if IsRoundTrip(tripType) {
		if days < 0 {
			days = 0
		}
		inv.DriverCharge = DriverRatePerDay * int64(days)
		inv.Subtotal = inv.DriverCharge + effective
		inv.GST = roundMoney(float64(inv.Subtotal) * 0.05)
		inv.ServiceCharge = roundMoney(float64(inv.Subtotal) * 0.10)
		inv.Total = inv.Subtotal + inv.GST + inv.ServiceCharge
	} else {
		inv.Subtotal = effective
		inv.ServiceCharge = roundMoney(float64(effective) * 0.10)
		inv.GST = roundMoney(float64(effective) * 0.05)
		inv.Total = effective + inv.ServiceCharge + inv.GST
	}

	inv.PartialAmount = PartialAmount(inv.Total)
	return inv
}

// PartialAmount is the fixed 20%-of-total upfront option for online payment.
func PartialAmount(total int64) int64 {
	return roundMoney(float64(total) * 0.20)
}

// IsRoundTrip accepts both spellings the booking funnel has used.
func IsRoundTrip(tripType string) bool {
	return tripType == TripRoundTrip || tripType == "round-trip"
}
