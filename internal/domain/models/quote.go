package models

import "strings"

// TripQuote is the cab offer the user selected from search results. It is a
// read-only snapshot inside the invoice flow; pricing never mutates it.
type TripQuote struct {
	CabID          string `json:"cabId"`
	ModelName      string `json:"name"`
	Category       string `json:"category"`
	Price          int64  `json:"price"`
	PickupLocation string `json:"pickupLocation"`
	DropLocation   string `json:"dropLocation"`
	Date           string `json:"date"`
	ReturnDate     string `json:"returnDate"`
	Time           string `json:"time"`
	TripType       string `json:"tripType"`
	Distance       string `json:"distance"`
	Days           int    `json:"days"`
	PackageName    string `json:"packageName"`
}

// Seats derives the advertised seat configuration from the cab category.
func (q TripQuote) Seats() string {
	cat := strings.ToLower(strings.TrimSpace(q.Category))
	if cat == "suv" || cat == "muv" {
		return "6+1"
	}
	return "4+1"
}
