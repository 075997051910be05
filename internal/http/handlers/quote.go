package handlers

import (
	"net/http"

	"wtl-backend/internal/domain"
	"wtl-backend/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /api/quote
// Prices a selected cab offer. The invoice is derived, never stored; the
// frontend calls this again whenever price, discount, or trip params change.
func Quote(c *gin.Context) {
	var req struct {
		Quote    models.TripQuote `json:"quote"`
		Discount int64            `json:"discount"`
	}
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Quote.Price < 0 {
		RespondDomainError(c, domain.ValidationError{Field: "price", Msg: "price must not be negative"})
		return
	}

	inv := domain.ComputeInvoice(req.Quote.TripType, req.Quote.Price, req.Quote.Days, req.Discount)
	c.JSON(http.StatusOK, gin.H{"invoice": inv})
}
