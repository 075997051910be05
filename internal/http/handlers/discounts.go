package handlers

import (
	"net/http"

	"wtl-backend/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/discounts
// Lists enabled, unexpired coupons. A failing registry degrades to an empty
// list so coupon browsing never blocks the invoice page.
func ListDiscounts(c *gin.Context) {
	svc := discountService(c)
	coupons, degraded := svc.ListActive(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"coupons": coupons, "degraded": degraded})
}

// POST /api/discounts/apply
func ApplyDiscount(c *gin.Context) {
	var req struct {
		Code  string           `json:"code"`
		Quote models.TripQuote `json:"quote"`
	}
	if !BindJSONOrError(c, &req) {
		return
	}

	applied, err := discountService(c).Apply(c.Request.Context(), req.Code, req.Quote)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, applied)
}

// POST /api/discounts/clear
// Drops the active coupon and returns the undiscounted invoice.
func ClearDiscount(c *gin.Context) {
	var req struct {
		Quote models.TripQuote `json:"quote"`
	}
	if !BindJSONOrError(c, &req) {
		return
	}

	inv := discountService(c).Clear(req.Quote)
	c.JSON(http.StatusOK, gin.H{"invoice": inv})
}
