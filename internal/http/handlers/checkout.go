package handlers

import (
	"net/http"
	"strconv"

	"wtl-backend/internal/domain/models"
	"wtl-backend/internal/http/middleware"
	"wtl-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/checkout
// Starts a booking attempt. Cash bookings confirm in one round trip; online
// attempts come back as awaiting_payment with the checkout widget config.
func StartCheckout(c *gin.Context) {
	var in services.StartInput
	if !BindJSONOrError(c, &in) {
		return
	}

	// Logged-in users get their id attached server-side; the payload value
	// is only trusted for anonymous flows that carry a legacy cookie id.
	if uid := middleware.GetUserID(c); uid > 0 {
		in.UserID = strconv.FormatInt(uid, 10)
	}

	res, err := checkoutService(c).Start(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/checkout/:attemptId/complete
// Gateway success callback: the widget hands back order/payment/signature
// identifiers and the booking is submitted for confirmation.
func CompleteCheckout(c *gin.Context) {
	var receipt models.GatewayReceipt
	if !BindJSONOrError(c, &receipt) {
		return
	}

	conf, err := checkoutService(c).CompletePayment(c.Request.Context(), c.Param("attemptId"), receipt)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "confirmed", "bookingId": conf.BookingID})
}

// POST /api/checkout/:attemptId/fail
func FailCheckout(c *gin.Context) {
	msg, err := checkoutService(c).FailPayment(c.Param("attemptId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "failed", "message": msg})
}

// POST /api/checkout/:attemptId/cancel
func CancelCheckout(c *gin.Context) {
	msg, err := checkoutService(c).CancelPayment(c.Param("attemptId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled", "message": msg})
}
