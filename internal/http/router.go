package api

import (
	"log"
	stdhttp "net/http"

	intconfig "wtl-backend/internal/config"
	h "wtl-backend/internal/http/handlers"
	"wtl-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	secret := h.JWTSecret()

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Session prefill for the booking form
		api.GET("/session/prefill", middleware.AuthOptional(secret), h.SessionPrefill)

		// Fare computation
		api.POST("/quote", h.Quote)

		// Coupons
		discounts := api.Group("/discounts")
		discounts.GET("", h.ListDiscounts)
		discounts.POST("/apply", h.ApplyDiscount)
		discounts.POST("/clear", h.ClearDiscount)

		// Checkout flow
		checkout := api.Group("/checkout", middleware.AuthOptional(secret))
		checkout.POST("", h.StartCheckout)
		checkout.POST("/:attemptId/complete", h.CompleteCheckout)
		checkout.POST("/:attemptId/fail", h.FailCheckout)
		checkout.POST("/:attemptId/cancel", h.CancelCheckout)

		// Trip history and documents
		bookings := api.Group("/bookings")
		bookings.GET("/by-user/:id", h.GetUserBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.GET("/:id/invoice", h.GetBookingInvoicePDF)
	}

	return r
}
