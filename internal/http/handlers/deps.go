package handlers

import (
	"github.com/gin-gonic/gin"

	"wtl-backend/internal/clients/bookingapi"
	"wtl-backend/internal/clients/discount"
	"wtl-backend/internal/clients/payment"
	intconfig "wtl-backend/internal/config"
	"wtl-backend/internal/http/middleware"
	"wtl-backend/internal/repositories"
	"wtl-backend/internal/services"
)

var (
	env        intconfig.Env
	registry   *discount.Client
	orders     *payment.Client
	bookingAPI *bookingapi.Client
	attempts   = services.NewAttemptStore()
	jwtSecret  []byte
)

// Configure builds the shared clients once at startup. Handlers assemble
// their services per request so each carries the request id.
func Configure(e intconfig.Env) {
	env = e
	registry = discount.NewClient(e.DiscountAPIURL, e.ClientTimeout)
	orders = payment.NewClient(e.PaymentAPIURL, e.ClientTimeout, e.RazorpayKeyID)
	bookingAPI = bookingapi.NewClient(e.BookingAPIURL, e.ClientTimeout)
	jwtSecret = []byte(e.JWTSecret)
}

// JWTSecret exposes the configured signing key to the router middleware.
func JWTSecret() []byte {
	return jwtSecret
}

func discountService(c *gin.Context) services.DiscountService {
	return services.DiscountService{
		Registry:  registry,
		RequestID: middleware.GetRequestID(c),
	}
}

func bookingService() services.BookingService {
	return services.BookingService{
		Repo: repositories.BookingRepo{DB: intconfig.DB},
	}
}

func checkoutService(c *gin.Context) services.CheckoutService {
	return services.CheckoutService{
		Orders:    orders,
		Bookings:  bookingAPI,
		Recorder:  bookingService(),
		Store:     attempts,
		RequestID: middleware.GetRequestID(c),
	}
}

func docsService(c *gin.Context) services.DocsService {
	return services.DocsService{
		Bookings:  bookingService(),
		RequestID: middleware.GetRequestID(c),
	}
}
