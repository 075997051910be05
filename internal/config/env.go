package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Env struct {
	AppAddr string
	GinMode string

	DBDSN string

	// Remote collaborators. The discount registry and the payment-order API
	// live on the legacy platform; the booking-confirm endpoint as well.
	DiscountAPIURL string
	PaymentAPIURL  string
	BookingAPIURL  string
	ClientTimeout  time.Duration

	JWTSecret string

	// Public key shown to the checkout widget when the order API does not
	// return one. Empty means online payment is unavailable.
	RazorpayKeyID string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/wtl_app?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	return Env{
		AppAddr: appAddr,
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBDSN: dsn,

		DiscountAPIURL: urlOr("DISCOUNT_API_URL", "https://api.worldtriplink.com"),
		PaymentAPIURL:  urlOr("PAYMENT_API_URL", "https://api.worldtriplink.com"),
		BookingAPIURL:  urlOr("BOOKING_API_URL", "https://api.worldtriplink.com"),
		ClientTimeout:  secondsOr("HTTP_CLIENT_TIMEOUT", 15),

		JWTSecret:     secret,
		RazorpayKeyID: strings.TrimSpace(os.Getenv("RAZORPAY_KEY_ID")),
	}
}

func urlOr(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return strings.TrimRight(v, "/")
}

func secondsOr(key string, def int) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return time.Duration(def) * time.Second
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return time.Duration(def) * time.Second
	}
	return time.Duration(n) * time.Second
}
