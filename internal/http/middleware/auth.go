package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userIDKey = "user_id"

// Auth validates the Bearer token and stores the user id in the context.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := userIDFromToken(c, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			return
		}
		c.Set(userIDKey, id)
		c.Next()
	}
}

// AuthOptional stores the user id when a valid token is present and passes
// through otherwise. Used for prefill: an anonymous visitor is not an error.
func AuthOptional(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := userIDFromToken(c, secret); ok {
			c.Set(userIDKey, id)
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user id, zero when anonymous.
func GetUserID(c *gin.Context) int64 {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

func userIDFromToken(c *gin.Context, secret []byte) (int64, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return 0, false
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, false
	}
	return int64(id), true
}
