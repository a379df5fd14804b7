package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/SalonLinkApp/salon-scheduler/internal/config"
)

const (
	ContextUserID   = "userID"
	ContextSalonID  = "salonID"
	ContextUserRole = "userRole"

	RoleOwner  = "owner"
	RoleClient = "client"
)

// AuthMiddleware verifies bearer tokens issued by the external auth
// provider. Tokens are never minted here.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID, ok := claims["sub"].(string)
		role, _ := claims["role"].(string)
		if !ok || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, role)

		if salonID, ok := claims["salonId"].(float64); ok {
			c.Set(ContextSalonID, uint(salonID))
		}

		c.Next()
	}
}

// RequireOwner gates routes that act on a salon's own data; the salon
// identity comes from the token, never from the request.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) != RoleOwner {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "owner_only"})
			return
		}
		if _, ok := c.Get(ContextSalonID); !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "missing_salon_claim"})
			return
		}
		c.Next()
	}
}

// RequireClient gates the client history route.
func RequireClient() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) != RoleClient {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "client_only"})
			return
		}
		c.Next()
	}
}
