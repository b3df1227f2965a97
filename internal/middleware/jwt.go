package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"med_transport/internal/authz"
)

var secret = []byte("supersecret") // fallback until SetSecret runs at boot

// SetSecret installs the signing key loaded from configuration. It
// must run before any token is minted or verified.
func SetSecret(s string) {
	if s != "" {
		secret = []byte(s)
	}
}

// GenerateToken mints a 7-day bearer token carrying the user's id,
// role and display name.
func GenerateToken(userID uint, role, fullName string) (string, error) {
	claims := jwt.MapClaims{
		"id":       userID,
		"role":     role,
		"fullName": fullName,
		"exp":      time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// RequireAuth ensures a valid JWT is present and stores its claims in
// the context for downstream handlers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid Authorization header"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
			return
		}
		c.Set("user_id", claims["id"])
		c.Set("role", claims["role"])
		c.Set("full_name", claims["fullName"])

		c.Next()
	}
}

// RequirePermission ensures the JWT is valid and the caller's role is
// allowed to perform the given action per the authz table.
func RequirePermission(action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := RequireAuth()
		req(c)
		if c.IsAborted() {
			return
		}

		roleIfc, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Role not found in token"})
			return
		}
		role, ok := roleIfc.(string)
		if !ok || !authz.Allowed(role, action) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}

// UserID extracts the authenticated user's id stored by RequireAuth.
func UserID(c *gin.Context) uint {
	return uint(c.MustGet("user_id").(float64))
}
