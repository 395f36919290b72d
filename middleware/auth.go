package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"franchise-service/models"
)

// Context keys set by AuthMiddleware
const (
	UserContextKey     = "userID"
	RoleContextKey     = "role"
	LocationContextKey = "locationID"
)

// AuthMiddleware validates the bearer token and stores the caller's
// identity, role, and location in the gin context.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || token == nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		sub, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		if sub == "" || role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		c.Set(UserContextKey, sub)
		c.Set(RoleContextKey, role)
		if locationID, ok := claims["location_id"].(string); ok {
			c.Set(LocationContextKey, locationID)
		}
		c.Next()
	}
}

// RequireRole checks that AuthMiddleware stored the given role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get(RoleContextKey)
		roleStr, ok := val.(string)
		if !exists || !ok || roleStr != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated caller's id.
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	if val, ok := c.Get(UserContextKey); ok {
		if id, ok := val.(string); ok && id != "" {
			return uuid.Parse(id)
		}
	}
	return uuid.Nil, errors.New("user ID not found in context")
}

// GetRole returns the authenticated caller's role.
func GetRole(c *gin.Context) string {
	if val, ok := c.Get(RoleContextKey); ok {
		if role, ok := val.(string); ok {
			return role
		}
	}
	return ""
}

// GetLocationID returns the franchisee's location, or uuid.Nil for
// franchisor tokens.
func GetLocationID(c *gin.Context) uuid.UUID {
	if val, ok := c.Get(LocationContextKey); ok {
		if id, ok := val.(string); ok && id != "" {
			if parsed, err := uuid.Parse(id); err == nil {
				return parsed
			}
		}
	}
	return uuid.Nil
}

// IsFranchisor reports whether the caller holds the franchisor role.
func IsFranchisor(c *gin.Context) bool {
	return GetRole(c) == models.RoleFranchisor
}
