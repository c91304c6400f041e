package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/musasahinkundakci/firebase-backend-recipe/internal/service"
)

// Context keys set by the auth middleware.
const (
	CtxUserID        = "user_id"
	CtxEmail         = "email"
	CtxAuthenticated = "authenticated"
)

// TokenValidator verifies a bearer token against the identity service.
type TokenValidator interface {
	ValidateToken(token string) (*service.TokenClaims, error)
}

// RequireAuth aborts with 401 unless the request carries a valid
// "Bearer <token>" Authorization header.
func RequireAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, errMsg := verify(c, validator)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": errMsg})
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxAuthenticated, true)
		c.Next()
	}
}

// OptionalAuth records whether the request is authenticated but never
// aborts: an absent or invalid token degrades the caller to the
// unauthenticated view.
func OptionalAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := verify(c, validator)
		if claims != nil {
			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxAuthenticated, true)
		} else {
			c.Set(CtxAuthenticated, false)
		}
		c.Next()
	}
}

func verify(c *gin.Context, validator TokenValidator) (*service.TokenClaims, string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, "missing authorization header"
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, "invalid authorization header format"
	}

	claims, err := validator.ValidateToken(parts[1])
	if err != nil {
		return nil, err.Error()
	}
	return claims, ""
}
