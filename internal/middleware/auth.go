package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
	"github.com/Unsighted/Dashboard-backend/internal/token"
	"github.com/Unsighted/Dashboard-backend/pkg/response"
)

const (
	// ClaimsKey is the context key for verified access token claims
	ClaimsKey = "auth_claims"

	bearerPrefix = "Bearer "
)

// Authenticate verifies the Bearer access token and stores its claims in
// the request context. Missing, malformed, expired or forged tokens all
// end the request with 401.
func Authenticate(issuer *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.Unauthorized("missing or malformed authorization header"))
			return
		}

		claims, err := issuer.ParseAccess(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			msg := "invalid token"
			if err == domain.ErrTokenExpired {
				msg = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized(msg))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireRoles allows the request through only when the authenticated
// user's role is one of the given roles. Must run after Authenticate.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.Unauthorized("authentication required"))
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden,
			response.Forbidden("insufficient role"))
	}
}

// GetClaims returns the verified claims from context, nil when the request
// did not pass Authenticate
func GetClaims(c *gin.Context) *token.AccessClaims {
	if v, exists := c.Get(ClaimsKey); exists {
		if claims, ok := v.(*token.AccessClaims); ok {
			return claims
		}
	}
	return nil
}
