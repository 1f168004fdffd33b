package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zenstudio/booking-service/internal/core/domain"
	"github.com/zenstudio/booking-service/internal/logger"
	logicv1 "github.com/zenstudio/booking-service/internal/logic/v1"
)

const principalKey = "principal"

// RequireAuth validates the bearer token and resolves it to a principal
// stored in the gin context. All token failures collapse to 401.
func RequireAuth(tokens *logicv1.TokenService, auth *logicv1.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
			return
		}

		email, err := tokens.Validate(token)
		if err != nil {
			logger.FromContext(c.Request.Context()).Warn().Err(err).Msg("Token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		principal, err := auth.PrincipalByEmail(c.Request.Context(), email)
		if err != nil {
			logger.FromContext(c.Request.Context()).Warn().Err(err).Msg("Principal lookup failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(principalKey, *principal)
		c.Next()
	}
}

// currentPrincipal returns the principal stored by RequireAuth.
func currentPrincipal(c *gin.Context) (domain.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return domain.Principal{}, false
	}
	p, ok := v.(domain.Principal)
	return p, ok
}
