package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/praiadomeio/app-ampm/internal/auth"
	"github.com/praiadomeio/app-ampm/internal/models"
	"github.com/praiadomeio/app-ampm/internal/observability"
	"go.uber.org/zap"
)

const (
	claimsKey = "claims"
	actorKey  = "actor"
)

// ActorResolver looks up the stored account behind a session
type ActorResolver interface {
	User(id string) (models.User, bool)
}

// AuthMiddleware validates the bearer token and loads the signed-in account.
// The account is re-read on every request so role changes and deletions
// take effect before the token expires.
func AuthMiddleware(tokens *auth.TokenMaker, users ActorResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			observability.Logger().Debug("rejected session token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		actor, ok := users.User(claims.Subject)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account no longer exists"})
			return
		}

		c.Set(claimsKey, claims)
		c.Set(actorKey, actor)
		c.Next()
	}
}

// ActorFromContext returns the signed-in account set by AuthMiddleware
func ActorFromContext(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(actorKey)
	if !exists {
		return models.User{}, false
	}
	actor, ok := value.(models.User)
	return actor, ok
}

// ClaimsFromContext returns the parsed session claims
func ClaimsFromContext(c *gin.Context) (*models.SessionClaims, bool) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*models.SessionClaims)
	return claims, ok
}

// RequireEditor lets editors and admins through
func RequireEditor() gin.HandlerFunc {
	return requireRole("Editor privileges required", models.Role.CanEdit)
}

// RequireAdmin lets admins through
func RequireAdmin() gin.HandlerFunc {
	return requireRole("Admin privileges required", models.Role.CanManageUsers)
}

func requireRole(message string, allowed func(models.Role) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Claims not found"})
			return
		}
		if !allowed(actor.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": message})
			return
		}
		c.Next()
	}
}
