package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/ctfboard/internal/logger"
	"github.com/dtroode/ctfboard/internal/model"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "ctf_session"

const identityKey = "identity"

// AuthService resolves session tokens to identities.
type AuthService interface {
	Authenticate(ctx context.Context, token string) (model.Identity, error)
}

// Authenticate rejects requests without a valid, non-expired session and
// injects the resolved identity into the request context. Handlers must
// take the identity from here, never from the request body.
type Authenticate struct {
	auth   AuthService
	logger *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(auth AuthService, logger *logger.Logger) *Authenticate {
	return &Authenticate{auth: auth, logger: logger}
}

// Handle is the gin middleware entry point.
func (m *Authenticate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		identity, err := m.auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			if !errors.Is(err, model.ErrUnauthorized) {
				m.logger.Error("auth middleware: authentication failed",
					"error", err.Error())
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFromContext returns the identity stored by the Authenticate
// middleware.
func IdentityFromContext(c *gin.Context) (model.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return model.Identity{}, false
	}
	identity, ok := value.(model.Identity)
	return identity, ok
}
