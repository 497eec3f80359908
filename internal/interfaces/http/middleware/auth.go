package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/lumenhq/lumen/internal/infrastructure/auth"
	"github.com/lumenhq/lumen/internal/shared/constants"
	"github.com/lumenhq/lumen/internal/shared/logger"
	"github.com/lumenhq/lumen/internal/shared/utils"
)

// SessionVerifier validates admin session tokens.
type SessionVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	verifier SessionVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier SessionVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireAuth rejects requests without a valid session cookie or Bearer
// token with 401 before any handler runs.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.SessionToken(c)
		if token == "" {
			utils.AbortUnauthorized(c)
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify session token", "error", err, "ip", c.ClientIP())
			utils.AbortUnauthorized(c)
			return
		}

		c.Set(constants.ContextKeyUserID, claims.Username)
		c.Set(constants.ContextKeySessionID, claims.SessionID)
		c.Next()
	}
}

// OptionalAuth sets the session context when a valid token is present.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := utils.SessionToken(c); token != "" {
			if claims, err := m.verifier.Verify(token); err == nil {
				c.Set(constants.ContextKeyUserID, claims.Username)
				c.Set(constants.ContextKeySessionID, claims.SessionID)
			}
		}
		c.Next()
	}
}
