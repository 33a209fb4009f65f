package middleware

import (
	"net/http"
	"strings"

	"github.com/aurodavid1986/ordering-app/internal/session"

	"github.com/gin-gonic/gin"
)

// RefreshHeader carries a re-issued token on every authenticated response.
// Clients replace their stored token with it, so an active session never
// outlives its token.
const RefreshHeader = "X-Session-Token"

// TokenIssuer resolves bearer tokens to session IDs and issues new ones.
type TokenIssuer interface {
	Validate(token string) (string, error)
	Generate(sessionID string) (string, error)
}

func SessionMiddleware(tokens TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format, use 'Bearer <token>'"})
			c.Abort()
			return
		}

		sessionID, err := tokens.Validate(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		if fresh, err := tokens.Generate(sessionID); err == nil {
			c.Header(RefreshHeader, fresh)
		}

		// Attach session to request context
		c.Set(session.ContextKey, sessionID)
		c.Next()
	}
}
