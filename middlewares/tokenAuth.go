package middlewares

import (
	"context"
	"net/http"

	"HomoCure/utils"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type contextKey string

const sessionIDKey contextKey = "sessionID"

// SessionAuthMiddleware validates the session token and adds the session ID to the request context.
func SessionAuthMiddleware(tokens *utils.SessionTokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := sessionToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			message := "Invalid session token"
			if errors.Is(err, utils.ErrSessionTokenExpired) {
				message = "Session token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
			return
		}

		c.Request = c.Request.WithContext(WithSessionID(c.Request.Context(), claims.SessionID))
		c.Next()
	}
}

// WithSessionID returns a copy of ctx carrying sessionID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// ExtractSessionIDFromContext retrieves the session ID from the context.
func ExtractSessionIDFromContext(ctx context.Context) (string, error) {
	sessionID, ok := ctx.Value(sessionIDKey).(string)
	if !ok || sessionID == "" {
		return "", errors.New("session ID not found in context")
	}
	return sessionID, nil
}
