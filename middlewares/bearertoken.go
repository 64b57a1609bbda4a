package middlewares

import (
	"strings"

	"HomoCure/utils"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

var (
	errMissingToken       = errors.New("session token is missing")
	errInvalidAuthzHeader = errors.New("invalid Authorization header format")
)

// sessionToken reads the session token from the Authorization header, falling
// back to the session cookie for browser clients.
func sessionToken(c *gin.Context) (string, error) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return "", errInvalidAuthzHeader
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			return "", errMissingToken
		}
		return token, nil
	}

	token, err := c.Cookie(utils.SessionCookieName)
	if err != nil || token == "" {
		return "", errMissingToken
	}
	return token, nil
}
