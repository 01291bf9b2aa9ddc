package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Aaryan-2k/TaskManagerAPI/internal/taskerr"
)

const userIDKey = "auth.user_id"

// TokenAuthenticator validates an access token and returns the subject
// user id.
type TokenAuthenticator interface {
	Authenticate(accessToken string) (int64, error)
}

// Authenticate returns middleware enforcing the policy table for op.
// When the operation requires auth it validates the bearer token and
// stores the caller's user id in the request context; handlers read it
// back with CurrentUserID and pass it explicitly into the service layer.
func Authenticate(auth TokenAuthenticator, op Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		if RequiredAuth(op) == AuthNone {
			c.Next()
			return
		}

		token := BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		userID, err := auth.Authenticate(token)
		if err != nil {
			message := "invalid token"
			if errors.Is(err, taskerr.ErrExpiredToken) {
				message = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated caller's user id, if any.
func CurrentUserID(c *gin.Context) (int64, bool) {
	value, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	userID, ok := value.(int64)
	return userID, ok
}

// BearerToken extracts the token from a "Bearer <token>" Authorization
// header, returning "" for any other scheme or shape.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.Split(header, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
