package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"payday/internal/uuid"
)

const (
	sessionCookie = "payday_session"
	sessionKey    = "sessionID"

	// Cookie lifetime is generous; the staged-import TTL is what actually
	// bounds how long scratch data lives.
	sessionCookieMaxAge = 7 * 24 * 60 * 60
)

// ImportSession ensures every request carries a session identifier, minting
// a cookie on first contact. The ID scopes the staged-import scratch space
// so stage and commit requests from the same browser see the same data.
func ImportSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || !uuid.IsValid(id) {
			id = uuid.New()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, id, sessionCookieMaxAge, "/", "", false, true)
		}
		c.Set(sessionKey, id)
		c.Next()
	}
}

// SessionID extracts the import session ID set by ImportSession.
func SessionID(c *gin.Context) string {
	if id, exists := c.Get(sessionKey); exists {
		return id.(string)
	}
	return ""
}
