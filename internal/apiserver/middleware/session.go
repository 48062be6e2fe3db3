package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apna-adda/adda/internal/session"
)

// RequireUser creates a middleware that rejects requests whose session has no
// end-user identity. The identity is stored in the context under "user".
func RequireUser(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := sessions.User(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set("user", user)
		c.Next()
	}
}

// RequireAdmin creates a middleware that rejects requests whose session has
// no admin identity. The identity is stored in the context under "admin".
func RequireAdmin(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := sessions.Admin(c)
		if admin == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set("admin", admin)
		c.Next()
	}
}
