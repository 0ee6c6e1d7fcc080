package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const sessionKey = "session"

// RequireToken gates a route on token resolution. On failure the request is
// aborted with the uniform envelope; on success the session is attached to
// the context for the handler.
func RequireToken(database *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, rerr := Resolve(database, secret, c)
		if rerr != nil {
			c.AbortWithStatusJSON(rerr.Status, gin.H{
				"success": false,
				"message": rerr.Message,
				"error":   rerr.Detail(),
			})
			return
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// SessionFrom returns the session attached by RequireToken, or nil.
func SessionFrom(c *gin.Context) *Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	session, ok := v.(*Session)
	if !ok {
		return nil
	}
	return session
}
