package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "session_id"
	sessionMaxAge = 7 * 24 * 60 * 60 // seconds
	sessionKey    = "session"
)

// RequireSession rejects any read operation that carries no session
// cookie, before a handler or the store is touched. Presence is the only
// check: any previously issued token is a valid scope.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(sessionKey, token)
		c.Next()
	}
}

// resolveSession returns the caller's token, minting a fresh one and
// setting it back as a cookie when the request carries none. An existing
// token is never overwritten. Only the create path calls this.
func resolveSession(c *gin.Context) string {
	if token, err := c.Cookie(sessionCookie); err == nil && token != "" {
		return token
	}
	token := uuid.NewString()
	c.SetCookie(sessionCookie, token, sessionMaxAge, "/", "", false, true)
	return token
}

func sessionFrom(c *gin.Context) string {
	return c.GetString(sessionKey)
}
