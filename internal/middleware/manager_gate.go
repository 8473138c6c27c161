package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ManagerAccessMessage is the error shown to non-managers on gated views.
const ManagerAccessMessage = "Manager access required"

// RequireManager gates manager-only routes on the cached profile's role
// flag. The check is advisory only (the backend is the authority), but it
// short-circuits before any upstream call is made: non-managers and
// unknown-role sessions are rejected with zero backend traffic.
// Must run after RequireSession.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := GetSession(c)
		if err != nil || !s.IsManager() {
			c.JSON(http.StatusForbidden, gin.H{"error": ManagerAccessMessage})
			c.Abort()
			return
		}
		c.Next()
	}
}
