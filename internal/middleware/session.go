package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub-web/internal/session"
	"github.com/volunteerhub/volunteerhub-web/pkg/jwt"
)

const (
	// SessionCookieName is the name of the session cookie
	SessionCookieName = "vh_session"

	// SessionContextKey is the key used to store the session in the gin context
	SessionContextKey = "vh_session"
)

var (
	ErrSessionNotFound = errors.New("session not found in context")
	ErrInvalidSession  = errors.New("invalid session type")
)

// attach places the session in the gin context and the request context, so
// both handlers and the backend API client's token source can see it.
func attach(c *gin.Context, s *session.Session) {
	c.Set(SessionContextKey, s)
	c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), s))
}

// RequireSession validates the session cookie and rejects requests without
// a valid one. An invalid or expired cookie is cleared on the way out.
func RequireSession(tokenManager *jwt.TokenManager, cookieDomain string, cookieSecure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil {
			_ = c.Error(fmt.Errorf("missing session cookie")) //nolint:errcheck
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := tokenManager.ValidateToken(cookie)
		if err != nil {
			_ = c.Error(fmt.Errorf("invalid session token: %w", err)) //nolint:errcheck

			clearSessionCookie(c, cookieDomain, cookieSecure)

			if errors.Is(err, jwt.ErrExpiredToken) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			}
			c.Abort()
			return
		}

		attach(c, session.FromClaims(claims))
		c.Next()
	}
}

// LoadSession loads the session if a valid cookie is present and continues
// unauthenticated otherwise. Used where "not logged in" is a normal state.
func LoadSession(tokenManager *jwt.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookieName)
		if err == nil {
			if claims, validateErr := tokenManager.ValidateToken(cookie); validateErr == nil {
				attach(c, session.FromClaims(claims))
			}
		}
		c.Next()
	}
}

// GetSession extracts the session from the gin context
func GetSession(c *gin.Context) (*session.Session, error) {
	val, exists := c.Get(SessionContextKey)
	if !exists {
		return nil, ErrSessionNotFound
	}

	s, ok := val.(*session.Session)
	if !ok {
		return nil, ErrInvalidSession
	}

	return s, nil
}

// SetSessionCookie sets the session cookie
func SetSessionCookie(c *gin.Context, token string, ttlSeconds int, domain string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		SessionCookieName,
		token,
		ttlSeconds,
		"/",
		domain,
		secure,
		true, // HttpOnly
	)
}

// ClearSessionCookie clears the session cookie. Idempotent.
func ClearSessionCookie(c *gin.Context, domain string, secure bool) {
	clearSessionCookie(c, domain, secure)
}

func clearSessionCookie(c *gin.Context, domain string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		SessionCookieName,
		"",
		-1,
		"/",
		domain,
		secure,
		true, // HttpOnly
	)
}
