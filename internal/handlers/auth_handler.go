package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/volunteerhub/volunteerhub-web/internal/middleware"
	"github.com/volunteerhub/volunteerhub-web/internal/models"
	"github.com/volunteerhub/volunteerhub-web/internal/services"
)

// AuthHandler handles session endpoints
type AuthHandler struct {
	service services.AuthServiceInterface
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

// Login handles POST /api/v1/auth/login
// Exchanges credentials for a session cookie
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	profile, cookieToken, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid email or password", err)
			return
		}
		respondError(c, http.StatusBadGateway, "Login failed", err)
		return
	}

	middleware.SetSessionCookie(
		c,
		cookieToken,
		h.service.GetSessionTTL(),
		h.service.GetCookieDomain(),
		h.service.GetCookieSecure(),
	)

	c.JSON(http.StatusOK, models.LoginResponse{
		Success: true,
		Profile: profile,
	})
}

// Register handles POST /api/v1/auth/register
// Creates an account; the client goes through the login flow afterwards
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	volunteer, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			respondError(c, http.StatusConflict, "Email already registered", err)
			return
		}
		respondError(c, http.StatusBadGateway, "Registration failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"volunteer_id": volunteer.ID,
	})
}

// Logout handles POST /api/v1/auth/logout
// Clears the session cookie. Safe to call without a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(
		c,
		h.service.GetCookieDomain(),
		h.service.GetCookieSecure(),
	)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetSession handles GET /api/v1/auth/session
// Reports the current session state. Runs behind LoadSession, so an
// anonymous request is a normal 200, not an error.
func (h *AuthHandler) GetSession(c *gin.Context) {
	s, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusOK, models.SessionResponse{LoggedIn: false})
		return
	}

	c.JSON(http.StatusOK, models.SessionResponse{
		LoggedIn: s.LoggedIn(),
		Profile:  s.Profile,
	})
}
