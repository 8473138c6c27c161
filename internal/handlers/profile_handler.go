package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/volunteerhub/volunteerhub-web/internal/middleware"
	"github.com/volunteerhub/volunteerhub-web/internal/models"
	"github.com/volunteerhub/volunteerhub-web/internal/services"
	apperrors "github.com/volunteerhub/volunteerhub-web/pkg/errors"
)

// ProfileHandler handles the logged-in volunteer's own profile
type ProfileHandler struct {
	profile services.ProfileServiceInterface
	auth    services.AuthServiceInterface
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profile services.ProfileServiceInterface, auth services.AuthServiceInterface) *ProfileHandler {
	return &ProfileHandler{
		profile: profile,
		auth:    auth,
	}
}

// GetProfile handles GET /api/v1/my/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	volunteer, err := h.profile.GetProfile(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			// The backend no longer honors the bearer token, so the
			// cookie is stale. Clear it to force a fresh login.
			middleware.ClearSessionCookie(c, h.auth.GetCookieDomain(), h.auth.GetCookieSecure())
			respondError(c, http.StatusUnauthorized, "Unauthorized", err)
			return
		}
		respondError(c, http.StatusBadGateway, "Failed to load profile", err)
		return
	}

	c.JSON(http.StatusOK, models.VolunteerResponse{Volunteer: volunteer})
}

// UpdateProfile handles PUT /api/v1/my/profile
// On success the session cookie is re-issued with the fresh profile snapshot
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	s, err := middleware.GetSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var req models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	volunteer, cookieToken, err := h.profile.UpdateProfile(c.Request.Context(), s, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			middleware.ClearSessionCookie(c, h.auth.GetCookieDomain(), h.auth.GetCookieSecure())
			respondError(c, http.StatusUnauthorized, "Unauthorized", err)
			return
		}
		respondError(c, http.StatusBadGateway, "Failed to save profile", err)
		return
	}

	middleware.SetSessionCookie(
		c,
		cookieToken,
		h.auth.GetSessionTTL(),
		h.auth.GetCookieDomain(),
		h.auth.GetCookieSecure(),
	)

	c.JSON(http.StatusOK, models.VolunteerResponse{Volunteer: volunteer})
}
