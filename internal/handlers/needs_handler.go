package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/volunteerhub/volunteerhub-web/internal/middleware"
	"github.com/volunteerhub/volunteerhub-web/internal/models"
	"github.com/volunteerhub/volunteerhub-web/internal/services"
	apperrors "github.com/volunteerhub/volunteerhub-web/pkg/errors"
	"github.com/volunteerhub/volunteerhub-web/pkg/hubapi"
)

// NeedsHandler handles volunteer need endpoints
type NeedsHandler struct {
	needs   services.NeedsServiceInterface
	profile services.ProfileServiceInterface
	auth    services.AuthServiceInterface
}

// NewNeedsHandler creates a new NeedsHandler
func NewNeedsHandler(needs services.NeedsServiceInterface, profile services.ProfileServiceInterface, auth services.AuthServiceInterface) *NeedsHandler {
	return &NeedsHandler{
		needs:   needs,
		profile: profile,
		auth:    auth,
	}
}

// Browse handles GET /api/v1/needs
// Public needs feed, paginated
func (h *NeedsHandler) Browse(c *gin.Context) {
	page := pageFromQuery(c)

	needs, err := h.needs.Browse(c.Request.Context(), page)
	if err != nil {
		respondError(c, http.StatusBadGateway, "Failed to load needs", err)
		return
	}

	c.JSON(http.StatusOK, models.NeedListResponse{Needs: needs, Total: len(needs)})
}

// GetNeed handles GET /api/v1/needs/:id
func (h *NeedsHandler) GetNeed(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid need id", err)
		return
	}

	need, err := h.needs.GetNeed(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Need not found", err)
			return
		}
		respondError(c, http.StatusBadGateway, "Failed to load needs", err)
		return
	}

	c.JSON(http.StatusOK, models.NeedResponse{Need: need})
}

// MyNeeds handles GET /api/v1/my/needs
func (h *NeedsHandler) MyNeeds(c *gin.Context) {
	ownerID, err := h.ownerID(c)
	if err != nil {
		h.respondOwnerError(c, err)
		return
	}

	needs, err := h.needs.MyNeeds(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, http.StatusBadGateway, "Failed to load needs", err)
		return
	}

	c.JSON(http.StatusOK, models.NeedListResponse{Needs: needs, Total: len(needs)})
}

// CreateNeed handles POST /api/v1/needs
// Responds with the re-fetched list of the caller's needs
func (h *NeedsHandler) CreateNeed(c *gin.Context) {
	ownerID, err := h.ownerID(c)
	if err != nil {
		h.respondOwnerError(c, err)
		return
	}

	var form models.NeedForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondValidationError(c, err)
		return
	}

	needs, err := h.needs.CreateNeed(c.Request.Context(), ownerID, &form)
	if err != nil {
		respondError(c, http.StatusBadGateway, "Failed to save need", err)
		return
	}

	c.JSON(http.StatusCreated, models.NeedListResponse{Needs: needs, Total: len(needs)})
}

// UpdateNeed handles PUT /api/v1/needs/:id
func (h *NeedsHandler) UpdateNeed(c *gin.Context) {
	ownerID, err := h.ownerID(c)
	if err != nil {
		h.respondOwnerError(c, err)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid need id", err)
		return
	}

	var form models.NeedForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondValidationError(c, err)
		return
	}

	needs, err := h.needs.UpdateNeed(c.Request.Context(), ownerID, id, &form)
	if err != nil {
		h.respondMutationError(c, err, "Failed to save need")
		return
	}

	c.JSON(http.StatusOK, models.NeedListResponse{Needs: needs, Total: len(needs)})
}

// DeleteNeed handles DELETE /api/v1/needs/:id
func (h *NeedsHandler) DeleteNeed(c *gin.Context) {
	ownerID, err := h.ownerID(c)
	if err != nil {
		h.respondOwnerError(c, err)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid need id", err)
		return
	}

	needs, err := h.needs.DeleteNeed(c.Request.Context(), ownerID, id)
	if err != nil {
		h.respondMutationError(c, err, "Failed to delete need")
		return
	}

	c.JSON(http.StatusOK, models.NeedListResponse{Needs: needs, Total: len(needs)})
}

// respondOwnerError answers a failed owner resolution. When the backend
// rejected the bearer token the cookie is stale, so it is cleared to force
// a fresh login.
func (h *NeedsHandler) respondOwnerError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrUnauthorized) {
		middleware.ClearSessionCookie(c, h.auth.GetCookieDomain(), h.auth.GetCookieSecure())
	}
	respondError(c, http.StatusUnauthorized, "Unauthorized", err)
}

func (h *NeedsHandler) respondMutationError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound, "Need not found", err)
	case errors.Is(err, services.ErrNotNeedOwner):
		respondError(c, http.StatusForbidden, "You can only modify your own needs", err)
	default:
		respondError(c, http.StatusBadGateway, message, err)
	}
}

// ownerID resolves the caller's volunteer id from the session profile, or
// from the backend when the session carries no cached profile.
func (h *NeedsHandler) ownerID(c *gin.Context) (int, error) {
	s, err := middleware.GetSession(c)
	if err != nil {
		return 0, err
	}
	if s.Profile != nil {
		return s.Profile.ID, nil
	}

	volunteer, err := h.profile.GetProfile(c.Request.Context())
	if err != nil {
		return 0, err
	}
	return volunteer.ID, nil
}

func pageFromQuery(c *gin.Context) hubapi.Page {
	page := hubapi.DefaultPage()
	if skip, err := strconv.Atoi(c.Query("skip")); err == nil && skip >= 0 {
		page.Skip = skip
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 && limit <= 100 {
		page.Limit = limit
	}
	return page
}
