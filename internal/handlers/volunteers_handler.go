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
)

// VolunteersHandler handles the manager-only volunteer roster endpoints.
// Routes are registered behind RequireManager; the backend still enforces
// the role on every call.
type VolunteersHandler struct {
	service services.VolunteersServiceInterface
}

// NewVolunteersHandler creates a new VolunteersHandler
func NewVolunteersHandler(service services.VolunteersServiceInterface) *VolunteersHandler {
	return &VolunteersHandler{
		service: service,
	}
}

// CreateVolunteer handles POST /api/v1/volunteers
// Responds with the re-fetched roster
func (h *VolunteersHandler) CreateVolunteer(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	volunteers, err := h.service.CreateVolunteer(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			respondError(c, http.StatusConflict, "Email already registered", err)
			return
		}
		h.respondRosterError(c, err, "Failed to save volunteer")
		return
	}

	c.JSON(http.StatusCreated, models.VolunteerListResponse{Volunteers: volunteers, Total: len(volunteers)})
}

// ListVolunteers handles GET /api/v1/volunteers
func (h *VolunteersHandler) ListVolunteers(c *gin.Context) {
	volunteers, err := h.service.ListVolunteers(c.Request.Context(), pageFromQuery(c))
	if err != nil {
		h.respondRosterError(c, err, "Failed to load volunteers")
		return
	}

	c.JSON(http.StatusOK, models.VolunteerListResponse{Volunteers: volunteers, Total: len(volunteers)})
}

// GetVolunteer handles GET /api/v1/volunteers/:id
func (h *VolunteersHandler) GetVolunteer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid volunteer id", err)
		return
	}

	volunteer, err := h.service.GetVolunteer(c.Request.Context(), id)
	if err != nil {
		h.respondRosterError(c, err, "Failed to load volunteers")
		return
	}

	c.JSON(http.StatusOK, models.VolunteerResponse{Volunteer: volunteer})
}

// UpdateVolunteer handles PUT /api/v1/volunteers/:id
// Responds with the re-fetched roster
func (h *VolunteersHandler) UpdateVolunteer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid volunteer id", err)
		return
	}

	var req models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	volunteers, err := h.service.UpdateVolunteer(c.Request.Context(), id, &req)
	if err != nil {
		h.respondRosterError(c, err, "Failed to save volunteer")
		return
	}

	c.JSON(http.StatusOK, models.VolunteerListResponse{Volunteers: volunteers, Total: len(volunteers)})
}

// DeleteVolunteer handles DELETE /api/v1/volunteers/:id
// Responds with the re-fetched roster
func (h *VolunteersHandler) DeleteVolunteer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid volunteer id", err)
		return
	}

	volunteers, err := h.service.DeleteVolunteer(c.Request.Context(), id)
	if err != nil {
		h.respondRosterError(c, err, "Failed to delete volunteer")
		return
	}

	c.JSON(http.StatusOK, models.VolunteerListResponse{Volunteers: volunteers, Total: len(volunteers)})
}

func (h *VolunteersHandler) respondRosterError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound, "Volunteer not found", err)
	case errors.Is(err, apperrors.ErrAccessDenied):
		respondError(c, http.StatusForbidden, middleware.ManagerAccessMessage, err)
	default:
		respondError(c, http.StatusBadGateway, message, err)
	}
}
