package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/volunteerhub/volunteerhub-web/internal/models"
	apperrors "github.com/volunteerhub/volunteerhub-web/pkg/errors"
	"github.com/volunteerhub/volunteerhub-web/pkg/hubapi"
	"github.com/volunteerhub/volunteerhub-web/pkg/logger"
)

// VolunteersService handles the manager roster. Route-level gating keeps
// non-managers out before this service runs; the backend re-checks anyway.
type VolunteersService struct {
	volunteers VolunteersAPI
}

// NewVolunteersService creates a new VolunteersService
func NewVolunteersService(volunteers VolunteersAPI) *VolunteersService {
	return &VolunteersService{volunteers: volunteers}
}

// CreateVolunteer registers a volunteer on a manager's behalf and returns
// the re-fetched roster.
func (s *VolunteersService) CreateVolunteer(ctx context.Context, req *models.RegisterRequest) ([]hubapi.Volunteer, error) {
	input := req.ToCreate()

	created, err := s.volunteers.Create(ctx, &input)
	if err != nil {
		if hubapi.IsStatus(err, 400) || hubapi.IsStatus(err, 409) {
			return nil, ErrEmailTaken
		}
		if hubapi.IsForbidden(err) {
			return nil, apperrors.AccessDeniedError("manager role required")
		}
		logger.Error("Failed to create volunteer", zap.Error(err))
		return nil, apperrors.UpstreamError("create volunteer", err)
	}

	logger.Info("Volunteer created", zap.Int("volunteer_id", created.ID))
	return s.ListVolunteers(ctx, hubapi.DefaultPage())
}

// ListVolunteers returns the volunteer roster
func (s *VolunteersService) ListVolunteers(ctx context.Context, page hubapi.Page) ([]hubapi.Volunteer, error) {
	volunteers, err := s.volunteers.List(ctx, page)
	if err != nil {
		if hubapi.IsForbidden(err) {
			return nil, apperrors.AccessDeniedError("manager role required")
		}
		logger.Error("Failed to list volunteers", zap.Error(err))
		return nil, apperrors.UpstreamError("list volunteers", err)
	}
	return volunteers, nil
}

// GetVolunteer returns a single volunteer by id
func (s *VolunteersService) GetVolunteer(ctx context.Context, id int) (*hubapi.Volunteer, error) {
	volunteer, err := s.volunteers.Get(ctx, id)
	if err != nil {
		if hubapi.IsNotFound(err) {
			return nil, apperrors.NotFoundError("volunteer")
		}
		if hubapi.IsForbidden(err) {
			return nil, apperrors.AccessDeniedError("manager role required")
		}
		logger.Error("Failed to get volunteer", zap.Int("volunteer_id", id), zap.Error(err))
		return nil, apperrors.UpstreamError("get volunteer", err)
	}
	return volunteer, nil
}

// UpdateVolunteer updates a volunteer and returns the re-fetched roster
func (s *VolunteersService) UpdateVolunteer(ctx context.Context, id int, req *models.ProfileUpdateRequest) ([]hubapi.Volunteer, error) {
	payload := req.ToCreate()

	if _, err := s.volunteers.Update(ctx, id, &payload); err != nil {
		if hubapi.IsNotFound(err) {
			return nil, apperrors.NotFoundError("volunteer")
		}
		if hubapi.IsForbidden(err) {
			return nil, apperrors.AccessDeniedError("manager role required")
		}
		logger.Error("Failed to update volunteer", zap.Int("volunteer_id", id), zap.Error(err))
		return nil, apperrors.UpstreamError("update volunteer", err)
	}

	logger.Info("Volunteer updated", zap.Int("volunteer_id", id))
	return s.ListVolunteers(ctx, hubapi.DefaultPage())
}

// DeleteVolunteer deletes a volunteer and returns the re-fetched roster
func (s *VolunteersService) DeleteVolunteer(ctx context.Context, id int) ([]hubapi.Volunteer, error) {
	if err := s.volunteers.Delete(ctx, id); err != nil {
		if hubapi.IsNotFound(err) {
			return nil, apperrors.NotFoundError("volunteer")
		}
		if hubapi.IsForbidden(err) {
			return nil, apperrors.AccessDeniedError("manager role required")
		}
		logger.Error("Failed to delete volunteer", zap.Int("volunteer_id", id), zap.Error(err))
		return nil, apperrors.UpstreamError("delete volunteer", err)
	}

	logger.Info("Volunteer deleted", zap.Int("volunteer_id", id))
	return s.ListVolunteers(ctx, hubapi.DefaultPage())
}
